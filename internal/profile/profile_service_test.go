package profile_test

import (
	"context"
	"testing"

	"worknest/internal/profile"
	profileerrors "worknest/internal/profile/errors"
	profileMock "worknest/internal/profile/mock"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const testJWTSecret = "test-secret"

func setupProfileTest(t *testing.T) (profile.Service, *profileMock.MockRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := profileMock.NewMockRepository(ctrl)
	svc := profile.NewService(repo, testJWTSecret, zap.NewNop())
	return svc, repo
}

func hashedProfile(t *testing.T, password string) *profile.Profile {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)

	managerID := 2
	return &profile.Profile{
		StaffID:            1,
		FirstName:          "Jordan",
		LastName:           "Lee",
		Email:              "staff@worknest.test",
		PasswordHash:       string(hash),
		Role:               "Staff",
		Department:         "IT",
		ReportingManagerID: &managerID,
	}
}

func TestProfileService_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("issues a token carrying the identity claims", func(t *testing.T) {
		svc, repo := setupProfileTest(t)
		p := hashedProfile(t, "hunter2")

		repo.EXPECT().FindByEmail(gomock.Any(), p.Email).Return(p, nil)

		resp, err := svc.Login(ctx, profile.LoginRequest{
			Email:    p.Email,
			Password: "hunter2",
		})

		assert.NoError(t, err)
		assert.Equal(t, 1, resp.Profile.StaffID)

		token, err := jwt.Parse(resp.Token, func(token *jwt.Token) (interface{}, error) {
			return []byte(testJWTSecret), nil
		})
		assert.NoError(t, err)
		assert.True(t, token.Valid)

		claims := token.Claims.(jwt.MapClaims)
		assert.Equal(t, float64(1), claims["staff_id"])
		assert.Equal(t, "Staff", claims["role"])
		assert.Equal(t, "IT", claims["department"])
	})

	t.Run("wrong password", func(t *testing.T) {
		svc, repo := setupProfileTest(t)
		p := hashedProfile(t, "hunter2")

		repo.EXPECT().FindByEmail(gomock.Any(), p.Email).Return(p, nil)

		_, err := svc.Login(ctx, profile.LoginRequest{
			Email:    p.Email,
			Password: "wrong",
		})

		assert.ErrorIs(t, err, profileerrors.ErrInvalidCredentials)
	})

	t.Run("unknown email reads the same as a wrong password", func(t *testing.T) {
		svc, repo := setupProfileTest(t)

		repo.EXPECT().FindByEmail(gomock.Any(), "ghost@worknest.test").
			Return(nil, profileerrors.ErrProfileNotFound)

		_, err := svc.Login(ctx, profile.LoginRequest{
			Email:    "ghost@worknest.test",
			Password: "whatever",
		})

		assert.ErrorIs(t, err, profileerrors.ErrInvalidCredentials)
	})
}

func TestProfileService_ReportingManager(t *testing.T) {
	ctx := context.Background()

	t.Run("resolves the manager profile", func(t *testing.T) {
		svc, repo := setupProfileTest(t)
		p := hashedProfile(t, "x")
		manager := &profile.Profile{
			StaffID:    2,
			FirstName:  "Alex",
			LastName:   "Tan",
			Email:      "manager@worknest.test",
			Role:       "Manager",
			Department: "IT",
		}

		repo.EXPECT().FindByID(gomock.Any(), 1).Return(p, nil)
		repo.EXPECT().FindByID(gomock.Any(), 2).Return(manager, nil)

		resp, err := svc.ReportingManager(ctx, 1)

		assert.NoError(t, err)
		assert.Equal(t, 2, resp.StaffID)
		assert.Equal(t, "manager@worknest.test", resp.Email)
	})

	t.Run("staff without a manager", func(t *testing.T) {
		svc, repo := setupProfileTest(t)
		p := hashedProfile(t, "x")
		p.ReportingManagerID = nil

		repo.EXPECT().FindByID(gomock.Any(), 1).Return(p, nil)

		_, err := svc.ReportingManager(ctx, 1)
		assert.ErrorIs(t, err, profileerrors.ErrNoReportingManager)
	})
}
