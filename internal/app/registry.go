package app

import (
	"path/filepath"

	"worknest/internal/approval"
	"worknest/internal/auditlog"
	"worknest/internal/authz/infra"
	"worknest/internal/config"
	"worknest/internal/messaging/kafka"
	"worknest/internal/middleware"
	"worknest/internal/profile"
	"worknest/internal/schedule"
	"worknest/internal/wfhrequest"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	gormDB *gorm.DB,
	rdb *redis.Client,
	cfg *config.Config,
) error {
	// --- Repositories ---
	requestRepo := wfhrequest.NewRepository(gormDB)
	auditRepo := auditlog.NewRepository(gormDB)
	scheduleRepo := schedule.NewRepository(gormDB)
	profileRepo := profile.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(gormDB)

	// --- Authorization ---
	enforcer, err := infra.NewEnforcer(
		filepath.Join("internal", "authz", "infra", "model.conf"),
		filepath.Join("internal", "authz", "infra", "policy.csv"),
	)
	if err != nil {
		return err
	}

	// --- Services ---
	profileService := profile.NewService(profileRepo, cfg.JWTSecret)
	scheduleService := schedule.NewService(scheduleRepo)
	auditService := auditlog.NewService(auditRepo, rdb)

	requestService := wfhrequest.NewService(gormDB, requestRepo, managerResolver(cfg, profileService))
	approvalService := approval.NewService(
		gormDB, requestRepo, auditRepo, auditService, outboxRepo, schedulePusher(cfg, scheduleService),
	)

	// --- Handlers ---
	profileHandler := profile.NewHandler(profileService)
	scheduleHandler := schedule.NewHandler(scheduleService)
	auditHandler := auditlog.NewHandler(auditService)
	requestHandler := wfhrequest.NewHandler(requestService)
	approvalHandler := approval.NewHandler(approvalService)

	// --- Global middleware ---
	router.Use(middleware.RequestID())
	router.Use(middleware.RateLimitByIP(rate.Limit(50), 100))

	// --- Routes ---
	profile.RegisterRoutes(router, profileHandler)
	schedule.RegisterRoutes(router, scheduleHandler)
	auditlog.RegisterRoutes(router, auditHandler)
	wfhrequest.RegisterRoutes(router, requestHandler)
	approval.RegisterRoutes(router, approvalHandler, enforcer, cfg.JWTSecret, rdb)

	return nil
}

// managerResolver picks how request submission resolves the reporting
// manager: in-process while the profile module runs in this binary, the
// HTTP client once PROFILE_BASE_URL points at a peer.
func managerResolver(cfg *config.Config, svc profile.Service) wfhrequest.ManagerResolver {
	if cfg.ProfileBaseURL != "" {
		return profile.NewClient(cfg.ProfileBaseURL, cfg.PeerTimeout)
	}
	return profile.NewLocalResolver(svc)
}

// schedulePusher is the same split for decision propagation into the
// schedule, keyed on SCHEDULE_BASE_URL.
func schedulePusher(cfg *config.Config, svc schedule.Service) schedule.Pusher {
	if cfg.ScheduleBaseURL != "" {
		return schedule.NewClient(cfg.ScheduleBaseURL, cfg.PeerTimeout)
	}
	return schedule.NewLocalPusher(svc)
}
