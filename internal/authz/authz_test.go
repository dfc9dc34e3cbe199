package authz_test

import (
	"testing"

	"worknest/internal/authz"

	"github.com/stretchr/testify/assert"
)

func TestParseRole(t *testing.T) {
	cases := []struct {
		in   string
		want authz.Role
		ok   bool
	}{
		{"Staff", authz.RoleStaff, true},
		{"Manager", authz.RoleManager, true},
		{"HR", authz.RoleHR, true},
		{"TopLevel", authz.RoleTopLevel, true},
		{"1", authz.RoleHR, true},
		{"2", authz.RoleStaff, true},
		{"3", authz.RoleManager, true},
		{"4", authz.RoleTopLevel, true},
		{"", "", false},
		{"intern", "", false},
		{"9", "", false},
	}

	for _, c := range cases {
		got, ok := authz.ParseRole(c.in)
		assert.Equal(t, c.ok, ok, "input %q", c.in)
		if c.ok {
			assert.Equal(t, c.want, got, "input %q", c.in)
		}
	}
}

func TestCanWithdraw(t *testing.T) {
	request := authz.RequestFacts{
		StaffID:            1,
		Department:         "IT",
		ReportingManagerID: 2,
	}

	cases := []struct {
		name   string
		caller authz.Caller
		want   bool
	}{
		{"owner staff", authz.Caller{Role: authz.RoleStaff, StaffID: 1, Department: "IT"}, true},
		{"other staff", authz.Caller{Role: authz.RoleStaff, StaffID: 9, Department: "IT"}, false},
		{"reporting manager", authz.Caller{Role: authz.RoleManager, StaffID: 2, Department: "Ops"}, true},
		{"same department manager", authz.Caller{Role: authz.RoleManager, StaffID: 7, Department: "IT"}, true},
		{"unrelated manager", authz.Caller{Role: authz.RoleManager, StaffID: 7, Department: "Sales"}, false},
		{"hr anywhere", authz.Caller{Role: authz.RoleHR, StaffID: 50, Department: "HR"}, true},
		{"top level anywhere", authz.Caller{Role: authz.RoleTopLevel, StaffID: 60, Department: "Exec"}, true},
		{"unknown role", authz.Caller{Role: authz.Role("intern"), StaffID: 1, Department: "IT"}, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, authz.CanWithdraw(c.caller, request))
		})
	}
}

func TestCancelAndUpdateShareTheWithdrawShape(t *testing.T) {
	request := authz.RequestFacts{
		StaffID:            1,
		Department:         "IT",
		ReportingManagerID: 2,
	}

	callers := []authz.Caller{
		{Role: authz.RoleStaff, StaffID: 1, Department: "IT"},
		{Role: authz.RoleStaff, StaffID: 9, Department: "Sales"},
		{Role: authz.RoleManager, StaffID: 2, Department: "Ops"},
		{Role: authz.RoleManager, StaffID: 7, Department: "Sales"},
		{Role: authz.RoleHR, StaffID: 50, Department: "HR"},
	}

	for _, caller := range callers {
		want := authz.CanWithdraw(caller, request)
		assert.Equal(t, want, authz.CanCancel(caller, request))
		assert.Equal(t, want, authz.CanUpdate(caller, request))
	}
}
