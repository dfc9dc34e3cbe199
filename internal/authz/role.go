package authz

import "strconv"

// Role is the caller's position in the org. The legacy frontend sends the
// numeric codes the original services used (1=HR, 2=Staff, 3=Manager,
// 4=TopLevel), newer callers send the name.
type Role string

const (
	RoleStaff    Role = "Staff"
	RoleManager  Role = "Manager"
	RoleHR       Role = "HR"
	RoleTopLevel Role = "TopLevel"
)

var legacyRoleCodes = map[int]Role{
	1: RoleHR,
	2: RoleStaff,
	3: RoleManager,
	4: RoleTopLevel,
}

// ParseRole accepts a role name or a legacy numeric code.
func ParseRole(v string) (Role, bool) {
	switch Role(v) {
	case RoleStaff, RoleManager, RoleHR, RoleTopLevel:
		return Role(v), true
	}
	if code, err := strconv.Atoi(v); err == nil {
		if r, ok := legacyRoleCodes[code]; ok {
			return r, true
		}
	}
	return "", false
}

func (r Role) String() string { return string(r) }
