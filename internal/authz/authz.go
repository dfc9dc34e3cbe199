// Package authz is the single authorization point for every mutating
// request operation. Decisions are pure functions of the caller and the
// request row, so withdraw, cancel and update cannot drift apart.
package authz

// Caller identifies who is acting, taken from the auth context headers.
type Caller struct {
	Role       Role
	StaffID    int
	Department string
}

// RequestFacts is the slice of a WFH request that authorization looks at.
type RequestFacts struct {
	StaffID            int
	Department         string
	ReportingManagerID int
}

// owns reports whether the caller submitted the request.
func owns(c Caller, r RequestFacts) bool {
	return c.StaffID == r.StaffID
}

// manages reports whether the caller approves for the request or shares
// its department.
func manages(c Caller, r RequestFacts) bool {
	return c.StaffID == r.ReportingManagerID || c.Department == r.Department
}

// CanWithdraw: requesters may withdraw their own request, managers any
// request they approve for or in their department, HR and above any.
func CanWithdraw(c Caller, r RequestFacts) bool {
	switch c.Role {
	case RoleStaff:
		return owns(c, r)
	case RoleManager:
		return manages(c, r)
	case RoleHR, RoleTopLevel:
		return true
	}
	return false
}

// CanCancel shares the withdraw shape; state rules (Pending or Approved)
// are the orchestrator's concern, not authorization's.
func CanCancel(c Caller, r RequestFacts) bool {
	return CanWithdraw(c, r)
}

// CanUpdate: the owning staff member, their manager, or HR and above.
func CanUpdate(c Caller, r RequestFacts) bool {
	switch c.Role {
	case RoleStaff:
		return owns(c, r)
	case RoleManager:
		return manages(c, r)
	case RoleHR, RoleTopLevel:
		return true
	}
	return false
}
