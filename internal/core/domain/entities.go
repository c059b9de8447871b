package domain

import "fmt"

// Role represents user role in the system
type Role string

const (
	RoleStudent Role = "student"
	RoleLeader  Role = "leader"
	RoleAdmin   Role = "admin"
)

// ParseRole converts a stored role string into a Role
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleStudent, RoleLeader, RoleAdmin:
		return Role(s), nil
	}
	return "", fmt.Errorf("unknown role %q", s)
}

// Verdict is the result of an authorization check
type Verdict struct {
	Allowed bool
	Reason  string
}

// Authorize checks whether role is in the allowed set.
// Roles are a closed enumeration; there is no wildcard.
func Authorize(role Role, allowed ...Role) Verdict {
	for _, a := range allowed {
		if role == a {
			return Verdict{Allowed: true}
		}
	}
	return Verdict{Allowed: false, Reason: fmt.Sprintf("role %q is not permitted", role)}
}

// Club status
const (
	ClubStatusPending  = "pending"
	ClubStatusApproved = "approved"
)

// Membership role within a club
const (
	MembershipRoleMember = "member"
	MembershipRoleLeader = "leader"
)

// Membership status (absent → pending → approved/denied; terminal)
const (
	MembershipStatusPending  = "pending"
	MembershipStatusApproved = "approved"
	MembershipStatusDenied   = "denied"
)

// Membership decision values accepted on the wire
const (
	DecisionApprove = "approve"
	DecisionDeny    = "deny"
)

// Registration status
const (
	RegistrationStatusRegistered = "registered"
	RegistrationStatusCancelled  = "cancelled"
)
