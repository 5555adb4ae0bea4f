package auth

import "strings"

// Role names are stored and compared case-insensitively.
const (
	RoleOwner      = "owner"
	RoleManager    = "manager"
	RoleHR         = "hr"
	RoleTeamLeader = "team leader"
	RoleEmployee   = "employee"
)

// reportingChain is the default next-level approver per role. Manager sits
// at the top of the storable hierarchy; owner is synthetic and outside it.
var reportingChain = map[string]string{
	RoleEmployee:   RoleTeamLeader,
	RoleTeamLeader: RoleHR,
	RoleHR:         RoleManager,
}

func NormalizeRole(role string) string {
	return strings.ToLower(strings.TrimSpace(role))
}

func IsValidRole(role string) bool {
	switch NormalizeRole(role) {
	case RoleOwner, RoleManager, RoleHR, RoleTeamLeader, RoleEmployee:
		return true
	}
	return false
}

// NextApprover returns the reporting-hierarchy role directly above the given
// one. ok is false for manager (top of the chain) and unknown roles.
func NextApprover(role string) (string, bool) {
	next, ok := reportingChain[NormalizeRole(role)]
	return next, ok
}
