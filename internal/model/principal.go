package model

import "time"

const (
	RoleHR        = "HR"
	RoleCandidate = "CANDIDATE"
	RoleEmployee  = "EMPLOYEE"
)

// Principal is the authenticated caller as described by its access token.
type Principal struct {
	NetID     string
	Roles     []string
	ExpiresAt time.Time
}

func (p Principal) HasRole(role string) bool {
	for _, r := range p.Roles {
		if r == role {
			return true
		}
	}
	return false
}

func (p Principal) IsHR() bool {
	return p.HasRole(RoleHR)
}

func (p Principal) IsCandidate() bool {
	return p.HasRole(RoleCandidate)
}
