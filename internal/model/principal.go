package model

import "github.com/google/uuid"

type Role string

const (
	RoleAdmin      Role = "ADMIN"
	RoleSupervisor Role = "SUPERVISOR"
	RoleViewer     Role = "VIEWER"
)

// Principal is the authenticated caller. Projects lists the mine-site
// codes the caller may query; empty with RoleAdmin means all sites.
type Principal struct {
	UserID   uuid.UUID
	Role     Role
	Projects []string
}

func (p Principal) AllowsProject(code string) bool {
	if p.Role == RoleAdmin {
		return true
	}
	for _, c := range p.Projects {
		if c == code {
			return true
		}
	}
	return false
}
