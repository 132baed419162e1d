// Package entities contains core business entities.
package entities

// TeamRole enumerates membership roles.
type TeamRole string

const (
	// RoleMember marks a regular team member.
	RoleMember TeamRole = "MEMBER"
	// RoleTeamLead marks a team lead.
	RoleTeamLead TeamRole = "TEAM_LEAD"
)

// Team aggregates members under a name. The creator is always a member.
type Team struct {
	ID        string
	Name      string
	CreatorID string
	Members   []TeamMember
}

// TeamMember links a user to a team with a role. The (TeamID, UserID)
// pair is unique.
type TeamMember struct {
	TeamID string
	UserID string
	Role   TeamRole
}
