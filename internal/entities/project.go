// Package entities contains core business entities.
package entities

// Project groups tasks under a creator. TeamID is nil for solo projects;
// once a team is attached the project never reverts to solo mode.
type Project struct {
	ID          string
	Name        string
	Description string
	CreatorID   string
	TeamID      *string
}

// TeamMode reports whether team members may participate in the project.
func (p Project) TeamMode() bool {
	return p.TeamID != nil && *p.TeamID != ""
}
