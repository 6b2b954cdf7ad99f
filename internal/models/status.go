package models

// ProjectStatus tracks where a project is in its lifecycle.
// Any transition between statuses is allowed.
type ProjectStatus string

const (
	StatusPlanning  ProjectStatus = "PLANNING"
	StatusActive    ProjectStatus = "ACTIVE"
	StatusOnHold    ProjectStatus = "ON_HOLD"
	StatusCompleted ProjectStatus = "COMPLETED"
	StatusArchived  ProjectStatus = "ARCHIVED"
)

// ParseProjectStatus maps a raw string onto a known status.
func ParseProjectStatus(s string) (ProjectStatus, bool) {
	switch ProjectStatus(s) {
	case StatusPlanning, StatusActive, StatusOnHold, StatusCompleted, StatusArchived:
		return ProjectStatus(s), true
	}
	return "", false
}
