package types

import "fmt"

// PlanStatus represents the progress of a mitigation plan
type PlanStatus string

const (
	PlanStatusPending    PlanStatus = "pending"
	PlanStatusInProgress PlanStatus = "in_progress"
	PlanStatusConcluded  PlanStatus = "concluded"
)

// AllPlanStatuses returns all valid plan statuses
func AllPlanStatuses() []PlanStatus {
	return []PlanStatus{
		PlanStatusPending,
		PlanStatusInProgress,
		PlanStatusConcluded,
	}
}

// IsValid checks if the plan status is valid
func (s PlanStatus) IsValid() bool {
	switch s {
	case PlanStatusPending,
		PlanStatusInProgress,
		PlanStatusConcluded:
		return true
	default:
		return false
	}
}

// Normalize returns the status, treating empty as PlanStatusPending.
func (s PlanStatus) Normalize() PlanStatus {
	if s == "" {
		return PlanStatusPending
	}
	return s
}

// String returns the string representation of the plan status
func (s PlanStatus) String() string {
	return string(s)
}

// ParsePlanStatus parses a string into a PlanStatus
func ParsePlanStatus(s string) (PlanStatus, error) {
	status := PlanStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid plan status: %s", s)
	}
	return status, nil
}
