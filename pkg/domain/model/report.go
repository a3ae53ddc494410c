package model

import (
	"fmt"

	"github.com/sesmt-lab/psicorisk/pkg/domain/types"
)

// AllEmployeesRole is the sentinel substituted for an empty exposure set,
// meaning the risk applies to every job role rather than to none.
const AllEmployeesRole = "All employees"

// RiskReportEntry is one row of the risk exposure report
type RiskReportEntry struct {
	RiskID          types.RiskID     `json:"risk_id"`
	Title           string           `json:"title"`
	Description     string           `json:"description"`
	Roles           []string         `json:"roles"`
	YesCount        int              `json:"yes_count"`
	TotalCount      int              `json:"total_count"`
	Probability     string           `json:"probability"`
	Severity        string           `json:"severity"`
	Status          types.PlanStatus `json:"status"`
	ControlMeasures string           `json:"control_measures,omitempty"`
	Deadline        string           `json:"deadline,omitempty"`
	Responsible     string           `json:"responsible,omitempty"`
}

// RiskReport is the ordered outcome of a report run. Source distinguishes a
// report computed from recorded answers from the fixed reference dataset
// substituted when no usable data exists.
type RiskReport struct {
	Source  types.ReportSource `json:"source"`
	Entries []*RiskReportEntry `json:"entries"`
}

// IsReference reports whether the report is the placeholder dataset
func (r *RiskReport) IsReference() bool {
	return r.Source == types.ReportSourceReference
}

// FormatProbability renders the affirmative ratio as a "yes/total" string
func FormatProbability(yes, total int) string {
	return fmt.Sprintf("%d/%d", yes, total)
}

// ReferenceEntries returns the fixed illustrative dataset shown when a
// company has no evaluations, answers or resolvable questions. Empty
// reports read as broken to end users, so the product substitutes this
// list; callers must check RiskReport.Source before treating entries as
// real data.
func ReferenceEntries() []*RiskReportEntry {
	return []*RiskReportEntry{
		{
			RiskID:      "reference-work-overload",
			Title:       "Work overload",
			Description: "Sustained workload above the team's capacity",
			Roles:       []string{AllEmployeesRole},
			Probability: "0/0",
			Severity:    "Harmful",
			Status:      types.PlanStatusPending,
		},
		{
			RiskID:      "reference-role-ambiguity",
			Title:       "Role ambiguity",
			Description: "Unclear responsibilities and conflicting expectations",
			Roles:       []string{AllEmployeesRole},
			Probability: "0/0",
			Severity:    "Slightly harmful",
			Status:      types.PlanStatusPending,
		},
		{
			RiskID:      "reference-harassment",
			Title:       "Moral harassment",
			Description: "Hostile, humiliating or intimidating treatment at work",
			Roles:       []string{AllEmployeesRole},
			Probability: "0/0",
			Severity:    "Extremely harmful",
			Status:      types.PlanStatusPending,
		},
		{
			RiskID:      "reference-low-autonomy",
			Title:       "Low autonomy",
			Description: "Little influence over pace, method or order of tasks",
			Roles:       []string{AllEmployeesRole},
			Probability: "0/0",
			Severity:    "Slightly harmful",
			Status:      types.PlanStatusPending,
		},
		{
			RiskID:      "reference-poor-communication",
			Title:       "Poor communication",
			Description: "Relevant information does not reach the people affected",
			Roles:       []string{AllEmployeesRole},
			Probability: "0/0",
			Severity:    "Harmful",
			Status:      types.PlanStatusPending,
		},
		{
			RiskID:      "reference-isolation",
			Title:       "Social isolation",
			Description: "Work arrangements that prevent contact with colleagues",
			Roles:       []string{AllEmployeesRole},
			Probability: "0/0",
			Severity:    "Harmful",
			Status:      types.PlanStatusPending,
		},
	}
}

// NewReferenceReport builds the placeholder report
func NewReferenceReport() *RiskReport {
	return &RiskReport{
		Source:  types.ReportSourceReference,
		Entries: ReferenceEntries(),
	}
}
