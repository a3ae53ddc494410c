package types

// ReportSource tags a risk report as computed from real answers or
// substituted from the fixed reference dataset.
type ReportSource string

const (
	// ReportSourceComputed marks a report aggregated from recorded answers
	ReportSourceComputed ReportSource = "computed"

	// ReportSourceReference marks the placeholder dataset returned when the
	// company has no usable answer data
	ReportSourceReference ReportSource = "reference"
)

// IsValid checks if the report source is valid
func (s ReportSource) IsValid() bool {
	switch s {
	case ReportSourceComputed, ReportSourceReference:
		return true
	default:
		return false
	}
}

// String returns the string representation of the report source
func (s ReportSource) String() string {
	return string(s)
}
