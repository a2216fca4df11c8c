package domain

// FailureReport collects the identifiers of failed test cases in the order they failed
type FailureReport struct {
	Identifiers []string
}

// NewFailureReport creates an empty report
func NewFailureReport() *FailureReport {
	return &FailureReport{Identifiers: make([]string, 0)}
}

// Add records a failed identifier. Duplicates are kept.
func (r *FailureReport) Add(identifier string) {
	r.Identifiers = append(r.Identifiers, identifier)
}

// Len returns the number of recorded failures
func (r *FailureReport) Len() int {
	return len(r.Identifiers)
}

// Empty reports whether no failure was recorded
func (r *FailureReport) Empty() bool {
	return len(r.Identifiers) == 0
}
