package domain

// TestCaseSpec is one schedulable catalogue entry
type TestCaseSpec struct {
	Identifier  string `yaml:"name"`   // gtest filter expression, e.g. "Suite.Case"
	RepeatCount int    `yaml:"repeat"` // Consecutive repetitions requested in one invocation
}

// Catalogue is the ordered list of test cases a campaign runs.
// Order defines execution order and report order.
type Catalogue []TestCaseSpec

// Identifiers returns the identifiers of the catalogue in order
func (c Catalogue) Identifiers() []string {
	ids := make([]string, 0, len(c))
	for _, spec := range c {
		ids = append(ids, spec.Identifier)
	}
	return ids
}

// Lookup returns the first entry with the given identifier
func (c Catalogue) Lookup(identifier string) (TestCaseSpec, bool) {
	for _, spec := range c {
		if spec.Identifier == identifier {
			return spec, true
		}
	}
	return TestCaseSpec{}, false
}
