package catalogue

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"flakerun/internal/domain"
)

func specs(names ...string) domain.Catalogue {
	cat := make(domain.Catalogue, 0, len(names))
	for _, name := range names {
		cat = append(cat, domain.TestCaseSpec{Identifier: name, RepeatCount: 1})
	}
	return cat
}

func TestFilter_FilterByName(t *testing.T) {
	filter := NewFilter()
	cat := specs(
		"testWFG.testStateMachine",
		"testWFG.testPushDataGeneratedVI8",
		"testDigitalIO.testPushDataI8",
		"testRouting.testClockSet",
		"testTrigAndClk.testClockSet",
	)

	tests := []struct {
		name     string
		pattern  string
		expected []string
	}{
		{
			name:     "empty pattern returns all",
			pattern:  "",
			expected: cat.Identifiers(),
		},
		{
			name:     "suite wildcard",
			pattern:  "testWFG.*",
			expected: []string{"testWFG.testStateMachine", "testWFG.testPushDataGeneratedVI8"},
		},
		{
			name:     "substring wildcard",
			pattern:  "*PushData*",
			expected: []string{"testWFG.testPushDataGeneratedVI8", "testDigitalIO.testPushDataI8"},
		},
		{
			name:     "ordered parts",
			pattern:  "Push*I8",
			expected: []string{"testWFG.testPushDataGeneratedVI8", "testDigitalIO.testPushDataI8"},
		},
		{
			name:     "simple contains match",
			pattern:  "ClockSet",
			expected: []string{"testRouting.testClockSet", "testTrigAndClk.testClockSet"},
		},
		{
			name:     "single character wildcard",
			pattern:  "testWFG.testPushDataGeneratedV?8",
			expected: []string{"testWFG.testPushDataGeneratedVI8"},
		},
		{
			name:     "no matches",
			pattern:  "*NonExistent*",
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := filter.FilterByName(cat, tt.pattern)
			assert.Equal(t, tt.expected, result.Identifiers())
		})
	}
}

func TestFilter_OnlyFailed(t *testing.T) {
	filter := NewFilter()
	cat := specs("A", "B", "C", "A")

	t.Run("keeps catalogue order and duplicates", func(t *testing.T) {
		result := filter.OnlyFailed(cat, []string{"C", "A"})
		assert.Equal(t, []string{"A", "C", "A"}, result.Identifiers())
	})

	t.Run("unknown identifiers are ignored", func(t *testing.T) {
		result := filter.OnlyFailed(cat, []string{"Z"})
		assert.Empty(t, result)
	})

	t.Run("empty report selects nothing", func(t *testing.T) {
		result := filter.OnlyFailed(cat, nil)
		assert.Empty(t, result)
	})
}
