package catalogue

import (
	"path/filepath"
	"strings"

	"flakerun/internal/domain"
)

// Filter selects catalogue entries by identifier
type Filter struct{}

// NewFilter creates a new Filter
func NewFilter() *Filter {
	return &Filter{}
}

// FilterByName keeps entries whose identifier matches pattern, in catalogue order.
// Supports wildcards like "testWFG.*" or "*PushData*"; a pattern without
// wildcards is a substring match.
func (f *Filter) FilterByName(cat domain.Catalogue, pattern string) domain.Catalogue {
	if pattern == "" {
		return cat
	}

	filtered := make(domain.Catalogue, 0)
	for _, spec := range cat {
		if matchName(spec.Identifier, pattern) {
			filtered = append(filtered, spec)
		}
	}
	return filtered
}

// OnlyFailed keeps entries whose identifier is listed in failed, in catalogue order
func (f *Filter) OnlyFailed(cat domain.Catalogue, failed []string) domain.Catalogue {
	set := make(map[string]struct{}, len(failed))
	for _, id := range failed {
		set[id] = struct{}{}
	}

	filtered := make(domain.Catalogue, 0, len(failed))
	for _, spec := range cat {
		if _, ok := set[spec.Identifier]; ok {
			filtered = append(filtered, spec)
		}
	}
	return filtered
}

func matchName(name, pattern string) bool {
	if !strings.ContainsAny(pattern, "*?") {
		return strings.Contains(name, pattern)
	}

	// filepath.Match treats '.' as an ordinary character, which suits Suite.Case names
	if matched, err := filepath.Match(pattern, name); err == nil && matched {
		return true
	}

	// Ordered substring match for patterns like "*Push*VI8*"
	rest := name
	hasPart := false
	for _, part := range strings.Split(pattern, "*") {
		if part == "" {
			continue
		}
		if strings.Contains(part, "?") {
			return false
		}
		idx := strings.Index(rest, part)
		if idx < 0 {
			return false
		}
		rest = rest[idx+len(part):]
		hasPart = true
	}
	return hasPart
}
