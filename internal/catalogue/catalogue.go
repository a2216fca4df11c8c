package catalogue

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"flakerun/internal/domain"
)

var (
	// ErrInvalidCase is returned for entries without a name or with a non-positive repeat count
	ErrInvalidCase = errors.New("invalid catalogue entry")
	// ErrUnknownTier is returned when an entry references a tier that is not defined
	ErrUnknownTier = errors.New("unknown tier")
)

// DefaultTiers are available to every catalogue file. A file may redefine them.
var DefaultTiers = map[string]int{
	"slow":   SlowRepeat,
	"fast":   FastRepeat,
	"single": SingleRepeat,
}

// file is the on-disk YAML layout
type file struct {
	Tiers map[string]int `yaml:"tiers,omitempty"`
	Cases []fileCase     `yaml:"cases"`
}

type fileCase struct {
	Name   string `yaml:"name"`
	Tier   string `yaml:"tier,omitempty"`
	Repeat int    `yaml:"repeat,omitempty"`
}

// Resolve returns the catalogue stored at path, or the built-in one when path is empty
func Resolve(path string) (domain.Catalogue, error) {
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}

// Load reads a YAML catalogue file
func Load(path string) (domain.Catalogue, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalogue: %w", err)
	}
	cat, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cat, nil
}

// Parse decodes a YAML catalogue. An explicit repeat wins over the tier.
func Parse(data []byte) (domain.Catalogue, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse catalogue: %w", err)
	}

	tiers := make(map[string]int, len(DefaultTiers)+len(f.Tiers))
	for name, repeat := range DefaultTiers {
		tiers[name] = repeat
	}
	for name, repeat := range f.Tiers {
		if repeat <= 0 {
			return nil, fmt.Errorf("tier %q: repeat must be positive, got %d: %w", name, repeat, ErrInvalidCase)
		}
		tiers[name] = repeat
	}

	cat := make(domain.Catalogue, 0, len(f.Cases))
	for i, c := range f.Cases {
		repeat := c.Repeat
		if repeat == 0 {
			if c.Tier == "" {
				return nil, fmt.Errorf("case %d (%q): no repeat or tier: %w", i+1, c.Name, ErrInvalidCase)
			}
			r, ok := tiers[c.Tier]
			if !ok {
				return nil, fmt.Errorf("case %d (%q): %w %q", i+1, c.Name, ErrUnknownTier, c.Tier)
			}
			repeat = r
		}
		cat = append(cat, domain.TestCaseSpec{Identifier: c.Name, RepeatCount: repeat})
	}

	if err := Validate(cat); err != nil {
		return nil, err
	}
	return cat, nil
}

// Validate checks every entry has an identifier and a positive repeat count.
// Duplicate identifiers are allowed.
func Validate(cat domain.Catalogue) error {
	for i, spec := range cat {
		if spec.Identifier == "" {
			return fmt.Errorf("case %d: empty name: %w", i+1, ErrInvalidCase)
		}
		if spec.RepeatCount <= 0 {
			return fmt.Errorf("case %d (%q): repeat must be positive, got %d: %w", i+1, spec.Identifier, spec.RepeatCount, ErrInvalidCase)
		}
	}
	return nil
}

// Marshal encodes a catalogue in the file layout accepted by Parse
func Marshal(cat domain.Catalogue) ([]byte, error) {
	f := file{Cases: make([]fileCase, 0, len(cat))}
	for _, spec := range cat {
		f.Cases = append(f.Cases, fileCase{Name: spec.Identifier, Repeat: spec.RepeatCount})
	}
	data, err := yaml.Marshal(&f)
	if err != nil {
		return nil, fmt.Errorf("marshal catalogue: %w", err)
	}
	return data, nil
}
