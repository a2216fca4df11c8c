package cli

import "flakerun/internal/config"

// Flags holds command-line flags
type Flags struct {
	Executable string
	Report     string
	Catalogue  string
	NameFilter string
	OnlyFailed bool
	Quiet      bool
	Strict     bool
	YAML       bool
}

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		Executable: f.Executable,
		Report:     f.Report,
		Catalogue:  f.Catalogue,
		NameFilter: f.NameFilter,
		OnlyFailed: f.OnlyFailed,
		Quiet:      f.Quiet,
		Strict:     f.Strict,
		YAML:       f.YAML,
	}
}
