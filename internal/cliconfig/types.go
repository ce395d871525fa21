// Package cliconfig loads shared configuration for the roup command-line
// tools (pkg/registry's dialect/language selection, normalization mode, and
// default output format): koanf, layered defaults -> file -> env -> flags.
package cliconfig

// Config holds the options every roup CLI needs before it can build a
// normalize.Normalizer and registry.Registry.
type Config struct {
	// Language selects the host-language normalizer: c, c++, fortran-free,
	// fortran-fixed (hostlang.ParseLanguage).
	Language string `koanf:"language"`
	// Dialect selects the directive/clause registry: omp or acc
	// (hostlang.ParseDialect).
	Dialect string `koanf:"dialect"`
	// CaseInsensitive forces Fortran-style case-insensitive directive and
	// clause recognition regardless of Language.
	CaseInsensitive bool `koanf:"case_insensitive"`
	// Normalization selects pkg/convert's clause-merging behavior: disabled,
	// merge_variable_lists, or parser_parity (convert.NormalizationMode).
	Normalization string `koanf:"normalization"`
	// OutputFormat selects the CLI's rendering: text or json.
	OutputFormat string `koanf:"output"`
	// Verbose enables debug-level logging.
	Verbose bool `koanf:"verbose"`
}

// Default configuration values.
const (
	DefaultLanguage      = "c"
	DefaultDialect       = "omp"
	DefaultNormalization = "parser_parity"
	DefaultOutput        = "text"
)
