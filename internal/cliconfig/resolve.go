package cliconfig

import (
	"github.com/leapstack-labs/roup/pkg/convert"
	"github.com/leapstack-labs/roup/pkg/hostlang"
	"github.com/leapstack-labs/roup/pkg/registry"
)

// Resolved holds the typed values a Config's strings decode to, plus the
// registry.Registry built from them - the one each CLI command actually
// needs to drive pkg/normalize, pkg/registry, and pkg/convert.
type Resolved struct {
	Language      hostlang.Language
	Dialect       hostlang.Dialect
	Normalization convert.NormalizationMode
	Registry      *registry.Registry
}

// Resolve decodes c's string fields and builds the Registry for the
// resulting (dialect, case-sensitivity) pair.
func (c *Config) Resolve() (Resolved, error) {
	lang, err := hostlang.ParseLanguage(c.Language)
	if err != nil {
		return Resolved{}, err
	}
	dialect, err := hostlang.ParseDialect(c.Dialect)
	if err != nil {
		return Resolved{}, err
	}
	norm, err := convert.ParseNormalizationMode(c.Normalization)
	if err != nil {
		return Resolved{}, err
	}

	caseInsensitive := c.CaseInsensitive || lang.IsFortran()
	var reg *registry.Registry
	switch dialect {
	case hostlang.OpenACC:
		reg = registry.NewOpenACCRegistry(caseInsensitive)
	default:
		reg = registry.NewOpenMPRegistry(caseInsensitive)
	}

	return Resolved{Language: lang, Dialect: dialect, Normalization: norm, Registry: reg}, nil
}

// ConvertOptions builds the pkg/convert.Options this Resolved implies.
func (r Resolved) ConvertOptions() convert.Options {
	opts := convert.DefaultOptions(r.Language)
	opts.Normalization = r.Normalization
	return opts
}
