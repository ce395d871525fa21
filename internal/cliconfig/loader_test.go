package cliconfig_test

import (
	"testing"

	"github.com/leapstack-labs/roup/internal/cliconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cliconfig.ResetConfig()
	cfg, err := cliconfig.Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, cliconfig.DefaultLanguage, cfg.Language)
	assert.Equal(t, cliconfig.DefaultDialect, cfg.Dialect)
	assert.Equal(t, cliconfig.DefaultNormalization, cfg.Normalization)
	assert.False(t, cfg.CaseInsensitive)
}

func TestResolve_DefaultsToOpenMPRegistry(t *testing.T) {
	cfg := &cliconfig.Config{
		Language:      "c",
		Dialect:       "omp",
		Normalization: "parser_parity",
	}
	resolved, err := cfg.Resolve()
	require.NoError(t, err)
	require.NotNil(t, resolved.Registry)
}

func TestResolve_FortranForcesCaseInsensitive(t *testing.T) {
	cfg := &cliconfig.Config{
		Language:      "fortran-free",
		Dialect:       "acc",
		Normalization: "disabled",
	}
	resolved, err := cfg.Resolve()
	require.NoError(t, err)
	assert.True(t, resolved.Language.IsFortran())
	require.NotNil(t, resolved.Registry)
	name, _, _ := resolved.Registry.RecognizeDirective("PARALLEL LOOP")
	assert.Equal(t, "parallel loop", name.String())
}

func TestResolve_UnknownDialectErrors(t *testing.T) {
	cfg := &cliconfig.Config{Language: "c", Dialect: "nope", Normalization: "disabled"}
	_, err := cfg.Resolve()
	assert.Error(t, err)
}
