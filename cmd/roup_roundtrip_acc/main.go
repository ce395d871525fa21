// Command roup_roundtrip_acc reads one OpenACC directive from stdin,
// parses it, re-renders it, re-parses the rendering, and verifies
// structural equality before printing the canonical form.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"reflect"
	"strings"

	"github.com/leapstack-labs/roup/pkg/convert"
	"github.com/leapstack-labs/roup/pkg/hostlang"
	"github.com/leapstack-labs/roup/pkg/ir"
	"github.com/leapstack-labs/roup/pkg/normalize"
	"github.com/leapstack-labs/roup/pkg/registry"
	"github.com/leapstack-labs/roup/pkg/render"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var langFlag string

	cmd := &cobra.Command{
		Use:           "roup_roundtrip_acc",
		Short:         "Round-trip one OpenACC directive through parse/render/re-parse and verify equality",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			lang, err := hostlang.ParseLanguage(langFlag)
			if err != nil {
				return err
			}
			data, err := io.ReadAll(bufio.NewReader(cmd.InOrStdin()))
			if err != nil {
				return fmt.Errorf("reading stdin: %w", err)
			}
			raw := strings.TrimRight(string(data), "\n")

			canonical, err := roundtrip(raw, lang)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), canonical)
			return nil
		},
	}

	cmd.Flags().StringVar(&langFlag, "lang", "", "host language: c, fortran-free, or fortran-fixed")
	_ = cmd.MarkFlagRequired("lang")

	return cmd
}

// roundtrip parses raw once, renders it, parses that rendering again, and
// compares the two typed IRs field-for-field. It returns the canonical rendering on success.
func roundtrip(raw string, lang hostlang.Language) (string, error) {
	caseInsensitive := lang.IsFortran()
	reg := registry.NewOpenACCRegistry(caseInsensitive)

	first, err := parseOnce(raw, lang, reg)
	if err != nil {
		return "", fmt.Errorf("first parse: %w", err)
	}

	rendered := render.Directive(first, hostlang.OpenACC)

	second, err := parseOnce(rendered, lang, reg)
	if err != nil {
		return "", fmt.Errorf("re-parsing rendered form %q: %w", rendered, err)
	}

	if !structurallyEqual(first, second) {
		return "", fmt.Errorf("round-trip mismatch: parsed %+v, re-parsed %+v", first, second)
	}

	return rendered, nil
}

func parseOnce(raw string, lang hostlang.Language, reg *registry.Registry) (ir.DirectiveIR, error) {
	n := normalize.New(lang, hostlang.OpenACC)
	normalized, err := n.Normalize(raw)
	if err != nil {
		return ir.DirectiveIR{}, err
	}
	cd, err := reg.ParseDirective(normalized, lang)
	if err != nil {
		return ir.DirectiveIR{}, err
	}
	return convert.ConvertDirective(cd, convert.DefaultOptions(lang))
}

// structurallyEqual compares kind, name, and clauses - the directive's
// semantic content - ignoring source Location, which legitimately differs
// between the original input and its re-rendered text.
func structurallyEqual(a, b ir.DirectiveIR) bool {
	return a.Kind() == b.Kind() && a.Name() == b.Name() && reflect.DeepEqual(a.Clauses(), b.Clauses())
}
