// Command roup_debug traces one directive through every pipeline stage:
// normalization, directive-name recognition, clause-sequence parsing, and
// typed-IR lifting.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/leapstack-labs/roup/internal/cliutil"
	"github.com/leapstack-labs/roup/pkg/convert"
	"github.com/leapstack-labs/roup/pkg/hostlang"
	"github.com/leapstack-labs/roup/pkg/normalize"
	"github.com/leapstack-labs/roup/pkg/registry"
	"github.com/leapstack-labs/roup/pkg/validate"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		ompFlag           bool
		accFlag           bool
		nonInteractive    bool
		outputFormat      string
	)

	cmd := &cobra.Command{
		Use:   "roup_debug [INPUT | -]",
		Short: "Trace a single OpenMP/OpenACC directive through the parsing pipeline",
		Args:  cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if ompFlag && accFlag {
				return fmt.Errorf("--omp and --acc are mutually exclusive")
			}

			raw, err := readInput(cmd, args, nonInteractive)
			if err != nil {
				return err
			}

			var forced *hostlang.Dialect
			switch {
			case ompFlag:
				d := hostlang.OpenMP
				forced = &d
			case accFlag:
				d := hostlang.OpenACC
				forced = &d
			}

			return trace(cmd.OutOrStdout(), raw, forced, outputFormat)
		},
	}

	cmd.Flags().BoolVar(&ompFlag, "omp", false, "use OpenMP when the sentinel names no dialect")
	cmd.Flags().BoolVar(&accFlag, "acc", false, "use OpenACC when the sentinel names no dialect")
	cmd.Flags().BoolVar(&nonInteractive, "non-interactive", false, "skip the stdin prompt")
	cmd.Flags().StringVarP(&outputFormat, "output", "o", "text", "output format (text|json)")

	return cmd
}

func readInput(cmd *cobra.Command, args []string, nonInteractive bool) (string, error) {
	if len(args) == 1 && args[0] != "-" {
		return args[0], nil
	}
	if !nonInteractive {
		fmt.Fprintln(cmd.ErrOrStderr(), "Enter one directive (Ctrl-D to end):")
	}
	data, err := io.ReadAll(bufio.NewReader(cmd.InOrStdin()))
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return strings.TrimRight(string(data), "\n"), nil
}

func trace(w io.Writer, raw string, forced *hostlang.Dialect, format string) error {
	var steps []cliutil.Step

	lang, dialect, err := detectSentinel(raw, forced)
	if err != nil {
		return err
	}
	steps = append(steps, cliutil.Step{Stage: "detect", Detail: fmt.Sprintf("language=%s dialect=%s", lang, dialect)})

	n := normalize.New(lang, dialect)
	normalized, err := n.Normalize(raw)
	if err != nil {
		return err
	}
	steps = append(steps, cliutil.Step{Stage: "normalize", Detail: normalized})

	var reg *registry.Registry
	if dialect == hostlang.OpenACC {
		reg = registry.NewOpenACCRegistry(lang.IsFortran())
	} else {
		reg = registry.NewOpenMPRegistry(lang.IsFortran())
	}

	name, rule, rest := reg.RecognizeDirective(normalized)
	steps = append(steps, cliutil.Step{Stage: "recognize directive",
		Detail: fmt.Sprintf("name=%s kind=%s remaining=%q", name, rule.Kind, rest)})

	cd, err := reg.ParseDirective(normalized, lang)
	if err != nil {
		return err
	}
	for _, c := range cd.Clauses {
		steps = append(steps, cliutil.Step{Stage: "clause", Detail: clauseTrace(c)})
	}

	out, err := convert.ConvertDirective(cd, convert.DefaultOptions(lang))
	if err != nil {
		steps = append(steps, cliutil.Step{Stage: "convert", Detail: "error: " + err.Error()})
		if rerr := cliutil.RenderSteps(w, format, steps); rerr != nil {
			return rerr
		}
		return err
	}
	steps = append(steps, cliutil.Step{Stage: "convert", Detail: fmt.Sprintf("kind=%s name=%q clauses=%d", out.Kind(), out.Name(), len(out.Clauses()))})

	if verrs := validate.Directive(out); len(verrs) > 0 {
		msgs := make([]string, len(verrs))
		for i, ve := range verrs {
			msgs[i] = ve.Error()
		}
		steps = append(steps, cliutil.Step{Stage: "validate", Detail: strings.Join(msgs, "; ")})
	} else {
		steps = append(steps, cliutil.Step{Stage: "validate", Detail: "ok"})
	}

	return cliutil.RenderSteps(w, format, steps)
}
