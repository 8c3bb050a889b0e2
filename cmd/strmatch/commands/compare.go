package commands

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/coregx/strmatch"
	"github.com/coregx/strmatch/internal/telemetry"
)

func newCompareCmd(g *globalOptions) *cobra.Command {
	opts := &engineOptions{}

	cmd := &cobra.Command{
		Use:   "compare PATTERN [FILE...]",
		Short: "Run every algorithm and check that they agree",
		Long: `Search each input with every available algorithm, print the number of
matches and the time each took, and exit non-zero if any algorithm's
offsets differ from GSV's.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompare(cmd, g, opts, args[0], inputPaths(args[1:]))
		},
	}
	addEngineFlags(cmd, opts)
	return cmd
}

func runCompare(cmd *cobra.Command, g *globalOptions, opts *engineOptions, pattern string, paths []string) (err error) {
	if pattern == "" {
		return errors.New("empty pattern")
	}

	a, err := newApp(cmd, g, opts)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, a.close(cmd.Context()))
	}()

	algs := strmatch.Algorithms()
	matchers := make([]strmatch.Matcher, len(algs))
	for i, alg := range algs {
		if matchers[i], err = a.matcher(alg, pattern); err != nil {
			return fmt.Errorf("%s: %w", alg, err)
		}
	}

	ctx, span := telemetry.Tracer().Start(cmd.Context(), "compare", trace.WithAttributes(
		attribute.Int("strmatch.pattern_len", len(pattern)),
		attribute.Int("strmatch.inputs", len(paths)),
	))
	defer span.End()

	var disagree []string
	for _, path := range paths {
		in, err := readInput(cmd, path)
		if err != nil {
			span.RecordError(err)
			return err
		}

		a.out.Header(fmt.Sprintf("%s (%d bytes)", in.name, len(in.data)))
		var want []int
		for i, alg := range algs {
			got, elapsed := a.find(ctx, alg, matchers[i], in)
			if i == 0 {
				want = got
			}
			agrees := slices.Equal(got, want)
			a.out.Result(alg.String(), len(got), elapsed, agrees)
			if !agrees && !slices.Contains(disagree, alg.String()) {
				disagree = append(disagree, alg.String())
				a.logger.Warn("algorithm disagrees with gsv",
					"algorithm", alg.String(),
					"input", in.name,
					"got", len(got),
					"want", len(want),
				)
			}
		}
	}

	if len(disagree) > 0 {
		return fmt.Errorf("%w: %s", ErrDisagreement, strings.Join(disagree, ", "))
	}
	return nil
}
