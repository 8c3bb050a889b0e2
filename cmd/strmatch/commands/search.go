package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/coregx/strmatch"
	"github.com/coregx/strmatch/internal/telemetry"
)

type searchOptions struct {
	engineOptions
	algorithm string
	context   int
	count     bool
}

func newSearchCmd(g *globalOptions) *cobra.Command {
	opts := &searchOptions{}

	cmd := &cobra.Command{
		Use:   "search PATTERN [FILE...]",
		Short: "Print the offset of every occurrence of PATTERN",
		Long: `Search each FILE (or standard input when none is given, or for "-")
for PATTERN and print one "name:offset" line per occurrence. Offsets are
0-based byte offsets. Occurrences may overlap.

Exits with status 1 when nothing matches.`,
		Example: `  strmatch search ABAB input.txt
  strmatch search --count --algorithm kmp needle *.log
  cat data | strmatch search --context 16 -w 8 pattern`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(cmd, g, opts, args[0], inputPaths(args[1:]))
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.algorithm, "algorithm", "a", "gsv", "Matcher: gsv, morris-pratt, mp, kmp, kmp-standard or aho-corasick")
	f.IntVarP(&opts.context, "context", "C", 0, "Print N bytes of text around each match")
	f.BoolVarP(&opts.count, "count", "c", false, "Print only the number of matches per input")
	addEngineFlags(cmd, &opts.engineOptions)
	return cmd
}

func runSearch(cmd *cobra.Command, g *globalOptions, opts *searchOptions, pattern string, paths []string) (err error) {
	if pattern == "" {
		return errors.New("empty pattern")
	}

	a, err := newApp(cmd, g, &opts.engineOptions)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, a.close(cmd.Context()))
	}()

	alg, err := strmatch.ParseAlgorithm(a.cfg.Algorithm)
	if err != nil {
		return err
	}
	m, err := a.matcher(alg, pattern)
	if err != nil {
		return err
	}

	ctx, span := telemetry.Tracer().Start(cmd.Context(), "search", trace.WithAttributes(
		attribute.String("strmatch.algorithm", alg.String()),
		attribute.Int("strmatch.pattern_len", len(pattern)),
		attribute.Int("strmatch.inputs", len(paths)),
	))
	defer span.End()

	total := 0
	for _, path := range paths {
		in, err := readInput(cmd, path)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "read input")
			return err
		}

		offsets, _ := a.find(ctx, alg, m, in)
		total += len(offsets)

		if opts.count {
			a.out.Count(in.name, len(offsets))
			continue
		}
		for _, off := range offsets {
			if a.cfg.Context > 0 {
				a.out.MatchContext(in.name, off, len(pattern), a.cfg.Context, in.data)
			} else {
				a.out.Match(in.name, off)
			}
		}
	}

	span.SetAttributes(attribute.Int("strmatch.matches", total))
	a.logger.Info("search complete",
		"algorithm", alg.String(),
		"inputs", len(paths),
		"matches", total,
	)

	if total == 0 {
		return fmt.Errorf("%w for %q", ErrNoMatches, pattern)
	}
	return nil
}
