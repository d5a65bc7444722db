package scan

import (
	"context"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/hashicorp/go-multierror"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/walteh/svgattrs/pkg/document"
	"gitlab.com/tozd/go/errors"
)

type Handler struct {
	debug bool

	fsys afero.Fs
	out  io.Writer
}

func NewScanCommand() *cobra.Command {
	me := &Handler{
		fsys: afero.NewOsFs(),
	}

	cmd := &cobra.Command{
		Use:   "scan <pattern>...",
		Short: "parse SVG files and report attribute usage",
		Long:  "Parse every SVG file matching the given glob patterns (doublestar syntax, relative paths) and report how many attributes were recognized, plus the spellings that were not.",
		Args:  cobra.MinimumNArgs(1),
	}

	cmd.Flags().BoolVar(&me.debug, "debug", false, "enable debug logging")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		me.out = cmd.OutOrStdout()
		return me.Run(cmd.Context(), args)
	}

	return cmd
}

func (me *Handler) Run(ctx context.Context, patterns []string) error {
	level := zerolog.InfoLevel
	if me.debug {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(os.Stderr).Level(level).With().
		Str("component", "scan").
		Timestamp().
		Logger()
	ctx = logger.WithContext(ctx)

	paths, err := me.expand(patterns)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		return errors.New("no files matched")
	}

	total := document.Stats{UnknownNames: make(map[string]int)}

	var failures *multierror.Error
	for _, path := range paths {
		stats, err := me.scanFile(ctx, path)
		if err != nil {
			logger.Error().Err(err).Str("path", path).Msg("skipping file")
			failures = multierror.Append(failures, errors.Errorf("%s: %w", path, err))
			continue
		}

		fmt.Fprintf(me.out, "%s: %d elements, %d attributes recognized, %d unrecognized\n",
			path, stats.Elements, stats.Recognized, stats.Unrecognized)

		total.Elements += stats.Elements
		total.Recognized += stats.Recognized
		total.Unrecognized += stats.Unrecognized
		for name, n := range stats.UnknownNames {
			total.UnknownNames[name] += n
		}
	}

	if len(paths) > 1 {
		fmt.Fprintf(me.out, "total: %d elements, %d attributes recognized, %d unrecognized\n",
			total.Elements, total.Recognized, total.Unrecognized)
	}

	if len(total.UnknownNames) > 0 {
		names := make([]string, 0, len(total.UnknownNames))
		for name := range total.UnknownNames {
			names = append(names, name)
		}
		sort.Strings(names)

		fmt.Fprintln(me.out, "unrecognized attribute names:")
		for _, name := range names {
			fmt.Fprintf(me.out, "  %s (%d)\n", name, total.UnknownNames[name])
		}
	}

	return failures.ErrorOrNil()
}

// expand resolves the glob patterns against the filesystem. Patterns
// with no matches are not an error on their own; an empty overall
// result is.
func (me *Handler) expand(patterns []string) ([]string, error) {
	fsys := afero.NewIOFS(me.fsys)

	var paths []string
	seen := make(map[string]bool)
	for _, pattern := range patterns {
		matches, err := doublestar.Glob(fsys, pattern)
		if err != nil {
			return nil, errors.Errorf("bad pattern %q: %w", pattern, err)
		}
		for _, m := range matches {
			if !seen[m] {
				seen[m] = true
				paths = append(paths, m)
			}
		}
	}

	sort.Strings(paths)
	return paths, nil
}

func (me *Handler) scanFile(ctx context.Context, path string) (document.Stats, error) {
	f, err := me.fsys.Open(path)
	if err != nil {
		return document.Stats{}, errors.Errorf("opening file: %w", err)
	}
	defer f.Close()

	doc, err := document.Parse(ctx, f)
	if err != nil {
		return document.Stats{}, errors.Errorf("parsing document: %w", err)
	}

	return doc.Stats, nil
}
