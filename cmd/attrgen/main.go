package main

import (
	"bytes"
	"context"
	"os"

	"github.com/spf13/cobra"
	"github.com/walteh/svgattrs/cmd/attrgen/generator"
	"gitlab.com/tozd/go/errors"
)

func main() {
	if err := run(); err != nil {
		println(err.Error())
		os.Exit(1)
	}
}

type Handler struct {
	outGo       string
	outManifest string
	check       bool
}

func run() error {
	me := &Handler{}

	rootCmd := &cobra.Command{
		Use:   "attrgen",
		Short: "regenerate every surface derived from the SVG attribute vocabulary",
	}

	rootCmd.Flags().StringVar(&me.outGo, "out-go", "pkg/attribute/attribute.gen.go", "path of the generated Go enum")
	rootCmd.Flags().StringVar(&me.outManifest, "out-manifest", "gen/attributes/attributes.json", "path of the generated JSON manifest")
	rootCmd.Flags().BoolVar(&me.check, "check", false, "verify the files on disk match the vocabulary instead of writing")

	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return me.Run(cmd.Context())
	}

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		return errors.Errorf("failed to execute command: %w", err)
	}

	return nil
}

func (me *Handler) Run(ctx context.Context) error {
	if err := generator.Validate(); err != nil {
		return errors.Errorf("vocabulary is invalid: %w", err)
	}

	goSrc, err := generator.RenderGo()
	if err != nil {
		return err
	}

	manifest, err := generator.RenderManifest()
	if err != nil {
		return err
	}

	outputs := []struct {
		path string
		data []byte
	}{
		{me.outGo, goSrc},
		{me.outManifest, manifest},
	}

	for _, out := range outputs {
		if me.check {
			existing, err := os.ReadFile(out.path)
			if err != nil {
				return errors.Errorf("reading %s: %w", out.path, err)
			}
			if !bytes.Equal(existing, out.data) {
				return errors.Errorf("%s is stale, rerun attrgen", out.path)
			}
			continue
		}

		if err := os.WriteFile(out.path, out.data, 0o644); err != nil {
			return errors.Errorf("writing %s: %w", out.path, err)
		}
	}

	return nil
}
