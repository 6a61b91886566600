package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"maps"
	"net/http"
	"os"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/osse101/GlobePalette_Go/internal/bootstrap"
	"github.com/osse101/GlobePalette_Go/internal/colormath"
	"github.com/osse101/GlobePalette_Go/internal/config"
	"github.com/osse101/GlobePalette_Go/internal/countries"
	"github.com/osse101/GlobePalette_Go/internal/domain"
	"github.com/osse101/GlobePalette_Go/internal/flag"
	"github.com/osse101/GlobePalette_Go/internal/handler"
)

const stdio = "-"

type options struct {
	in        string
	out       string
	reference string
	flagsRoot string
	sliceSize int
	indent    bool
}

func newRootCmd() *cobra.Command {
	opts := options{}
	cmd := &cobra.Command{
		Use:   "colorize",
		Short: "Color map features from their countries' flags",
		Long: `colorize reads {"features":[{"code","name","base_color"}]} JSON, sets every
feature's color to its country's flag accent (or its base color when the
country or flag is unknown) and writes the features with a run report.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			return run(cmd.Context(), cfg, opts, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.in, "in", "i", stdio, "features JSON file, - for stdin")
	f.StringVarP(&opts.out, "out", "o", stdio, "output file, - for stdout")
	f.StringVar(&opts.reference, "reference", "", "local country reference JSON instead of REFERENCE_URL")
	f.StringVar(&opts.flagsRoot, "flags-root", "", "directory relative flag paths resolve against")
	f.IntVar(&opts.sliceSize, "slice-size", 0, "features per slice (default ENRICH_SLICE_SIZE)")
	f.BoolVar(&opts.indent, "indent", false, "indent the output")
	return cmd
}

func run(ctx context.Context, cfg *config.Config, opts options, stdin io.Reader, stdout io.Writer) error {
	req, err := readRequest(opts.in, stdin)
	if err != nil {
		return err
	}

	if opts.sliceSize > 0 {
		cfg.EnrichSliceSize = opts.sliceSize
	}

	gopts := bootstrap.GlobeOptions{
		Loader: flag.NewDefaultLoader(&http.Client{Timeout: cfg.FetchTimeout}, opts.flagsRoot),
	}
	if opts.reference != "" {
		records, err := readReference(ctx, opts.reference)
		if err != nil {
			return err
		}
		gopts.Fetcher = countries.StaticFetcher{Records: records}
	}

	g, err := bootstrap.InitializeGlobe(cfg, gopts)
	if err != nil {
		return err
	}

	features := make([]*domain.Feature, len(req.Features))
	for i, f := range req.Features {
		features[i] = domain.NewFeature(strings.ToUpper(f.Code), f.Name, colormath.HexToRGB(f.BaseColor))
	}

	report, err := g.Service.EnrichFeatureColors(ctx, features, nil)
	if err != nil {
		return err
	}

	return writeResponse(opts, stdout, handler.EnrichResponse{Report: report, Features: features})
}

func readRequest(path string, stdin io.Reader) (handler.EnrichRequest, error) {
	var req handler.EnrichRequest

	r := stdin
	if path != stdio {
		f, err := os.Open(path)
		if err != nil {
			return req, err
		}
		defer f.Close()
		r = f
	}

	if err := json.NewDecoder(r).Decode(&req); err != nil {
		return req, fmt.Errorf("decode %s: %w", path, err)
	}
	if err := handler.GetValidator().ValidateStruct(&req); err != nil {
		return req, fmt.Errorf("%w: %s", domain.ErrInvalidFeature, formatFields(handler.FormatValidationError(err)))
	}
	return req, nil
}

func readReference(ctx context.Context, path string) ([]domain.Country, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return countries.DecodeRecords(ctx, data)
}

func writeResponse(opts options, stdout io.Writer, resp handler.EnrichResponse) (err error) {
	w := stdout
	if opts.out != stdio {
		f, ferr := os.Create(opts.out)
		if ferr != nil {
			return ferr
		}
		defer func() {
			err = errors.Join(err, f.Close())
		}()
		w = f
	}

	enc := json.NewEncoder(w)
	if opts.indent {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(resp)
}

func formatFields(fields map[string]string) string {
	parts := make([]string, 0, len(fields))
	for _, k := range slices.Sorted(maps.Keys(fields)) {
		parts = append(parts, k+": "+fields[k])
	}
	return strings.Join(parts, "; ")
}
