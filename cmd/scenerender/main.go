// Command scenerender converts scene documents to PNG, JPEG, PDF or SVG.
//
// Usage:
//
//	scenerender [flags] input.excalidraw [more inputs...]
//
// With one input, -o names the output file ("-" writes to stdout). With
// several inputs, -o names a directory and each output takes the input's
// base name. Without -o, outputs are written next to their inputs.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/gogpu/scenerender"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("scenerender", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		output     = fs.String("o", "", `output file, directory for several inputs, or "-" for stdout`)
		format     = fs.String("format", "", "output format: png, jpeg, pdf or svg (default from -o extension, else png)")
		scale      = fs.Float64("scale", 1, "output scale")
		dark       = fs.Bool("dark", false, "export in dark mode")
		background = fs.String("background", "", `background color override, or "transparent"`)
		frame      = fs.String("frame", "", "export only the frame with this name or id")
		padding    = fs.Float64("padding", 20, "padding around a whole-scene export")
		configPath = fs.String("config", "", "TOML or YAML file with default settings")
		verbose    = fs.Bool("v", false, "log debug output")
	)
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() == 0 {
		fmt.Fprintln(stderr, "scenerender: no input files")
		fs.Usage()
		return 2
	}

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	scenerender.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})))

	var cfg *scenerender.Config
	if *configPath != "" {
		c, err := scenerender.LoadConfig(*configPath)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
		cfg = c
	}
	r, err := scenerender.New(cfg.Options()...)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	opts := r.Defaults()
	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	if set["format"] {
		f, err := scenerender.ParseFormat(*format)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return 2
		}
		opts.Format = f
	}
	if set["scale"] {
		opts.Scale = *scale
	}
	if set["dark"] {
		opts.DarkMode = *dark
	}
	if set["background"] {
		opts.Background = *background
	}
	if set["padding"] {
		opts.Padding = *padding
		if *padding <= 0 {
			opts.Padding = scenerender.NoPadding
		}
	}
	opts.Frame = *frame
	// an output extension beats the configured format unless -format is given
	explicitFormat := set["format"] || (cfg != nil && cfg.Format != "")

	ctx := context.Background()
	inputs := fs.Args()
	if len(inputs) == 1 {
		if err := single(ctx, r, inputs[0], *output, explicitFormat, opts, stdin, stdout); err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
		return 0
	}

	if *output == "-" {
		fmt.Fprintln(stderr, "scenerender: -o - needs exactly one input")
		return 2
	}
	items := make([]scenerender.BatchItem, len(inputs))
	for i, in := range inputs {
		items[i] = scenerender.BatchItem{
			Input:   in,
			Output:  outputPath(in, *output, opts.Format),
			Options: opts,
		}
	}
	results, err := r.Batch(ctx, items)
	for _, res := range results {
		if res.Err != nil {
			fmt.Fprintf(stderr, "%s: %v\n", res.Item.Input, res.Err)
		}
	}
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	return 0
}

// single converts one input; "-" reads stdin or writes stdout.
func single(ctx context.Context, r *scenerender.Renderer, in, out string, explicitFormat bool, opts scenerender.RenderOptions, stdin io.Reader, stdout io.Writer) error {
	var (
		data []byte
		err  error
	)
	if in == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(in)
	}
	if err != nil {
		return fmt.Errorf("scenerender: read %s: %w", in, err)
	}

	if out == "-" {
		return r.ExportTo(ctx, stdout, data, opts)
	}
	if out == "" {
		if in == "-" {
			return r.ExportTo(ctx, stdout, data, opts)
		}
		out = outputPath(in, "", opts.Format)
	} else if !explicitFormat {
		if f, err := scenerender.FormatFromPath(out); err == nil {
			opts.Format = f
		}
	}
	return r.ExportToFile(ctx, out, data, opts)
}

// outputPath derives an output file for in: next to it when dir is empty,
// inside dir otherwise.
func outputPath(in, dir string, f scenerender.Format) string {
	base := strings.TrimSuffix(filepath.Base(in), filepath.Ext(in)) + "." + string(f)
	if dir == "" {
		return filepath.Join(filepath.Dir(in), base)
	}
	return filepath.Join(dir, base)
}
