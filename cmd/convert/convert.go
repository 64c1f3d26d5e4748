/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package convert provides the convert command for shorthand.
package convert

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"

	"bennypowers.dev/shorthand/config"
	"bennypowers.dev/shorthand/cssname"
	"bennypowers.dev/shorthand/fs"
	"bennypowers.dev/shorthand/internal/logger"
	"bennypowers.dev/shorthand/lint"
	"bennypowers.dev/shorthand/style"
)

// Cmd is the convert cobra command.
var Cmd = &cobra.Command{
	Use:   "convert [files...]",
	Short: "Expand shorthands in style documents",
	Long: `Expand every shorthand declaration in JSON, JSON-with-comments or YAML style
documents, writing the longhand form.

Output Formats:
  json     Indented JSON object (default)
  yaml     YAML mapping
  css      CSS declarations with kebab-case names
  msgpack  MessagePack map

Documents written to a single destination are merged in argument order; a
property set by a later file overrides an earlier one.

Examples:
  # Expand one document to stdout
  shorthand convert styles/button.json

  # Write CSS declarations to a file
  shorthand convert --format css -o button.css styles/button.json

  # One output per input
  shorthand convert --out-dir dist --format yaml styles/*.json

  # Use files from config (.config/shorthand.yaml)
  shorthand convert`,
	Args: cobra.ArbitraryArgs,
	RunE: run,
}

func init() {
	Cmd.Flags().StringP("output", "o", "", "Output file (default: stdout)")
	Cmd.Flags().String("out-dir", "", "Write one output file per input into this directory")
	Cmd.Flags().StringP("format", "f", "json", "Output format: "+strings.Join(style.ValidFormats(), ", "))
	Cmd.Flags().Bool("kebab", false, "Write longhand names in kebab-case")
	Cmd.Flags().Bool("drop-unknown", false, "Remove declarations that are not expandable shorthands")
	Cmd.Flags().Bool("lint", false, "Warn about suspicious shorthand values")
	Cmd.Flags().StringSlice("properties", nil, "Only expand these shorthands (default: all)")

	for _, name := range []string{"format", "kebab", "drop-unknown", "lint"} {
		_ = viper.BindPFlag("convert."+name, Cmd.Flags().Lookup(name))
	}
	_ = viper.BindPFlag("properties", Cmd.Flags().Lookup("properties"))
}

// options configures a conversion run.
type options struct {
	Format style.Format
	Expand style.Options
	Output string
	OutDir string
	Lint   bool
}

func run(cmd *cobra.Command, args []string) error {
	output, _ := cmd.Flags().GetString("output")
	outDir, _ := cmd.Flags().GetString("out-dir")

	if output != "" && outDir != "" {
		return fmt.Errorf("--output and --out-dir are mutually exclusive")
	}

	format, err := style.ParseFormat(viper.GetString("convert.format"))
	if err != nil {
		return err
	}

	var properties []string
	for _, p := range viper.GetStringSlice("properties") {
		properties = append(properties, cssname.ToCamel(p))
	}

	filesystem := fs.NewOSFileSystem()

	files := args
	if len(files) == 0 {
		cfg := &config.Config{Files: viper.GetStringSlice("files")}
		files, err = cfg.ExpandFiles(filesystem, ".")
		if err != nil {
			return fmt.Errorf("error expanding config files: %w", err)
		}
	}
	if len(files) == 0 {
		return fmt.Errorf("no files specified and no files found in config")
	}

	return convertFiles(cmd.Context(), filesystem, cmd.OutOrStdout(), files, options{
		Format: format,
		Expand: style.Options{
			Properties:  properties,
			DropUnknown: viper.GetBool("convert.drop-unknown"),
			Kebab:       viper.GetBool("convert.kebab"),
		},
		Output: output,
		OutDir: outDir,
		Lint:   viper.GetBool("convert.lint"),
	})
}

// result is the outcome of converting one input file.
type result struct {
	path string
	doc  *style.Document
	err  error
}

// convertFiles expands every file concurrently and writes the results.
// A file that fails does not stop the others; all failures are returned
// together once every file has been processed.
func convertFiles(ctx context.Context, filesystem fs.FileSystem, stdout io.Writer, files []string, opts options) error {
	results := make([]result, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, min(runtime.GOMAXPROCS(0), len(files))))
	for i, path := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			doc, err := convertFile(filesystem, path, opts)
			results[i] = result{path: path, doc: doc, err: err}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	var errs error
	var docs []*style.Document
	for _, r := range results {
		if r.err != nil {
			errs = multierr.Append(errs, r.err)
			continue
		}
		docs = append(docs, r.doc)
	}

	if opts.OutDir != "" {
		return multierr.Append(errs, writeEach(filesystem, results, opts))
	}
	if len(docs) == 0 {
		return errs
	}
	return multierr.Append(errs, writeMerged(filesystem, stdout, docs, opts))
}

// convertFile parses, lints and expands a single style document.
func convertFile(filesystem fs.FileSystem, path string, opts options) (*style.Document, error) {
	doc, err := style.ParseFile(filesystem, path)
	if err != nil {
		return nil, err
	}
	if opts.Lint {
		for _, issue := range lint.CheckDocument(doc) {
			logger.Warn("%s: %s", path, issue)
		}
	}
	out, err := style.Expand(doc, opts.Expand)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	logger.Info("converted %s: %d declarations", path, out.Len())
	return out, nil
}

// writeMerged merges docs and writes them to the output file or stdout.
func writeMerged(filesystem fs.FileSystem, stdout io.Writer, docs []*style.Document, opts options) error {
	data, err := style.Encode(style.Merge(docs...), opts.Format)
	if err != nil {
		return fmt.Errorf("error encoding output: %w", err)
	}
	if opts.Output == "" {
		_, err = stdout.Write(data)
		return err
	}
	if dir := filepath.Dir(opts.Output); dir != "." {
		if err := filesystem.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("error creating output directory: %w", err)
		}
	}
	if err := filesystem.WriteFile(opts.Output, data, 0644); err != nil {
		return fmt.Errorf("error writing output: %w", err)
	}
	logger.Info("wrote %s", opts.Output)
	return nil
}

// errDuplicateOutput is returned when two inputs map to the same output file.
var errDuplicateOutput = errors.New("duplicate output path")

// writeEach writes one output per successfully converted input into OutDir.
func writeEach(filesystem fs.FileSystem, results []result, opts options) error {
	if err := filesystem.MkdirAll(opts.OutDir, 0755); err != nil {
		return fmt.Errorf("error creating output directory: %w", err)
	}

	var errs error
	written := make(map[string]string)
	for _, r := range results {
		if r.err != nil {
			continue
		}
		target := OutputPath(opts.OutDir, r.path, opts.Format)
		if prev, ok := written[target]; ok {
			errs = multierr.Append(errs, fmt.Errorf("%w: %s and %s both write %s", errDuplicateOutput, prev, r.path, target))
			continue
		}
		written[target] = r.path

		data, err := style.Encode(r.doc, opts.Format)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("%s: error encoding output: %w", r.path, err))
			continue
		}
		if err := filesystem.WriteFile(target, data, 0644); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("error writing %s: %w", target, err))
			continue
		}
		logger.Info("wrote %s", target)
	}
	return errs
}

// OutputPath returns the file in dir that input converts to,
// e.g. "dist", "styles/button.json", css → "dist/button.css".
func OutputPath(dir, input string, format style.Format) string {
	base := filepath.Base(input)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(dir, base+format.Extension())
}
