package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	flag "github.com/spf13/pflag"

	mdpdf "github.com/mdpdf/mdpdf"
	"github.com/mdpdf/mdpdf/internal/dateutil"
	"github.com/mdpdf/mdpdf/internal/hints"
)

// run parses flags and dispatches to the selected conversion mode.
// The return value is the process exit code.
func run(args []string, env *Environment) int {
	flags, err := parseFlags(args, env.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ExitSuccess
		}
		fmt.Fprintln(env.Stderr, err)
		return ExitPartial
	}

	if flags.showHelp {
		printUsage(env.Stdout)
		return ExitSuccess
	}
	if flags.showVersion {
		fmt.Fprintln(env.Stdout, "mdpdf "+Version)
		return ExitSuccess
	}

	return runConvert(flags, env)
}

// runConvert executes a single-file, merge, or batch conversion.
func runConvert(f *cliFlags, env *Environment) int {
	if len(f.args) != 1 {
		fmt.Fprintf(env.Stderr, "%v: expected exactly one input path (got %d)\n", ErrUsage, len(f.args))
		printUsage(env.Stderr)
		return ExitPartial
	}
	input := f.args[0]

	info, err := os.Stat(input)
	if err != nil {
		fmt.Fprintf(env.Stderr, "input not found: %s\n", input)
		return ExitFailure
	}
	isDir := info.IsDir()

	if f.document.merge && !isDir {
		fmt.Fprintf(env.Stderr, "%v: --merge requires a directory input, got file %s\n", ErrUsage, input)
		return ExitPartial
	}

	// Precedence: flags > environment > config file > defaults.
	cfg := mdpdf.DefaultConfig()
	var fc *fileConfig
	if f.common.config != "" {
		fc, err = loadFileConfig(f.common.config)
		if err != nil {
			fmt.Fprintln(env.Stderr, err)
			return ExitFailure
		}
		fc.apply(&cfg)
	}

	cfg, warnings, err := mdpdf.LoadConfigInto(cfg, f.common.envFile)
	if err != nil {
		fmt.Fprintln(env.Stderr, err)
		return ExitFailure
	}
	printWarnings(env, warnings, f.common.quiet)
	applyFlagOverrides(&cfg, f)

	opts, code := converterOptions(f, fc, env)
	if code != ExitSuccess {
		return code
	}

	conv, err := mdpdf.NewConverter(cfg, opts...)
	if err != nil {
		fmt.Fprintln(env.Stderr, decorate(err))
		return exitCodeFor(err)
	}
	defer conv.Close()

	convOpts := mdpdf.Options{
		TOC:       f.document.toc,
		TitlePage: f.document.titlePage,
		Metadata: mdpdf.Metadata{
			Title:    f.document.title,
			Author:   f.document.author,
			Subject:  f.document.subject,
			Keywords: f.document.keywords,
		},
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	outDir, err := resolveOutputDir(f, cfg, env)
	if err != nil {
		fmt.Fprintln(env.Stderr, err.Error()+hints.ForOutputDirectory())
		return ExitFailure
	}

	switch {
	case !isDir:
		return runSingle(ctx, conv, input, outDir, f, convOpts, env)
	case f.document.merge:
		return runMerge(ctx, conv, input, outDir, f, convOpts, env)
	default:
		results, err := conv.ConvertTree(ctx, input, outDir, cfg.PreserveStructure, convOpts)
		if err != nil {
			fmt.Fprintln(env.Stderr, decorate(err))
			return exitCodeFor(err)
		}
		if len(results) == 0 {
			if !f.common.quiet {
				fmt.Fprintln(env.Stdout, "No markdown files found.")
			}
			return ExitSuccess
		}
		return printResults(env, results, f.common)
	}
}

// runSingle converts one markdown file.
func runSingle(ctx context.Context, conv *mdpdf.Converter, input, outDir string, f *cliFlags, convOpts mdpdf.Options, env *Environment) int {
	dst := f.output.file
	if dst == "" {
		dst = filepath.Join(outDir, pdfName(input))
	}
	if err := conv.ConvertFile(ctx, input, dst, convOpts); err != nil {
		fmt.Fprintln(env.Stderr, decorate(err))
		return ExitFailure
	}
	if !f.common.quiet {
		fmt.Fprintf(env.Stdout, "Converted %s -> %s\n", input, dst)
	}
	return ExitSuccess
}

// runMerge converts every markdown file under input into one PDF.
func runMerge(ctx context.Context, conv *mdpdf.Converter, input, outDir string, f *cliFlags, convOpts mdpdf.Options, env *Environment) int {
	rels, err := mdpdf.DiscoverMarkdown(input)
	if err != nil {
		fmt.Fprintln(env.Stderr, decorate(err))
		return exitCodeFor(err)
	}
	if len(rels) == 0 {
		fmt.Fprintf(env.Stderr, "no markdown files under %s\n", input)
		return ExitFailure
	}
	sources := make([]string, len(rels))
	for i, rel := range rels {
		sources[i] = filepath.Join(input, rel)
	}

	dst := f.output.file
	if dst == "" {
		abs, absErr := filepath.Abs(input)
		if absErr != nil {
			abs = input
		}
		dst = filepath.Join(outDir, filepath.Base(abs)+".pdf")
	}

	if err := conv.ConvertMerge(ctx, sources, dst, convOpts); err != nil {
		fmt.Fprintln(env.Stderr, decorate(err))
		return ExitFailure
	}
	if !f.common.quiet {
		fmt.Fprintf(env.Stdout, "Merged %d files -> %s\n", len(sources), dst)
	}
	return ExitSuccess
}

// applyFlagOverrides folds boolean flag overrides into the configuration.
func applyFlagOverrides(cfg *mdpdf.Config, f *cliFlags) {
	if f.output.noPreserve {
		cfg.PreserveStructure = false
	}
	if f.pageNumbers.changed {
		cfg.PageNumbers.Enabled = f.pageNumbers.enable && !f.pageNumbers.disable
	}
}

// converterOptions builds the functional options for the converter from
// flags, falling back to config-file values where no flag was given.
func converterOptions(f *cliFlags, fc *fileConfig, env *Environment) ([]mdpdf.Option, int) {
	opts := []mdpdf.Option{
		mdpdf.WithNow(env.Now),
		mdpdf.WithWarningSink(func(w mdpdf.Warning) {
			if !f.common.quiet {
				printWarning(env, w)
			}
		}),
	}

	theme, css := f.style.theme, f.style.css
	if theme == "" && css == "" && fc != nil {
		theme, css = fc.Theme, fc.CSS
	}
	if theme != "" {
		opts = append(opts, mdpdf.WithTheme(theme))
	}
	if css != "" {
		opts = append(opts, mdpdf.WithCustomCSS(css))
	}

	timeout := f.timeout
	if timeout == "" && fc != nil {
		timeout = fc.Timeout
	}
	if timeout != "" {
		d, err := time.ParseDuration(timeout)
		if err != nil || d <= 0 {
			fmt.Fprintf(env.Stderr, "%v: invalid --timeout %q\n", ErrUsage, timeout)
			return nil, ExitPartial
		}
		opts = append(opts, mdpdf.WithTimeout(d))
	}

	dateFormat := f.document.dateFormat
	if dateFormat == "" && fc != nil {
		dateFormat = fc.DateFormat
	}
	if dateFormat != "" {
		layout, err := dateutil.ParseDateFormat(dateFormat)
		if err != nil {
			fmt.Fprintf(env.Stderr, "%v: %v\n", ErrUsage, err)
			return nil, ExitPartial
		}
		opts = append(opts, mdpdf.WithDateFormat(layout))
	}

	return opts, ExitSuccess
}

// resolveOutputDir picks the output directory and creates the optional
// named or timestamped subdirectory.
func resolveOutputDir(f *cliFlags, cfg mdpdf.Config, env *Environment) (string, error) {
	dir := f.output.dir
	if dir == "" {
		dir = cfg.DefaultOutputDir
	}

	if sub := f.output.createOutputDir; sub != "" {
		if sub == "auto" {
			sub = env.Now().Format("20060102-150405")
		}
		dir = filepath.Join(dir, sub)
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return "", fmt.Errorf("creating output directory %s: %w", dir, err)
		}
	}
	return dir, nil
}

// pdfName maps a markdown path to its PDF base name.
func pdfName(path string) string {
	name := filepath.Base(path)
	return strings.TrimSuffix(name, filepath.Ext(name)) + ".pdf"
}

// decorate appends actionable hints to error messages where available.
func decorate(err error) string {
	msg := err.Error()
	switch {
	case errors.Is(err, mdpdf.ErrBrowserConnect):
		msg += hints.ForBrowserConnect()
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, mdpdf.ErrPageLoad):
		msg += hints.ForTimeout()
	case errors.Is(err, mdpdf.ErrUnknownTheme):
		msg += hints.ForThemeNotFound(mdpdf.AvailableThemes())
	}
	return msg
}
