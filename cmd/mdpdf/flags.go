package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across run modes.
type commonFlags struct {
	config  string
	envFile string
	quiet   bool
	verbose bool
}

// outputFlags holds destination selection flags.
type outputFlags struct {
	file            string // single output file
	dir             string // output directory for batch/merge
	createOutputDir string // named or "auto" timestamped subdirectory
	noPreserve      bool   // flatten instead of mirroring the input tree
}

// styleFlags holds theme/CSS selection flags.
type styleFlags struct {
	theme string
	css   string
}

// documentFlags holds per-run document feature and metadata flags.
type documentFlags struct {
	merge      bool
	toc        bool
	titlePage  bool
	title      string
	author     string
	subject    string
	keywords   string
	dateFormat string
}

// pageNumberFlags holds the page-number toggle pair. Both default to false;
// changed tracks whether either was given so the configured default survives.
type pageNumberFlags struct {
	enable  bool
	disable bool
	changed bool
}

// cliFlags holds all parsed flags plus positional arguments.
type cliFlags struct {
	common      commonFlags
	output      outputFlags
	style       styleFlags
	document    documentFlags
	pageNumbers pageNumberFlags
	timeout     string
	showHelp    bool
	showVersion bool
	args        []string
}

func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "YAML config file path")
	fs.StringVar(&f.envFile, "env-file", "", ".env file path (default: ./.env when present)")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show per-file progress")
}

func addOutputFlags(fs *flag.FlagSet, f *outputFlags) {
	fs.StringVarP(&f.file, "output", "o", "", "output PDF file (single input or --merge)")
	fs.StringVarP(&f.dir, "output-dir", "d", "", "output directory for batch conversion")
	fs.StringVar(&f.createOutputDir, "create-output-dir", "", "create an output subdirectory (name, or \"auto\" for a timestamp)")
	fs.BoolVar(&f.noPreserve, "no-preserve-structure", false, "flatten output instead of mirroring the input tree")
}

func addStyleFlags(fs *flag.FlagSet, f *styleFlags) {
	fs.StringVarP(&f.theme, "theme", "t", "", "built-in theme: github, minimal, academic, dark, modern")
	fs.StringVar(&f.css, "css", "", "custom CSS file (mutually exclusive with --theme)")
}

func addDocumentFlags(fs *flag.FlagSet, f *documentFlags) {
	fs.BoolVarP(&f.merge, "merge", "m", false, "merge all inputs into one PDF (directory input only)")
	fs.BoolVar(&f.toc, "toc", false, "prepend a table of contents")
	fs.BoolVar(&f.titlePage, "title-page", false, "prepend a title page")
	fs.StringVar(&f.title, "title", "", "PDF title (default: input base name)")
	fs.StringVar(&f.author, "author", "", "PDF author")
	fs.StringVar(&f.subject, "subject", "", "PDF subject")
	fs.StringVar(&f.keywords, "keywords", "", "PDF keywords, comma-separated")
	fs.StringVar(&f.dateFormat, "date-format", "", "title page date format (tokens or preset: iso, european, us, long)")
}

func addPageNumberFlags(fs *flag.FlagSet, f *pageNumberFlags) {
	fs.BoolVar(&f.enable, "page-numbers", false, "enable page numbers")
	fs.BoolVar(&f.disable, "no-page-numbers", false, "disable page numbers")
}

// parseFlags parses the CLI flags. usageOut receives pflag's own messages.
func parseFlags(args []string, usageOut io.Writer) (*cliFlags, error) {
	fs := flag.NewFlagSet("mdpdf", flag.ContinueOnError)
	fs.SetOutput(usageOut)

	f := &cliFlags{}
	addCommonFlags(fs, &f.common)
	addOutputFlags(fs, &f.output)
	addStyleFlags(fs, &f.style)
	addDocumentFlags(fs, &f.document)
	addPageNumberFlags(fs, &f.pageNumbers)
	fs.StringVar(&f.timeout, "timeout", "", "PDF generation timeout (e.g. 30s, 2m)")
	fs.BoolVarP(&f.showHelp, "help", "h", false, "show help")
	fs.BoolVar(&f.showVersion, "version", false, "show version")

	fs.Usage = func() { printUsage(usageOut) }

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	f.pageNumbers.changed = fs.Changed("page-numbers") || fs.Changed("no-page-numbers")
	f.args = fs.Args()
	return f, nil
}
