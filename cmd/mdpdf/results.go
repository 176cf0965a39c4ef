package main

import (
	"fmt"

	mdpdf "github.com/mdpdf/mdpdf"
)

// printWarning writes one warning to stderr.
func printWarning(env *Environment, w mdpdf.Warning) {
	if w.Source != "" {
		fmt.Fprintf(env.Stderr, "warning: %s: %s\n", w.Source, w.Message)
		return
	}
	fmt.Fprintf(env.Stderr, "warning: %s\n", w.Message)
}

// printWarnings writes configuration warnings unless quiet.
func printWarnings(env *Environment, warnings []mdpdf.Warning, quiet bool) {
	if quiet {
		return
	}
	for _, w := range warnings {
		printWarning(env, w)
	}
}

// printResults reports batch outcomes and returns the exit code:
// all succeeded 0, some failed 1, all failed 2.
func printResults(env *Environment, results []mdpdf.Result, common commonFlags) int {
	succeeded := 0
	for _, r := range results {
		if r.Success {
			succeeded++
			if common.verbose {
				fmt.Fprintf(env.Stdout, "ok   %s -> %s\n", r.InputPath, r.OutputPath)
			}
			continue
		}
		if r.Err != nil {
			fmt.Fprintf(env.Stderr, "fail %s: %s\n", r.InputPath, decorate(r.Err))
		} else {
			fmt.Fprintf(env.Stderr, "fail %s: output is not a valid PDF\n", r.InputPath)
		}
	}

	if !common.quiet {
		fmt.Fprintf(env.Stdout, "Converted %d of %d files\n", succeeded, len(results))
	}

	switch succeeded {
	case len(results):
		return ExitSuccess
	case 0:
		return ExitFailure
	default:
		return ExitPartial
	}
}
