package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// targetFlags holds single-target flags. They override every configured
// target, or define the only target when the config has none.
type targetFlags struct {
	filename string
	filetype string
	inject   string
	template string
	title    string
}

// isSet reports whether any target flag was given.
func (f *targetFlags) isSet() bool {
	return f.filename != "" || f.filetype != "" || f.inject != "" || f.template != "" || f.title != ""
}

// assetFlags holds asset reference flags and the custom asset directory.
type assetFlags struct {
	css       []string
	js        []string
	manifest  string
	assetPath string
}

// convertFlags holds all flags for the convert command.
type convertFlags struct {
	common  commonFlags
	output  string
	workers int
	target  targetFlags
	assets  assetFlags
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed timing and diagnostics")
}

// addTargetFlags adds single-target flags to a FlagSet.
func addTargetFlags(fs *flag.FlagSet, f *targetFlags) {
	fs.StringVar(&f.filename, "filename", "", "output file name (default index.html)")
	fs.StringVar(&f.filetype, "filetype", "", "output type: html, haml")
	fs.StringVar(&f.inject, "inject", "", "asset injection: true, false, head, body")
	fs.StringVar(&f.template, "template", "", "template file (.html, .haml, .md)")
	fs.StringVar(&f.title, "title", "", "page title")
}

// addAssetFlags adds asset-related flags to a FlagSet.
func addAssetFlags(fs *flag.FlagSet, f *assetFlags) {
	fs.StringSliceVar(&f.css, "css", nil, "stylesheet references (repeatable or comma-separated)")
	fs.StringSliceVar(&f.js, "js", nil, "script references (repeatable or comma-separated)")
	fs.StringVar(&f.manifest, "manifest", "", "cache manifest reference")
	fs.StringVar(&f.assetPath, "asset-path", "", "custom skeletons/pages directory")
}

// newConvertFlagSet registers every convert flag on a new FlagSet.
func newConvertFlagSet(f *convertFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)

	// I/O flags
	fs.StringVarP(&f.output, "output", "o", "", "output directory")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")

	// Flag groups
	addCommonFlags(fs, &f.common)
	addTargetFlags(fs, &f.target)
	addAssetFlags(fs, &f.assets)

	return fs
}

// parseConvertFlags parses convert command flags and returns positional args.
// Parse errors and -h usage are written to w.
func parseConvertFlags(args []string, w io.Writer) (*convertFlags, []string, error) {
	f := &convertFlags{}
	fs := newConvertFlagSet(f)
	fs.SetOutput(w)
	fs.Usage = func() { printConvertUsage(w) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}
