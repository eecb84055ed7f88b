package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: html2haml [command] [flags] [config]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  convert    Generate HTML and Haml templates (default)")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'html2haml help <command>' for details on a specific command.")
}

// printConvertUsage prints usage for the convert command.
func printConvertUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: html2haml convert [config] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Render each target page, inject asset references, and write it as")
	fmt.Fprintln(w, "HTML or Haml. A target named index.html is written as index.haml.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  config    Config file name or path (same as --config)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -o, --output <dir>        Output directory")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel workers (0 = auto)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Target:")
	fmt.Fprintln(w, "      --filename <s>        Output file name (default index.html)")
	fmt.Fprintln(w, "      --filetype <s>        Output type: html, haml")
	fmt.Fprintln(w, "      --inject <s>          Injection: true, false, head, body")
	fmt.Fprintln(w, "      --template <path>     Template file: .html, .haml, .md")
	fmt.Fprintln(w, "      --title <s>           Page title")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Assets:")
	fmt.Fprintln(w, "      --css <ref>           Stylesheet reference (repeatable)")
	fmt.Fprintln(w, "      --js <ref>            Script reference (repeatable)")
	fmt.Fprintln(w, "      --manifest <ref>      Cache manifest reference")
	fmt.Fprintln(w, "      --asset-path <dir>    Custom skeletons/pages directory")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show detailed timing")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  HTML2HAML_CONFIG, HTML2HAML_OUTPUT_DIR, HTML2HAML_ASSET_PATH,")
	fmt.Fprintln(w, "  HTML2HAML_MANIFEST, HTML2HAML_WORKERS")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return
	}

	switch args[0] {
	case "convert":
		printConvertUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: html2haml version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: html2haml help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
	}
}
