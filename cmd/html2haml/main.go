package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	flag "github.com/spf13/pflag"
	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

// ErrUnknownCommand indicates the first argument names no command.
var ErrUnknownCommand = errors.New("unknown command")

func main() {
	os.Exit(run(context.Background(), os.Args[1:], DefaultEnv()))
}

// run dispatches args to a command and returns the process exit code.
// Without a command name, args are passed to convert.
func run(ctx context.Context, args []string, env *Environment) int {
	cmd, rest := "convert", args
	if len(args) > 0 && isCommand(args[0]) {
		cmd, rest = args[0], args[1:]
	}

	switch cmd {
	case "version":
		fmt.Fprintf(env.Stdout, "html2haml %s\n", Version)
		return ExitSuccess
	case "help":
		runHelp(rest, env)
		if len(rest) > 0 && !isCommand(rest[0]) {
			return exitCodeFor(ErrUnknownCommand)
		}
		return ExitSuccess
	}

	// pflag has already printed the error and usage.
	flags, positional, err := parseConvertFlags(rest, env.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ExitSuccess
		}
		return ExitUsage
	}

	logger := newLogger(env.Stderr, flags.common.quiet, flags.common.verbose)

	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...any) {
		logger.Debug(fmt.Sprintf(format, args...))
	}))

	warnUnknownEnvVars(logger)

	ctx, stop := notifyContext(ctx)
	defer stop()

	if err := runConvert(ctx, positional, flags, env, logger); err != nil {
		configName := flags.common.config
		if configName == "" && len(positional) == 1 {
			configName = positional[0]
		}
		fmt.Fprintf(env.Stderr, "error: %v%s\n", err, hintFor(err, configName, flags.assets.assetPath))
		return exitCodeFor(err)
	}

	return ExitSuccess
}

// isCommand reports whether arg names a command.
func isCommand(arg string) bool {
	switch arg {
	case "convert", "version", "help":
		return true
	default:
		return false
	}
}
