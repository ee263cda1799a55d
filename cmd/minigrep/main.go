package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kingpin/v2"
	"go.uber.org/zap"

	"github.com/eugenenazirov/minigrep/internal/application"
	"github.com/eugenenazirov/minigrep/internal/config"
	"github.com/eugenenazirov/minigrep/internal/logging"
)

const (
	exitOK       = 0
	exitFailure  = 1
	exitArgument = 2
)

const usage = "usage: minigrep QUERY FILE"

func main() {
	os.Exit(run(os.Args[1:], os.LookupEnv, os.Stdout, os.Stderr))
}

// run executes one invocation and returns the process exit status.
func run(argv []string, lookup config.LookupFunc, stdout, stderr io.Writer) int {
	kingpinApp := kingpin.New("minigrep", "Print the lines of FILE that contain QUERY. Set IGNORE_CASE to match regardless of letter case.")
	kingpinApp.UsageWriter(stderr)
	kingpinApp.ErrorWriter(stderr)

	var query, filePath string
	positional := make([]string, 0, 2)
	kingpinApp.Arg("query", "Text to search for.").
		Action(func(*kingpin.ParseContext) error {
			positional = append(positional, query)
			return nil
		}).
		StringVar(&query)
	kingpinApp.Arg("file", "Path of the text file to search.").
		Action(func(*kingpin.ParseContext) error {
			positional = append(positional, filePath)
			return nil
		}).
		StringVar(&filePath)
	// Extra arguments are accepted and ignored.
	kingpinApp.Arg("rest", "").Hidden().Strings()

	// "--" makes every token positional, so queries such as "-x" or "--help" are searched for.
	_, err := kingpinApp.Parse(append([]string{"--"}, argv...))
	if err != nil {
		kingpinApp.Errorf("%v", err)
		fmt.Fprintln(stderr, usage)
		return exitArgument
	}

	cfg, err := config.Resolve(positional, lookup)
	if err != nil {
		kingpinApp.Errorf("%v", err)
		if errors.Is(err, config.ErrArgument) {
			fmt.Fprintln(stderr, usage)
			return exitArgument
		}
		return exitFailure
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		kingpinApp.Errorf("failed to initialize logger: %v", err)
		return exitFailure
	}
	defer func() {
		_ = logger.Sync()
	}()

	app := application.New(cfg, logger, application.WithOutput(stdout))
	if err := app.Run(); err != nil {
		logger.Debug("search failed", zap.Error(err))
		kingpinApp.Errorf("%v", err)
		return exitFailure
	}

	return exitOK
}
