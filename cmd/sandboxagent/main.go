// Package main provides the sandboxagent command: a one-shot agent that lets
// Gemini list, read, write and run scripts inside a single directory tree.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/Cyclone1070/sandboxagent/internal/config"
	"github.com/Cyclone1070/sandboxagent/internal/orchestrator"
	"github.com/Cyclone1070/sandboxagent/internal/orchestrator/adapter"
	"github.com/Cyclone1070/sandboxagent/internal/provider/gemini"
	provider "github.com/Cyclone1070/sandboxagent/internal/provider/models"
	"github.com/Cyclone1070/sandboxagent/internal/tool/directory"
	"github.com/Cyclone1070/sandboxagent/internal/tool/file"
	"github.com/Cyclone1070/sandboxagent/internal/tool/script"
	"github.com/Cyclone1070/sandboxagent/internal/tool/service/executor"
	toolfs "github.com/Cyclone1070/sandboxagent/internal/tool/service/fs"
	"github.com/Cyclone1070/sandboxagent/internal/tool/service/path"
	"github.com/Cyclone1070/sandboxagent/internal/ui"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const (
	apiKeyEnv   = "GEMINI_API_KEY"
	defaultRoot = "./calculator"
)

var errNoPrompt = errors.New("no prompt entered")

// Dependencies holds the components required to run the application.
type Dependencies struct {
	Stdout          io.Writer
	Stderr          io.Writer
	LoadEnv         func() error
	Getenv          func(string) string
	LoadConfig      func() (*config.Config, error)
	ProviderFactory func(ctx context.Context, apiKey, model string) (provider.Provider, error)
}

func defaultDependencies() Dependencies {
	return Dependencies{
		Stdout:          os.Stdout,
		Stderr:          os.Stderr,
		LoadEnv:         func() error { return godotenv.Load() },
		Getenv:          os.Getenv,
		LoadConfig:      config.Load,
		ProviderFactory: createRealProvider,
	}
}

func createRealProvider(ctx context.Context, apiKey, model string) (provider.Provider, error) {
	client, err := gemini.NewRealGeminiClientFromKey(ctx, apiKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return gemini.New(client, model), nil
}

type options struct {
	verbose  bool
	root     string
	model    string
	logLevel string
}

func newRootCmd(deps Dependencies) *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   `sandboxagent "<prompt>"`,
		Short: "Let Gemini inspect and run code inside one directory",
		Example: `  sandboxagent "fix the bug: 3 + 7 * 2 shouldn't be 20"
  sandboxagent --verbose --root ./calculator "run the tests"`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return setupLogging(opts.logLevel, deps.Stderr)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			prompt := strings.TrimSpace(strings.Join(args, " "))
			if prompt == "" {
				fmt.Fprintln(deps.Stdout, "No prompt entered")
				cmd.SetOut(deps.Stdout)
				_ = cmd.Usage()
				return errNoPrompt
			}
			return run(cmd.Context(), deps, opts, prompt)
		},
	}
	cmd.SetOut(deps.Stdout)
	cmd.SetErr(deps.Stderr)

	flags := cmd.Flags()
	flags.BoolVar(&opts.verbose, "verbose", false, "Show tool arguments, results and token usage")
	flags.StringVar(&opts.root, "root", defaultRoot, "Directory the agent is confined to")
	flags.StringVar(&opts.model, "model", "", "Gemini model name (overrides the config file)")
	flags.StringVar(&opts.logLevel, "log-level", "warning", "Set the logging level [trace, debug, info, warning, error]")
	return cmd
}

func setupLogging(level string, out io.Writer) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return err
	}
	logrus.SetLevel(lvl)
	logrus.SetOutput(out)
	logrus.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	return nil
}

func run(ctx context.Context, deps Dependencies, opts *options, prompt string) error {
	if err := deps.LoadEnv(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logrus.WithError(err).Warn("Failed to load .env")
	}
	apiKey := deps.Getenv(apiKeyEnv)
	if apiKey == "" {
		return fmt.Errorf("%s is not set", apiKeyEnv)
	}

	cfg, err := deps.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if opts.model != "" {
		cfg.Provider.Model = opts.model
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	root, err := path.CanonicaliseRoot(opts.root)
	if err != nil {
		return err
	}
	logrus.WithFields(logrus.Fields{"root": root, "model": cfg.Provider.Model}).Debug("Starting run")

	console := ui.NewConsole(deps.Stdout, opts.verbose)
	dispatcher, err := orchestrator.NewDispatcher(root, createTools(cfg), console, logrus.StandardLogger())
	if err != nil {
		return err
	}

	p, err := deps.ProviderFactory(ctx, apiKey, cfg.Provider.Model)
	if err != nil {
		return err
	}

	o := orchestrator.New(p, dispatcher, console, cfg.Agent.SystemPrompt, logrus.StandardLogger())
	outcome := o.Run(ctx, prompt)

	switch outcome.Reason {
	case orchestrator.FinalAnswer, orchestrator.IterationCapReached:
		return nil
	default:
		return fmt.Errorf("%s: %w", outcome.Reason, outcome.Err)
	}
}

func createTools(cfg *config.Config) []adapter.Tool {
	osFS := toolfs.NewOSFileSystem()
	commandExecutor := executor.NewOSCommandExecutor(cfg)

	return []adapter.Tool{
		adapter.NewListDirectory(directory.NewListDirectoryTool(osFS, cfg)),
		adapter.NewReadFile(file.NewReadFileTool(osFS, cfg), cfg),
		adapter.NewWriteFile(file.NewWriteFileTool(osFS, cfg)),
		adapter.NewRunScript(script.NewRunScriptTool(osFS, commandExecutor, cfg), cfg),
	}
}

func execute(ctx context.Context, args []string, deps Dependencies) int {
	cmd := newRootCmd(deps)
	cmd.SetArgs(args)
	if err := cmd.ExecuteContext(ctx); err != nil {
		if !errors.Is(err, errNoPrompt) {
			fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
		}
		return 1
	}
	return 0
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := execute(ctx, os.Args[1:], defaultDependencies())
	stop()
	os.Exit(code)
}
