package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/specialistvlad/optgen/internal/app"
	"github.com/specialistvlad/optgen/internal/diffcheck"
)

// Exit codes of the optgen process.
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

func usageError(err error) error {
	return &ExitError{Code: ExitUsage, Message: "error: " + err.Error()}
}

// failure converts an application error into an ExitError. Drift diffs are
// written to errW before the summary line.
func failure(err error, errW io.Writer) error {
	var drift *diffcheck.DriftError
	if errors.As(err, &drift) {
		fmt.Fprint(errW, drift.Diff)
	}
	return &ExitError{Code: ExitFailure, Message: "error: " + err.Error()}
}

// globalFlags are shared by every command.
type globalFlags struct {
	logLevel  string
	logFormat string
}

// generateFlags select what generate and check render.
type generateFlags struct {
	output    string
	against   string
	artifacts []string
	contexts  []string
}

func (g *generateFlags) bindArtifacts(fs *pflag.FlagSet) {
	fs.StringSliceVar(&g.artifacts, "artifact", nil, "Artifacts to render: options, all, groups, aliases, contexts. Default all.")
	fs.StringSliceVar(&g.contexts, "context", nil, "Contexts rendered by the contexts artifact, in order. Default all.")
}

// NewRootCommand builds the optgen command tree. Generated output is written
// to outW and logs and diagnostics to errW.
func NewRootCommand(outW, errW io.Writer) *cobra.Command {
	global := &globalFlags{}

	root := &cobra.Command{
		Use:   "optgen",
		Short: "Compile an option catalog into declarative option source",
		Long: `optgen reads a flat catalog of command-line option records (HCL or YAML)
and generates declarative option source: one declaration per spelling,
group views, an alias table and one registration table per context.`,
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	root.SetOut(outW)
	root.SetErr(errW)
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError(err)
	})

	pf := root.PersistentFlags()
	pf.StringVar(&global.logLevel, "log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	pf.StringVar(&global.logFormat, "log-format", "text", "Log output format. Options: 'text' or 'json'.")

	root.AddCommand(
		newGenerateCommand(global, outW, errW),
		newCheckCommand(global, outW, errW),
		newFormatCommand(global, outW, errW),
	)
	return root
}

// catalogArgs requires at least one catalog path.
func catalogArgs(_ *cobra.Command, args []string) error {
	if len(args) == 0 {
		return usageError(errors.New("at least one CATALOG path is required"))
	}
	return nil
}

// newApp validates the configuration and builds the App.
func newApp(cfg app.Config, global *globalFlags, outW, errW io.Writer) (*app.App, error) {
	cfg.LogLevel = global.logLevel
	cfg.LogFormat = global.logFormat
	validated, err := app.NewConfig(cfg)
	if err != nil {
		return nil, usageError(err)
	}
	return app.NewApp(outW, errW, validated), nil
}

func newGenerateCommand(global *globalFlags, outW, errW io.Writer) *cobra.Command {
	flags := &generateFlags{}
	cmd := &cobra.Command{
		Use:   "generate CATALOG...",
		Short: "Generate option source from a catalog",
		Args:  catalogArgs,
		RunE: func(_ *cobra.Command, args []string) error {
			a, err := newApp(app.Config{
				CatalogPaths: args,
				OutputPath:   flags.output,
				Artifacts:    flags.artifacts,
				Contexts:     flags.contexts,
			}, global, outW, errW)
			if err != nil {
				return err
			}
			if err := a.Generate(); err != nil {
				return failure(err, errW)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "Write the output to FILE instead of stdout.")
	flags.bindArtifacts(cmd.Flags())
	return cmd
}

func newCheckCommand(global *globalFlags, outW, errW io.Writer) *cobra.Command {
	flags := &generateFlags{}
	cmd := &cobra.Command{
		Use:   "check CATALOG... --against FILE",
		Short: "Fail when a committed file differs from the regenerated output",
		Args:  catalogArgs,
		RunE: func(_ *cobra.Command, args []string) error {
			a, err := newApp(app.Config{
				CatalogPaths: args,
				AgainstPath:  flags.against,
				Artifacts:    flags.artifacts,
				Contexts:     flags.contexts,
			}, global, outW, errW)
			if err != nil {
				return err
			}
			if err := a.Check(); err != nil {
				return failure(err, errW)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&flags.against, "against", "", "Committed output to compare with.")
	_ = cmd.MarkFlagRequired("against")
	flags.bindArtifacts(cmd.Flags())
	return cmd
}

func newFormatCommand(global *globalFlags, outW, errW io.Writer) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "fmt CATALOG...",
		Short: "Rewrite a catalog as canonical HCL",
		Args:  catalogArgs,
		RunE: func(_ *cobra.Command, args []string) error {
			a, err := newApp(app.Config{CatalogPaths: args, OutputPath: output}, global, outW, errW)
			if err != nil {
				return err
			}
			if err := a.Format(); err != nil {
				return failure(err, errW)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write the catalog to FILE instead of stdout.")
	return cmd
}

// Execute runs the command line. It returns nil on success and an
// *ExitError otherwise.
func Execute(args []string, outW, errW io.Writer) error {
	root := NewRootCommand(outW, errW)
	root.SetArgs(args)

	err := root.Execute()
	if err == nil {
		return nil
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr
	}
	// Anything cobra rejects on its own (unknown commands, missing required
	// flags) is a usage error.
	return usageError(err)
}
