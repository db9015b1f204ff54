package catalogpromo

import (
	"context"
	"embed"
	"fmt"
	"io"
	"io/fs"

	"github.com/arthur-debert/catalogpromo/internal/version"
	"github.com/arthur-debert/catalogpromo/pkg/actions"
	"github.com/arthur-debert/catalogpromo/pkg/cobrax/topics"
	"github.com/arthur-debert/catalogpromo/pkg/config"
	"github.com/arthur-debert/catalogpromo/pkg/errors"
	"github.com/arthur-debert/catalogpromo/pkg/logging"
	"github.com/arthur-debert/catalogpromo/pkg/output"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

//go:embed topics
var topicFiles embed.FS

// annotationSkipConfig marks commands that run without loading the configuration
const annotationSkipConfig = "catalogpromo/skip-config"

// app holds the global flags and the state shared by the commands of one run
type app struct {
	verbosity  int
	configFile string
	strict     bool
	noColor    bool
	format     string

	cfg *config.Config
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	return newRootCmd(&app{})
}

// Execute runs the command line given by args. A failure is rendered to
// stderr in the format selected with --format and the exit code is
// returned.
func Execute(args []string, stdout, stderr io.Writer) int {
	a := &app{}
	rootCmd := newRootCmd(a)
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.Execute(); err != nil {
		a.renderError(stderr, err)
		return 1
	}
	return 0
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "catalogpromo",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return errors.New(errors.ErrInvalidInput, MsgErrNoCommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	flags := rootCmd.PersistentFlags()
	flags.CountVarP(&a.verbosity, "verbose", "v", MsgFlagVerbose)
	flags.StringVarP(&a.configFile, "config", "c", "", MsgFlagConfig)
	flags.BoolVar(&a.strict, "strict", false, MsgFlagStrict)
	flags.BoolVar(&a.noColor, "no-color", false, MsgFlagNoColor)
	flags.StringVarP(&a.format, "format", "f", "auto", MsgFlagFormat)
	_ = rootCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return output.FormatNames(), cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddGroup(&cobra.Group{ID: "core", Title: "COMMANDS:"})
	rootCmd.AddGroup(&cobra.Group{ID: "misc", Title: "MISC:"})

	rootCmd.AddCommand(newActionsCmd(a))
	rootCmd.AddCommand(newValidateCmd(a))
	rootCmd.AddCommand(newPricesCmd(a))
	rootCmd.AddCommand(newVersionCmd(a))
	rootCmd.AddCommand(newCompletionCmd())

	topicsFS, err := fs.Sub(topicFiles, "topics")
	if err == nil {
		err = topics.InitializeWithOptions(rootCmd, topicsFS, topics.Options{
			Renderer: topics.NewGlamourRenderer(),
		})
	}
	if err != nil {
		log.Warn().Err(err).Msg("Help topics unavailable")
	}

	return rootCmd
}

// setup loads the configuration and configures logging before any command runs
func (a *app) setup(cmd *cobra.Command) error {
	logFile := false
	if cmd.Annotations[annotationSkipConfig] == "" {
		cfg, err := a.loadConfig()
		if err != nil {
			return err
		}
		a.cfg = cfg
		logFile = cfg.Logging.File
	}

	logging.SetupLoggerWithOptions(logging.Options{
		Verbosity: a.verbosity,
		File:      logFile,
		Console:   cmd.ErrOrStderr(),
		NoColor:   a.noColor,
	})
	log.Debug().Str("command", cmd.CommandPath()).Msg("Command started")
	return nil
}

// loadConfig loads the layered configuration with the global flags applied
func (a *app) loadConfig() (*config.Config, error) {
	cfg, err := config.Load(config.LoadOptions{ConfigFile: a.configFile})
	if err != nil {
		return nil, errors.Wrap(err, errors.GetErrorCode(err), MsgErrLoadConfig)
	}
	if a.strict {
		cfg.Registry.Strict = true
	}
	return cfg, nil
}

// renderError writes err to w. An unusable --format falls back to auto
// detection so the failure is still reported.
func (a *app) renderError(w io.Writer, err error) {
	format, perr := output.ParseFormat(a.format)
	if perr != nil {
		format = output.FormatAuto
	}
	if rerr := output.NewRenderer(w, format, a.noColor).RenderError(err); rerr != nil {
		fmt.Fprintln(w, err)
	}
}

// renderer creates the output renderer for cmd from the --format flag
func (a *app) renderer(cmd *cobra.Command) (*output.Renderer, error) {
	format, err := output.ParseFormat(a.format)
	if err != nil {
		return nil, err
	}
	return output.NewRenderer(cmd.OutOrStdout(), format, a.noColor), nil
}

// catalog builds the action catalog from the loaded configuration
func (a *app) catalog(ctx context.Context) (*actions.Catalog, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	catalog, err := a.cfg.Catalog(ctx)
	if err != nil {
		return nil, errors.Wrap(err, errors.GetErrorCode(err), MsgErrBuildCatalog)
	}
	log.Info().
		Int("actions", catalog.Len()).
		Int("overrides", len(catalog.Overrides())).
		Bool("strict", a.cfg.Registry.Strict).
		Msg("Action catalog built")
	return catalog, nil
}
