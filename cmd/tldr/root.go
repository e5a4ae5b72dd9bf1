// Package tldr wires the command surface: the bare invocation renders a
// page, subcommands manage the cache.
package tldr

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/quickpage/tldr/internal/version"
	"github.com/quickpage/tldr/pkg/commands/show"
	"github.com/quickpage/tldr/pkg/config"
	"github.com/quickpage/tldr/pkg/errors"
	"github.com/quickpage/tldr/pkg/logging"
	"github.com/quickpage/tldr/pkg/pages"
	"github.com/quickpage/tldr/pkg/paths"
	"github.com/quickpage/tldr/pkg/render"
	"github.com/quickpage/tldr/pkg/style"
)

// appContext bundles the resolved settings and paths every command needs
type appContext struct {
	settings *config.Settings
	paths    paths.Paths
}

// newAppContext derives paths and settings once, then applies flag
// overrides on top.
func newAppContext(platformFlag, languageFlag string) (*appContext, error) {
	p, err := paths.New("")
	if err != nil {
		return nil, fmt.Errorf(MsgErrInitPaths, err)
	}

	settings, err := config.Load(p.ConfigFilePath())
	if err != nil {
		return nil, fmt.Errorf(MsgErrLoadConfig, err)
	}

	if platformFlag != "" {
		settings.Platform = platformFlag
	}
	if languageFlag != "" {
		settings.Language = languageFlag
	}

	return &appContext{settings: settings, paths: p}, nil
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	var (
		verbosity    int
		platformFlag string
		languageFlag string
	)

	rootCmd := &cobra.Command{
		Use:     "tldr [command name...]",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		Args:    cobra.ArbitraryArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cmd, args, platformFlag, languageFlag)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVarP(&platformFlag, "platform", "p", "", MsgFlagPlatform)
	rootCmd.PersistentFlags().StringVarP(&languageFlag, "language", "L", "", MsgFlagLanguage)

	rootCmd.AddCommand(newListCmd(&platformFlag, &languageFlag))
	rootCmd.AddCommand(newUpdateCmd(&platformFlag, &languageFlag))
	rootCmd.AddCommand(newClearCmd(&platformFlag, &languageFlag))

	return rootCmd
}

// runShow renders the page for the named command, or a document piped on
// stdin when no name is given.
func runShow(cmd *cobra.Command, args []string, platformFlag, languageFlag string) error {
	renderer := render.NewRenderer(cmd.OutOrStdout(), style.NewResolver())

	if len(args) == 0 {
		if isatty.IsTerminal(os.Stdin.Fd()) {
			_ = cmd.Help()
			return fmt.Errorf(MsgErrNoCommand)
		}
		doc, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf(MsgErrReadStdin, err)
		}
		return renderer.Render(string(doc))
	}

	ctx, err := newAppContext(platformFlag, languageFlag)
	if err != nil {
		return err
	}

	command := pages.NormalizeCommand(args)
	result, err := show.Show(show.Options{
		Settings: ctx.settings,
		Paths:    ctx.paths,
		Command:  command,
	})
	if err != nil {
		if errors.IsErrorCode(err, errors.ErrPageNotFound) {
			return fmt.Errorf(MsgErrPageNotFound, command)
		}
		return err
	}

	return renderer.Render(result.Content)
}
