package tldr

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quickpage/tldr/pkg/commands/clear"
	"github.com/quickpage/tldr/pkg/commands/update"
)

func newUpdateCmd(platformFlag, languageFlag *string) *cobra.Command {
	return &cobra.Command{
		Use:   "update",
		Short: MsgUpdateShort,
		Long:  MsgUpdateLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := newAppContext(*platformFlag, *languageFlag)
			if err != nil {
				return err
			}

			if err := update.Update(update.Options{
				Settings: ctx.settings,
				Paths:    ctx.paths,
			}); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), successStyle.Render(MsgCacheUpdated))
			return nil
		},
	}
}

func newClearCmd(platformFlag, languageFlag *string) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: MsgClearShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := newAppContext(*platformFlag, *languageFlag)
			if err != nil {
				return err
			}

			if err := clear.Clear(clear.Options{Paths: ctx.paths}); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), successStyle.Render(MsgCacheCleared))
			return nil
		},
	}
}
