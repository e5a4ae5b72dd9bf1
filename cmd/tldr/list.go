package tldr

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quickpage/tldr/pkg/commands/list"
	"github.com/quickpage/tldr/pkg/pages"
)

func newListCmd(platformFlag, languageFlag *string) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: MsgListShort,
		Long:  MsgListLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := newAppContext(*platformFlag, *languageFlag)
			if err != nil {
				return err
			}

			platform := ctx.settings.Platform
			if all {
				platform = pages.PlatformAll
			}

			result, err := list.List(list.Options{
				Settings: ctx.settings,
				Paths:    ctx.paths,
				Platform: platform,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(result.Pages) == 0 {
				fmt.Fprintln(out, MsgNoPagesFound)
				return nil
			}
			for _, name := range result.Pages {
				fmt.Fprintln(out, pageItemStyle.Render(name))
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&all, "all", "a", false, MsgFlagAll)

	return cmd
}
