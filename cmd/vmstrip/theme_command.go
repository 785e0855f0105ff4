package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"vmstrip/internal/ipc"
)

func newThemeCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "theme <default|alternate>",
		Short: "Switch the tray icon theme",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(func(client *ipc.Client) error {
				resp, err := client.SetTheme(args[0])
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Icon theme set to %s\n", resp.Theme)
				return nil
			})
		},
	}
}
