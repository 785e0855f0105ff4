package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"vmstrip/internal/ipc"
)

func newTestNotifyCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "test-notify",
		Short: "Send a test desktop notification through the daemon",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(func(client *ipc.Client) error {
				resp, err := client.TestNotification()
				if err != nil {
					return err
				}
				stdout := cmd.OutOrStdout()
				if resp.Sent {
					fmt.Fprintln(stdout, "Notification sent")
				} else {
					fmt.Fprintf(stdout, "Notification failed: %s\n", resp.Message)
				}
				return nil
			})
		},
	}
}
