package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"vmstrip/internal/ipc"
)

func newMuteCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "mute",
		Short: "Toggle the strip mute flag",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(func(client *ipc.Client) error {
				resp, err := client.ToggleMute()
				if err != nil {
					return err
				}
				stdout := cmd.OutOrStdout()
				if !resp.Applied {
					fmt.Fprintln(stdout, "VoiceMeeter unreachable, mute unchanged")
					return nil
				}
				if resp.Muted {
					fmt.Fprintln(stdout, "Strip muted")
				} else {
					fmt.Fprintln(stdout, "Strip unmuted")
				}
				return nil
			})
		},
	}
}

func newRouteCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "route <a1|a2>",
		Short: "Toggle one output route",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(func(client *ipc.Client) error {
				resp, err := client.ToggleRoute(args[0])
				if err != nil {
					return err
				}
				stdout := cmd.OutOrStdout()
				if !resp.Applied {
					fmt.Fprintf(stdout, "VoiceMeeter unreachable, route %s unchanged\n", resp.Bus)
					return nil
				}
				fmt.Fprintf(stdout, "Route %s %s\n", resp.Bus, onOff(resp.Active))
				return nil
			})
		},
	}
}

func newGainCommand(ctx *commandContext) *cobra.Command {
	gainCmd := &cobra.Command{
		Use:   "gain",
		Short: "Adjust strip gain",
	}

	setCmd := &cobra.Command{
		Use:   "set <decibels>",
		Short: "Set an absolute gain level in dB",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("parse gain %q: %w", args[0], err)
			}
			return ctx.withClient(func(client *ipc.Client) error {
				resp, err := client.SetGain(target)
				if err != nil {
					return err
				}
				return printGain(cmd, resp)
			})
		},
	}

	upCmd := &cobra.Command{
		Use:   "up [decibels]",
		Short: "Raise gain (default 2 dB)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			step, err := gainStep(args)
			if err != nil {
				return err
			}
			return ctx.withClient(func(client *ipc.Client) error {
				resp, err := client.AdjustGain(step)
				if err != nil {
					return err
				}
				return printGain(cmd, resp)
			})
		},
	}

	downCmd := &cobra.Command{
		Use:   "down [decibels]",
		Short: "Lower gain (default 2 dB)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			step, err := gainStep(args)
			if err != nil {
				return err
			}
			return ctx.withClient(func(client *ipc.Client) error {
				resp, err := client.AdjustGain(-step)
				if err != nil {
					return err
				}
				return printGain(cmd, resp)
			})
		},
	}

	gainCmd.AddCommand(setCmd)
	gainCmd.AddCommand(upCmd)
	gainCmd.AddCommand(downCmd)
	return gainCmd
}

func gainStep(args []string) (float64, error) {
	if len(args) == 0 {
		return 2, nil
	}
	step, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return 0, fmt.Errorf("parse step %q: %w", args[0], err)
	}
	if step < 0 {
		return 0, fmt.Errorf("step must be positive, got %s", args[0])
	}
	return step, nil
}

func printGain(cmd *cobra.Command, resp *ipc.GainResponse) error {
	stdout := cmd.OutOrStdout()
	if !resp.Applied {
		fmt.Fprintln(stdout, "VoiceMeeter unreachable, gain unchanged")
		return nil
	}
	fmt.Fprintf(stdout, "Gain %.1f dB\n", resp.GainDB)
	return nil
}
