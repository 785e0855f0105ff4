package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"time"

	"github.com/spf13/cobra"

	"vmstrip/internal/daemonctl"
	"vmstrip/internal/ipc"
)

func newDaemonCommands(ctx *commandContext) []*cobra.Command {
	startCmd := &cobra.Command{
		Use:   "start",
		Short: "Start the vmstrip daemon",
		RunE: func(cmd *cobra.Command, args []string) error {
			stdout := cmd.OutOrStdout()
			exe, err := daemonExecutable()
			if err != nil {
				return err
			}

			result, err := daemonctl.EnsureStarted(
				ctx.socketPath(),
				exe,
				daemonctl.LaunchOptions{ConfigPath: ctx.configPath()},
				10*time.Second,
			)
			if err != nil {
				return err
			}

			switch result.State {
			case daemonctl.StartStateStarted:
				fmt.Fprintln(stdout, "Daemon started")
			case daemonctl.StartStateAlreadyRunning:
				fmt.Fprintln(stdout, "Daemon already running")
			}
			return nil
		},
	}

	stopCmd := &cobra.Command{
		Use:   "stop",
		Short: "Stop the vmstrip daemon",
		RunE: func(cmd *cobra.Command, args []string) error {
			stdout := cmd.OutOrStdout()
			err := daemonctl.Stop(ctx.socketPath(), 5*time.Second)
			if errors.Is(err, daemonctl.ErrDaemonNotRunning) {
				fmt.Fprintln(stdout, "Daemon is not running")
				return nil
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(stdout, "Daemon stopped")
			return nil
		},
	}

	statusCmd := &cobra.Command{
		Use:   "status",
		Short: "Show strip and daemon status",
		RunE: func(cmd *cobra.Command, args []string) error {
			stdout := cmd.OutOrStdout()
			colorize := shouldColorize(stdout)

			client, err := ctx.dialClient()
			if err != nil {
				for _, line := range renderSectionHeader("Daemon", colorize) {
					fmt.Fprintln(stdout, line)
				}
				fmt.Fprintln(stdout, renderStatusLine("vmstrip", statusWarn, "Not running (run `vmstrip start`)", colorize))
				return nil
			}
			defer client.Close()

			status, err := client.Status()
			if err != nil {
				return err
			}

			printStatus(stdout, status, ctx.configValue().UI.StripLabel, colorize)
			return nil
		},
	}

	return []*cobra.Command{startCmd, stopCmd, statusCmd}
}

func printStatus(stdout io.Writer, status *ipc.StatusResponse, stripLabel string, colorize bool) {
	for _, line := range renderSectionHeader("Daemon", colorize) {
		fmt.Fprintln(stdout, line)
	}
	if status.Running {
		fmt.Fprintln(stdout, renderStatusLine("vmstrip", statusOK, fmt.Sprintf("Running (pid %d)", status.PID), colorize))
	} else {
		fmt.Fprintln(stdout, renderStatusLine("vmstrip", statusWarn, "Not running", colorize))
	}
	if status.BackendOK {
		fmt.Fprintln(stdout, renderStatusLine("VoiceMeeter", statusOK, "Connected", colorize))
	} else {
		fmt.Fprintln(stdout, renderStatusLine("VoiceMeeter", statusWarn, "Unreachable, showing last known state", colorize))
	}
	fmt.Fprintln(stdout)

	for _, line := range renderSectionHeader(stripLabel, colorize) {
		fmt.Fprintln(stdout, line)
	}
	muteKind := statusOK
	muteDetail := "Live"
	if status.Muted {
		muteKind = statusWarn
		muteDetail = "Muted"
	}
	fmt.Fprintln(stdout, renderStatusLine("Mute", muteKind, muteDetail, colorize))
	fmt.Fprintln(stdout, renderStatusLine("Route A1", routeKind(status.RouteA1), onOff(status.RouteA1), colorize))
	fmt.Fprintln(stdout, renderStatusLine("Route A2", routeKind(status.RouteA2), onOff(status.RouteA2), colorize))
	fmt.Fprintln(stdout, renderStatusLine("Gain", statusInfo, fmt.Sprintf("%.1f dB", status.GainDB), colorize))
	fmt.Fprintln(stdout, renderStatusLine("Icon theme", statusInfo, status.Theme, colorize))
}

func routeKind(active bool) statusKind {
	if active {
		return statusOK
	}
	return statusInfo
}

// daemonExecutable locates vmstripd, preferring the CLI's own directory and
// falling back to PATH lookup.
func daemonExecutable() (string, error) {
	name := "vmstripd"
	if runtime.GOOS == "windows" {
		name += ".exe"
	}
	self, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("resolve executable: %w", err)
	}
	candidate := filepath.Join(filepath.Dir(self), name)
	if _, err := os.Stat(candidate); err == nil {
		return candidate, nil
	}
	return exec.LookPath(name)
}
