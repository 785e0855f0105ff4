// Command vmstripd is the long-running vmstrip process: it connects to
// VoiceMeeter, registers global hotkeys, shows the system tray icon, and
// serves the CLI over a Unix socket.
package main

import (
	"context"
	"flag"
	"log"
	"os/signal"
	"syscall"

	"vmstrip/internal/config"
	"vmstrip/internal/ipc"
	"vmstrip/internal/logging"
)

func main() {
	configPath := flag.String("config", "", "configuration file path")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, _, _, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if err := cfg.EnsureDirectories(); err != nil {
		log.Fatalf("prepare directories: %v", err)
	}

	logger, err := logging.NewFromConfig(cfg)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}

	app, d, cleanup, err := bootstrap(cfg, logger)
	if err != nil {
		logger.Error("bootstrap failed", logging.Error(err))
		return
	}
	defer cleanup()

	if err := d.Start(ctx); err != nil {
		logger.Error("daemon start failed", logging.Error(err))
		return
	}
	defer d.Stop()

	ipcServer, err := ipc.NewServer(ctx, cfg.SocketPath(), d, logger, cancel)
	if err != nil {
		logger.Error("start ipc server failed", logging.Error(err))
		return
	}
	defer ipcServer.Close()
	ipcServer.Serve()

	// Quit the tray when the context ends, whether from a signal or an IPC
	// stop request. The tray quit item cancels the context via onQuit.
	go func() {
		<-ctx.Done()
		app.Quit()
	}()

	// systray must own the main thread; this blocks until quit.
	app.Run()
	cancel()
	logger.Info("vmstripd shutting down")
}
