package ipc

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
	"os"
	"sync"

	"log/slog"

	"vmstrip/internal/daemon"
	"vmstrip/internal/history"
	"vmstrip/internal/logging"
	"vmstrip/internal/settings"
	"vmstrip/internal/strip"
)

// Server exposes daemon control via JSON-RPC over a Unix domain socket.
type Server struct {
	path      string
	daemon    *daemon.Daemon
	logger    *slog.Logger
	listener  net.Listener
	rpcServer *rpc.Server

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewServer configures the IPC server at the given socket path. onStop runs
// after a Stop RPC so the host process can begin shutdown.
func NewServer(ctx context.Context, path string, d *daemon.Daemon, logger *slog.Logger, onStop func()) (*Server, error) {
	if d == nil {
		return nil, errors.New("ipc server requires daemon")
	}
	if logger == nil {
		logger = logging.NewNop()
	}

	if err := os.RemoveAll(path); err != nil {
		return nil, fmt.Errorf("remove existing socket: %w", err)
	}

	listener, err := net.Listen("unix", path)
	if err != nil {
		return nil, fmt.Errorf("listen on socket: %w", err)
	}

	rpcServer := rpc.NewServer()
	srv := &service{daemon: d, logger: logging.NewComponentLogger(logger, "ipc"), ctx: ctx, onStop: onStop}
	if err := rpcServer.RegisterName("Vmstrip", srv); err != nil {
		listener.Close()
		return nil, fmt.Errorf("register rpc service: %w", err)
	}

	serverCtx, cancel := context.WithCancel(ctx)
	return &Server{
		path:      path,
		daemon:    d,
		logger:    logger,
		listener:  listener,
		rpcServer: rpcServer,
		ctx:       serverCtx,
		cancel:    cancel,
	}, nil
}

// Serve starts accepting RPC connections until the context is canceled.
func (s *Server) Serve() {
	s.logger.Debug("ipc server listening", logging.String("socket", s.path))
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		for {
			conn, err := s.listener.Accept()
			if err != nil {
				select {
				case <-s.ctx.Done():
					return
				default:
				}
				s.logger.Warn("accept failed", logging.Error(err))
				continue
			}
			s.wg.Add(1)
			go func(c net.Conn) {
				defer s.wg.Done()
				s.rpcServer.ServeCodec(jsonrpc.NewServerCodec(c))
			}(conn)
		}
	}()
}

// Close stops the server and removes the socket file.
func (s *Server) Close() {
	s.cancel()
	if s.listener != nil {
		_ = s.listener.Close()
	}
	s.wg.Wait()
	if err := os.RemoveAll(s.path); err != nil {
		s.logger.Warn("failed to remove socket",
			logging.String("socket", s.path),
			logging.Error(err))
	}
}

type service struct {
	daemon *daemon.Daemon
	logger *slog.Logger
	ctx    context.Context
	onStop func()
}

func (s *service) Status(_ StatusRequest, resp *StatusResponse) error {
	status := s.daemon.Status()
	resp.Running = status.Running
	resp.BackendOK = status.BackendOK
	resp.Muted = status.Snapshot.Muted
	resp.RouteA1 = status.Snapshot.RouteA1
	resp.RouteA2 = status.Snapshot.RouteA2
	resp.GainDB = status.Snapshot.GainDB
	resp.Theme = string(status.Theme)
	resp.SessionID = status.SessionID
	resp.HistoryPath = status.HistoryPath
	resp.LockPath = status.LockFilePath
	resp.PID = os.Getpid()
	return nil
}

func (s *service) Stop(_ StopRequest, resp *StopResponse) error {
	s.logger.Info("daemon stop requested via ipc")
	s.daemon.Stop()
	resp.Stopped = true
	if s.onStop != nil {
		go s.onStop()
	}
	return nil
}

func (s *service) ToggleMute(_ ToggleMuteRequest, resp *ToggleMuteResponse) error {
	result := s.daemon.ToggleMute()
	resp.Muted = result.Value
	resp.Applied = result.OK
	return nil
}

func (s *service) ToggleRoute(req ToggleRouteRequest, resp *ToggleRouteResponse) error {
	bus, err := strip.ParseBus(req.Bus)
	if err != nil {
		return err
	}
	result := s.daemon.ToggleRoute(bus)
	resp.Bus = bus.String()
	resp.Active = result.Value
	resp.Applied = result.OK
	return nil
}

func (s *service) AdjustGain(req AdjustGainRequest, resp *GainResponse) error {
	result := s.daemon.AdjustGain(req.DeltaDB)
	resp.GainDB = result.Value
	resp.Applied = result.OK
	return nil
}

func (s *service) SetGain(req SetGainRequest, resp *GainResponse) error {
	result := s.daemon.SetGain(req.GainDB)
	resp.GainDB = result.Value
	resp.Applied = result.OK
	return nil
}

func (s *service) SetTheme(req SetThemeRequest, resp *SetThemeResponse) error {
	theme, err := settings.ParseTheme(req.Theme)
	if err != nil {
		return err
	}
	if err := s.daemon.SetTheme(theme); err != nil {
		return err
	}
	resp.Theme = string(theme)
	s.logger.Info("icon theme changed via ipc", logging.String("theme", string(theme)))
	return nil
}

func (s *service) HistoryList(req HistoryListRequest, resp *HistoryListResponse) error {
	entries, err := s.daemon.HistoryList(s.ctx, req.Limit)
	if err != nil {
		return err
	}
	resp.Entries = make([]HistoryEntry, 0, len(entries))
	for _, entry := range entries {
		resp.Entries = append(resp.Entries, convertEntry(entry))
	}
	return nil
}

func (s *service) HistoryClear(_ HistoryClearRequest, resp *HistoryClearResponse) error {
	removed, err := s.daemon.HistoryClear(s.ctx)
	if err != nil {
		return err
	}
	resp.Removed = removed
	s.logger.Info("history cleared via ipc", logging.Int64("removed_count", removed))
	return nil
}

func (s *service) TestNotification(_ TestNotificationRequest, resp *TestNotificationResponse) error {
	if err := s.daemon.TestNotification(); err != nil {
		resp.Sent = false
		resp.Message = err.Error()
		return nil
	}
	resp.Sent = true
	resp.Message = "notification sent"
	return nil
}

func convertEntry(entry history.Entry) HistoryEntry {
	return HistoryEntry{
		ID:        entry.ID,
		SessionID: entry.SessionID,
		Action:    entry.Action,
		Detail:    entry.Detail,
		CreatedAt: entry.CreatedAt,
	}
}
