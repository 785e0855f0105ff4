package ipc

import (
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
	"time"
)

// Client provides RPC access to the daemon.
type Client struct {
	conn   net.Conn
	client *rpc.Client
}

// Dial connects to the IPC server at the given socket path.
func Dial(path string) (*Client, error) {
	conn, err := net.DialTimeout("unix", path, 2*time.Second)
	if err != nil {
		return nil, err
	}
	rpcClient := rpc.NewClientWithCodec(jsonrpc.NewClientCodec(conn))
	return &Client{conn: conn, client: rpcClient}, nil
}

// Close closes the underlying connection.
func (c *Client) Close() error {
	if c.client != nil {
		_ = c.client.Close()
	}
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}

// Status retrieves daemon and strip state.
func (c *Client) Status() (*StatusResponse, error) {
	var resp StatusResponse
	if err := c.client.Call("Vmstrip.Status", StatusRequest{}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Stop asks the daemon process to shut down.
func (c *Client) Stop() (*StopResponse, error) {
	var resp StopResponse
	if err := c.client.Call("Vmstrip.Stop", StopRequest{}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ToggleMute flips the strip mute flag.
func (c *Client) ToggleMute() (*ToggleMuteResponse, error) {
	var resp ToggleMuteResponse
	if err := c.client.Call("Vmstrip.ToggleMute", ToggleMuteRequest{}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ToggleRoute flips one output route by name ("A1" or "A2").
func (c *Client) ToggleRoute(bus string) (*ToggleRouteResponse, error) {
	var resp ToggleRouteResponse
	if err := c.client.Call("Vmstrip.ToggleRoute", ToggleRouteRequest{Bus: bus}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// AdjustGain applies a relative gain change in decibels.
func (c *Client) AdjustGain(deltaDB float64) (*GainResponse, error) {
	var resp GainResponse
	if err := c.client.Call("Vmstrip.AdjustGain", AdjustGainRequest{DeltaDB: deltaDB}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// SetGain applies an absolute gain target in decibels.
func (c *Client) SetGain(gainDB float64) (*GainResponse, error) {
	var resp GainResponse
	if err := c.client.Call("Vmstrip.SetGain", SetGainRequest{GainDB: gainDB}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// SetTheme switches the tray icon theme.
func (c *Client) SetTheme(theme string) (*SetThemeResponse, error) {
	var resp SetThemeResponse
	if err := c.client.Call("Vmstrip.SetTheme", SetThemeRequest{Theme: theme}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// HistoryList fetches journal entries, newest first.
func (c *Client) HistoryList(limit int) (*HistoryListResponse, error) {
	var resp HistoryListResponse
	if err := c.client.Call("Vmstrip.HistoryList", HistoryListRequest{Limit: limit}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// HistoryClear removes all journal entries.
func (c *Client) HistoryClear() (*HistoryClearResponse, error) {
	var resp HistoryClearResponse
	if err := c.client.Call("Vmstrip.HistoryClear", HistoryClearRequest{}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// TestNotification triggers a notification test via the daemon.
func (c *Client) TestNotification() (*TestNotificationResponse, error) {
	var resp TestNotificationResponse
	if err := c.client.Call("Vmstrip.TestNotification", TestNotificationRequest{}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
