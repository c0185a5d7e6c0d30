package simconnect

import (
	"context"
	"runtime"

	"github.com/flightlink/simconnect-go/internal/bindings"
	"github.com/flightlink/simconnect-go/pkg/simconnect/logging"
)

// Conn is a SimConnect client connection. Create one with New, then call
// Open. Operations issued before Open are forwarded with a zero handle and
// rejected by the SDK.
//
// A Conn must not be copied. If an open Conn becomes unreachable its handle
// is closed by a finalizer, but callers should Close it explicitly.
type Conn struct {
	api    bindings.API
	cfg    Config
	log    logging.Logger
	handle bindings.Handle
}

// New loads SimConnect.dll and returns a closed connection. It fails with
// ErrNotBuilt on platforms other than windows/amd64 and with
// ErrLibraryNotFound when the DLL cannot be loaded.
func New(cfg Config) (*Conn, error) {
	path := cfg.dllPath()
	api, err := bindings.Load(path)
	if err != nil {
		return nil, remapError(err)
	}
	c := newConn(api, cfg)
	c.log.Debug(context.Background(), "simconnect library loaded", "path", path)
	return c, nil
}

func newConn(api bindings.API, cfg Config) *Conn {
	return &Conn{api: api, cfg: cfg, log: cfg.logger()}
}

// Open connects to the simulator, announcing the client as name. Calling
// Open on an open connection does nothing.
func (c *Conn) Open(name string) error {
	if c.handle != 0 {
		return nil
	}

	var h bindings.Handle
	hr := c.api.Open(&h, cString(name), c.cfg.Window, c.cfg.UserEvent,
		bindings.Handle(c.cfg.EventHandle), c.cfg.ConfigIndex)
	if err := c.check(hr, "SimConnect_Open"); err != nil {
		return err
	}
	if h == 0 {
		return ErrOpenFailed
	}

	c.handle = h
	runtime.SetFinalizer(c, func(conn *Conn) {
		hr := conn.api.Close(conn.handle)
		conn.log.Debug(context.Background(), "simconnect connection released by finalizer",
			"hresult", hr.String())
	})
	c.log.Debug(context.Background(), "simconnect connection opened", "name", name)
	return nil
}

// Close releases the connection. It returns ErrAlreadyClosed when the
// connection is not open. If the SDK refuses, the handle is kept and Close
// may be retried.
func (c *Conn) Close() error {
	if c == nil || c.handle == 0 {
		return ErrAlreadyClosed
	}

	if err := c.check(c.api.Close(c.handle), "SimConnect_Close"); err != nil {
		return err
	}

	c.handle = 0
	runtime.SetFinalizer(c, nil)
	c.log.Debug(context.Background(), "simconnect connection closed")
	return nil
}

// IsOpen reports whether the connection holds a handle.
func (c *Conn) IsOpen() bool {
	return c != nil && c.handle != 0
}

// check maps an HRESULT from the SDK function op to an error. Only S_OK
// counts as success.
func (c *Conn) check(hr bindings.HRESULT, op string) error {
	if hr == bindings.S_OK {
		return nil
	}
	c.log.Debug(context.Background(), "simconnect call failed", "op", op, "hresult", hr.String())
	return &ResultError{Op: op, Code: hr}
}
