package simconnect

import (
	"errors"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flightlink/simconnect-go/internal/bindings"
)

func TestOpenCloseScenario(t *testing.T) {
	stub := newStub()
	c := newConn(stub, Config{})

	assert.NoError(t, c.Open("test"))
	assert.NoError(t, c.Close())
	assert.ErrorIs(t, c.Close(), ErrAlreadyClosed)

	assert.Equal(t, 1, stub.count("Open"))
	assert.Equal(t, 1, stub.count("Close"))
	assert.False(t, c.IsOpen())
}

func TestOpenPassesConfig(t *testing.T) {
	stub := newStub()
	c := newConn(stub, Config{Window: 0x10, UserEvent: 0x400, EventHandle: 0x20, ConfigIndex: OpenConfigIndexLocal})

	require.NoError(t, c.Open("probe"))
	assert.Equal(t, []any{"probe", uintptr(0x10), uint32(0x400), bindings.Handle(0x20), uint32(OpenConfigIndexLocal)},
		stub.last().args)
	assert.True(t, c.IsOpen())
}

func TestOpenIsIdempotent(t *testing.T) {
	stub := newStub()
	c := newConn(stub, Config{})

	require.NoError(t, c.Open("a"))
	require.NoError(t, c.Open("b"))
	assert.Equal(t, 1, stub.count("Open"))
	require.NoError(t, c.Close())
}

func TestCloseWhenClosedMakesNoCall(t *testing.T) {
	stub := newStub()
	c := newConn(stub, Config{})

	assert.ErrorIs(t, c.Close(), ErrAlreadyClosed)
	assert.Zero(t, stub.count("Close"))

	var nilConn *Conn
	assert.ErrorIs(t, nilConn.Close(), ErrAlreadyClosed)
	assert.False(t, nilConn.IsOpen())
}

func TestOpenFailure(t *testing.T) {
	stub := newStub()
	stub.openHR = bindings.E_FAIL
	c := newConn(stub, Config{})

	err := c.Open("test")
	var rerr *ResultError
	require.True(t, errors.As(err, &rerr))
	assert.Equal(t, "SimConnect_Open", rerr.Op)
	assert.Equal(t, E_FAIL, rerr.Code)
	assert.EqualError(t, err, "simconnect: SimConnect_Open failed (hresult E_FAIL)")
	assert.False(t, c.IsOpen())
}

func TestOpenWithoutHandle(t *testing.T) {
	stub := newStub()
	stub.handle = 0
	c := newConn(stub, Config{})

	assert.ErrorIs(t, c.Open("test"), ErrOpenFailed)
	assert.False(t, c.IsOpen())
}

func TestFailedCloseKeepsHandle(t *testing.T) {
	stub := newStub()
	c := newConn(stub, Config{})
	require.NoError(t, c.Open("test"))

	stub.closeHR = bindings.E_INVALIDARG
	err := c.Close()
	var rerr *ResultError
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, "SimConnect_Close", rerr.Op)
	assert.True(t, c.IsOpen())

	stub.closeHR = bindings.S_OK
	require.NoError(t, c.Close())
	assert.Equal(t, []any{bindings.Handle(0x1234)}, stub.last().args)
}

func TestPositiveResultIsFailure(t *testing.T) {
	stub := newStub()
	stub.hr = 1 // S_FALSE
	c := newConn(stub, Config{})

	var rerr *ResultError
	require.ErrorAs(t, c.EnumerateControllers(), &rerr)
	assert.Equal(t, "0x00000001", rerr.Code.String())
}

func TestOperationsBeforeOpenUseZeroHandle(t *testing.T) {
	stub := newStub()
	c := newConn(stub, Config{})

	require.NoError(t, c.EnumerateControllers())
	assert.Equal(t, []any{bindings.Handle(0)}, stub.last().args)
}

func TestNULInStringPanicsBeforeCall(t *testing.T) {
	stub := newStub()
	c := newConn(stub, Config{})

	assert.Panics(t, func() { _ = c.Open("bad\x00name") })
	assert.Zero(t, stub.count("Open"))

	assert.PanicsWithValue(t, `simconnect: string argument "a\x00b" contains a NUL byte`, func() {
		_ = c.MapClientEventToSimEvent(1, "a\x00b")
	})
	assert.Zero(t, stub.count("MapClientEventToSimEvent"))
}

func TestDroppedConnReleasesHandle(t *testing.T) {
	stub := newStub()
	func() {
		c := newConn(stub, Config{})
		require.NoError(t, c.Open("dropped"))
	}()

	require.Eventually(t, func() bool {
		runtime.GC()
		return stub.count("Close") == 1
	}, 5*time.Second, 10*time.Millisecond)
}

func TestClosedConnIsNotReleasedAgain(t *testing.T) {
	stub := newStub()
	func() {
		c := newConn(stub, Config{})
		require.NoError(t, c.Open("closed"))
		require.NoError(t, c.Close())
	}()

	for range 3 {
		runtime.GC()
		time.Sleep(10 * time.Millisecond)
	}
	assert.Equal(t, 1, stub.count("Close"))
}
