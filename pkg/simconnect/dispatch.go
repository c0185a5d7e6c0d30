package simconnect

import "github.com/flightlink/simconnect-go/internal/bindings"

// GetNextDispatch removes one message from the receive queue. SimConnect
// reports an empty queue as a failure, so callers polling the queue should
// expect a *ResultError with Code E_FAIL when nothing is pending.
func (c *Conn) GetNextDispatch() (*Message, error) {
	var (
		data *bindings.SIMCONNECT_RECV
		size uint32
	)
	if err := c.check(c.api.GetNextDispatch(c.handle, &data, &size), "SimConnect_GetNextDispatch"); err != nil {
		return nil, err
	}
	if data == nil || size == 0 {
		return nil, &ResultError{Op: "SimConnect_GetNextDispatch", Code: bindings.E_FAIL}
	}
	return newMessage(data, size), nil
}

// CallDispatch drains the receive queue, calling fn once per message before
// returning. fn runs on the calling goroutine.
//
// A panic in fn must not unwind through SimConnect's frames. It is recovered
// in the callback, the rest of the queue is skipped, and the panic is raised
// again once SimConnect_CallDispatch has returned.
func (c *Conn) CallDispatch(fn func(*Message)) error {
	if fn == nil {
		return ErrInvalidArgument
	}
	var panicked any
	key := bindings.RegisterDispatch(func(data *bindings.SIMCONNECT_RECV, size uint32) {
		if panicked != nil {
			return
		}
		defer func() {
			if r := recover(); r != nil {
				panicked = r
			}
		}()
		fn(newMessage(data, size))
	})
	defer bindings.UnregisterDispatch(key)

	hr := c.api.CallDispatch(c.handle, bindings.DispatchCallback(), key)
	if panicked != nil {
		panic(panicked)
	}
	return c.check(hr, "SimConnect_CallDispatch")
}
