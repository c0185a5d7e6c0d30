package simconnect

import "github.com/flightlink/simconnect-go/internal/bindings"

// RequestSystemState asks for a system state such as "AircraftLoaded" or
// "Sim". The answer arrives as a RecvSystemState tagged with req.
func (c *Conn) RequestSystemState(req RequestID, state string) error {
	hr := c.api.RequestSystemState(c.handle, bindings.SIMCONNECT_DATA_REQUEST_ID(req), cString(state))
	return c.check(hr, "SimConnect_RequestSystemState")
}

func (c *Conn) SetSystemState(state string, integer uint32, float float32, str string) error {
	hr := c.api.SetSystemState(c.handle, cString(state), integer, float, cString(str))
	return c.check(hr, "SimConnect_SetSystemState")
}
