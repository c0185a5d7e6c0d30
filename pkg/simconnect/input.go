package simconnect

import "github.com/flightlink/simconnect-go/internal/bindings"

// MapInputEventToClientEvent maps an input definition such as "ctrl+u" or
// "joystick:0:button:1" to client events fired on key down and key up. Pass
// Unused as up to ignore the release.
func (c *Conn) MapInputEventToClientEvent(group InputGroupID, definition string,
	down ClientEventID, downValue uint32, up ClientEventID, upValue uint32, maskable bool) error {
	hr := c.api.MapInputEventToClientEvent(c.handle, bindings.SIMCONNECT_INPUT_GROUP_ID(group), cString(definition),
		bindings.SIMCONNECT_CLIENT_EVENT_ID(down), downValue,
		bindings.SIMCONNECT_CLIENT_EVENT_ID(up), upValue, cBool(maskable))
	return c.check(hr, "SimConnect_MapInputEventToClientEvent")
}

// MapInputEventToClientEventEX1 is MapInputEventToClientEvent for the
// extended input definitions accepted by newer simulators.
func (c *Conn) MapInputEventToClientEventEX1(group InputGroupID, definition string,
	down ClientEventID, downValue uint32, up ClientEventID, upValue uint32, maskable bool) error {
	hr := c.api.MapInputEventToClientEventEX1(c.handle, bindings.SIMCONNECT_INPUT_GROUP_ID(group), cString(definition),
		bindings.SIMCONNECT_CLIENT_EVENT_ID(down), downValue,
		bindings.SIMCONNECT_CLIENT_EVENT_ID(up), upValue, cBool(maskable))
	return c.check(hr, "SimConnect_MapInputEventToClientEventEX1")
}

func (c *Conn) SetInputGroupPriority(group InputGroupID, priority uint32) error {
	hr := c.api.SetInputGroupPriority(c.handle, bindings.SIMCONNECT_INPUT_GROUP_ID(group), priority)
	return c.check(hr, "SimConnect_SetInputGroupPriority")
}

func (c *Conn) RemoveInputEvent(group InputGroupID, definition string) error {
	hr := c.api.RemoveInputEvent(c.handle, bindings.SIMCONNECT_INPUT_GROUP_ID(group), cString(definition))
	return c.check(hr, "SimConnect_RemoveInputEvent")
}

func (c *Conn) ClearInputGroup(group InputGroupID) error {
	hr := c.api.ClearInputGroup(c.handle, bindings.SIMCONNECT_INPUT_GROUP_ID(group))
	return c.check(hr, "SimConnect_ClearInputGroup")
}

// SetInputGroupState turns an input group on or off.
func (c *Conn) SetInputGroupState(group InputGroupID, state State) error {
	hr := c.api.SetInputGroupState(c.handle, bindings.SIMCONNECT_INPUT_GROUP_ID(group), uint32(state))
	return c.check(hr, "SimConnect_SetInputGroupState")
}

// RequestReservedKey asks for the first free key out of three choices. The
// granted key arrives as a RecvReservedKey.
func (c *Conn) RequestReservedKey(event ClientEventID, choice1, choice2, choice3 string) error {
	hr := c.api.RequestReservedKey(c.handle, bindings.SIMCONNECT_CLIENT_EVENT_ID(event),
		cString(choice1), cString(choice2), cString(choice3))
	return c.check(hr, "SimConnect_RequestReservedKey")
}

// EnumerateControllers requests a RecvControllersList describing the
// attached input devices.
func (c *Conn) EnumerateControllers() error {
	return c.check(c.api.EnumerateControllers(c.handle), "SimConnect_EnumerateControllers")
}
