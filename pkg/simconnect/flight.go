package simconnect

func (c *Conn) FlightLoad(path string) error {
	return c.check(c.api.FlightLoad(c.handle, cString(path)), "SimConnect_FlightLoad")
}

// FlightSave saves the current flight to path. flags is reserved and
// should be 0.
func (c *Conn) FlightSave(path, title, description string, flags uint32) error {
	hr := c.api.FlightSave(c.handle, cString(path), cString(title), cString(description), flags)
	return c.check(hr, "SimConnect_FlightSave")
}

func (c *Conn) FlightPlanLoad(path string) error {
	return c.check(c.api.FlightPlanLoad(c.handle, cString(path)), "SimConnect_FlightPlanLoad")
}
