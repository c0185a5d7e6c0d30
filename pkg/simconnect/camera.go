package simconnect

// CameraSetRelative6DOF moves the user's eyepoint relative to its default
// position. Pass CameraIgnoreField for any value to leave unchanged.
func (c *Conn) CameraSetRelative6DOF(dx, dy, dz, pitch, bank, heading float32) error {
	hr := c.api.CameraSetRelative6DOF(c.handle, dx, dy, dz, pitch, bank, heading)
	return c.check(hr, "SimConnect_CameraSetRelative6DOF")
}
