package simconnect

import "github.com/google/uuid"

// ExecuteMissionAction runs the mission action identified by instance.
func (c *Conn) ExecuteMissionAction(instance uuid.UUID) error {
	hr := c.api.ExecuteMissionAction(c.handle, GUIDFromUUID(instance))
	return c.check(hr, "SimConnect_ExecuteMissionAction")
}

// CompleteCustomMissionAction reports that the custom action received in a
// RecvCustomAction has finished.
func (c *Conn) CompleteCustomMissionAction(instance uuid.UUID) error {
	hr := c.api.CompleteCustomMissionAction(c.handle, GUIDFromUUID(instance))
	return c.check(hr, "SimConnect_CompleteCustomMissionAction")
}
