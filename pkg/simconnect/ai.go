package simconnect

import "github.com/flightlink/simconnect-go/internal/bindings"

// AICreateEnrouteATCAircraft creates an ATC controlled aircraft flying the
// flight plan at planPath, starting at planPosition (a waypoint index plus a
// fraction of the leg).
func (c *Conn) AICreateEnrouteATCAircraft(title, tailNumber string, flightNumber int32,
	planPath string, planPosition float64, touchAndGo bool, req RequestID) error {
	hr := c.api.AICreateEnrouteATCAircraft(c.handle, cString(title), cString(tailNumber), flightNumber,
		cString(planPath), planPosition, cBool(touchAndGo), bindings.SIMCONNECT_DATA_REQUEST_ID(req))
	return c.check(hr, "SimConnect_AICreateEnrouteATCAircraft")
}

// AICreateNonATCAircraft creates an aircraft outside ATC control at pos.
func (c *Conn) AICreateNonATCAircraft(title, tailNumber string, pos InitPosition, req RequestID) error {
	hr := c.api.AICreateNonATCAircraft(c.handle, cString(title), cString(tailNumber), pos.native(),
		bindings.SIMCONNECT_DATA_REQUEST_ID(req))
	return c.check(hr, "SimConnect_AICreateNonATCAircraft")
}

// AICreateParkedATCAircraft creates an aircraft parked at a gate of airport,
// given by ICAO code.
func (c *Conn) AICreateParkedATCAircraft(title, tailNumber, airport string, req RequestID) error {
	hr := c.api.AICreateParkedATCAircraft(c.handle, cString(title), cString(tailNumber), cString(airport),
		bindings.SIMCONNECT_DATA_REQUEST_ID(req))
	return c.check(hr, "SimConnect_AICreateParkedATCAircraft")
}

// AICreateSimulatedObject creates a non-aircraft object such as a vehicle or
// animal.
func (c *Conn) AICreateSimulatedObject(title string, pos InitPosition, req RequestID) error {
	hr := c.api.AICreateSimulatedObject(c.handle, cString(title), pos.native(),
		bindings.SIMCONNECT_DATA_REQUEST_ID(req))
	return c.check(hr, "SimConnect_AICreateSimulatedObject")
}

// AIReleaseControl hands an AI object over to the client.
func (c *Conn) AIReleaseControl(obj ObjectID, req RequestID) error {
	hr := c.api.AIReleaseControl(c.handle, bindings.SIMCONNECT_OBJECT_ID(obj), bindings.SIMCONNECT_DATA_REQUEST_ID(req))
	return c.check(hr, "SimConnect_AIReleaseControl")
}

func (c *Conn) AIRemoveObject(obj ObjectID, req RequestID) error {
	hr := c.api.AIRemoveObject(c.handle, bindings.SIMCONNECT_OBJECT_ID(obj), bindings.SIMCONNECT_DATA_REQUEST_ID(req))
	return c.check(hr, "SimConnect_AIRemoveObject")
}

func (c *Conn) AISetAircraftFlightPlan(obj ObjectID, planPath string, req RequestID) error {
	hr := c.api.AISetAircraftFlightPlan(c.handle, bindings.SIMCONNECT_OBJECT_ID(obj), cString(planPath),
		bindings.SIMCONNECT_DATA_REQUEST_ID(req))
	return c.check(hr, "SimConnect_AISetAircraftFlightPlan")
}
