package simconnect

import "github.com/flightlink/simconnect-go/internal/bindings"

// RequestFacilitiesList requests the facilities of typ in the reality
// bubble. The answer arrives as one or more Recv*List messages.
func (c *Conn) RequestFacilitiesList(typ FacilityListType, req RequestID) error {
	hr := c.api.RequestFacilitiesList(c.handle, typ.native(), bindings.SIMCONNECT_DATA_REQUEST_ID(req))
	return c.check(hr, "SimConnect_RequestFacilitiesList")
}

// RequestFacilitiesListEX1 requests every facility of typ in the world.
func (c *Conn) RequestFacilitiesListEX1(typ FacilityListType, req RequestID) error {
	hr := c.api.RequestFacilitesListEX1(c.handle, typ.native(), bindings.SIMCONNECT_DATA_REQUEST_ID(req))
	return c.check(hr, "SimConnect_RequestFacilitesList_EX1")
}

// SubscribeToFacilities reports facilities of typ as they enter the reality
// bubble.
func (c *Conn) SubscribeToFacilities(typ FacilityListType, req RequestID) error {
	hr := c.api.SubscribeToFacilities(c.handle, typ.native(), bindings.SIMCONNECT_DATA_REQUEST_ID(req))
	return c.check(hr, "SimConnect_SubscribeToFacilities")
}

// SubscribeToFacilitiesEX1 reports facilities entering the reality bubble
// with inRange and those leaving it with outRange.
func (c *Conn) SubscribeToFacilitiesEX1(typ FacilityListType, inRange, outRange RequestID) error {
	hr := c.api.SubscribeToFacilitiesEX1(c.handle, typ.native(),
		bindings.SIMCONNECT_DATA_REQUEST_ID(inRange), bindings.SIMCONNECT_DATA_REQUEST_ID(outRange))
	return c.check(hr, "SimConnect_SubscribeToFacilities_EX1")
}

func (c *Conn) UnsubscribeToFacilities(typ FacilityListType) error {
	hr := c.api.UnsubscribeToFacilities(c.handle, typ.native())
	return c.check(hr, "SimConnect_UnsubscribeToFacilities")
}

// UnsubscribeToFacilitiesEX1 cancels either side of a SubscribeToFacilitiesEX1
// subscription.
func (c *Conn) UnsubscribeToFacilitiesEX1(typ FacilityListType, inRange, outRange bool) error {
	hr := c.api.UnsubscribeToFacilitiesEX1(c.handle, typ.native(), cxxBool(inRange), cxxBool(outRange))
	return c.check(hr, "SimConnect_UnsubscribeToFacilities_EX1")
}

// AddToFacilityDefinition appends a field path such as "OPEN AIRPORT" or
// "LATITUDE" to def.
func (c *Conn) AddToFacilityDefinition(def DataDefinitionID, field string) error {
	hr := c.api.AddToFacilityDefinition(c.handle, bindings.SIMCONNECT_DATA_DEFINITION_ID(def), cString(field))
	return c.check(hr, "SimConnect_AddToFacilityDefinition")
}

// RequestFacilityData requests def for the facility icao. region may be
// empty.
func (c *Conn) RequestFacilityData(def DataDefinitionID, req RequestID, icao, region string) error {
	hr := c.api.RequestFacilityData(c.handle, bindings.SIMCONNECT_DATA_DEFINITION_ID(def),
		bindings.SIMCONNECT_DATA_REQUEST_ID(req), cString(icao), cString(region))
	return c.check(hr, "SimConnect_RequestFacilityData")
}
