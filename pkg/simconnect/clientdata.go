package simconnect

import (
	"fmt"
	"unsafe"

	"github.com/flightlink/simconnect-go/internal/bindings"
)

// MapClientDataNameToID binds a named client data area to id.
func (c *Conn) MapClientDataNameToID(name string, id ClientDataID) error {
	hr := c.api.MapClientDataNameToID(c.handle, cString(name), bindings.SIMCONNECT_CLIENT_DATA_ID(id))
	return c.check(hr, "SimConnect_MapClientDataNameToID")
}

// CreateClientData allocates size bytes, at most ClientDataMaxSize, for a
// mapped client data area.
func (c *Conn) CreateClientData(id ClientDataID, size uint32, flags CreateClientDataFlag) error {
	hr := c.api.CreateClientData(c.handle, bindings.SIMCONNECT_CLIENT_DATA_ID(id), size, flags.native())
	return c.check(hr, "SimConnect_CreateClientData")
}

// AddToClientDataDefinition appends an entry at offset (or
// ClientDataOffsetAuto) to def.
func (c *Conn) AddToClientDataDefinition(def ClientDataDefinitionID, offset uint32, sizeOrType ClientDataType,
	epsilon float32, datumID uint32) error {
	hr := c.api.AddToClientDataDefinition(c.handle, bindings.SIMCONNECT_CLIENT_DATA_DEFINITION_ID(def),
		offset, uint32(sizeOrType), epsilon, datumID)
	return c.check(hr, "SimConnect_AddToClientDataDefinition")
}

func (c *Conn) ClearClientDataDefinition(def ClientDataDefinitionID) error {
	hr := c.api.ClearClientDataDefinition(c.handle, bindings.SIMCONNECT_CLIENT_DATA_DEFINITION_ID(def))
	return c.check(hr, "SimConnect_ClearClientDataDefinition")
}

// RequestClientData requests def from the client data area id. origin,
// interval and limit behave as in RequestDataOnSimObject.
func (c *Conn) RequestClientData(id ClientDataID, req RequestID, def ClientDataDefinitionID,
	period ClientDataPeriod, flags ClientDataRequestFlag, origin, interval, limit uint32) error {
	hr := c.api.RequestClientData(c.handle, bindings.SIMCONNECT_CLIENT_DATA_ID(id),
		bindings.SIMCONNECT_DATA_REQUEST_ID(req), bindings.SIMCONNECT_CLIENT_DATA_DEFINITION_ID(def),
		period.native(), flags.native(), origin, interval, limit)
	return c.check(hr, "SimConnect_RequestClientData")
}

// SetClientData writes data, laid out as def, to the client data area id.
func (c *Conn) SetClientData(id ClientDataID, def ClientDataDefinitionID, flags ClientDataSetFlag, data []byte) error {
	if len(data) == 0 {
		return fmt.Errorf("%w: empty client data", ErrInvalidArgument)
	}
	hr := c.api.SetClientData(c.handle, bindings.SIMCONNECT_CLIENT_DATA_ID(id),
		bindings.SIMCONNECT_CLIENT_DATA_DEFINITION_ID(def), flags.native(), 0, uint32(len(data)),
		unsafe.Pointer(&data[0]))
	return c.check(hr, "SimConnect_SetClientData")
}
