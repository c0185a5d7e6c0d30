package simconnect

import (
	"fmt"
	"unsafe"

	"github.com/flightlink/simconnect-go/internal/bindings"
)

// AddToDataDefinition appends the simulation variable datum, expressed in
// units, to def. Changes smaller than epsilon are not reported when
// DataRequestFlagChanged is used. datumID tags the value in tagged requests;
// pass Unused otherwise.
func (c *Conn) AddToDataDefinition(def DataDefinitionID, datum, units string, typ DataType,
	epsilon float32, datumID uint32) error {
	hr := c.api.AddToDataDefinition(c.handle, bindings.SIMCONNECT_DATA_DEFINITION_ID(def),
		cString(datum), cString(units), typ.native(), epsilon, datumID)
	return c.check(hr, "SimConnect_AddToDataDefinition")
}

func (c *Conn) ClearDataDefinition(def DataDefinitionID) error {
	hr := c.api.ClearDataDefinition(c.handle, bindings.SIMCONNECT_DATA_DEFINITION_ID(def))
	return c.check(hr, "SimConnect_ClearDataDefinition")
}

// RequestDataOnSimObject requests def for obj every period. origin skips the
// first periods, interval sets how many periods pass between updates and
// limit stops the request after that many updates (0 means never).
func (c *Conn) RequestDataOnSimObject(req RequestID, def DataDefinitionID, obj ObjectID, period Period,
	flags DataRequestFlag, origin, interval, limit uint32) error {
	hr := c.api.RequestDataOnSimObject(c.handle, bindings.SIMCONNECT_DATA_REQUEST_ID(req),
		bindings.SIMCONNECT_DATA_DEFINITION_ID(def), bindings.SIMCONNECT_OBJECT_ID(obj),
		period.native(), flags.native(), origin, interval, limit)
	return c.check(hr, "SimConnect_RequestDataOnSimObject")
}

// RequestDataOnSimObjectType requests def once for every object of typ
// within radius meters of the user aircraft.
func (c *Conn) RequestDataOnSimObjectType(req RequestID, def DataDefinitionID, radius uint32, typ SimObjectType) error {
	hr := c.api.RequestDataOnSimObjectType(c.handle, bindings.SIMCONNECT_DATA_REQUEST_ID(req),
		bindings.SIMCONNECT_DATA_DEFINITION_ID(def), radius, typ.native())
	return c.check(hr, "SimConnect_RequestDataOnSimObjectType")
}

// SetDataOnSimObject writes data, laid out as def, to obj. When count is
// greater than one data holds that many equally sized elements and flags
// should include DataSetFlagTagged.
func (c *Conn) SetDataOnSimObject(def DataDefinitionID, obj ObjectID, flags DataSetFlag, count uint32, data []byte) error {
	unit, err := unitSize(len(data), count)
	if err != nil {
		return err
	}
	hr := c.api.SetDataOnSimObject(c.handle, bindings.SIMCONNECT_DATA_DEFINITION_ID(def),
		bindings.SIMCONNECT_OBJECT_ID(obj), flags.native(), count, unit, unsafe.Pointer(&data[0]))
	return c.check(hr, "SimConnect_SetDataOnSimObject")
}

// unitSize splits a payload of n bytes into count elements.
func unitSize(n int, count uint32) (uint32, error) {
	if n == 0 {
		return 0, fmt.Errorf("%w: empty data set", ErrInvalidArgument)
	}
	if count <= 1 {
		return uint32(n), nil
	}
	if n%int(count) != 0 {
		return 0, fmt.Errorf("%w: %d bytes do not split into %d elements", ErrInvalidArgument, n, count)
	}
	return uint32(n / int(count)), nil
}
