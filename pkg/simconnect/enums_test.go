package simconnect

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/flightlink/simconnect-go/internal/bindings"
)

func TestEnumMapping(t *testing.T) {
	tests := []struct {
		name   string
		got    int32
		native int32
	}{
		{"DataTypeInvalid", int32(DataTypeInvalid.native()), 0},
		{"DataTypeInt32", int32(DataTypeInt32.native()), 1},
		{"DataTypeXYZ", int32(DataTypeXYZ.native()), 16},
		{"PeriodNever", int32(PeriodNever.native()), 0},
		{"PeriodSecond", int32(PeriodSecond.native()), 4},
		{"ClientDataPeriodOnSet", int32(ClientDataPeriodOnSet.native()), 3},
		{"SimObjectTypeUser", int32(SimObjectTypeUser.native()), 0},
		{"SimObjectTypeAircraft", int32(SimObjectTypeAircraft.native()), 2},
		{"FacilityListTypeWaypoint", int32(FacilityListTypeWaypoint.native()), 1},
		{"StateOn", int32(StateOn.native()), 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.native, tt.got)
		})
	}
}

func TestFlagMapping(t *testing.T) {
	assert.Equal(t, bindings.SIMCONNECT_EVENT_FLAG(0x2), EventFlagSlowRepeatTimer.native())
	assert.Equal(t, bindings.SIMCONNECT_DATA_REQUEST_FLAG(0x2), DataRequestFlagTagged.native())
	assert.Equal(t, bindings.SIMCONNECT_DATA_SET_FLAG(0x1), DataSetFlagTagged.native())
	assert.Equal(t, bindings.SIMCONNECT_CREATE_CLIENT_DATA_FLAG(0x1), CreateClientDataFlagReadOnly.native())
	assert.Equal(t, bindings.SIMCONNECT_CLIENT_DATA_REQUEST_FLAG(0x1), ClientDataRequestFlagChanged.native())
	assert.Equal(t, bindings.SIMCONNECT_CLIENT_DATA_SET_FLAG(0x1), ClientDataSetFlagTagged.native())
}

func TestClientDataTypes(t *testing.T) {
	assert.Equal(t, ClientDataType(0xFFFFFFFF), ClientDataTypeInt8)
	assert.Equal(t, ClientDataType(0xFFFFFFFA), ClientDataTypeFloat64)
	assert.Equal(t, ClientDataType(24), ClientDataSize(24))
}

func TestEnumStrings(t *testing.T) {
	assert.Equal(t, "Float64", DataTypeFloat64.String())
	assert.Equal(t, "VisualFrame", PeriodVisualFrame.String())
	assert.Equal(t, "Aircraft", SimObjectTypeAircraft.String())
	assert.Equal(t, "Off", StateOff.String())
	assert.Equal(t, "simconnect.DataType(99)", DataType(99).String())
	assert.Equal(t, "State(7)", State(7).String())

	assert.Equal(t, "SimObjectData", RecvIDSimObjectData.String())
	assert.Equal(t, "RecvID(10)", RecvID(10).String(), "weather ids are not part of the surface")
	assert.Equal(t, "OutOfBounds", ExceptionOutOfBounds.String())
	assert.Equal(t, "Exception(16)", Exception(16).String())
}

func TestReceiveDiscriminantsKeepNumbering(t *testing.T) {
	assert.Equal(t, RecvID(4), RecvIDEvent)
	assert.Equal(t, RecvID(9), RecvIDSimObjectDataByType)
	assert.Equal(t, RecvID(12), RecvIDAssignedObjectID)
	assert.Equal(t, RecvID(32), RecvIDControllersList)
	assert.Equal(t, Exception(11), ExceptionTooManyObjects)
	assert.Equal(t, Exception(18), ExceptionInvalidDataType)
	assert.Equal(t, Exception(31), ExceptionOutOfBounds)
}
