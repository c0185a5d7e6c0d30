package simconnect

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flightlink/simconnect-go/internal/bindings"
)

func openConn(t *testing.T) (*Conn, *stubAPI) {
	t.Helper()
	stub := newStub()
	c := newConn(stub, Config{})
	require.NoError(t, c.Open("ops"))
	t.Cleanup(func() { _ = c.Close() })
	return c, stub
}

func TestBooleansCrossAsZeroOrOne(t *testing.T) {
	c, stub := openConn(t)
	h := bindings.Handle(0x1234)

	require.NoError(t, c.AddClientEventToNotificationGroup(2, 3, true))
	assert.Equal(t, []any{h, bindings.SIMCONNECT_NOTIFICATION_GROUP_ID(2), bindings.SIMCONNECT_CLIENT_EVENT_ID(3), int32(1)},
		stub.last().args)

	require.NoError(t, c.AddClientEventToNotificationGroup(2, 3, false))
	assert.Equal(t, int32(0), stub.last().args[3])

	require.NoError(t, c.MapInputEventToClientEvent(1, "ctrl+u", 10, 0, Unused, 0, true))
	assert.Equal(t, int32(1), stub.last().args[7])
	assert.Equal(t, "ctrl+u", stub.last().args[2])

	require.NoError(t, c.UnsubscribeToFacilitiesEX1(FacilityListTypeAirport, true, false))
	assert.Equal(t, []any{h, bindings.SIMCONNECT_FACILITY_LIST_TYPE_AIRPORT, uint8(1), uint8(0)}, stub.last().args)

	require.NoError(t, c.AICreateEnrouteATCAircraft("Cessna", "N123", 42, `C:\plans\a.pln`, 1.5, true, 7))
	assert.Equal(t, []any{h, "Cessna", "N123", int32(42), `C:\plans\a.pln`, 1.5, int32(1), bindings.SIMCONNECT_DATA_REQUEST_ID(7)},
		stub.last().args)
}

func TestInitPositionConversion(t *testing.T) {
	c, stub := openConn(t)

	pos := InitPosition{Latitude: 47.5, Longitude: -122.3, Altitude: 500, Heading: 90, OnGround: true, Airspeed: AirspeedKeep}
	require.NoError(t, c.AICreateNonATCAircraft("Cessna", "N1", pos, 3))

	native := stub.last().args[3].(bindings.SIMCONNECT_DATA_INITPOSITION)
	assert.Equal(t, 47.5, native.Latitude)
	assert.Equal(t, -122.3, native.Longitude)
	assert.Equal(t, 90.0, native.Heading)
	assert.Equal(t, uint32(1), native.OnGround)
	assert.Equal(t, uint32(0xFFFFFFFE), native.Airspeed)

	pos.OnGround = false
	assert.Equal(t, uint32(0), pos.native().OnGround)
}

func TestEnumsPassNativeDiscriminants(t *testing.T) {
	c, stub := openConn(t)
	h := bindings.Handle(0x1234)

	require.NoError(t, c.AddToDataDefinition(1, "PLANE ALTITUDE", "feet", DataTypeFloat64, 0.5, Unused))
	assert.Equal(t, []any{h, bindings.SIMCONNECT_DATA_DEFINITION_ID(1), "PLANE ALTITUDE", "feet",
		bindings.SIMCONNECT_DATATYPE_FLOAT64, float32(0.5), uint32(Unused)}, stub.last().args)

	require.NoError(t, c.RequestDataOnSimObject(2, 1, ObjectIDUser, PeriodSecond, DataRequestFlagChanged|DataRequestFlagTagged, 0, 1, 0))
	assert.Equal(t, []any{h, bindings.SIMCONNECT_DATA_REQUEST_ID(2), bindings.SIMCONNECT_DATA_DEFINITION_ID(1),
		bindings.SIMCONNECT_OBJECT_ID(0), bindings.SIMCONNECT_PERIOD_SECOND, bindings.SIMCONNECT_DATA_REQUEST_FLAG(3),
		uint32(0), uint32(1), uint32(0)}, stub.last().args)

	require.NoError(t, c.SetInputGroupState(4, StateOn))
	assert.Equal(t, uint32(1), stub.last().args[2])

	require.NoError(t, c.AddToClientDataDefinition(5, ClientDataOffsetAuto, ClientDataTypeFloat64, 0, 0))
	assert.Equal(t, uint32(0xFFFFFFFA), stub.last().args[3])
	require.NoError(t, c.AddToClientDataDefinition(5, 0, ClientDataSize(16), 0, 0))
	assert.Equal(t, uint32(16), stub.last().args[3])

	require.NoError(t, c.RequestFacilitiesListEX1(FacilityListTypeVOR, 9))
	assert.Equal(t, bindings.SIMCONNECT_FACILITY_LIST_TYPE_VOR, stub.last().args[1])
}

func TestTransmitClientEventEX1(t *testing.T) {
	c, stub := openConn(t)

	require.NoError(t, c.TransmitClientEventEX1(ObjectIDUser, 1, NotificationGroupID(GroupPriorityHighest),
		EventFlagGroupIDIsPriority, [5]uint32{1, 2, 3, 4, 5}))
	args := stub.last().args
	assert.Equal(t, bindings.SIMCONNECT_EVENT_FLAG(0x10), args[4])
	assert.Equal(t, []uint32{1, 2, 3, 4, 5}, args[5])
}

func TestStringOperations(t *testing.T) {
	c, stub := openConn(t)

	require.NoError(t, c.RequestSystemState(1, "AircraftLoaded"))
	assert.Equal(t, "AircraftLoaded", stub.last().args[2])

	require.NoError(t, c.SetSystemState("DialogMode", 1, 0.25, ""))
	assert.Equal(t, []any{bindings.Handle(0x1234), "DialogMode", uint32(1), float32(0.25), ""}, stub.last().args)

	require.NoError(t, c.FlightSave("flight.FLT", "Title", "Description", 0))
	assert.Equal(t, []any{bindings.Handle(0x1234), "flight.FLT", "Title", "Description", uint32(0)}, stub.last().args)
}

func TestMenuOperations(t *testing.T) {
	c, stub := openConn(t)
	h := bindings.Handle(0x1234)

	require.NoError(t, c.MenuAddItem("Probe", 10, 7))
	assert.Equal(t, []any{h, "Probe", bindings.SIMCONNECT_CLIENT_EVENT_ID(10), uint32(7)}, stub.last().args)

	require.NoError(t, c.MenuAddSubItem(10, "Reset flight", 11, 42))
	assert.Equal(t, call{name: "MenuAddSubItem", args: []any{
		h, bindings.SIMCONNECT_CLIENT_EVENT_ID(10), "Reset flight", bindings.SIMCONNECT_CLIENT_EVENT_ID(11), uint32(42),
	}}, stub.last())

	require.NoError(t, c.MenuDeleteSubItem(10, 11))
	assert.Equal(t, []any{h, bindings.SIMCONNECT_CLIENT_EVENT_ID(10), bindings.SIMCONNECT_CLIENT_EVENT_ID(11)}, stub.last().args)

	require.NoError(t, c.MenuDeleteItem(10))
	assert.Equal(t, "MenuDeleteItem", stub.last().name)

	stub.hr = bindings.E_FAIL
	defer func() { stub.hr = bindings.S_OK }()
	var rerr *ResultError
	require.ErrorAs(t, c.MenuAddSubItem(10, "x", 12, 0), &rerr)
	assert.Equal(t, "SimConnect_MenuAddSubItem", rerr.Op)
}

func TestCameraSetRelative6DOF(t *testing.T) {
	c, stub := openConn(t)

	require.NoError(t, c.CameraSetRelative6DOF(0, 1, 2, CameraIgnoreField, 0, 45))
	assert.Equal(t, []float32{0, 1, 2, CameraIgnoreField, 0, 45}, stub.last().args[1])
}

func TestSetDataOnSimObject(t *testing.T) {
	c, stub := openConn(t)

	data := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	require.NoError(t, c.SetDataOnSimObject(1, ObjectIDUser, DataSetFlagDefault, 1, data))
	args := stub.last().args
	assert.Equal(t, uint32(1), args[4])
	assert.Equal(t, uint32(8), args[5])
	assert.Equal(t, data, args[6])

	require.NoError(t, c.SetDataOnSimObject(1, ObjectIDUser, DataSetFlagTagged, 2, data))
	assert.Equal(t, uint32(2), stub.last().args[4])
	assert.Equal(t, uint32(4), stub.last().args[5])

	calls := stub.count("SetDataOnSimObject")
	assert.ErrorIs(t, c.SetDataOnSimObject(1, ObjectIDUser, DataSetFlagTagged, 3, data), ErrInvalidArgument)
	assert.ErrorIs(t, c.SetDataOnSimObject(1, ObjectIDUser, DataSetFlagDefault, 1, nil), ErrInvalidArgument)
	assert.Equal(t, calls, stub.count("SetDataOnSimObject"))
}

func TestSetClientData(t *testing.T) {
	c, stub := openConn(t)

	require.NoError(t, c.SetClientData(1, 2, ClientDataSetFlagDefault, []byte("hello")))
	assert.Equal(t, []any{bindings.Handle(0x1234), bindings.SIMCONNECT_CLIENT_DATA_ID(1),
		bindings.SIMCONNECT_CLIENT_DATA_DEFINITION_ID(2), bindings.SIMCONNECT_CLIENT_DATA_SET_FLAG(0),
		uint32(0), uint32(5), "hello"}, stub.last().args)

	assert.ErrorIs(t, c.SetClientData(1, 2, ClientDataSetFlagDefault, nil), ErrInvalidArgument)
}

func TestDiagnostics(t *testing.T) {
	c, stub := openConn(t)

	stub.packetID = 77
	id, err := c.GetLastSentPacketID()
	require.NoError(t, err)
	assert.Equal(t, uint32(77), id)

	stub.times = []float32{0.1, 0.2, 0.3}
	times, err := c.RequestResponseTimes(3)
	require.NoError(t, err)
	assert.Equal(t, []float32{0.1, 0.2, 0.3}, times)

	_, err = c.RequestResponseTimes(0)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	stub.hr = bindings.E_FAIL
	_, err = c.GetLastSentPacketID()
	var rerr *ResultError
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, "SimConnect_GetLastSentPacketID", rerr.Op)
	stub.hr = bindings.S_OK
}

func TestMissionActionGUID(t *testing.T) {
	c, stub := openConn(t)

	id := uuid.MustParse("00112233-4455-6677-8899-aabbccddeeff")
	require.NoError(t, c.ExecuteMissionAction(id))
	guid := stub.last().args[1].(bindings.GUID)
	assert.Equal(t, uint32(0x00112233), guid.Data1)
	assert.Equal(t, uint16(0x4455), guid.Data2)
	assert.Equal(t, uint16(0x6677), guid.Data3)
	assert.Equal(t, [8]byte{0x88, 0x99, 0xaa, 0xbb, 0xcc, 0xdd, 0xee, 0xff}, guid.Data4)

	assert.Equal(t, id, UUIDFromGUID(guid))
}

func TestResultErrorCarriesLabel(t *testing.T) {
	c, stub := openConn(t)
	stub.hr = bindings.E_INVALIDARG
	defer func() { stub.hr = bindings.S_OK }()

	tests := []struct {
		op   string
		call func() error
	}{
		{"SimConnect_EnumerateControllers", c.EnumerateControllers},
		{"SimConnect_RequestSystemState", func() error { return c.RequestSystemState(1, "Sim") }},
		{"SimConnect_RequestFacilitesList_EX1", func() error { return c.RequestFacilitiesListEX1(FacilityListTypeNDB, 1) }},
		{"SimConnect_MapClientEventToSimEvent", func() error { return c.MapClientEventToSimEvent(1, "") }},
	}
	for _, tt := range tests {
		t.Run(tt.op, func(t *testing.T) {
			var rerr *ResultError
			require.ErrorAs(t, tt.call(), &rerr)
			assert.Equal(t, tt.op, rerr.Op)
			assert.Equal(t, E_INVALIDARG, rerr.Code)
		})
	}
}

func TestBytesToString(t *testing.T) {
	var field [260]byte
	copy(field[:], "Sim\x00junk")
	assert.Equal(t, "Sim", BytesToString(field[:]))
	assert.Equal(t, "full", BytesToString([]byte("full")))
}
