package simconnect

import (
	"fmt"

	"github.com/flightlink/simconnect-go/internal/bindings"
)

// DataType is the type of one entry in a data definition.
type DataType int32

const (
	DataTypeInvalid      = DataType(bindings.SIMCONNECT_DATATYPE_INVALID)
	DataTypeInt32        = DataType(bindings.SIMCONNECT_DATATYPE_INT32)
	DataTypeInt64        = DataType(bindings.SIMCONNECT_DATATYPE_INT64)
	DataTypeFloat32      = DataType(bindings.SIMCONNECT_DATATYPE_FLOAT32)
	DataTypeFloat64      = DataType(bindings.SIMCONNECT_DATATYPE_FLOAT64)
	DataTypeString8      = DataType(bindings.SIMCONNECT_DATATYPE_STRING8)
	DataTypeString32     = DataType(bindings.SIMCONNECT_DATATYPE_STRING32)
	DataTypeString64     = DataType(bindings.SIMCONNECT_DATATYPE_STRING64)
	DataTypeString128    = DataType(bindings.SIMCONNECT_DATATYPE_STRING128)
	DataTypeString256    = DataType(bindings.SIMCONNECT_DATATYPE_STRING256)
	DataTypeString260    = DataType(bindings.SIMCONNECT_DATATYPE_STRING260)
	DataTypeStringV      = DataType(bindings.SIMCONNECT_DATATYPE_STRINGV)
	DataTypeInitPosition = DataType(bindings.SIMCONNECT_DATATYPE_INITPOSITION)
	DataTypeMarkerState  = DataType(bindings.SIMCONNECT_DATATYPE_MARKERSTATE)
	DataTypeWaypoint     = DataType(bindings.SIMCONNECT_DATATYPE_WAYPOINT)
	DataTypeLatLonAlt    = DataType(bindings.SIMCONNECT_DATATYPE_LATLONALT)
	DataTypeXYZ          = DataType(bindings.SIMCONNECT_DATATYPE_XYZ)
	DataTypeMax          = DataType(bindings.SIMCONNECT_DATATYPE_MAX)
)

var dataTypeNames = map[DataType]string{
	DataTypeInvalid:      "Invalid",
	DataTypeInt32:        "Int32",
	DataTypeInt64:        "Int64",
	DataTypeFloat32:      "Float32",
	DataTypeFloat64:      "Float64",
	DataTypeString8:      "String8",
	DataTypeString32:     "String32",
	DataTypeString64:     "String64",
	DataTypeString128:    "String128",
	DataTypeString256:    "String256",
	DataTypeString260:    "String260",
	DataTypeStringV:      "StringV",
	DataTypeInitPosition: "InitPosition",
	DataTypeMarkerState:  "MarkerState",
	DataTypeWaypoint:     "Waypoint",
	DataTypeLatLonAlt:    "LatLonAlt",
	DataTypeXYZ:          "XYZ",
	DataTypeMax:          "Max",
}

func (t DataType) String() string { return enumName(dataTypeNames, t) }

func (t DataType) native() bindings.SIMCONNECT_DATATYPE { return bindings.SIMCONNECT_DATATYPE(t) }

// Period is how often simulation object data is sent.
type Period int32

const (
	PeriodNever       = Period(bindings.SIMCONNECT_PERIOD_NEVER)
	PeriodOnce        = Period(bindings.SIMCONNECT_PERIOD_ONCE)
	PeriodVisualFrame = Period(bindings.SIMCONNECT_PERIOD_VISUAL_FRAME)
	PeriodSimFrame    = Period(bindings.SIMCONNECT_PERIOD_SIM_FRAME)
	PeriodSecond      = Period(bindings.SIMCONNECT_PERIOD_SECOND)
)

var periodNames = map[Period]string{
	PeriodNever:       "Never",
	PeriodOnce:        "Once",
	PeriodVisualFrame: "VisualFrame",
	PeriodSimFrame:    "SimFrame",
	PeriodSecond:      "Second",
}

func (p Period) String() string { return enumName(periodNames, p) }

func (p Period) native() bindings.SIMCONNECT_PERIOD { return bindings.SIMCONNECT_PERIOD(p) }

// ClientDataPeriod is how often client data is sent.
type ClientDataPeriod int32

const (
	ClientDataPeriodNever       = ClientDataPeriod(bindings.SIMCONNECT_CLIENT_DATA_PERIOD_NEVER)
	ClientDataPeriodOnce        = ClientDataPeriod(bindings.SIMCONNECT_CLIENT_DATA_PERIOD_ONCE)
	ClientDataPeriodVisualFrame = ClientDataPeriod(bindings.SIMCONNECT_CLIENT_DATA_PERIOD_VISUAL_FRAME)
	ClientDataPeriodOnSet       = ClientDataPeriod(bindings.SIMCONNECT_CLIENT_DATA_PERIOD_ON_SET)
	ClientDataPeriodSecond      = ClientDataPeriod(bindings.SIMCONNECT_CLIENT_DATA_PERIOD_SECOND)
)

var clientDataPeriodNames = map[ClientDataPeriod]string{
	ClientDataPeriodNever:       "Never",
	ClientDataPeriodOnce:        "Once",
	ClientDataPeriodVisualFrame: "VisualFrame",
	ClientDataPeriodOnSet:       "OnSet",
	ClientDataPeriodSecond:      "Second",
}

func (p ClientDataPeriod) String() string { return enumName(clientDataPeriodNames, p) }

func (p ClientDataPeriod) native() bindings.SIMCONNECT_CLIENT_DATA_PERIOD {
	return bindings.SIMCONNECT_CLIENT_DATA_PERIOD(p)
}

// SimObjectType selects the kind of simulation objects a request covers.
type SimObjectType int32

const (
	SimObjectTypeUser       = SimObjectType(bindings.SIMCONNECT_SIMOBJECT_TYPE_USER)
	SimObjectTypeAll        = SimObjectType(bindings.SIMCONNECT_SIMOBJECT_TYPE_ALL)
	SimObjectTypeAircraft   = SimObjectType(bindings.SIMCONNECT_SIMOBJECT_TYPE_AIRCRAFT)
	SimObjectTypeHelicopter = SimObjectType(bindings.SIMCONNECT_SIMOBJECT_TYPE_HELICOPTER)
	SimObjectTypeBoat       = SimObjectType(bindings.SIMCONNECT_SIMOBJECT_TYPE_BOAT)
	SimObjectTypeGround     = SimObjectType(bindings.SIMCONNECT_SIMOBJECT_TYPE_GROUND)
)

var simObjectTypeNames = map[SimObjectType]string{
	SimObjectTypeUser:       "User",
	SimObjectTypeAll:        "All",
	SimObjectTypeAircraft:   "Aircraft",
	SimObjectTypeHelicopter: "Helicopter",
	SimObjectTypeBoat:       "Boat",
	SimObjectTypeGround:     "Ground",
}

func (t SimObjectType) String() string { return enumName(simObjectTypeNames, t) }

func (t SimObjectType) native() bindings.SIMCONNECT_SIMOBJECT_TYPE {
	return bindings.SIMCONNECT_SIMOBJECT_TYPE(t)
}

// FacilityListType selects airports, waypoints, NDBs or VORs.
type FacilityListType int32

const (
	FacilityListTypeAirport  = FacilityListType(bindings.SIMCONNECT_FACILITY_LIST_TYPE_AIRPORT)
	FacilityListTypeWaypoint = FacilityListType(bindings.SIMCONNECT_FACILITY_LIST_TYPE_WAYPOINT)
	FacilityListTypeNDB      = FacilityListType(bindings.SIMCONNECT_FACILITY_LIST_TYPE_NDB)
	FacilityListTypeVOR      = FacilityListType(bindings.SIMCONNECT_FACILITY_LIST_TYPE_VOR)
	FacilityListTypeCount    = FacilityListType(bindings.SIMCONNECT_FACILITY_LIST_TYPE_COUNT)
)

var facilityListTypeNames = map[FacilityListType]string{
	FacilityListTypeAirport:  "Airport",
	FacilityListTypeWaypoint: "Waypoint",
	FacilityListTypeNDB:      "NDB",
	FacilityListTypeVOR:      "VOR",
	FacilityListTypeCount:    "Count",
}

func (t FacilityListType) String() string { return enumName(facilityListTypeNames, t) }

func (t FacilityListType) native() bindings.SIMCONNECT_FACILITY_LIST_TYPE {
	return bindings.SIMCONNECT_FACILITY_LIST_TYPE(t)
}

// State turns a system event or input group on or off.
type State int32

const (
	StateOff = State(bindings.SIMCONNECT_STATE_OFF)
	StateOn  = State(bindings.SIMCONNECT_STATE_ON)
)

func (s State) String() string {
	switch s {
	case StateOff:
		return "Off"
	case StateOn:
		return "On"
	}
	return fmt.Sprintf("State(%d)", int32(s))
}

func (s State) native() bindings.SIMCONNECT_STATE { return bindings.SIMCONNECT_STATE(s) }

// ClientDataType is either a byte count or one of the typed sizes below, as
// accepted by AddToClientDataDefinition.
type ClientDataType uint32

const (
	ClientDataTypeInt8    ClientDataType = bindings.SIMCONNECT_CLIENTDATATYPE_INT8
	ClientDataTypeInt16   ClientDataType = bindings.SIMCONNECT_CLIENTDATATYPE_INT16
	ClientDataTypeInt32   ClientDataType = bindings.SIMCONNECT_CLIENTDATATYPE_INT32
	ClientDataTypeInt64   ClientDataType = bindings.SIMCONNECT_CLIENTDATATYPE_INT64
	ClientDataTypeFloat32 ClientDataType = bindings.SIMCONNECT_CLIENTDATATYPE_FLOAT32
	ClientDataTypeFloat64 ClientDataType = bindings.SIMCONNECT_CLIENTDATATYPE_FLOAT64
)

// ClientDataSize describes an untyped client data entry of n bytes.
func ClientDataSize(n uint32) ClientDataType { return ClientDataType(n) }

// Flag sets. Each value is a bit mask; combine with |.
type (
	EventFlag             uint32
	DataRequestFlag       uint32
	DataSetFlag           uint32
	CreateClientDataFlag  uint32
	ClientDataRequestFlag uint32
	ClientDataSetFlag     uint32
)

const (
	EventFlagDefault           EventFlag = bindings.SIMCONNECT_EVENT_FLAG_DEFAULT
	EventFlagFastRepeatTimer   EventFlag = bindings.SIMCONNECT_EVENT_FLAG_FAST_REPEAT_TIMER
	EventFlagSlowRepeatTimer   EventFlag = bindings.SIMCONNECT_EVENT_FLAG_SLOW_REPEAT_TIMER
	EventFlagGroupIDIsPriority EventFlag = bindings.SIMCONNECT_EVENT_FLAG_GROUPID_IS_PRIORITY
)

const (
	DataRequestFlagDefault DataRequestFlag = bindings.SIMCONNECT_DATA_REQUEST_FLAG_DEFAULT
	DataRequestFlagChanged DataRequestFlag = bindings.SIMCONNECT_DATA_REQUEST_FLAG_CHANGED
	DataRequestFlagTagged  DataRequestFlag = bindings.SIMCONNECT_DATA_REQUEST_FLAG_TAGGED
)

const (
	DataSetFlagDefault DataSetFlag = bindings.SIMCONNECT_DATA_SET_FLAG_DEFAULT
	DataSetFlagTagged  DataSetFlag = bindings.SIMCONNECT_DATA_SET_FLAG_TAGGED
)

const (
	CreateClientDataFlagDefault  CreateClientDataFlag = bindings.SIMCONNECT_CREATE_CLIENT_DATA_FLAG_DEFAULT
	CreateClientDataFlagReadOnly CreateClientDataFlag = bindings.SIMCONNECT_CREATE_CLIENT_DATA_FLAG_READ_ONLY
)

const (
	ClientDataRequestFlagDefault ClientDataRequestFlag = bindings.SIMCONNECT_CLIENT_DATA_REQUEST_FLAG_DEFAULT
	ClientDataRequestFlagChanged ClientDataRequestFlag = bindings.SIMCONNECT_CLIENT_DATA_REQUEST_FLAG_CHANGED
	ClientDataRequestFlagTagged  ClientDataRequestFlag = bindings.SIMCONNECT_CLIENT_DATA_REQUEST_FLAG_TAGGED
)

const (
	ClientDataSetFlagDefault ClientDataSetFlag = bindings.SIMCONNECT_CLIENT_DATA_SET_FLAG_DEFAULT
	ClientDataSetFlagTagged  ClientDataSetFlag = bindings.SIMCONNECT_CLIENT_DATA_SET_FLAG_TAGGED
)

func (f EventFlag) native() bindings.SIMCONNECT_EVENT_FLAG { return bindings.SIMCONNECT_EVENT_FLAG(f) }

func (f DataRequestFlag) native() bindings.SIMCONNECT_DATA_REQUEST_FLAG {
	return bindings.SIMCONNECT_DATA_REQUEST_FLAG(f)
}

func (f DataSetFlag) native() bindings.SIMCONNECT_DATA_SET_FLAG {
	return bindings.SIMCONNECT_DATA_SET_FLAG(f)
}

func (f CreateClientDataFlag) native() bindings.SIMCONNECT_CREATE_CLIENT_DATA_FLAG {
	return bindings.SIMCONNECT_CREATE_CLIENT_DATA_FLAG(f)
}

func (f ClientDataRequestFlag) native() bindings.SIMCONNECT_CLIENT_DATA_REQUEST_FLAG {
	return bindings.SIMCONNECT_CLIENT_DATA_REQUEST_FLAG(f)
}

func (f ClientDataSetFlag) native() bindings.SIMCONNECT_CLIENT_DATA_SET_FLAG {
	return bindings.SIMCONNECT_CLIENT_DATA_SET_FLAG(f)
}

func enumName[T ~int32](names map[T]string, v T) string {
	if name, ok := names[v]; ok {
		return name
	}
	return fmt.Sprintf("%T(%d)", v, int32(v))
}
