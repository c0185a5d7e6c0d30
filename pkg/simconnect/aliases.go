package simconnect

import "github.com/flightlink/simconnect-go/internal/bindings"

// HRESULT is the raw result code returned by SimConnect.
type HRESULT = bindings.HRESULT

// Result codes re-exported for callers inspecting a ResultError.
const (
	S_OK          = bindings.S_OK
	E_FAIL        = bindings.E_FAIL
	E_NOTIMPL     = bindings.E_NOTIMPL
	E_INVALIDARG  = bindings.E_INVALIDARG
	E_OUTOFMEMORY = bindings.E_OUTOFMEMORY
)

// Received message layouts. A Message's Data can be reinterpreted as the
// structure matching its ID with Decode.
type (
	Recv                     = bindings.SIMCONNECT_RECV
	RecvException            = bindings.SIMCONNECT_RECV_EXCEPTION
	RecvOpen                 = bindings.SIMCONNECT_RECV_OPEN
	RecvQuit                 = bindings.SIMCONNECT_RECV_QUIT
	RecvEvent                = bindings.SIMCONNECT_RECV_EVENT
	RecvEventEX1             = bindings.SIMCONNECT_RECV_EVENT_EX1
	RecvEventFilename        = bindings.SIMCONNECT_RECV_EVENT_FILENAME
	RecvEventObjectAddRemove = bindings.SIMCONNECT_RECV_EVENT_OBJECT_ADDREMOVE
	RecvEventFrame           = bindings.SIMCONNECT_RECV_EVENT_FRAME
	RecvEventRaceEnd         = bindings.SIMCONNECT_RECV_EVENT_RACE_END
	RecvEventRaceLap         = bindings.SIMCONNECT_RECV_EVENT_RACE_LAP
	RecvSimObjectData        = bindings.SIMCONNECT_RECV_SIMOBJECT_DATA
	RecvSimObjectDataByType  = bindings.SIMCONNECT_RECV_SIMOBJECT_DATA_BYTYPE
	RecvClientData           = bindings.SIMCONNECT_RECV_CLIENT_DATA
	RecvAssignedObjectID     = bindings.SIMCONNECT_RECV_ASSIGNED_OBJECT_ID
	RecvReservedKey          = bindings.SIMCONNECT_RECV_RESERVED_KEY
	RecvSystemState          = bindings.SIMCONNECT_RECV_SYSTEM_STATE
	RecvCustomAction         = bindings.SIMCONNECT_RECV_CUSTOM_ACTION
	RecvFacilitiesList       = bindings.SIMCONNECT_RECV_FACILITIES_LIST
	RecvAirportList          = bindings.SIMCONNECT_RECV_AIRPORT_LIST
	RecvWaypointList         = bindings.SIMCONNECT_RECV_WAYPOINT_LIST
	RecvNDBList              = bindings.SIMCONNECT_RECV_NDB_LIST
	RecvVORList              = bindings.SIMCONNECT_RECV_VOR_LIST
	RecvFacilityData         = bindings.SIMCONNECT_RECV_FACILITY_DATA
	RecvFacilityDataEnd      = bindings.SIMCONNECT_RECV_FACILITY_DATA_END
	RecvControllersList      = bindings.SIMCONNECT_RECV_CONTROLLERS_LIST
	DataFacilityAirport      = bindings.SIMCONNECT_DATA_FACILITY_AIRPORT
	DataFacilityWaypoint     = bindings.SIMCONNECT_DATA_FACILITY_WAYPOINT
	DataFacilityNDB          = bindings.SIMCONNECT_DATA_FACILITY_NDB
	DataFacilityVOR          = bindings.SIMCONNECT_DATA_FACILITY_VOR
	ControllerItem           = bindings.SIMCONNECT_CONTROLLER_ITEM
	DataMarkerState          = bindings.SIMCONNECT_DATA_MARKERSTATE
	DataWaypoint             = bindings.SIMCONNECT_DATA_WAYPOINT
	DataLatLonAlt            = bindings.SIMCONNECT_DATA_LATLONALT
	DataXYZ                  = bindings.SIMCONNECT_DATA_XYZ
	DataRaceResult           = bindings.SIMCONNECT_DATA_RACE_RESULT
)

// Special values defined by the SDK.
const (
	// Unused marks an optional ID argument as not supplied.
	Unused = bindings.SIMCONNECT_UNUSED
	// ObjectIDUser addresses the user's aircraft.
	ObjectIDUser ObjectID = bindings.SIMCONNECT_OBJECT_ID_USER
	// CameraIgnoreField leaves one CameraSetRelative6DOF component unchanged.
	CameraIgnoreField float32 = bindings.SIMCONNECT_CAMERA_IGNORE_FIELD
	// ClientDataMaxSize is the largest client data area CreateClientData accepts.
	ClientDataMaxSize = bindings.SIMCONNECT_CLIENTDATA_MAX_SIZE
	// ClientDataOffsetAuto appends a client data definition entry after the previous one.
	ClientDataOffsetAuto = bindings.SIMCONNECT_CLIENTDATAOFFSET_AUTO
	// OpenConfigIndexLocal selects the local connection in SimConnect.cfg.
	OpenConfigIndexLocal = bindings.SIMCONNECT_OPEN_CONFIGINDEX_LOCAL
	// AirspeedCruise and AirspeedKeep are special InitPosition airspeeds.
	AirspeedCruise = bindings.INITPOSITION_AIRSPEED_CRUISE
	AirspeedKeep   = bindings.INITPOSITION_AIRSPEED_KEEP
)

// Notification and input group priorities.
const (
	GroupPriorityHighest         = bindings.SIMCONNECT_GROUP_PRIORITY_HIGHEST
	GroupPriorityHighestMaskable = bindings.SIMCONNECT_GROUP_PRIORITY_HIGHEST_MASKABLE
	GroupPriorityStandard        = bindings.SIMCONNECT_GROUP_PRIORITY_STANDARD
	GroupPriorityDefault         = bindings.SIMCONNECT_GROUP_PRIORITY_DEFAULT
	GroupPriorityLowest          = bindings.SIMCONNECT_GROUP_PRIORITY_LOWEST
)
