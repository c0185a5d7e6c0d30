package simconnect

import (
	"fmt"
	"unsafe"

	"github.com/flightlink/simconnect-go/internal/bindings"
)

// RecvID identifies the layout of a received message.
type RecvID uint32

const (
	RecvIDNull                          = RecvID(bindings.SIMCONNECT_RECV_ID_NULL)
	RecvIDException                     = RecvID(bindings.SIMCONNECT_RECV_ID_EXCEPTION)
	RecvIDOpen                          = RecvID(bindings.SIMCONNECT_RECV_ID_OPEN)
	RecvIDQuit                          = RecvID(bindings.SIMCONNECT_RECV_ID_QUIT)
	RecvIDEvent                         = RecvID(bindings.SIMCONNECT_RECV_ID_EVENT)
	RecvIDEventObjectAddRemove          = RecvID(bindings.SIMCONNECT_RECV_ID_EVENT_OBJECT_ADDREMOVE)
	RecvIDEventFilename                 = RecvID(bindings.SIMCONNECT_RECV_ID_EVENT_FILENAME)
	RecvIDEventFrame                    = RecvID(bindings.SIMCONNECT_RECV_ID_EVENT_FRAME)
	RecvIDSimObjectData                 = RecvID(bindings.SIMCONNECT_RECV_ID_SIMOBJECT_DATA)
	RecvIDSimObjectDataByType           = RecvID(bindings.SIMCONNECT_RECV_ID_SIMOBJECT_DATA_BYTYPE)
	RecvIDAssignedObjectID              = RecvID(bindings.SIMCONNECT_RECV_ID_ASSIGNED_OBJECT_ID)
	RecvIDReservedKey                   = RecvID(bindings.SIMCONNECT_RECV_ID_RESERVED_KEY)
	RecvIDCustomAction                  = RecvID(bindings.SIMCONNECT_RECV_ID_CUSTOM_ACTION)
	RecvIDSystemState                   = RecvID(bindings.SIMCONNECT_RECV_ID_SYSTEM_STATE)
	RecvIDClientData                    = RecvID(bindings.SIMCONNECT_RECV_ID_CLIENT_DATA)
	RecvIDAirportList                   = RecvID(bindings.SIMCONNECT_RECV_ID_AIRPORT_LIST)
	RecvIDVORList                       = RecvID(bindings.SIMCONNECT_RECV_ID_VOR_LIST)
	RecvIDNDBList                       = RecvID(bindings.SIMCONNECT_RECV_ID_NDB_LIST)
	RecvIDWaypointList                  = RecvID(bindings.SIMCONNECT_RECV_ID_WAYPOINT_LIST)
	RecvIDEventMultiplayerServerStarted = RecvID(bindings.SIMCONNECT_RECV_ID_EVENT_MULTIPLAYER_SERVER_STARTED)
	RecvIDEventMultiplayerClientStarted = RecvID(bindings.SIMCONNECT_RECV_ID_EVENT_MULTIPLAYER_CLIENT_STARTED)
	RecvIDEventMultiplayerSessionEnded  = RecvID(bindings.SIMCONNECT_RECV_ID_EVENT_MULTIPLAYER_SESSION_ENDED)
	RecvIDEventRaceEnd                  = RecvID(bindings.SIMCONNECT_RECV_ID_EVENT_RACE_END)
	RecvIDEventRaceLap                  = RecvID(bindings.SIMCONNECT_RECV_ID_EVENT_RACE_LAP)
	RecvIDEventEX1                      = RecvID(bindings.SIMCONNECT_RECV_ID_EVENT_EX1)
	RecvIDFacilityData                  = RecvID(bindings.SIMCONNECT_RECV_ID_FACILITY_DATA)
	RecvIDFacilityDataEnd               = RecvID(bindings.SIMCONNECT_RECV_ID_FACILITY_DATA_END)
	RecvIDControllersList               = RecvID(bindings.SIMCONNECT_RECV_ID_CONTROLLERS_LIST)
)

var recvIDNames = map[RecvID]string{
	RecvIDNull:                          "Null",
	RecvIDException:                     "Exception",
	RecvIDOpen:                          "Open",
	RecvIDQuit:                          "Quit",
	RecvIDEvent:                         "Event",
	RecvIDEventObjectAddRemove:          "EventObjectAddRemove",
	RecvIDEventFilename:                 "EventFilename",
	RecvIDEventFrame:                    "EventFrame",
	RecvIDSimObjectData:                 "SimObjectData",
	RecvIDSimObjectDataByType:           "SimObjectDataByType",
	RecvIDAssignedObjectID:              "AssignedObjectID",
	RecvIDReservedKey:                   "ReservedKey",
	RecvIDCustomAction:                  "CustomAction",
	RecvIDSystemState:                   "SystemState",
	RecvIDClientData:                    "ClientData",
	RecvIDAirportList:                   "AirportList",
	RecvIDVORList:                       "VORList",
	RecvIDNDBList:                       "NDBList",
	RecvIDWaypointList:                  "WaypointList",
	RecvIDEventMultiplayerServerStarted: "EventMultiplayerServerStarted",
	RecvIDEventMultiplayerClientStarted: "EventMultiplayerClientStarted",
	RecvIDEventMultiplayerSessionEnded:  "EventMultiplayerSessionEnded",
	RecvIDEventRaceEnd:                  "EventRaceEnd",
	RecvIDEventRaceLap:                  "EventRaceLap",
	RecvIDEventEX1:                      "EventEX1",
	RecvIDFacilityData:                  "FacilityData",
	RecvIDFacilityDataEnd:               "FacilityDataEnd",
	RecvIDControllersList:               "ControllersList",
}

func (id RecvID) String() string {
	if name, ok := recvIDNames[id]; ok {
		return name
	}
	return fmt.Sprintf("RecvID(%d)", uint32(id))
}

// Exception is the error code carried by a RecvException message.
type Exception uint32

const (
	ExceptionNone                          = Exception(bindings.SIMCONNECT_EXCEPTION_NONE)
	ExceptionError                         = Exception(bindings.SIMCONNECT_EXCEPTION_ERROR)
	ExceptionSizeMismatch                  = Exception(bindings.SIMCONNECT_EXCEPTION_SIZE_MISMATCH)
	ExceptionUnrecognizedID                = Exception(bindings.SIMCONNECT_EXCEPTION_UNRECOGNIZED_ID)
	ExceptionUnopened                      = Exception(bindings.SIMCONNECT_EXCEPTION_UNOPENED)
	ExceptionVersionMismatch               = Exception(bindings.SIMCONNECT_EXCEPTION_VERSION_MISMATCH)
	ExceptionTooManyGroups                 = Exception(bindings.SIMCONNECT_EXCEPTION_TOO_MANY_GROUPS)
	ExceptionNameUnrecognized              = Exception(bindings.SIMCONNECT_EXCEPTION_NAME_UNRECOGNIZED)
	ExceptionTooManyEventNames             = Exception(bindings.SIMCONNECT_EXCEPTION_TOO_MANY_EVENT_NAMES)
	ExceptionEventIDDuplicate              = Exception(bindings.SIMCONNECT_EXCEPTION_EVENT_ID_DUPLICATE)
	ExceptionTooManyMaps                   = Exception(bindings.SIMCONNECT_EXCEPTION_TOO_MANY_MAPS)
	ExceptionTooManyObjects                = Exception(bindings.SIMCONNECT_EXCEPTION_TOO_MANY_OBJECTS)
	ExceptionTooManyRequests               = Exception(bindings.SIMCONNECT_EXCEPTION_TOO_MANY_REQUESTS)
	ExceptionInvalidDataType               = Exception(bindings.SIMCONNECT_EXCEPTION_INVALID_DATA_TYPE)
	ExceptionInvalidDataSize               = Exception(bindings.SIMCONNECT_EXCEPTION_INVALID_DATA_SIZE)
	ExceptionDataError                     = Exception(bindings.SIMCONNECT_EXCEPTION_DATA_ERROR)
	ExceptionInvalidArray                  = Exception(bindings.SIMCONNECT_EXCEPTION_INVALID_ARRAY)
	ExceptionCreateObjectFailed            = Exception(bindings.SIMCONNECT_EXCEPTION_CREATE_OBJECT_FAILED)
	ExceptionLoadFlightplanFailed          = Exception(bindings.SIMCONNECT_EXCEPTION_LOAD_FLIGHTPLAN_FAILED)
	ExceptionOperationInvalidForObjectType = Exception(bindings.SIMCONNECT_EXCEPTION_OPERATION_INVALID_FOR_OBJECT_TYPE)
	ExceptionIllegalOperation              = Exception(bindings.SIMCONNECT_EXCEPTION_ILLEGAL_OPERATION)
	ExceptionAlreadySubscribed             = Exception(bindings.SIMCONNECT_EXCEPTION_ALREADY_SUBSCRIBED)
	ExceptionInvalidEnum                   = Exception(bindings.SIMCONNECT_EXCEPTION_INVALID_ENUM)
	ExceptionDefinitionError               = Exception(bindings.SIMCONNECT_EXCEPTION_DEFINITION_ERROR)
	ExceptionDuplicateID                   = Exception(bindings.SIMCONNECT_EXCEPTION_DUPLICATE_ID)
	ExceptionDatumID                       = Exception(bindings.SIMCONNECT_EXCEPTION_DATUM_ID)
	ExceptionOutOfBounds                   = Exception(bindings.SIMCONNECT_EXCEPTION_OUT_OF_BOUNDS)
	ExceptionAlreadyCreated                = Exception(bindings.SIMCONNECT_EXCEPTION_ALREADY_CREATED)
	ExceptionObjectOutsideRealityBubble    = Exception(bindings.SIMCONNECT_EXCEPTION_OBJECT_OUTSIDE_REALITY_BUBBLE)
	ExceptionObjectContainer               = Exception(bindings.SIMCONNECT_EXCEPTION_OBJECT_CONTAINER)
	ExceptionObjectAI                      = Exception(bindings.SIMCONNECT_EXCEPTION_OBJECT_AI)
	ExceptionObjectATC                     = Exception(bindings.SIMCONNECT_EXCEPTION_OBJECT_ATC)
	ExceptionObjectSchedule                = Exception(bindings.SIMCONNECT_EXCEPTION_OBJECT_SCHEDULE)
	ExceptionJetwayData                    = Exception(bindings.SIMCONNECT_EXCEPTION_JETWAY_DATA)
)

var exceptionNames = map[Exception]string{
	ExceptionNone:                          "None",
	ExceptionError:                         "Error",
	ExceptionSizeMismatch:                  "SizeMismatch",
	ExceptionUnrecognizedID:                "UnrecognizedID",
	ExceptionUnopened:                      "Unopened",
	ExceptionVersionMismatch:               "VersionMismatch",
	ExceptionTooManyGroups:                 "TooManyGroups",
	ExceptionNameUnrecognized:              "NameUnrecognized",
	ExceptionTooManyEventNames:             "TooManyEventNames",
	ExceptionEventIDDuplicate:              "EventIDDuplicate",
	ExceptionTooManyMaps:                   "TooManyMaps",
	ExceptionTooManyObjects:                "TooManyObjects",
	ExceptionTooManyRequests:               "TooManyRequests",
	ExceptionInvalidDataType:               "InvalidDataType",
	ExceptionInvalidDataSize:               "InvalidDataSize",
	ExceptionDataError:                     "DataError",
	ExceptionInvalidArray:                  "InvalidArray",
	ExceptionCreateObjectFailed:            "CreateObjectFailed",
	ExceptionLoadFlightplanFailed:          "LoadFlightplanFailed",
	ExceptionOperationInvalidForObjectType: "OperationInvalidForObjectType",
	ExceptionIllegalOperation:              "IllegalOperation",
	ExceptionAlreadySubscribed:             "AlreadySubscribed",
	ExceptionInvalidEnum:                   "InvalidEnum",
	ExceptionDefinitionError:               "DefinitionError",
	ExceptionDuplicateID:                   "DuplicateID",
	ExceptionDatumID:                       "DatumID",
	ExceptionOutOfBounds:                   "OutOfBounds",
	ExceptionAlreadyCreated:                "AlreadyCreated",
	ExceptionObjectOutsideRealityBubble:    "ObjectOutsideRealityBubble",
	ExceptionObjectContainer:               "ObjectContainer",
	ExceptionObjectAI:                      "ObjectAI",
	ExceptionObjectATC:                     "ObjectATC",
	ExceptionObjectSchedule:                "ObjectSchedule",
	ExceptionJetwayData:                    "JetwayData",
}

func (e Exception) String() string {
	if name, ok := exceptionNames[e]; ok {
		return name
	}
	return fmt.Sprintf("Exception(%d)", uint32(e))
}

// Message is one packet received from SimConnect, copied out of the SDK's
// receive buffer.
type Message struct {
	ID      RecvID
	Version uint32
	// Data holds the whole packet, header included.
	Data []byte
}

func newMessage(data *bindings.SIMCONNECT_RECV, size uint32) *Message {
	buf := make([]byte, size)
	copy(buf, unsafe.Slice((*byte)(unsafe.Pointer(data)), size))
	return &Message{ID: RecvID(data.DwID), Version: data.DwVersion, Data: buf}
}

// Decode copies a message into the packet structure T, for example
// Decode[RecvEvent](msg). Bytes beyond the end of Data are left zero, so a
// structure ending in a variable-length array only has its first element
// filled in.
func Decode[T any](m *Message) *T {
	return DecodeAt[T](m, 0)
}

// DecodeAt copies the bytes of m starting at offset into a T. Use it to walk
// the array trailing a list packet or the payload of a RecvSimObjectData.
func DecodeAt[T any](m *Message, offset uintptr) *T {
	v := new(T)
	if offset >= uintptr(len(m.Data)) {
		return v
	}
	dst := unsafe.Slice((*byte)(unsafe.Pointer(v)), unsafe.Sizeof(*v))
	copy(dst, m.Data[offset:])
	return v
}
