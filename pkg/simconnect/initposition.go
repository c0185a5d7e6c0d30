package simconnect

import (
	"encoding/binary"

	"github.com/google/uuid"

	"github.com/flightlink/simconnect-go/internal/bindings"
)

// InitPosition places a newly created object. Airspeed is in knots, or one
// of AirspeedCruise and AirspeedKeep.
type InitPosition struct {
	Latitude  float64
	Longitude float64
	Altitude  float64
	Pitch     float64
	Bank      float64
	Heading   float64
	OnGround  bool
	Airspeed  uint32
}

func (p InitPosition) native() bindings.SIMCONNECT_DATA_INITPOSITION {
	return bindings.SIMCONNECT_DATA_INITPOSITION{
		Latitude:  p.Latitude,
		Longitude: p.Longitude,
		Altitude:  p.Altitude,
		Pitch:     p.Pitch,
		Bank:      p.Bank,
		Heading:   p.Heading,
		OnGround:  uint32(cBool(p.OnGround)),
		Airspeed:  p.Airspeed,
	}
}

// GUID is the Windows GUID layout used in mission action packets.
type GUID = bindings.GUID

// GUIDFromUUID converts an RFC 4122 UUID to the Windows GUID layout, whose
// first three groups are stored little endian.
func GUIDFromUUID(u uuid.UUID) GUID {
	g := GUID{
		Data1: binary.BigEndian.Uint32(u[0:4]),
		Data2: binary.BigEndian.Uint16(u[4:6]),
		Data3: binary.BigEndian.Uint16(u[6:8]),
	}
	copy(g.Data4[:], u[8:16])
	return g
}

// UUIDFromGUID is the inverse of GUIDFromUUID. Use it to read the instance id
// of a RecvCustomAction.
func UUIDFromGUID(g GUID) uuid.UUID {
	var u uuid.UUID
	binary.BigEndian.PutUint32(u[0:4], g.Data1)
	binary.BigEndian.PutUint16(u[4:6], g.Data2)
	binary.BigEndian.PutUint16(u[6:8], g.Data3)
	copy(u[8:16], g.Data4[:])
	return u
}
