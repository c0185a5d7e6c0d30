//go:build amd64 || arm64

package bindings

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
)

// Sizes and offsets of the packed SimConnect structures as laid out by the
// native compiler.
func TestPackedLayout(t *testing.T) {
	tests := []struct {
		name string
		got  uintptr
		want uintptr
	}{
		{"RECV", unsafe.Sizeof(SIMCONNECT_RECV{}), 12},
		{"RECV_EXCEPTION", unsafe.Sizeof(SIMCONNECT_RECV_EXCEPTION{}), 24},
		{"RECV_OPEN", unsafe.Sizeof(SIMCONNECT_RECV_OPEN{}), 308},
		{"RECV_EVENT", unsafe.Sizeof(SIMCONNECT_RECV_EVENT{}), 24},
		{"RECV_EVENT_EX1", unsafe.Sizeof(SIMCONNECT_RECV_EVENT_EX1{}), 40},
		{"RECV_EVENT_FILENAME", unsafe.Sizeof(SIMCONNECT_RECV_EVENT_FILENAME{}), 288},
		{"RECV_SIMOBJECT_DATA", unsafe.Sizeof(SIMCONNECT_RECV_SIMOBJECT_DATA{}), 44},
		{"RECV_SIMOBJECT_DATA.dwData", unsafe.Offsetof(SIMCONNECT_RECV_SIMOBJECT_DATA{}.DwData), 40},
		{"RECV_SYSTEM_STATE", unsafe.Sizeof(SIMCONNECT_RECV_SYSTEM_STATE{}), 284},
		{"RECV_RESERVED_KEY", unsafe.Sizeof(SIMCONNECT_RECV_RESERVED_KEY{}), 92},
		{"RECV_FACILITIES_LIST", unsafe.Sizeof(SIMCONNECT_RECV_FACILITIES_LIST{}), 28},
		{"RECV_AIRPORT_LIST.rgData", unsafe.Offsetof(SIMCONNECT_RECV_AIRPORT_LIST{}.RgData), 28},
		{"RECV_FACILITY_DATA", unsafe.Sizeof(SIMCONNECT_RECV_FACILITY_DATA{}), 44},
		{"DATA_FACILITY_AIRPORT", unsafe.Sizeof(SIMCONNECT_DATA_FACILITY_AIRPORT{}), 33},
		{"DATA_FACILITY_WAYPOINT", unsafe.Sizeof(SIMCONNECT_DATA_FACILITY_WAYPOINT{}), 37},
		{"DATA_FACILITY_NDB", unsafe.Sizeof(SIMCONNECT_DATA_FACILITY_NDB{}), 41},
		{"DATA_FACILITY_VOR", unsafe.Sizeof(SIMCONNECT_DATA_FACILITY_VOR{}), 77},
		{"DATA_RACE_RESULT", unsafe.Sizeof(SIMCONNECT_DATA_RACE_RESULT{}), 1080},
		{"RECV_EVENT_RACE_END", unsafe.Sizeof(SIMCONNECT_RECV_EVENT_RACE_END{}), 1108},
		{"CONTROLLER_ITEM", unsafe.Sizeof(SIMCONNECT_CONTROLLER_ITEM{}), 276},
		{"DATA_INITPOSITION", unsafe.Sizeof(SIMCONNECT_DATA_INITPOSITION{}), 56},
		{"DATA_MARKERSTATE", unsafe.Sizeof(SIMCONNECT_DATA_MARKERSTATE{}), 68},
		{"GUID", unsafe.Sizeof(GUID{}), 16},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.got, tt.name)
	}
}
