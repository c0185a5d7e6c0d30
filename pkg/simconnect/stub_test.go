package simconnect

import (
	"sync"
	"unsafe"

	"github.com/flightlink/simconnect-go/internal/bindings"
)

type call struct {
	name string
	args []any
}

// stubAPI stands in for SimConnect.dll. Methods a test does not exercise are
// left to the embedded nil interface and panic if reached.
type stubAPI struct {
	bindings.API

	mu    sync.Mutex
	calls []call

	handle  bindings.Handle
	openHR  bindings.HRESULT
	closeHR bindings.HRESULT
	hr      bindings.HRESULT

	next     *bindings.SIMCONNECT_RECV
	nextSize uint32
	packetID uint32
	times    []float32
	// dispatch is replayed through the registered callback by CallDispatch.
	dispatch []*bindings.SIMCONNECT_RECV
	// delivered counts callbacks that returned to the stub.
	delivered int
}

func newStub() *stubAPI {
	return &stubAPI{handle: 0x1234}
}

func (s *stubAPI) record(name string, args ...any) {
	s.mu.Lock()
	s.calls = append(s.calls, call{name: name, args: args})
	s.mu.Unlock()
}

func (s *stubAPI) count(name string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, c := range s.calls {
		if c.name == name {
			n++
		}
	}
	return n
}

func (s *stubAPI) last() call {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.calls) == 0 {
		return call{}
	}
	return s.calls[len(s.calls)-1]
}

func goString(p *byte) string {
	if p == nil {
		return ""
	}
	var n int
	for *(*byte)(unsafe.Add(unsafe.Pointer(p), n)) != 0 {
		n++
	}
	return string(unsafe.Slice(p, n))
}

func (s *stubAPI) Open(ph *bindings.Handle, name *byte, hwnd uintptr, userEvent uint32, event bindings.Handle, cfg uint32) bindings.HRESULT {
	s.record("Open", goString(name), hwnd, userEvent, event, cfg)
	if s.openHR == bindings.S_OK {
		*ph = s.handle
	}
	return s.openHR
}

func (s *stubAPI) Close(h bindings.Handle) bindings.HRESULT {
	s.record("Close", h)
	return s.closeHR
}

func (s *stubAPI) AddClientEventToNotificationGroup(h bindings.Handle, group bindings.SIMCONNECT_NOTIFICATION_GROUP_ID,
	event bindings.SIMCONNECT_CLIENT_EVENT_ID, maskable int32) bindings.HRESULT {
	s.record("AddClientEventToNotificationGroup", h, group, event, maskable)
	return s.hr
}

func (s *stubAPI) MenuAddItem(h bindings.Handle, item *byte, event bindings.SIMCONNECT_CLIENT_EVENT_ID, data uint32) bindings.HRESULT {
	s.record("MenuAddItem", h, goString(item), event, data)
	return s.hr
}

func (s *stubAPI) MenuAddSubItem(h bindings.Handle, parent bindings.SIMCONNECT_CLIENT_EVENT_ID, item *byte,
	event bindings.SIMCONNECT_CLIENT_EVENT_ID, data uint32) bindings.HRESULT {
	s.record("MenuAddSubItem", h, parent, goString(item), event, data)
	return s.hr
}

func (s *stubAPI) MenuDeleteItem(h bindings.Handle, event bindings.SIMCONNECT_CLIENT_EVENT_ID) bindings.HRESULT {
	s.record("MenuDeleteItem", h, event)
	return s.hr
}

func (s *stubAPI) MenuDeleteSubItem(h bindings.Handle, parent, event bindings.SIMCONNECT_CLIENT_EVENT_ID) bindings.HRESULT {
	s.record("MenuDeleteSubItem", h, parent, event)
	return s.hr
}

func (s *stubAPI) MapClientEventToSimEvent(h bindings.Handle, event bindings.SIMCONNECT_CLIENT_EVENT_ID, name *byte) bindings.HRESULT {
	s.record("MapClientEventToSimEvent", h, event, goString(name))
	return s.hr
}

func (s *stubAPI) TransmitClientEventEX1(h bindings.Handle, obj bindings.SIMCONNECT_OBJECT_ID, event bindings.SIMCONNECT_CLIENT_EVENT_ID,
	group bindings.SIMCONNECT_NOTIFICATION_GROUP_ID, flags bindings.SIMCONNECT_EVENT_FLAG, d0, d1, d2, d3, d4 uint32) bindings.HRESULT {
	s.record("TransmitClientEventEX1", h, obj, event, group, flags, []uint32{d0, d1, d2, d3, d4})
	return s.hr
}

func (s *stubAPI) AICreateEnrouteATCAircraft(h bindings.Handle, title, tail *byte, flight int32, plan *byte,
	pos float64, touchAndGo int32, req bindings.SIMCONNECT_DATA_REQUEST_ID) bindings.HRESULT {
	s.record("AICreateEnrouteATCAircraft", h, goString(title), goString(tail), flight, goString(plan), pos, touchAndGo, req)
	return s.hr
}

func (s *stubAPI) AICreateNonATCAircraft(h bindings.Handle, title, tail *byte, pos bindings.SIMCONNECT_DATA_INITPOSITION,
	req bindings.SIMCONNECT_DATA_REQUEST_ID) bindings.HRESULT {
	s.record("AICreateNonATCAircraft", h, goString(title), goString(tail), pos, req)
	return s.hr
}

func (s *stubAPI) MapInputEventToClientEvent(h bindings.Handle, group bindings.SIMCONNECT_INPUT_GROUP_ID, def *byte,
	down bindings.SIMCONNECT_CLIENT_EVENT_ID, downValue uint32, up bindings.SIMCONNECT_CLIENT_EVENT_ID, upValue uint32,
	maskable int32) bindings.HRESULT {
	s.record("MapInputEventToClientEvent", h, group, goString(def), down, downValue, up, upValue, maskable)
	return s.hr
}

func (s *stubAPI) SetInputGroupState(h bindings.Handle, group bindings.SIMCONNECT_INPUT_GROUP_ID, state uint32) bindings.HRESULT {
	s.record("SetInputGroupState", h, group, state)
	return s.hr
}

func (s *stubAPI) UnsubscribeToFacilitiesEX1(h bindings.Handle, typ bindings.SIMCONNECT_FACILITY_LIST_TYPE, in, out uint8) bindings.HRESULT {
	s.record("UnsubscribeToFacilitiesEX1", h, typ, in, out)
	return s.hr
}

func (s *stubAPI) RequestFacilitesListEX1(h bindings.Handle, typ bindings.SIMCONNECT_FACILITY_LIST_TYPE,
	req bindings.SIMCONNECT_DATA_REQUEST_ID) bindings.HRESULT {
	s.record("RequestFacilitesListEX1", h, typ, req)
	return s.hr
}

func (s *stubAPI) AddToDataDefinition(h bindings.Handle, def bindings.SIMCONNECT_DATA_DEFINITION_ID, datum, units *byte,
	typ bindings.SIMCONNECT_DATATYPE, epsilon float32, datumID uint32) bindings.HRESULT {
	s.record("AddToDataDefinition", h, def, goString(datum), goString(units), typ, epsilon, datumID)
	return s.hr
}

func (s *stubAPI) RequestDataOnSimObject(h bindings.Handle, req bindings.SIMCONNECT_DATA_REQUEST_ID, def bindings.SIMCONNECT_DATA_DEFINITION_ID,
	obj bindings.SIMCONNECT_OBJECT_ID, period bindings.SIMCONNECT_PERIOD, flags bindings.SIMCONNECT_DATA_REQUEST_FLAG,
	origin, interval, limit uint32) bindings.HRESULT {
	s.record("RequestDataOnSimObject", h, req, def, obj, period, flags, origin, interval, limit)
	return s.hr
}

func (s *stubAPI) SetDataOnSimObject(h bindings.Handle, def bindings.SIMCONNECT_DATA_DEFINITION_ID, obj bindings.SIMCONNECT_OBJECT_ID,
	flags bindings.SIMCONNECT_DATA_SET_FLAG, count, unit uint32, data unsafe.Pointer) bindings.HRESULT {
	s.record("SetDataOnSimObject", h, def, obj, flags, count, unit, unsafe.Slice((*byte)(data), count*max(unit, 1)))
	return s.hr
}

func (s *stubAPI) SetClientData(h bindings.Handle, id bindings.SIMCONNECT_CLIENT_DATA_ID, def bindings.SIMCONNECT_CLIENT_DATA_DEFINITION_ID,
	flags bindings.SIMCONNECT_CLIENT_DATA_SET_FLAG, reserved, unit uint32, data unsafe.Pointer) bindings.HRESULT {
	s.record("SetClientData", h, id, def, flags, reserved, unit, string(unsafe.Slice((*byte)(data), unit)))
	return s.hr
}

func (s *stubAPI) AddToClientDataDefinition(h bindings.Handle, def bindings.SIMCONNECT_CLIENT_DATA_DEFINITION_ID,
	offset, sizeOrType uint32, epsilon float32, datumID uint32) bindings.HRESULT {
	s.record("AddToClientDataDefinition", h, def, offset, sizeOrType, epsilon, datumID)
	return s.hr
}

func (s *stubAPI) RequestSystemState(h bindings.Handle, req bindings.SIMCONNECT_DATA_REQUEST_ID, state *byte) bindings.HRESULT {
	s.record("RequestSystemState", h, req, goString(state))
	return s.hr
}

func (s *stubAPI) SetSystemState(h bindings.Handle, state *byte, integer uint32, float float32, str *byte) bindings.HRESULT {
	s.record("SetSystemState", h, goString(state), integer, float, goString(str))
	return s.hr
}

func (s *stubAPI) FlightSave(h bindings.Handle, path, title, desc *byte, flags uint32) bindings.HRESULT {
	s.record("FlightSave", h, goString(path), goString(title), goString(desc), flags)
	return s.hr
}

func (s *stubAPI) CameraSetRelative6DOF(h bindings.Handle, dx, dy, dz, pitch, bank, heading float32) bindings.HRESULT {
	s.record("CameraSetRelative6DOF", h, []float32{dx, dy, dz, pitch, bank, heading})
	return s.hr
}

func (s *stubAPI) ExecuteMissionAction(h bindings.Handle, guid bindings.GUID) bindings.HRESULT {
	s.record("ExecuteMissionAction", h, guid)
	return s.hr
}

func (s *stubAPI) GetLastSentPacketID(h bindings.Handle, id *uint32) bindings.HRESULT {
	s.record("GetLastSentPacketID", h)
	*id = s.packetID
	return s.hr
}

func (s *stubAPI) RequestResponseTimes(h bindings.Handle, n uint32, times *float32) bindings.HRESULT {
	s.record("RequestResponseTimes", h, n)
	copy(unsafe.Slice(times, n), s.times)
	return s.hr
}

func (s *stubAPI) GetNextDispatch(h bindings.Handle, data **bindings.SIMCONNECT_RECV, size *uint32) bindings.HRESULT {
	s.record("GetNextDispatch", h)
	if s.next == nil {
		return bindings.E_FAIL
	}
	*data, *size = s.next, s.nextSize
	return s.hr
}

func (s *stubAPI) CallDispatch(h bindings.Handle, proc bindings.DispatchProc, ctx uintptr) bindings.HRESULT {
	s.record("CallDispatch", h)
	for _, msg := range s.dispatch {
		bindings.InvokeDispatch(ctx, msg, msg.DwSize)
		s.delivered++
	}
	return s.hr
}

func (s *stubAPI) EnumerateControllers(h bindings.Handle) bindings.HRESULT {
	s.record("EnumerateControllers", h)
	return s.hr
}
