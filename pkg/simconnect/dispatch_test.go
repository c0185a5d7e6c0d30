package simconnect

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flightlink/simconnect-go/internal/bindings"
)

func newEvent(group, event, data uint32) *RecvEvent {
	ev := &RecvEvent{DwData: data}
	ev.DwSize = uint32(unsafe.Sizeof(*ev))
	ev.DwVersion = 5
	ev.DwID = uint32(RecvIDEvent)
	ev.UGroupID = group
	ev.UEventID = event
	return ev
}

func TestGetNextDispatchCopiesMessage(t *testing.T) {
	c, stub := openConn(t)

	ev := newEvent(1, 2, 3)
	stub.next = &ev.SIMCONNECT_RECV
	stub.nextSize = ev.DwSize

	msg, err := c.GetNextDispatch()
	require.NoError(t, err)
	assert.Equal(t, RecvIDEvent, msg.ID)
	assert.Equal(t, uint32(5), msg.Version)
	require.Len(t, msg.Data, int(unsafe.Sizeof(*ev)))

	// The SDK reuses its receive buffer; the message must not alias it.
	ev.DwData = 99
	got := Decode[RecvEvent](msg)
	assert.Equal(t, uint32(1), got.UGroupID)
	assert.Equal(t, uint32(2), got.UEventID)
	assert.Equal(t, uint32(3), got.DwData)
}

func TestGetNextDispatchEmptyQueue(t *testing.T) {
	c, _ := openConn(t)

	msg, err := c.GetNextDispatch()
	assert.Nil(t, msg)
	var rerr *ResultError
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, E_FAIL, rerr.Code)
}

func TestDecodeShortMessage(t *testing.T) {
	msg := &Message{ID: RecvIDQuit, Data: []byte{12, 0, 0, 0, 5, 0, 0, 0, 3, 0, 0, 0}}

	state := Decode[RecvSystemState](msg)
	assert.Equal(t, uint32(3), state.DwID)
	assert.Zero(t, state.DwRequestID)
}

func TestCallDispatchRoutesMessages(t *testing.T) {
	c, stub := openConn(t)
	stub.dispatch = []*bindings.SIMCONNECT_RECV{
		&newEvent(1, 10, 0).SIMCONNECT_RECV,
		&newEvent(1, 11, 7).SIMCONNECT_RECV,
	}

	var events []uint32
	err := c.CallDispatch(func(m *Message) {
		require.Equal(t, RecvIDEvent, m.ID)
		ev := Decode[RecvEvent](m)
		events = append(events, ev.UEventID, ev.DwData)
	})
	require.NoError(t, err)
	assert.Equal(t, []uint32{10, 0, 11, 7}, events)
}

func TestCallDispatchFailure(t *testing.T) {
	c, stub := openConn(t)
	stub.hr = bindings.E_FAIL
	defer func() { stub.hr = bindings.S_OK }()

	var rerr *ResultError
	require.ErrorAs(t, c.CallDispatch(func(*Message) {}), &rerr)
	assert.Equal(t, "SimConnect_CallDispatch", rerr.Op)
}

func TestCallDispatchRejectsNilFunc(t *testing.T) {
	c, stub := openConn(t)
	stub.dispatch = []*bindings.SIMCONNECT_RECV{&newEvent(1, 10, 0).SIMCONNECT_RECV}

	assert.ErrorIs(t, c.CallDispatch(nil), ErrInvalidArgument)
	assert.Zero(t, stub.count("CallDispatch"))
}

func TestCallDispatchPanicSurfacesAfterReturn(t *testing.T) {
	c, stub := openConn(t)
	stub.dispatch = []*bindings.SIMCONNECT_RECV{
		&newEvent(1, 10, 0).SIMCONNECT_RECV,
		&newEvent(1, 11, 0).SIMCONNECT_RECV,
	}

	calls := 0
	assert.PanicsWithValue(t, "handler failed", func() {
		_ = c.CallDispatch(func(*Message) {
			calls++
			panic("handler failed")
		})
	})
	assert.Equal(t, 1, calls, "messages after a panic are skipped")
	assert.Equal(t, 2, stub.delivered, "every callback returned to the SDK")

	var events []uint32
	require.NoError(t, c.CallDispatch(func(m *Message) {
		events = append(events, Decode[RecvEvent](m).UEventID)
	}))
	assert.Equal(t, []uint32{10, 11}, events)
}

func TestDecodeAtWalksTrailingArray(t *testing.T) {
	hdr := make([]byte, unsafe.Offsetof(RecvAirportList{}.RgData))
	first := DataFacilityAirport{Ident: [6]byte{'K', 'S', 'E', 'A'}}
	second := DataFacilityAirport{Ident: [6]byte{'K', 'B', 'F', 'I'}}
	size := unsafe.Sizeof(first)

	data := append(hdr, unsafe.Slice((*byte)(unsafe.Pointer(&first)), size)...)
	data = append(data, unsafe.Slice((*byte)(unsafe.Pointer(&second)), size)...)
	msg := &Message{ID: RecvIDAirportList, Data: data}

	base := uintptr(len(hdr))
	assert.Equal(t, "KSEA", BytesToString(DecodeAt[DataFacilityAirport](msg, base).Ident[:]))
	assert.Equal(t, "KBFI", BytesToString(DecodeAt[DataFacilityAirport](msg, base+size).Ident[:]))
	assert.Zero(t, *DecodeAt[DataFacilityAirport](msg, base+2*size))
}
