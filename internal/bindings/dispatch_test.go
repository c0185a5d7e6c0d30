package bindings

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatchRegistry(t *testing.T) {
	var got []uint32
	key := RegisterDispatch(func(data *SIMCONNECT_RECV, size uint32) {
		got = append(got, data.DwID, size)
	})
	require.NotZero(t, key)

	msg := &SIMCONNECT_RECV{DwSize: 12, DwVersion: 1, DwID: uint32(SIMCONNECT_RECV_ID_QUIT)}
	assert.True(t, InvokeDispatch(key, msg, 12))
	assert.Equal(t, []uint32{uint32(SIMCONNECT_RECV_ID_QUIT), 12}, got)

	UnregisterDispatch(key)
	assert.False(t, InvokeDispatch(key, msg, 12))
	assert.Len(t, got, 2)
}

func TestDispatchKeysAreDistinct(t *testing.T) {
	a := RegisterDispatch(func(*SIMCONNECT_RECV, uint32) {})
	b := RegisterDispatch(func(*SIMCONNECT_RECV, uint32) {})
	defer UnregisterDispatch(a)
	defer UnregisterDispatch(b)
	assert.NotEqual(t, a, b)
}

func TestHRESULTString(t *testing.T) {
	assert.Equal(t, "S_OK", S_OK.String())
	assert.Equal(t, "E_FAIL", E_FAIL.String())
	assert.Equal(t, "E_INVALIDARG", HRESULT(-0x7FF8FFA9).String())
	assert.Equal(t, "0xC000000D", HRESULT(-0x3FFFFFF3).String())
}
