package bindgen

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseFixture(t *testing.T) *Header {
	t.Helper()
	src, err := os.ReadFile("testdata/SimConnect.h")
	require.NoError(t, err)
	h, err := Parse(src)
	require.NoError(t, err)
	return h
}

func findConst(h *Header, name string) *Const {
	for _, c := range h.Consts {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func findFunc(h *Header, name string) *Func {
	for _, f := range h.Funcs {
		if f.Name == name {
			return f
		}
	}
	return nil
}

func TestParseConstants(t *testing.T) {
	h := parseFixture(t)

	c := findConst(h, "SIMCONNECT_UNUSED")
	require.NotNil(t, c)
	assert.Equal(t, CType{Name: "DWORD"}, c.Type)
	assert.Equal(t, int64(0xFFFFFFFF), c.Value.Int)

	c = findConst(h, "SIMCONNECT_CAMERA_IGNORE_FIELD")
	require.NotNil(t, c)
	assert.Equal(t, "math.MaxFloat32", c.Value.Expr)

	c = findConst(h, "SIMCONNECT_CLOUD_STATE_ARRAY_SIZE")
	require.NotNil(t, c, "macro constants built from other macros are kept")
	assert.Equal(t, int64(4096), c.Value.Int)

	c = findConst(h, "UNKNOWN_SENDID")
	require.NotNil(t, c)
	assert.Equal(t, "SIMCONNECT_RECV_EXCEPTION", c.Scope)

	c = findConst(h, "INITPOSITION_AIRSPEED_KEEP")
	require.NotNil(t, c)
	assert.Equal(t, int64(-2), c.Value.Int)
}

func TestParseEnums(t *testing.T) {
	h := parseFixture(t)

	e := h.enum("SIMCONNECT_EXCEPTION")
	require.NotNil(t, e)
	values := map[string]int64{}
	for _, m := range e.Members {
		values[m.Name] = m.Value
	}
	assert.Equal(t, int64(4), values["SIMCONNECT_EXCEPTION_UNOPENED"])
	assert.Equal(t, int64(5), values["SIMCONNECT_EXCEPTION_VERSION_MISMATCH"])
	assert.Equal(t, int64(0x10), values["SIMCONNECT_EXCEPTION_WEATHER_INVALID_PORT"])
	assert.Equal(t, int64(0x12), values["SIMCONNECT_EXCEPTION_OUT_OF_BOUNDS"])

	require.NotNil(t, h.enum("SIMCONNECT_RECV_ID"))
	assert.Len(t, h.enum("SIMCONNECT_RECV_ID").Members, 9)
}

func TestParseTypedefsAndStructs(t *testing.T) {
	h := parseFixture(t)

	td := h.typedef("SIMCONNECT_EVENT_FLAG")
	require.NotNil(t, td)
	assert.Equal(t, CType{Name: "DWORD"}, td.Type)

	td = h.typedef("DispatchProc")
	require.NotNil(t, td)
	assert.True(t, td.FuncPtr)

	st := h.structure("SIMCONNECT_RECV_EXCEPTION")
	require.NotNil(t, st)
	assert.Equal(t, "SIMCONNECT_RECV", st.Base)
	require.Len(t, st.Fields, 3)
	assert.Equal(t, "dwSendID", st.Fields[1].Name)

	st = h.structure("SIMCONNECT_RECV_OPEN")
	require.NotNil(t, st)
	assert.Equal(t, &Field{Name: "szApplicationName", Type: CType{Name: "char"}, Len: 256}, st.Fields[0])

	st = h.structure("SIMCONNECT_RECV_CLOUD_STATE")
	require.NotNil(t, st)
	assert.Equal(t, &Field{Name: "rgbData", Type: CType{Name: "BYTE"}, Len: 1}, st.Fields[2])
}

func TestParseFunctions(t *testing.T) {
	h := parseFixture(t)

	f := findFunc(h, "SimConnect_Open")
	require.NotNil(t, f)
	assert.Equal(t, CType{Name: "HRESULT"}, f.Ret)
	require.Len(t, f.Params, 6)
	assert.Equal(t, &Param{Name: "phSimConnect", Type: CType{Name: "HANDLE", Ptr: 1}}, f.Params[0])
	assert.Equal(t, &Param{Name: "szName", Type: CType{Name: "char", Ptr: 1}}, f.Params[1])

	f = findFunc(h, "SimConnect_AddToDataDefinition")
	require.NotNil(t, f)
	require.Len(t, f.Params, 7, "default arguments are dropped, parameters kept")
	assert.Equal(t, CType{Name: "float"}, f.Params[5].Type)

	f = findFunc(h, "SimConnect_GetNextDispatch")
	require.NotNil(t, f)
	assert.Equal(t, CType{Name: "SIMCONNECT_RECV", Ptr: 2}, f.Params[1].Type)

	assert.NotNil(t, findFunc(h, "SimConnect_RequestFacilitesList_EX1"))
	assert.Len(t, h.Funcs, 24)
}

func TestScanExpandsFunctionMacros(t *testing.T) {
	src := []byte("#define PAIR(a, b) a b\nPAIR(DWORD, x);\n#undef PAIR\nPAIR(1, 2)\n")
	toks, _, err := scan(src)
	require.NoError(t, err)

	var texts []string
	for _, tok := range toks {
		texts = append(texts, tok.text)
	}
	assert.Equal(t, []string{"DWORD", "x", ";", "PAIR", "(", "1", ",", "2", ")"}, texts)
}

func TestStripCommentsKeepsLines(t *testing.T) {
	out, err := stripComments("a /* one\ntwo */ b // tail\nc")
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(out, "\n"))

	_, err = stripComments("/* open")
	assert.Error(t, err)
}
