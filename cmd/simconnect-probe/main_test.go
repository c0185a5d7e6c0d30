package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/flightlink/simconnect-go/pkg/simconnect"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, "simconnect-probe", cfg.Client.Name)
	assert.Equal(t, 16, cfg.Probe.MaxMessages)
	assert.Equal(t, 50*time.Millisecond, cfg.Probe.Poll)
	assert.Equal(t, 5*time.Second, cfg.Probe.Timeout)
	assert.Contains(t, cfg.Probe.States, "AircraftLoaded")
	assert.Equal(t, "console", cfg.Logging.Format)
}

func TestLoadConfigFileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "probe.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
client:
  name: tower
  configIndex: 2
probe:
  states: [Sim]
  timeout: 1s
logging:
  level: debug
`), 0o600))
	t.Setenv("SIMCONNECT_CLIENT_DLLPATH", `D:\SDK\SimConnect.dll`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "tower", cfg.Client.Name)
	assert.Equal(t, uint32(2), cfg.Client.ConfigIndex)
	assert.Equal(t, `D:\SDK\SimConnect.dll`, cfg.Client.DLLPath)
	assert.Equal(t, []string{"Sim"}, cfg.Probe.States)
	assert.Equal(t, time.Second, cfg.Probe.Timeout)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadConfigRejectsBadValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "probe.yaml")
	require.NoError(t, os.WriteFile(path, []byte("probe:\n  maxMessages: 0\n"), 0o600))

	_, err := LoadConfig(path)
	assert.ErrorContains(t, err, "probe.maxMessages")

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func messageOf[T any](v *T) *simconnect.Message {
	data := unsafe.Slice((*byte)(unsafe.Pointer(v)), unsafe.Sizeof(*v))
	hdr := (*simconnect.Recv)(unsafe.Pointer(v))
	return &simconnect.Message{ID: simconnect.RecvID(hdr.DwID), Version: hdr.DwVersion, Data: append([]byte(nil), data...)}
}

func TestRunLogsVersions(t *testing.T) {
	t.Chdir(t.TempDir())
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	cfg.Client.DLLPath = filepath.Join(t.TempDir(), "missing", "SimConnect.dll")

	core, logs := observer.New(zap.InfoLevel)
	_ = run(t.Context(), cfg, zap.New(core))

	entries := logs.FilterMessage("starting").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, simconnect.WrapperVersion(), fields["version"])
	assert.Equal(t, simconnect.SDKHeader, fields["sdk"])
}

func TestReportSystemState(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	log := zap.New(core)

	st := &simconnect.RecvSystemState{DwRequestID: 1, DwInteger: 1}
	st.DwID = uint32(simconnect.RecvIDSystemState)
	copy(st.SzString[:], "C:\\flights\\a.FLT")
	pending := map[simconnect.RequestID]string{1: "FlightLoaded", 2: "Sim"}

	assert.False(t, report(messageOf(st), pending, log))
	assert.NotContains(t, pending, simconnect.RequestID(1))

	entries := logs.FilterMessage("system state").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "FlightLoaded", fields["state"])
	assert.Equal(t, "C:\\flights\\a.FLT", fields["string"])
}

func TestReportQuitAndException(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	log := zap.New(core)

	ex := &simconnect.RecvException{DwException: uint32(simconnect.ExceptionNameUnrecognized), DwSendID: 4}
	ex.DwID = uint32(simconnect.RecvIDException)
	assert.False(t, report(messageOf(ex), nil, log))
	entries := logs.FilterMessage("exception").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "NameUnrecognized", entries[0].ContextMap()["exception"])

	quit := &simconnect.RecvQuit{}
	quit.DwID = uint32(simconnect.RecvIDQuit)
	assert.True(t, report(messageOf(quit), nil, log))
}
