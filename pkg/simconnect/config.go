package simconnect

import (
	"os"
	"path/filepath"

	"github.com/flightlink/simconnect-go/pkg/simconnect/logging"
)

// DefaultSDKRoot is where the MSFS SDK installer puts the SDK.
const DefaultSDKRoot = `C:\MSFS SDK`

// SDKRootEnv names the environment variable the SDK installer sets.
const SDKRootEnv = "MSFS_SDK"

// Config carries the parameters passed to SimConnect_Open and the location
// of SimConnect.dll. The zero value opens a local connection without window
// messages, loading the DLL from the installed SDK.
type Config struct {
	// DLLPath is the full path of SimConnect.dll. When empty the DLL is
	// looked up under SDKRoot.
	DLLPath string

	// SDKRoot is the MSFS SDK directory. When empty $MSFS_SDK is used,
	// falling back to DefaultSDKRoot.
	SDKRoot string

	// Window is the HWND that receives UserEvent when a message is ready.
	Window uintptr
	// UserEvent is the Win32 message id posted to Window.
	UserEvent uint32
	// EventHandle is a Win32 event object signalled when a message is ready.
	EventHandle uintptr
	// ConfigIndex selects a section of SimConnect.cfg. OpenConfigIndexLocal
	// forces a local connection.
	ConfigIndex uint32

	// Logger receives the connection's debug output. Nil selects
	// slog.Default.
	Logger logging.Logger
}

func (c Config) dllPath() string {
	if c.DLLPath != "" {
		return c.DLLPath
	}
	root := c.SDKRoot
	if root == "" {
		root = os.Getenv(SDKRootEnv)
	}
	if root == "" {
		root = DefaultSDKRoot
	}
	return filepath.Join(root, "SimConnect SDK", "lib", "SimConnect.dll")
}

func (c Config) logger() logging.Logger {
	if c.Logger == nil {
		return logging.New(nil)
	}
	return c.Logger
}
