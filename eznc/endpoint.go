package eznc

// Endpoint is an abstract view of one EZSocket automation handle.
//
// Each method maps to one remote call against the controller and returns a
// signed 32-bit status code plus the call's output values. A zero status code
// means success; positive codes are informational (used by the directory
// enumeration calls to signal that entry data is present); negative codes are
// failures. Callers never interpret a status code themselves, every code is
// passed through Classify.
//
// An Endpoint handle is not safe for concurrent use. The m700.Session owns
// exactly one handle while open and serializes every call against it.
type Endpoint interface {
	// Bind configures the TCP/IP target of the handle.
	Bind(ip string, port int32) int32
	// Open establishes the logical connection. The machine type selects the
	// controller model family, unitNo must be unique within 1-255 per
	// EZSocket process, timeout is expressed in 100 millisecond ticks and
	// hostName is the automation host marker.
	Open(machineType, unitNo, timeout int32, hostName string) int32
	// Close terminates the logical connection.
	Close() int32
	// Release releases the underlying automation handle.
	Release() int32

	DriveInformation() (int32, string)
	Version(typ, no int32) (int32, string)
	CurrentPosition(axis int32) (int32, float64)
	RunStatus(kind int32) (int32, int32)
	// SpindleMonitor returns a monitor value and an informational string for
	// the given metric and spindle number.
	SpindleMonitor(metric, spindle int32) (int32, int32, string)
	CommonVariableName(index int32) (int32, string)
	MagazineSize() (int32, int32)
	MagazineReady(magazine, standby int32) (int32, int32)
	ToolSetSize() (int32, int32)
	// ToolOffset returns the offset amount and the virtual cutting edge
	// number for the given offset type, kind and toolset number.
	ToolOffset(typ, kind, toolSetNo int32) (int32, float64, int32)
	SetToolOffset(typ, kind, toolSetNo int32, offset float64, edgeNo int32) int32
	ProgramNumber(kind int32) (int32, string)
	Alarm(maxLines, typ int32) (int32, string)

	OpenFile(path string, mode int32) int32
	ReadFile(size int32) (int32, []byte)
	WriteFile(data []byte) int32
	CloseFile() int32
	DeleteFile(path string) int32

	// FindDir starts a directory enumeration and returns the first entry as
	// a tab separated string. A status code greater than 1 signals that
	// entry data is present.
	FindDir(path string, mode int32) (int32, string)
	FindNextDir() (int32, string)
	ResetDir() int32

	SetDevice(devices []string, types []int32, values []int32) int32
	ReadDevice() (int32, []int32)
	WriteDevice() int32
	DeleteAllDevices() int32
}

// Dialer produces Endpoint handles. Implementations wrap the concrete
// EZSocket transport; tests substitute scripted endpoints.
type Dialer interface {
	// Dial acquires a fresh automation handle for the given target. It
	// reports local acquisition failures only; protocol-level failures are
	// carried by the status codes of the subsequent Endpoint calls.
	Dial(ip string, port int) (Endpoint, error)
}
