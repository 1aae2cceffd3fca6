package m700

// Axis selects the coordinate axis for position reads. The values correspond
// to the axis numbers the controller expects.
type Axis int32

const (
	AxisX Axis = 1
	AxisY Axis = 2
	AxisZ Axis = 3
)

func (a Axis) valid() bool {
	return a >= AxisX && a <= AxisZ
}

// String returns the axis name.
func (a Axis) String() string {
	switch a {
	case AxisX:
		return "X"
	case AxisY:
		return "Y"
	case AxisZ:
		return "Z"
	default:
		return "unknown"
	}
}

// ProgramType selects the main or sub program for program number reads.
// The values correspond to the selector the controller expects.
type ProgramType int32

const (
	ProgramMain ProgramType = 0
	ProgramSub  ProgramType = 1
)

func (p ProgramType) valid() bool {
	return p == ProgramMain || p == ProgramSub
}

// String returns the program type name.
func (p ProgramType) String() string {
	switch p {
	case ProgramMain:
		return "main"
	case ProgramSub:
		return "sub"
	default:
		return "unknown"
	}
}

// RunState represents the controller operation status. The values correspond
// to the values the controller returns.
type RunState int32

const (
	// RunStateIdle indicates that the controller is not in automatic operation.
	RunStateIdle RunState = 0
	// RunStateAuto indicates that automatic operation is in progress.
	RunStateAuto RunState = 1
)

// String returns the run state name.
func (r RunState) String() string {
	switch r {
	case RunStateIdle:
		return "idle"
	case RunStateAuto:
		return "auto-run"
	default:
		return "unknown"
	}
}

// NC program file open modes used by the streamed file transfer protocol.
const (
	fileModeRead      int32 = 1
	fileModeWrite     int32 = 2
	fileModeOverwrite int32 = 3
)

// EntryType tags a directory listing entry as a folder or a file.
type EntryType int

const (
	EntryFolder EntryType = iota
	EntryFile
)

// String returns the entry type name.
func (e EntryType) String() string {
	switch e {
	case EntryFolder:
		return "folder"
	case EntryFile:
		return "file"
	default:
		return "unknown"
	}
}

// DirEntry is one entry of a directory listing on the controller's storage.
//
// Size is a thousands-grouped decimal string rather than a raw integer,
// matching the controller's display convention. Comment is only populated for
// file entries.
type DirEntry struct {
	Type    EntryType
	Name    string
	Size    string
	Comment string
}
