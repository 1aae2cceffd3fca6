package m700

import "errors"

var (
	// ErrInvalidAxis indicates that an axis selector outside the accepted
	// enumeration (AxisX, AxisY, AxisZ) was passed. It is raised before any
	// remote call is issued.
	ErrInvalidAxis = errors.New("invalid axis, specify AxisX, AxisY or AxisZ")

	// ErrInvalidProgramType indicates that a program type selector outside
	// the accepted enumeration (ProgramMain, ProgramSub) was passed. It is
	// raised before any remote call is issued.
	ErrInvalidProgramType = errors.New("invalid program type, specify ProgramMain or ProgramSub")

	// ErrUnsupportedDevice indicates that a device identifier does not name
	// a bit (M) or word (D) device. It is raised before any remote call is
	// issued.
	ErrUnsupportedDevice = errors.New("unsupported device, specify an M (bit) or D (word) device")

	// ErrNoDeviceValue indicates that a device read returned an empty value
	// array.
	ErrNoDeviceValue = errors.New("device read returned no value")
)
