package eznc

import "errors"

var (
	// ErrUnitNumbersExhausted indicates that all 255 unit numbers are in use.
	// EZSocket identifies every logical connection by a unit number in the
	// range of 1 to 255; the pool being empty means too many simultaneous
	// connections.
	ErrUnitNumbersExhausted = errors.New("unit number pool exhausted, too many simultaneous connections")

	// ErrConnectionLost indicates that the communication line to the
	// controller is no longer open. It is never returned directly; match it
	// with errors.Is against the RemoteError returned by Classify.
	ErrConnectionLost = errors.New("connection lost")
)
