package eznc

import "fmt"

// Status codes that indicate the communication line to the controller is
// gone. A RemoteError carrying one of them matches ErrConnectionLost, and the
// owning session must transition to the closed state before the error
// propagates.
const (
	codeLineNotOpen  uint32 = 0x80a00101
	codeNotConnected uint32 = 0x8202000a
)

// unknownStatusMessage is reported for negative codes absent from the table.
const unknownStatusMessage = "Unknown error"

// RemoteError represents a failure status code returned by the controller.
// It carries the target address, the code as an unsigned 32-bit value and the
// resolved human readable message.
type RemoteError struct {
	Addr    string
	Code    uint32
	Message string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("remote error (addr %s) 0x%08x: %s", e.Addr, e.Code, e.Message)
}

// ConnectionLost reports whether the code means the communication line to
// the controller is no longer open.
func (e *RemoteError) ConnectionLost() bool {
	return e.Code == codeLineNotOpen || e.Code == codeNotConnected
}

// Is lets errors.Is(err, ErrConnectionLost) match connection-loss failures.
func (e *RemoteError) Is(target error) bool {
	return target == ErrConnectionLost && e.ConnectionLost()
}

// Classify translates a status code returned by an Endpoint call.
//
// A code of zero or any positive code is a non-failure and yields nil;
// positive codes are informational and only ever produced by the directory
// enumeration calls. A negative code yields a RemoteError with the message
// resolved from the status table, or "Unknown error" when the code is not
// listed.
//
// Classify is the single translation point for every status code in the
// module; no call site interprets a code on its own.
func Classify(code int32, addr string) error {
	if code >= 0 {
		return nil
	}

	hexCode := uint32(code)
	msg, ok := statusMessages[hexCode]
	if !ok {
		msg = unknownStatusMessage
	}

	return &RemoteError{Addr: addr, Code: hexCode, Message: msg}
}
