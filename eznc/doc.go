// Package eznc provides the protocol-level building blocks for talking to
// Mitsubishi Electric CNC controllers (M700/M700V/M70/M70V series) through the
// EZSocket automation interface.
//
// The package is machine-model independent. It defines:
//   - The Endpoint interface, an abstract view of the EZSocket automation
//     surface: one method per remote call, each returning a signed 32-bit
//     status code plus zero or more output values. How the endpoint is dialed
//     and kept alive at the socket level is the Dialer implementation's
//     concern.
//   - The status code taxonomy. Every status code returned by an Endpoint
//     call is classified by Classify into success (zero or positive,
//     positive codes are informational and used by directory enumeration),
//     or a RemoteError carrying the target address, the hexadecimal code and
//     a resolved message. Two codes additionally mark the communication line
//     as gone; RemoteError reports them through errors.Is(err, ErrConnectionLost).
//   - The UnitAllocator, which hands out the unit numbers (1-255) EZSocket
//     requires to identify a logical connection.
//
// Higher-level session management and machine operations live in the m700
// package.
package eznc
