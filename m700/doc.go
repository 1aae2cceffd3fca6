// Package m700 provides a client for Mitsubishi Electric CNC M700/M700V/M70/M70V
// series controllers (machining centers) over the EZSocket automation
// interface. It builds on the protocol-level primitives of the eznc package
// and offers session management plus the machine operation surface: telemetry
// reads, tool offset access, NC program file and directory management, and
// bit/word device I/O.
//
// Session Lifecycle:
//   - A Session is created closed and opens lazily on the first operation.
//     Opening binds the transport to the target, allocates a unit number from
//     the shared pool and performs the EZSocket open handshake.
//   - Every operation acquires the session lock, ensures the session is open
//     and runs against the session's endpoint handle; no two operations on
//     one session ever interleave.
//   - Close is best-effort: it releases the unit number, marks the session
//     closed and tears down the endpoint handle, discarding teardown errors.
//   - When the controller reports that the communication line is gone, the
//     session closes itself before the error reaches the caller, so the next
//     operation performs a fresh open instead of failing on stale state.
//
// Connection Caching:
//   - A Registry caches one Session per (context, host) pair. The endpoint
//     handle underneath a session must not be shared across independent
//     execution contexts, so each logical caller passes its own context
//     identifier and receives its own session.
//
// Usage Example:
//
//	func main() {
//	    reg, err := m700.NewRegistry(dialer) // dialer wraps the EZSocket transport
//	    // ... handle error ...
//
//	    sess, err := reg.Get("worker-1", "192.168.1.10:10001")
//	    // ... handle error ...
//	    defer sess.Close()
//
//	    pos, err := sess.CurrentPosition(m700.AxisX)
//	    // ... handle error ...
//
//	    data, err := sess.ReadFile(`M01:\PRG\USER\100`)
//	    // ... handle error ...
//
//	    // ... other operations ...
//	}
package m700
