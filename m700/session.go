package m700

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"sync"

	"github.com/arloliu/go-eznc/eznc"
	"github.com/arloliu/go-eznc/logger"
)

// Session represents one serialized channel to one controller.
//
// A session is created closed and opens lazily on the first operation. While
// open it owns exactly one endpoint handle and one unit number from the
// shared allocator. The session mutex totally orders every operation that
// touches endpoint state, including the open transition itself; the endpoint
// handle is never touched outside the lock.
type Session struct {
	mu sync.Mutex

	dialer eznc.Dialer
	alloc  *eznc.UnitAllocator
	cfg    *Config
	logger logger.Logger

	ip   string
	port int

	// guarded by mu
	isOpen bool
	unitNo int
	ep     eznc.Endpoint
}

// NewSession creates a closed session for the given "ip:port" address.
// The transport is not touched until the first operation.
//
// The allocator is shared by every session that draws unit numbers from the
// same EZSocket process; pass the same instance to all of them.
func NewSession(dialer eznc.Dialer, addr string, alloc *eznc.UnitAllocator, opts ...Option) (*Session, error) {
	cfg, err := newConfig(opts...)
	if err != nil {
		return nil, err
	}

	ip, port, err := splitAddr(addr)
	if err != nil {
		return nil, err
	}

	return newSession(dialer, ip, port, alloc, cfg), nil
}

func newSession(dialer eznc.Dialer, ip string, port int, alloc *eznc.UnitAllocator, cfg *Config) *Session {
	return &Session{
		dialer: dialer,
		alloc:  alloc,
		cfg:    cfg,
		logger: cfg.logger.With("addr", net.JoinHostPort(ip, strconv.Itoa(port))),
		ip:     ip,
		port:   port,
	}
}

// splitAddr parses an "ip:port" target address.
func splitAddr(addr string) (string, int, error) {
	ip, portStr, err := net.SplitHostPort(addr)
	if err != nil {
		return "", 0, fmt.Errorf("invalid address %q: %w", addr, err)
	}

	port, err := strconv.Atoi(portStr)
	if err != nil || port < 1 || port > 65535 {
		return "", 0, fmt.Errorf("invalid port in address %q", addr)
	}

	return ip, port, nil
}

// Addr returns the target address of the session in "ip:port" form.
func (s *Session) Addr() string {
	return net.JoinHostPort(s.ip, strconv.Itoa(s.port))
}

// String returns the target address and the current open state.
func (s *Session) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := "closed"
	if s.isOpen {
		state = "open"
	}

	return s.Addr() + " " + state
}

// UnitNumber returns the allocated unit number, or zero while the session is
// closed.
func (s *Session) UnitNumber() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.unitNo
}

// IsOpen attempts to open the session and reports whether it is open.
// Open failures are swallowed, which makes it usable as a health probe that
// never propagates transport errors.
func (s *Session) IsOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureOpen(); err != nil {
		s.logger.Debug("open probe failed", "method", "IsOpen", "error", err)
	}

	return s.isOpen
}

// Close closes the session. It releases the unit number, marks the session
// closed and tears down the endpoint handle.
//
// Close is best-effort cleanup and never returns an error; teardown failures
// are discarded so the caller can always treat the session as logically
// closed. A closed session reopens on the next operation.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.close()
}

// close is the lock-held teardown path. It is also driven by check when the
// controller reports the communication line gone.
func (s *Session) close() {
	if s.unitNo != 0 {
		s.alloc.Release(s.unitNo)
		s.unitNo = 0
	}
	s.isOpen = false

	if s.ep == nil {
		return
	}

	// teardown status codes are deliberately ignored
	_ = s.ep.Close()
	_ = s.ep.Release()
	s.ep = nil

	s.logger.Debug("session closed", "method", "close")
}

// ensureOpen opens the session if it is not open yet. It is idempotent:
// calling it on an open session performs no remote calls.
//
// The caller must hold the session mutex.
func (s *Session) ensureOpen() error {
	if s.isOpen {
		return nil
	}

	ep, err := s.dialer.Dial(s.ip, s.port)
	if err != nil {
		return err
	}

	if err := s.check(ep.Bind(s.ip, int32(s.port))); err != nil {
		_ = ep.Release()
		return err
	}

	unitNo, err := s.alloc.Allocate()
	if err != nil {
		_ = ep.Release()
		return err
	}

	// the open handshake carries the model selector, the allocated unit
	// number, the timeout in 100ms ticks and the automation host marker
	code := ep.Open(s.cfg.machineType, int32(unitNo), s.cfg.openTimeoutTicks(), s.cfg.hostName)
	if err := s.check(code); err != nil {
		s.alloc.Release(unitNo)
		_ = ep.Release()

		return err
	}

	s.ep = ep
	s.unitNo = unitNo
	s.isOpen = true

	s.logger.Debug("session opened", "method", "ensureOpen", "unit_no", unitNo)

	return nil
}

// withSession is the serialization primitive every public operation uses.
// It acquires the session mutex, ensures the session is open and runs op
// against the open endpoint. The mutex is released on every exit path.
func (s *Session) withSession(op func() error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureOpen(); err != nil {
		return err
	}

	return op()
}

// check passes a status code through the protocol-level classification.
// When the code means the communication line is gone, the session is closed
// before the error propagates, so subsequent callers observe the closed
// state and reopen instead of failing on a stale handle.
//
// The caller must hold the session mutex. Every endpoint call in this
// package routes its status code through check.
func (s *Session) check(code int32) error {
	err := eznc.Classify(code, s.Addr())
	if err == nil {
		return nil
	}

	if errors.Is(err, eznc.ErrConnectionLost) {
		s.logger.Warn("communication line lost, closing session", "method", "check", "error", err)
		s.close()
	}

	return err
}
