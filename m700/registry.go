package m700

import (
	"github.com/puzpuzpuz/xsync/v3"

	"github.com/arloliu/go-eznc/eznc"
)

// Registry caches one Session per (context, host) pair.
//
// An endpoint handle must not be shared across independent execution
// contexts, so each logical caller (worker, goroutine group, thread of the
// embedding runtime) passes its own context identifier and receives its own
// session. Repeated lookups with the same pair return the same session.
//
// Entries are never evicted; the registry is intended to live for the
// process lifetime and to be keyed by a bounded set of context identifiers.
// All sessions of one registry draw unit numbers from one shared allocator.
type Registry struct {
	dialer   eznc.Dialer
	alloc    *eznc.UnitAllocator
	cfg      *Config
	sessions *xsync.MapOf[string, *Session]
}

// NewRegistry creates a session registry. The options apply to every session
// the registry constructs.
func NewRegistry(dialer eznc.Dialer, opts ...Option) (*Registry, error) {
	cfg, err := newConfig(opts...)
	if err != nil {
		return nil, err
	}

	return &Registry{
		dialer:   dialer,
		alloc:    eznc.NewUnitAllocator(),
		cfg:      cfg,
		sessions: xsync.NewMapOf[string, *Session](),
	}, nil
}

// Get returns the cached session for the (contextID, addr) pair, creating a
// closed one if absent. The addr is an "ip:port" target address. Creation
// never touches the transport; sessions open lazily on their first operation.
//
// Get is safe for concurrent first-access from multiple contexts.
func (r *Registry) Get(contextID, addr string) (*Session, error) {
	ip, port, err := splitAddr(addr)
	if err != nil {
		return nil, err
	}

	key := contextID + "_" + addr
	session, _ := r.sessions.LoadOrCompute(key, func() *Session {
		return newSession(r.dialer, ip, port, r.alloc, r.cfg)
	})

	return session, nil
}

// Allocator returns the unit number allocator shared by the registry's
// sessions.
func (r *Registry) Allocator() *eznc.UnitAllocator {
	return r.alloc
}
