package m700

import (
	"errors"
	"os"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/go-eznc/eznc"
	"github.com/arloliu/go-eznc/logger"
)

const (
	testIP   = "192.168.1.10"
	testPort = 10001
	testAddr = "192.168.1.10:10001"
)

func TestMain(m *testing.M) {
	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}

	var level logger.Level
	switch logLevel {
	case "debug":
		level = logger.DebugLevel
	case "info":
		level = logger.InfoLevel
	case "warn":
		level = logger.WarnLevel
	case "error":
		level = logger.ErrorLevel
	case "fatal":
		level = logger.FatalLevel
	default:
		level = logger.InfoLevel
	}

	logger.SetLevel(level)

	os.Exit(m.Run())
}

var errDialRefused = errors.New("dial refused")

// mockDialer hands out scripted endpoints in order and reuses the last one
// once the script is exhausted. Setting failAfter > 0 makes every dial past
// that count fail, which lets tests pin a session in the closed state.
type mockDialer struct {
	mu        sync.Mutex
	endpoints []*MockEndpoint
	dials     int
	failAfter int
}

var _ eznc.Dialer = (*mockDialer)(nil)

func (d *mockDialer) Dial(ip string, port int) (eznc.Endpoint, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.dials++
	if d.failAfter > 0 && d.dials > d.failAfter {
		return nil, errDialRefused
	}

	idx := d.dials - 1
	if idx >= len(d.endpoints) {
		idx = len(d.endpoints) - 1
	}

	return d.endpoints[idx], nil
}

func (d *mockDialer) dialCount() int {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.dials
}

// expectOpen registers the handshake expectations of a successful lazy open
// with the default config (machine type 6, 3s timeout as 30 ticks).
func expectOpen(ep *MockEndpoint, unitNo int32) {
	ep.On("Bind", testIP, int32(testPort)).Return(int32(0))
	ep.On("Open", int32(6), unitNo, int32(30), "EZNC_LOCALHOST").Return(int32(0))
}

// expectTeardown registers the best-effort teardown expectations.
func expectTeardown(ep *MockEndpoint) {
	ep.On("Close").Return(int32(0))
	ep.On("Release").Return(int32(0))
}

func newTestSession(t *testing.T, dialer *mockDialer, opts ...Option) (*Session, *eznc.UnitAllocator) {
	t.Helper()

	alloc := eznc.NewUnitAllocator()
	sess, err := NewSession(dialer, testAddr, alloc, opts...)
	require.NoError(t, err)

	return sess, alloc
}

// signedCode converts an unsigned status code constant to the signed form
// endpoints return.
func signedCode(code uint32) int32 {
	return int32(code)
}
