package m700

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/go-eznc/eznc"
)

func TestSession_LazyOpenIdempotent(t *testing.T) {
	require := require.New(t)

	ep := &MockEndpoint{}
	expectOpen(ep, 1)
	ep.On("Version", int32(1), int32(0)).Return(int32(0), "M700VS-A")

	dialer := &mockDialer{endpoints: []*MockEndpoint{ep}}
	sess, _ := newTestSession(t, dialer)

	// construction never opens the transport
	require.Equal(0, dialer.dialCount())
	require.Equal(0, sess.UnitNumber())

	version, err := sess.Version()
	require.NoError(err)
	require.Equal("M700VS-A", version)
	require.Equal(1, sess.UnitNumber())

	// a second operation reuses the open session, no extra handshake
	_, err = sess.Version()
	require.NoError(err)

	require.Equal(1, dialer.dialCount())
	ep.AssertNumberOfCalls(t, "Bind", 1)
	ep.AssertNumberOfCalls(t, "Open", 1)
}

func TestSession_OpenBindFailure(t *testing.T) {
	require := require.New(t)

	ep := &MockEndpoint{}
	ep.On("Bind", testIP, int32(testPort)).Return(signedCode(0x80b00302))
	ep.On("Release").Return(int32(0))

	dialer := &mockDialer{endpoints: []*MockEndpoint{ep}}
	sess, alloc := newTestSession(t, dialer)

	_, err := sess.Version()
	require.Error(err)

	var remoteErr *eznc.RemoteError
	require.ErrorAs(err, &remoteErr)
	require.Equal(uint32(0x80b00302), remoteErr.Code)

	// no unit number was allocated for the failed open
	unitNo, allocErr := alloc.Allocate()
	require.NoError(allocErr)
	require.Equal(1, unitNo)

	ep.AssertCalled(t, "Release")
	ep.AssertNotCalled(t, "Open", int32(6), int32(1), int32(30), "EZNC_LOCALHOST")
}

func TestSession_OpenHandshakeFailureReleasesUnitNumber(t *testing.T) {
	require := require.New(t)

	ep := &MockEndpoint{}
	ep.On("Bind", testIP, int32(testPort)).Return(int32(0))
	ep.On("Open", int32(6), int32(1), int32(30), "EZNC_LOCALHOST").Return(signedCode(0x80a00104))
	ep.On("Release").Return(int32(0))

	dialer := &mockDialer{endpoints: []*MockEndpoint{ep}}
	sess, alloc := newTestSession(t, dialer)

	_, err := sess.Version()
	require.Error(err)

	var remoteErr *eznc.RemoteError
	require.ErrorAs(err, &remoteErr)
	require.Equal("Double Open Error", remoteErr.Message)

	require.False(sess.isOpen)
	require.Equal(0, sess.UnitNumber())

	// the unit number allocated between the two handshake calls must be
	// observably free again
	unitNo, allocErr := alloc.Allocate()
	require.NoError(allocErr)
	require.Equal(1, unitNo)
}

func TestSession_CloseReleasesResources(t *testing.T) {
	require := require.New(t)

	ep := &MockEndpoint{}
	expectOpen(ep, 1)
	expectTeardown(ep)

	dialer := &mockDialer{endpoints: []*MockEndpoint{ep}, failAfter: 1}
	sess, alloc := newTestSession(t, dialer)

	require.True(sess.IsOpen())
	require.Equal(1, sess.UnitNumber())

	sess.Close()
	require.Equal(0, sess.UnitNumber())

	// dials past failAfter are refused, so the probe reports closed
	require.False(sess.IsOpen())

	unitNo, err := alloc.Allocate()
	require.NoError(err)
	require.Equal(1, unitNo)

	ep.AssertCalled(t, "Close")
	ep.AssertCalled(t, "Release")
}

func TestSession_CloseIdempotent(t *testing.T) {
	require := require.New(t)

	ep := &MockEndpoint{}
	expectOpen(ep, 1)
	expectTeardown(ep)

	dialer := &mockDialer{endpoints: []*MockEndpoint{ep}}
	sess, _ := newTestSession(t, dialer)

	require.True(sess.IsOpen())

	sess.Close()
	sess.Close() // closing a closed session is a no-op

	ep.AssertNumberOfCalls(t, "Close", 1)
	ep.AssertNumberOfCalls(t, "Release", 1)
	require.Equal(0, sess.UnitNumber())
}

func TestSession_CloseSwallowsTeardownFailures(t *testing.T) {
	require := require.New(t)

	ep := &MockEndpoint{}
	expectOpen(ep, 1)
	ep.On("Close").Return(signedCode(0x8202000b))
	ep.On("Release").Return(signedCode(0xffffffff))

	dialer := &mockDialer{endpoints: []*MockEndpoint{ep}, failAfter: 1}
	sess, alloc := newTestSession(t, dialer)

	require.True(sess.IsOpen())

	// Close never raises, even when every teardown step reports an error
	sess.Close()

	require.False(sess.IsOpen())
	unitNo, err := alloc.Allocate()
	require.NoError(err)
	require.Equal(1, unitNo)
}

func TestSession_ConnectionLostClosesSession(t *testing.T) {
	require := require.New(t)

	ep1 := &MockEndpoint{}
	expectOpen(ep1, 1)
	expectTeardown(ep1)
	ep1.On("Version", int32(1), int32(0)).Return(int32(0), "M700VS-A").Once()
	ep1.On("Version", int32(1), int32(0)).Return(signedCode(0x80a00101), "")

	ep2 := &MockEndpoint{}
	expectOpen(ep2, 1)
	ep2.On("Version", int32(1), int32(0)).Return(int32(0), "M700VS-A")

	dialer := &mockDialer{endpoints: []*MockEndpoint{ep1, ep2}}
	sess, _ := newTestSession(t, dialer)

	_, err := sess.Version()
	require.NoError(err)

	_, err = sess.Version()
	require.ErrorIs(err, eznc.ErrConnectionLost)

	// the lost line forced the session closed and released its resources
	require.Equal(0, sess.UnitNumber())
	ep1.AssertCalled(t, "Close")
	ep1.AssertCalled(t, "Release")

	// the next operation runs a fresh open instead of reusing stale state
	version, err := sess.Version()
	require.NoError(err)
	require.Equal("M700VS-A", version)
	require.Equal(2, dialer.dialCount())
	ep2.AssertNumberOfCalls(t, "Bind", 1)
}

func TestSession_UnitNumberExhaustion(t *testing.T) {
	require := require.New(t)

	ep := &MockEndpoint{}
	ep.On("Bind", testIP, int32(testPort)).Return(int32(0))
	ep.On("Release").Return(int32(0))

	dialer := &mockDialer{endpoints: []*MockEndpoint{ep}}

	alloc := eznc.NewUnitAllocator()
	for i := 0; i < eznc.MaxUnitNumber; i++ {
		_, err := alloc.Allocate()
		require.NoError(err)
	}

	sess, err := NewSession(dialer, testAddr, alloc)
	require.NoError(err)

	_, err = sess.Version()
	require.ErrorIs(err, eznc.ErrUnitNumbersExhausted)
	require.False(sess.isOpen)
	ep.AssertCalled(t, "Release")
}

func TestSession_InvalidAddress(t *testing.T) {
	require := require.New(t)

	dialer := &mockDialer{endpoints: []*MockEndpoint{{}}}
	alloc := eznc.NewUnitAllocator()

	_, err := NewSession(dialer, "192.168.1.10", alloc)
	require.Error(err)

	_, err = NewSession(dialer, "192.168.1.10:notaport", alloc)
	require.Error(err)

	_, err = NewSession(dialer, "192.168.1.10:0", alloc)
	require.Error(err)
}

func TestSession_String(t *testing.T) {
	require := require.New(t)

	ep := &MockEndpoint{}
	expectOpen(ep, 1)

	dialer := &mockDialer{endpoints: []*MockEndpoint{ep}}
	sess, _ := newTestSession(t, dialer)

	require.Equal(testAddr+" closed", sess.String())

	require.True(sess.IsOpen())
	require.Equal(testAddr+" open", sess.String())
}
