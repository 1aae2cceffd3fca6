package m700

import (
	"errors"
	"time"

	"github.com/arloliu/go-eznc/logger"
)

// machineTypeM700 is the EZSocket system selector for the machining center
// M700/M700V/M70/M70V series (EZNC_SYS_MELDAS700M).
const machineTypeM700 int32 = 6

// defaultHostName is the automation host marker passed to the open handshake
// when the EZSocket automation server runs on the local host.
const defaultHostName = "EZNC_LOCALHOST"

// Config holds the configuration parameters shared by the sessions of one
// registry. It is immutable once built; options validate their input at
// construction time.
type Config struct {
	// machineType selects the controller model family in the open handshake.
	// Defaults to the M700 series selector.
	machineType int32

	// openTimeout is the handshake timeout for the open call. It is
	// transmitted in 100 millisecond ticks. Defaults to 3 seconds.
	openTimeout time.Duration

	// hostName is the automation host marker for the open call.
	// Defaults to EZNC_LOCALHOST.
	hostName string

	// fileChunkSize is the block size, in bytes, of one streamed file read
	// call. Defaults to 256.
	fileChunkSize int32

	// logger provides a logger instance for session lifecycle events and errors.
	logger logger.Logger
}

func newConfig(opts ...Option) (*Config, error) {
	cfg := &Config{
		machineType:   machineTypeM700,
		openTimeout:   3 * time.Second,
		hostName:      defaultHostName,
		fileChunkSize: 256,
		logger:        logger.GetLogger(),
	}

	for _, opt := range opts {
		if err := opt.apply(cfg); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

// openTimeoutTicks returns the open timeout in the 100 millisecond ticks the
// open handshake expects.
func (cfg *Config) openTimeoutTicks() int32 {
	return int32(cfg.openTimeout / (100 * time.Millisecond))
}

// Option represents a functional option for configuring sessions.
type Option interface {
	apply(*Config) error
}

type optFunc struct {
	name      string
	applyFunc func(*Config) error
}

func (o *optFunc) apply(cfg *Config) error { return o.applyFunc(cfg) }

func newOptFunc(name string, f func(*Config) error) *optFunc {
	return &optFunc{name: name, applyFunc: f}
}

// WithMachineType sets the EZSocket system selector used in the open
// handshake. An error is returned if the value is not positive.
//
// The default value selects the M700/M700V/M70/M70V series.
func WithMachineType(machineType int32) Option {
	return newOptFunc("WithMachineType", func(cfg *Config) error {
		if machineType <= 0 {
			return errors.New("machine type must be positive")
		}
		cfg.machineType = machineType

		return nil
	})
}

// WithOpenTimeout sets the handshake timeout for the open call. The timeout
// is transmitted in 100 millisecond ticks, so it must be at least 100
// milliseconds and at most 1 hour.
//
// The default value is 3 seconds.
func WithOpenTimeout(timeout time.Duration) Option {
	return newOptFunc("WithOpenTimeout", func(cfg *Config) error {
		if timeout < 100*time.Millisecond || timeout > time.Hour {
			return errors.New("open timeout out of range [0.1s, 1h]")
		}
		cfg.openTimeout = timeout

		return nil
	})
}

// WithHostName sets the automation host marker passed to the open handshake.
// An error is returned if the name is empty.
//
// The default value is EZNC_LOCALHOST.
func WithHostName(name string) Option {
	return newOptFunc("WithHostName", func(cfg *Config) error {
		if name == "" {
			return errors.New("host name is empty")
		}
		cfg.hostName = name

		return nil
	})
}

// WithFileChunkSize sets the block size, in bytes, of one streamed file read
// call. The size must be within the range of 1 to 65536.
//
// The default value is 256.
func WithFileChunkSize(size int32) Option {
	return newOptFunc("WithFileChunkSize", func(cfg *Config) error {
		if size < 1 || size > 65536 {
			return errors.New("file chunk size out of range [1, 65536]")
		}
		cfg.fileChunkSize = size

		return nil
	})
}

// WithLogger sets the logger for session lifecycle events and errors.
// An error is returned if the logger is nil.
//
// The default logger is the global logger instance.
func WithLogger(l logger.Logger) Option {
	return newOptFunc("WithLogger", func(cfg *Config) error {
		if l == nil {
			return errors.New("logger is nil")
		}
		cfg.logger = l

		return nil
	})
}
