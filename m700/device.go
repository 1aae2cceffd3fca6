package m700

import "github.com/arloliu/go-eznc/eznc"

// Device data width selectors, chosen by the device identifier's prefix:
// M devices are bit type (1 bit), D devices are word type (16 bit).
const (
	devTypeBit  int32 = 1
	devTypeWord int32 = 4
)

// deviceType resolves a device identifier like "M810" or "D10" to its data
// width selector. Unsupported prefixes fail locally, before any remote call.
func deviceType(dev string) (int32, error) {
	if dev == "" {
		return 0, ErrUnsupportedDevice
	}

	switch dev[0] {
	case 'M':
		return devTypeBit, nil
	case 'D':
		return devTypeWord, nil
	default:
		return 0, ErrUnsupportedDevice
	}
}

// ReadDevice reads the current value of the given device, e.g. "M900" or
// "D10". The device descriptor is configured, read once and then cleared.
func (s *Session) ReadDevice(dev string) (int32, error) {
	devType, err := deviceType(dev)
	if err != nil {
		return 0, err
	}

	var value int32
	err = s.withSession(func() error {
		// a lost line closes the session and drops s.ep mid-protocol, so the
		// read sequence keeps its own reference to the handle
		ep := s.ep

		if err := s.setDevice(ep, dev, devType, 0); err != nil {
			return err
		}

		code, values := ep.ReadDevice()
		if err := s.check(code); err != nil {
			return err
		}
		if len(values) == 0 {
			return ErrNoDeviceValue
		}
		value = values[0]

		return s.check(ep.DeleteAllDevices())
	})

	return value, err
}

// WriteDevice writes a value to the given device, e.g. "M810" or "D10".
// For bit devices the value is 1 to raise the bit and 0 to lower it.
//
// The configured device descriptors are cleared even when the write call
// reports an error; the write's error still propagates after the cleanup.
func (s *Session) WriteDevice(dev string, value int32) error {
	devType, err := deviceType(dev)
	if err != nil {
		return err
	}

	return s.withSession(func() error {
		ep := s.ep

		if err := s.setDevice(ep, dev, devType, value); err != nil {
			return err
		}

		writeErr := s.check(ep.WriteDevice())
		if clearErr := s.check(ep.DeleteAllDevices()); writeErr == nil {
			writeErr = clearErr
		}

		return writeErr
	})
}

// setDevice configures one device descriptor for a subsequent read or write.
// The caller holds the session lock through withSession.
func (s *Session) setDevice(ep eznc.Endpoint, dev string, devType, value int32) error {
	return s.check(ep.SetDevice([]string{dev}, []int32{devType}, []int32{value}))
}
