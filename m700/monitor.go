package m700

// Spindle monitor metric selectors. The spindle status calls take the metric
// number and the spindle number; this client always monitors spindle 1.
const (
	metricSpindleSpeed int32 = 2  // rotation speed, 0~ [rpm]
	metricSpindleLoad  int32 = 3  // spindle motor load, 0~ [%]
	metricCycleCounter int32 = 10 // cycle counter
)

const monitoredSpindle int32 = 1

// DriveInformation returns the available drive name, e.g. "M01:".
//
// The controller reports drives as a "name:CRLF name:CRLF ... \0" string;
// only the first drive is returned here.
func (s *Session) DriveInformation() (string, error) {
	var drive string
	err := s.withSession(func() error {
		code, info := s.ep.DriveInformation()
		if err := s.check(code); err != nil {
			return err
		}

		if len(info) > 4 {
			info = info[:4]
		}
		drive = info

		return nil
	})

	return drive, err
}

// Version returns the NC version string.
func (s *Session) Version() (string, error) {
	var version string
	err := s.withSession(func() error {
		code, v := s.ep.Version(1, 0)
		if err := s.check(code); err != nil {
			return err
		}
		version = v

		return nil
	})

	return version, err
}

// CurrentPosition returns the current coordinate position of the given axis.
// It returns ErrInvalidAxis before any remote call when the axis selector is
// out of domain.
func (s *Session) CurrentPosition(axis Axis) (float64, error) {
	if !axis.valid() {
		return 0, ErrInvalidAxis
	}

	var pos float64
	err := s.withSession(func() error {
		code, p := s.ep.CurrentPosition(int32(axis))
		if err := s.check(code); err != nil {
			return err
		}
		pos = p

		return nil
	})

	return pos, err
}

// RunStatus returns the operation status of the controller.
func (s *Session) RunStatus() (RunState, error) {
	state := RunStateIdle
	err := s.withSession(func() error {
		// run status kind 1 asks whether automatic operation is in progress
		code, status := s.ep.RunStatus(1)
		if err := s.check(code); err != nil {
			return err
		}

		if RunState(status) == RunStateAuto {
			state = RunStateAuto
		}

		return nil
	})

	return state, err
}

// SpindleSpeed returns the spindle rotation speed in rpm.
func (s *Session) SpindleSpeed() (int32, error) {
	return s.spindleMonitor(metricSpindleSpeed)
}

// SpindleLoad returns the spindle motor load in percent.
func (s *Session) SpindleLoad() (int32, error) {
	return s.spindleMonitor(metricSpindleLoad)
}

// CycleCounter returns the machining cycle counter.
func (s *Session) CycleCounter() (int32, error) {
	return s.spindleMonitor(metricCycleCounter)
}

func (s *Session) spindleMonitor(metric int32) (int32, error) {
	var value int32
	err := s.withSession(func() error {
		code, data, _ := s.ep.SpindleMonitor(metric, monitoredSpindle)
		if err := s.check(code); err != nil {
			return err
		}
		value = data

		return nil
	})

	return value, err
}

// CommonVariableName returns the name of the common variable at the given
// index.
func (s *Session) CommonVariableName(index int32) (string, error) {
	var name string
	err := s.withSession(func() error {
		code, n := s.ep.CommonVariableName(index)
		if err := s.check(code); err != nil {
			return err
		}
		name = n

		return nil
	})

	return name, err
}

// MagazineSize returns the total number of magazine pots.
func (s *Session) MagazineSize() (int32, error) {
	var size int32
	err := s.withSession(func() error {
		code, sz := s.ep.MagazineSize()
		if err := s.check(code); err != nil {
			return err
		}
		size = sz

		return nil
	})

	return size, err
}

// MountedTool returns the number of the currently mounted tool.
func (s *Session) MountedTool() (int32, error) {
	var toolNo int32
	err := s.withSession(func() error {
		// magazine 1, standby state 0 = mounted tool number
		code, no := s.ep.MagazineReady(1, 0)
		if err := s.check(code); err != nil {
			return err
		}
		toolNo = no

		return nil
	})

	return toolNo, err
}

// Alarm returns the current alarm message text, up to three lines.
func (s *Session) Alarm() (string, error) {
	var msg string
	err := s.withSession(func() error {
		code, m := s.ep.Alarm(3, 0)
		if err := s.check(code); err != nil {
			return err
		}
		msg = m

		return nil
	})

	return msg, err
}
