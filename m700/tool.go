package m700

// toolOffsetType is the tool offset type selector for machining center
// type II correction tables.
const toolOffsetType int32 = 4

// Tool offset kind selectors within the correction table.
const (
	offsetKindLength   int32 = 0
	offsetKindDiameter int32 = 2
)

// ToolSetSize returns the number of toolsets of the correction table.
func (s *Session) ToolSetSize() (int32, error) {
	var size int32
	err := s.withSession(func() error {
		code, sz := s.ep.ToolSetSize()
		if err := s.check(code); err != nil {
			return err
		}
		size = sz

		return nil
	})

	return size, err
}

// ToolLengthOffset returns the length compensation value of the given
// toolset number (1-based).
func (s *Session) ToolLengthOffset(toolSetNo int32) (float64, error) {
	return s.toolOffset(offsetKindLength, toolSetNo)
}

// ToolDiameterOffset returns the diameter compensation value of the given
// toolset number (1-based).
func (s *Session) ToolDiameterOffset(toolSetNo int32) (float64, error) {
	return s.toolOffset(offsetKindDiameter, toolSetNo)
}

// SetToolLengthOffset sets the length compensation value of the given
// toolset number (1-based).
func (s *Session) SetToolLengthOffset(toolSetNo int32, offset float64) error {
	return s.setToolOffset(offsetKindLength, toolSetNo, offset)
}

// SetToolDiameterOffset sets the diameter compensation value of the given
// toolset number (1-based).
func (s *Session) SetToolDiameterOffset(toolSetNo int32, offset float64) error {
	return s.setToolOffset(offsetKindDiameter, toolSetNo, offset)
}

func (s *Session) toolOffset(kind, toolSetNo int32) (float64, error) {
	var offset float64
	err := s.withSession(func() error {
		code, value, _ := s.ep.ToolOffset(toolOffsetType, kind, toolSetNo)
		if err := s.check(code); err != nil {
			return err
		}
		offset = value

		return nil
	})

	return offset, err
}

func (s *Session) setToolOffset(kind, toolSetNo int32, offset float64) error {
	return s.withSession(func() error {
		return s.check(s.ep.SetToolOffset(toolOffsetType, kind, toolSetNo, offset, 0))
	})
}
