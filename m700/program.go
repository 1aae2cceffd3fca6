package m700

// ProgramNumber returns the program number of the main or sub program during
// search completion or automatic operation. It returns ErrInvalidProgramType
// before any remote call when the selector is out of domain.
func (s *Session) ProgramNumber(progType ProgramType) (string, error) {
	if !progType.valid() {
		return "", ErrInvalidProgramType
	}

	var number string
	err := s.withSession(func() error {
		code, no := s.ep.ProgramNumber(int32(progType))
		if err := s.check(code); err != nil {
			return err
		}
		number = no

		return nil
	})

	return number, err
}
