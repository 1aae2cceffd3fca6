package m700

// ReadFile reads the NC program file at the given controller-native absolute
// path, e.g. `M01:\PRG\USER\100`.
//
// The file is streamed in fixed-size blocks until a response shorter than
// one full block arrives. The remote file handle is closed on every exit
// path; the close status never affects the read's outcome.
func (s *Session) ReadFile(path string) ([]byte, error) {
	var data []byte
	err := s.withSession(func() error {
		// a lost line closes the session and drops s.ep mid-protocol, so the
		// cleanup path keeps its own reference to the handle
		ep := s.ep

		if err := s.check(ep.OpenFile(path, fileModeRead)); err != nil {
			return err
		}
		// unconditional cleanup, close status is deliberately ignored
		defer func() { _ = ep.CloseFile() }()

		chunkSize := s.cfg.fileChunkSize
		for {
			code, chunk := ep.ReadFile(chunkSize)
			if err := s.check(code); err != nil {
				return err
			}

			data = append(data, chunk...)

			// a short block terminates the stream; a file whose size is an
			// exact multiple of the block size ends with an empty block
			if int32(len(chunk)) < chunkSize {
				return nil
			}
		}
	})
	if err != nil {
		return nil, err
	}

	return data, nil
}

// WriteFile writes data to the NC program file at the given controller-native
// absolute path, overwriting an existing file.
//
// The remote file handle is closed on every exit path; the close status never
// affects the write's outcome.
func (s *Session) WriteFile(path string, data []byte) error {
	return s.withSession(func() error {
		ep := s.ep

		if err := s.check(ep.OpenFile(path, fileModeOverwrite)); err != nil {
			return err
		}
		defer func() { _ = ep.CloseFile() }()

		return s.check(ep.WriteFile(data))
	})
}

// DeleteFile deletes the NC program file at the given controller-native
// absolute path.
func (s *Session) DeleteFile(path string) error {
	return s.withSession(func() error {
		return s.check(s.ep.DeleteFile(path))
	})
}
