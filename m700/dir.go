package m700

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/arloliu/go-eznc/eznc"
)

// driveToken is the drive placeholder in controller-native paths. Before an
// enumeration runs, it is substituted with the drive name derived from the
// session's unit number ("M" + two-digit uppercase hex).
const driveToken = "M01"

// Directory enumeration mode selectors.
const (
	findModeFolders int32 = -1 // "name\tsize" per subdirectory
	findModeFiles   int32 = 5  // "name\tsize\tcomment" per file
)

// sizePrinter renders entry sizes as thousands-grouped decimal strings,
// matching the controller's display convention.
var sizePrinter = message.NewPrinter(language.English)

// ListDir enumerates the directory at the given controller-native path,
// e.g. `M01:\PRG\USER\`. Folders are listed first, then files.
//
// The enumeration runs in two passes under one guarded operation: the first
// pass collects subdirectory entries, the second, after an iteration reset,
// collects file entries. A final reset is always attempted, with failures
// swallowed, so a later enumeration starts from clean iteration state.
func (s *Session) ListDir(path string) ([]DirEntry, error) {
	var entries []DirEntry
	err := s.withSession(func() error {
		// a lost line closes the session and drops s.ep mid-protocol, so the
		// enumeration keeps its own reference to the handle
		ep := s.ep

		// unconditional cleanup, reset status is deliberately ignored
		defer func() { _ = ep.ResetDir() }()

		drive := fmt.Sprintf("M%02X", s.unitNo)
		path = strings.ReplaceAll(path, driveToken, drive)

		folders, err := s.findEntries(ep, path, findModeFolders)
		if err != nil {
			return err
		}
		entries = append(entries, folders...)

		if err := s.check(ep.ResetDir()); err != nil {
			return err
		}

		files, err := s.findEntries(ep, path, findModeFiles)
		if err != nil {
			return err
		}
		entries = append(entries, files...)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return entries, nil
}

// findEntries runs one find-first/find-next pass. A status code greater than
// 1 from the call just made signals that entry data is present; 0 or 1 ends
// the listing.
func (s *Session) findEntries(ep eznc.Endpoint, path string, mode int32) ([]DirEntry, error) {
	var entries []DirEntry

	code, info := ep.FindDir(path, mode)
	if err := s.check(code); err != nil {
		return nil, err
	}

	for code > 1 {
		entry, err := parseDirEntry(info, mode)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)

		code, info = ep.FindNextDir()
		if err := s.check(code); err != nil {
			return nil, err
		}
	}

	return entries, nil
}

func parseDirEntry(info string, mode int32) (DirEntry, error) {
	fields := strings.Split(info, "\t")

	if mode == findModeFolders {
		if len(fields) < 2 {
			return DirEntry{}, fmt.Errorf("malformed folder entry %q", info)
		}

		size, err := formatEntrySize(fields[1])
		if err != nil {
			return DirEntry{}, err
		}

		return DirEntry{Type: EntryFolder, Name: fields[0], Size: size}, nil
	}

	if len(fields) < 3 {
		return DirEntry{}, fmt.Errorf("malformed file entry %q", info)
	}

	size, err := formatEntrySize(fields[1])
	if err != nil {
		return DirEntry{}, err
	}

	return DirEntry{Type: EntryFile, Name: fields[0], Size: size, Comment: fields[2]}, nil
}

func formatEntrySize(field string) (string, error) {
	size, err := strconv.ParseInt(field, 10, 64)
	if err != nil {
		return "", fmt.Errorf("malformed entry size %q: %w", field, err)
	}

	return sizePrinter.Sprintf("%d", size), nil
}
