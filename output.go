package tickgraph

import (
	"fmt"
	"os"
	"path/filepath"
	"syscall"
)

// FileSink writes finished reports to a file.
// Writes hold an exclusive lock so concurrent runs never interleave output.
type FileSink struct {
	filePath string
}

// NewFileSink creates the parent directory of filePath if needed.
func NewFileSink(filePath string) (*FileSink, error) {
	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}
	return &FileSink{filePath: filePath}, nil
}

func (s *FileSink) Path() string {
	return s.filePath
}

// Write replaces the file contents with data.
// Lock → Truncate → Write → Unlock
func (s *FileSink) Write(data []byte) (int, error) {
	var n int
	err := s.withFileLock(func(file *os.File) error {
		if err := file.Truncate(0); err != nil {
			return fmt.Errorf("failed to truncate file: %w", err)
		}
		if _, err := file.Seek(0, 0); err != nil {
			return fmt.Errorf("failed to seek: %w", err)
		}
		var err error
		n, err = file.Write(data)
		if err != nil {
			return fmt.Errorf("failed to write file: %w", err)
		}
		return nil
	})
	return n, err
}

// withFileLock executes a function with the file locked
func (s *FileSink) withFileLock(fn func(*os.File) error) error {
	file, err := os.OpenFile(s.filePath, os.O_RDWR|os.O_CREATE, 0644)
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	if err := syscall.Flock(int(file.Fd()), syscall.LOCK_EX); err != nil {
		return fmt.Errorf("failed to lock file: %w", err)
	}
	defer syscall.Flock(int(file.Fd()), syscall.LOCK_UN)

	return fn(file)
}
