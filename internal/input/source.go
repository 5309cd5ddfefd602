package input

import (
	"fmt"
	"io"
	"os"
	"strings"
)

//go:generate mockgen -source=source.go -destination=mocks/mock_source.go -package=mocks

// Source provides the raw puzzle input.
type Source interface {
	Read() (string, error)
}

// FileSource reads the whole input from a file, or from stdin when Path is "-".
type FileSource struct {
	Path  string
	Stdin io.Reader
}

func NewFileSource(path string) *FileSource {
	return &FileSource{
		Path:  path,
		Stdin: os.Stdin,
	}
}

func (s *FileSource) Read() (string, error) {
	if s.Path == "-" {
		bytes, err := io.ReadAll(s.Stdin)
		if err != nil {
			return "", fmt.Errorf("unable to read stdin: %w", err)
		}
		return string(bytes), nil
	}

	bytes, err := os.ReadFile(s.Path)
	if err != nil {
		return "", fmt.Errorf("unable to read the input file %s: %w", s.Path, err)
	}
	return string(bytes), nil
}

// Lines splits the input on newlines, dropping the trailing empty line
// left by a final newline. Windows line endings are normalized.
func Lines(input string) []string {
	input = strings.ReplaceAll(input, "\r\n", "\n")
	input = strings.TrimSuffix(input, "\n")
	if input == "" {
		return []string{}
	}
	return strings.Split(input, "\n")
}
