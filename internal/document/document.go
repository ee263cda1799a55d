package document

import (
	"io"
	"os"
	"strings"
	"unicode/utf8"
)

// Document is the full text of one file, held in memory for a single search.
type Document struct {
	Path    string
	Content string
}

// Load reads the file at path in its entirety.
// The file handle is closed before Load returns on every path.
func Load(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &ReadError{Path: path, Err: unwrapPathError(err)}
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, &ReadError{Path: path, Err: unwrapPathError(err)}
	}
	if !utf8.Valid(data) {
		return nil, &ReadError{Path: path, Err: ErrInvalidText}
	}

	return &Document{Path: path, Content: string(data)}, nil
}

// New wraps already loaded text.
func New(path, content string) *Document {
	return &Document{Path: path, Content: content}
}

// Lines returns the document split into lines.
func (d *Document) Lines() []string {
	if d == nil {
		return nil
	}
	return SplitLines(d.Content)
}

// SplitLines splits s on "\n" and "\r\n" terminators. A final terminator does
// not produce an empty line, and a "\r" without a following "\n" is kept.
func SplitLines(s string) []string {
	if s == "" {
		return []string{}
	}

	lines := make([]string, 0, strings.Count(s, "\n")+1)
	for len(s) > 0 {
		idx := strings.IndexByte(s, '\n')
		if idx < 0 {
			lines = append(lines, s)
			break
		}
		lines = append(lines, strings.TrimSuffix(s[:idx], "\r"))
		s = s[idx+1:]
	}
	return lines
}

// unwrapPathError keeps the cause of an *os.PathError, the path is already on ReadError.
func unwrapPathError(err error) error {
	if pe, ok := err.(*os.PathError); ok {
		return pe.Err
	}
	return err
}
