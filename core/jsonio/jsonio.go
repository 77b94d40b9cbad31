package jsonio

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"chain-sync/core/document"
	"chain-sync/core/merge"
)

// MalformedError marks a file that exists but does not parse as the
// expected shape. It is distinct from a missing file: a corrupt input is
// never silently treated as empty.
type MalformedError struct {
	Path string
	Err  error
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf("malformed document %s: %v", e.Path, e.Err)
}

func (e *MalformedError) Unwrap() error { return e.Err }

// IsNotExist reports whether err means the file was absent.
func IsNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}

// IsMalformed reports whether err means the file was present but corrupt.
func IsMalformed(err error) bool {
	var me *MalformedError
	return errors.As(err, &me)
}

// WriteError reports a failed write to one destination. Fan-out writes
// produce one WriteError per failing path; sibling destinations are not
// rolled back.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// LoadCollection reads a JSON array of entries from path and validates
// that every entry carries an identifier.
func LoadCollection(path string) (merge.Collection, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c merge.Collection
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, &MalformedError{Path: path, Err: err}
	}
	if err := c.Validate(); err != nil {
		return nil, &MalformedError{Path: path, Err: err}
	}
	return c, nil
}

// LoadDocument reads a JSON object from path, preserving key order.
func LoadDocument(path string) (*document.Object, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var obj document.Object
	if err := json.Unmarshal(data, &obj); err != nil {
		return nil, &MalformedError{Path: path, Err: err}
	}
	return &obj, nil
}

// Save serializes v to path: two-space indent, keys in insertion order,
// HTML left unescaped, trailing newline. Parent directories are created
// as needed.
func Save(path string, v any) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return &WriteError{Path: path, Err: err}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return &WriteError{Path: path, Err: err}
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return &WriteError{Path: path, Err: err}
	}
	return nil
}
