package codec

import (
	"fmt"
	"os"
)

// WriteFile serializes doc to path, replacing any previous file wholesale.
// A regenerated maze is never patched in place.
func WriteFile(path string, doc *Document) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("write maze file: %w", err)
	}
	if err := Encode(f, doc); err != nil {
		f.Close()
		return fmt.Errorf("write maze file %s: %w", path, err)
	}
	return f.Close()
}

// ReadFile parses the maze document stored at path
func ReadFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("read maze file: %w", err)
	}
	defer f.Close()

	doc, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("read maze file %s: %w", path, err)
	}
	return doc, nil
}

// AppendPath appends the solution path as the final line of an existing
// maze file.
func AppendPath(path string, route string) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("append path to maze file: %w", err)
	}
	if _, err := fmt.Fprintln(f, route); err != nil {
		f.Close()
		return fmt.Errorf("append path to maze file %s: %w", path, err)
	}
	return f.Close()
}
