// Package journal reads and writes the on-disk journal file: a JSON
// array holding the store's full task sequence in insertion order.
package journal

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"tjournal/internal/store"
)

// ErrCorrupt indicates the journal file exists but does not decode into
// the expected shape. The wrapping error carries the diagnostic.
var ErrCorrupt = errors.New("corrupt journal")

//go:embed schema.json
var schemaJSON string

var schema = mustCompileSchema()

func mustCompileSchema() *jsonschema.Schema {
	c := jsonschema.NewCompiler()
	c.AssertFormat = true
	if err := c.AddResource("journal.schema.json", bytes.NewReader([]byte(schemaJSON))); err != nil {
		panic(err)
	}
	return c.MustCompile("journal.schema.json")
}

// Load reads the journal at path. A missing or empty file is a first
// run, not an error, and yields an empty store.
func Load(path string) (*store.Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return store.New(), nil
		}
		return nil, fmt.Errorf("read journal: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return store.New(), nil
	}

	// Validate the raw document shape before decoding into tasks, so a
	// malformed file fails with a pointed diagnostic instead of a zero
	// value slipping through.
	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	if err := schema.Validate(doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}

	var tasks []store.Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	return store.FromTasks(tasks), nil
}

// Save serializes the store's full task sequence to path, replacing any
// previous contents. The write goes to a temp file in the same directory
// followed by a rename, so a failed write never leaves a truncated
// journal behind.
func Save(path string, s *store.Store) error {
	data, err := json.MarshalIndent(s.Tasks(), "", "  ")
	if err != nil {
		return fmt.Errorf("marshal journal: %w", err)
	}
	data = append(data, '\n')

	tmp, err := os.CreateTemp(filepath.Dir(path), ".tjournal-*.tmp")
	if err != nil {
		return fmt.Errorf("write journal: %w", err)
	}
	tmpPath := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("write journal: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("write journal: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("write journal: %w", err)
	}
	return nil
}
