package raw

import (
	"fmt"
	"os"

	"github.com/vmihailenco/msgpack/v5"
)

// Current schema version - increment when the Module format changes.
const codecSchemaVersion uint16 = 1

type filePayload struct {
	Schema uint16
	Module Module
}

// WriteFile serializes a raw module to path. The on-disk form is a
// msgpack-encoded envelope carrying a schema version, so stale files are
// rejected instead of misread.
func WriteFile(path string, m *Module) error {
	if m == nil {
		return fmt.Errorf("raw: nil module")
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	enc := msgpack.NewEncoder(f)
	if err := enc.Encode(filePayload{Schema: codecSchemaVersion, Module: *m}); err != nil {
		_ = f.Close()
		return fmt.Errorf("raw: encode %s: %w", path, err)
	}
	return f.Close()
}

// ReadFile deserializes a raw module from path.
func ReadFile(path string) (*Module, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()

	var payload filePayload
	dec := msgpack.NewDecoder(f)
	if err := dec.Decode(&payload); err != nil {
		return nil, fmt.Errorf("raw: decode %s: %w", path, err)
	}
	if payload.Schema != codecSchemaVersion {
		return nil, fmt.Errorf("raw: %s: unsupported schema version %d", path, payload.Schema)
	}
	return &payload.Module, nil
}
