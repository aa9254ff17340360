package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/gridboard/pkg/board"
	"github.com/matzehuels/gridboard/pkg/errors"
)

// Marshal encodes a dashboard as pretty-printed JSON with two-space
// indentation. It fails with ENCODE_ERROR only when the document carries a
// value the wire format cannot represent, such as a non-finite number in
// widget content.
func Marshal(d *board.Dashboard) ([]byte, error) {
	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeEncode, err, "encode dashboard")
	}
	return data, nil
}

// MarshalCompact encodes a dashboard as compact single-line JSON.
func MarshalCompact(d *board.Dashboard) ([]byte, error) {
	data, err := json.Marshal(d)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeEncode, err, "encode dashboard")
	}
	return data, nil
}

// Write encodes a dashboard as pretty-printed JSON to w, ending with a
// newline. The output round-trips through the strict path.
func Write(d *board.Dashboard, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(d); err != nil {
		return errors.Wrap(errors.ErrCodeEncode, err, "encode dashboard")
	}
	return nil
}

// Export writes a dashboard to a JSON file at path.
// Convenience wrapper around [Write] for file-based output.
func Export(d *board.Dashboard, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return Write(d, f)
}
