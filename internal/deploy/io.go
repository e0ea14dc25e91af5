package deploy

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
)

// ReadFile loads a deploy from a JSON file written by WriteFile or by
// another client.
func ReadFile(path string) (*Deploy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read deploy file: %w", err)
	}
	var d Deploy
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("decode deploy file %s: %w", path, err)
	}
	return &d, nil
}

// Write renders the deploy as indented JSON.
func (d *Deploy) Write(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(d)
}

// WriteFile stores the deploy as JSON at path. An empty path writes to
// stdout. Unless force is set, an existing file is not overwritten.
func (d *Deploy) WriteFile(path string, force bool) error {
	if path == "" {
		return d.Write(os.Stdout)
	}

	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if !force {
		flags = os.O_WRONLY | os.O_CREATE | os.O_EXCL
	}
	f, err := os.OpenFile(path, flags, 0o644)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return fmt.Errorf("%s already exists; use --force to overwrite", path)
		}
		return fmt.Errorf("create deploy file: %w", err)
	}
	if err := d.Write(f); err != nil {
		f.Close()
		return fmt.Errorf("write deploy file %s: %w", path, err)
	}
	return f.Close()
}
