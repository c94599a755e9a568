// Package store persists found results to a JSON array file. The file
// is never modified in place: each append rewrites the whole array to a
// temporary file and renames it over the target, so the target always
// holds one complete valid array even if the process dies mid-write.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Result is one found address with the phrase that recovers it.
type Result struct {
	Address  string `json:"address"`
	Mnemonic string `json:"mnemonic"`
}

// ErrCorruptStore means the existing output file could not be parsed as
// a result array. The file is left exactly as it was found.
var ErrCorruptStore = errors.New("results file is not a valid result array")

// Append adds r to the array at path, creating the file when absent.
func Append(path string, r Result) error {
	b, err := marshal([]Result{r})
	if err != nil {
		return err
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o600)
	if err == nil {
		defer f.Close()
		if _, werr := f.Write(b); werr != nil {
			return fmt.Errorf("write %q: %w", path, werr)
		}
		return nil
	}
	if !errors.Is(err, fs.ErrExist) {
		return fmt.Errorf("create %q: %w", path, err)
	}

	all, err := Load(path)
	if err != nil {
		return err
	}
	all = append(all, r)
	b, err = marshal(all)
	if err != nil {
		return err
	}

	dir, name := filepath.Split(path)
	tmp := filepath.Join(dir, "temp-"+name)
	if err := os.WriteFile(tmp, b, 0o600); err != nil {
		return fmt.Errorf("write %q: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("replace %q: %w", path, err)
	}
	return nil
}

// Load reads the full result array at path.
func Load(path string) ([]Result, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %q: %w", path, err)
	}
	var all []Result
	if err := json.Unmarshal(b, &all); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptStore, err)
	}
	return all, nil
}

func marshal(all []Result) ([]byte, error) {
	b, err := json.MarshalIndent(all, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal results: %w", err)
	}
	return b, nil
}
