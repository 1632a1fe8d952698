// Package hashsweep tracks content hashes of each map's input artifacts
// so the process-maps CLI subcommand can report which maps changed
// since the last run, without re-running the full pipeline on every
// map every time.
package hashsweep

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/arl/meetpoint/internal/atomicfile"
)

// MapInputs names the artifact files that determine whether map has
// changed.
type MapInputs struct {
	Map   string
	Files []string
}

// Hash computes the combined sha256 of every file in m.Files, read in
// the order given, hex-encoded. A changed file ordering changes the
// digest, so callers should pass Files in a stable order (e.g. .tri
// then .json).
func Hash(m MapInputs) (string, error) {
	h := sha256.New()
	for _, f := range m.Files {
		if err := hashFileInto(h, f); err != nil {
			return "", fmt.Errorf("hashsweep: hash %s: %w", f, err)
		}
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

func hashFileInto(h io.Writer, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = io.Copy(h, f)
	return err
}

// Changed reports which of maps have a content hash different from (or
// absent from) the persisted hash recorded under hashesDir, without
// mutating any state on disk.
func Changed(hashesDir string, maps []MapInputs) ([]string, error) {
	var changed []string
	for _, m := range maps {
		cur, err := Hash(m)
		if err != nil {
			return nil, err
		}
		prev, err := readHash(hashesDir, m.Map)
		if err != nil {
			return nil, err
		}
		if prev != cur {
			changed = append(changed, m.Map)
		}
	}
	sort.Strings(changed)
	return changed, nil
}

// Sweep computes Changed and then persists the freshly computed hashes
// for every map, so a subsequent run sees no changes until an input
// file is modified again.
func Sweep(hashesDir string, maps []MapInputs) ([]string, error) {
	changed, err := Changed(hashesDir, maps)
	if err != nil {
		return nil, err
	}
	for _, m := range maps {
		cur, err := Hash(m)
		if err != nil {
			return nil, err
		}
		if err := writeHash(hashesDir, m.Map, cur); err != nil {
			return nil, err
		}
	}
	return changed, nil
}

func hashPath(hashesDir, mapName string) string {
	return filepath.Join(hashesDir, mapName+".sha256")
}

func readHash(hashesDir, mapName string) (string, error) {
	data, err := os.ReadFile(hashPath(hashesDir, mapName))
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("hashsweep: read hash for %s: %w", mapName, err)
	}
	return string(data), nil
}

func writeHash(hashesDir, mapName, digest string) error {
	if err := os.MkdirAll(hashesDir, 0o755); err != nil {
		return fmt.Errorf("hashsweep: create %s: %w", hashesDir, err)
	}
	if err := atomicfile.Write(hashPath(hashesDir, mapName), []byte(digest), 0o644); err != nil {
		return fmt.Errorf("hashsweep: write hash for %s: %w", mapName, err)
	}
	return nil
}
