package hashsweep

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestHashDeterministic(t *testing.T) {
	dir := t.TempDir()
	f := writeFile(t, dir, "a.tri", "some bytes")

	m := MapInputs{Map: "de_dust2", Files: []string{f}}
	h1, err := Hash(m)
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	h2, err := Hash(m)
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	if h1 != h2 {
		t.Errorf("Hash not deterministic: %q != %q", h1, h2)
	}
}

func TestSweepReportsChangedThenNotChanged(t *testing.T) {
	dir := t.TempDir()
	hashesDir := filepath.Join(dir, "hashes")
	f := writeFile(t, dir, "a.tri", "v1")
	m := MapInputs{Map: "de_dust2", Files: []string{f}}

	changed, err := Sweep(hashesDir, []MapInputs{m})
	if err != nil {
		t.Fatalf("Sweep: %v", err)
	}
	if len(changed) != 1 || changed[0] != "de_dust2" {
		t.Errorf("first sweep changed = %v, want [de_dust2]", changed)
	}

	changed, err = Sweep(hashesDir, []MapInputs{m})
	if err != nil {
		t.Fatalf("Sweep: %v", err)
	}
	if len(changed) != 0 {
		t.Errorf("second sweep changed = %v, want none", changed)
	}

	writeFile(t, dir, "a.tri", "v2")
	changed, err = Sweep(hashesDir, []MapInputs{m})
	if err != nil {
		t.Fatalf("Sweep: %v", err)
	}
	if len(changed) != 1 || changed[0] != "de_dust2" {
		t.Errorf("sweep after modification changed = %v, want [de_dust2]", changed)
	}
}

func TestChangedDoesNotPersist(t *testing.T) {
	dir := t.TempDir()
	hashesDir := filepath.Join(dir, "hashes")
	f := writeFile(t, dir, "a.tri", "v1")
	m := MapInputs{Map: "de_dust2", Files: []string{f}}

	if _, err := Changed(hashesDir, []MapInputs{m}); err != nil {
		t.Fatalf("Changed: %v", err)
	}
	changed, err := Changed(hashesDir, []MapInputs{m})
	if err != nil {
		t.Fatalf("Changed: %v", err)
	}
	if len(changed) != 1 {
		t.Errorf("Changed should report de_dust2 as changed every call until Sweep persists it, got %v", changed)
	}
}
