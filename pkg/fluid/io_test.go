package fluid

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const testInput = `4 4
####
#  #
#  #
####
0.01 1000 0.1
`

func TestLoadInputParsesGridAndConstants(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "input.txt")
	if err := os.WriteFile(path, []byte(testInput), 0o644); err != nil {
		t.Fatal(err)
	}

	sim, err := LoadInput(path, FloatSlot64(), FixedSlot[int32](16), FixedSlot[int32](15))
	if err != nil {
		t.Fatalf("LoadInput: %v", err)
	}
	if sim.N != 4 || sim.M != 4 {
		t.Fatalf("dims = %d x %d, want 4x4", sim.N, sim.M)
	}
	if sim.field[0][0] != '#' || sim.field[1][1] != ' ' {
		t.Fatalf("unexpected field contents: %q", sim.field)
	}
}

func TestLoadInputRejectsMissingFile(t *testing.T) {
	if _, err := LoadInput(filepath.Join(t.TempDir(), "missing.txt"),
		FloatSlot64(), FixedSlot[int32](16), FixedSlot[int32](15)); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestDumpWritesHeaderGridAndConstants(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "input.txt")
	os.WriteFile(path, []byte(testInput), 0o644)

	sim, err := LoadInput(path, FloatSlot64(), FixedSlot[int32](16), FixedSlot[int32](15))
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := sim.dump(&buf); err != nil {
		t.Fatalf("dump: %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if lines[0] != "4 4" {
		t.Errorf("dump header = %q, want %q", lines[0], "4 4")
	}
	if len(lines) != 1+sim.N+3 {
		t.Fatalf("dump has %d lines, want %d", len(lines), 1+sim.N+3)
	}
}

func TestPrintTickWritesHeaderAndGrid(t *testing.T) {
	var buf bytes.Buffer
	field := [][]byte{[]byte("###"), []byte("# #"), []byte("###")}
	PrintTick(&buf, 7, field)
	out := buf.String()
	if !strings.HasPrefix(out, "Tick 7:\n") {
		t.Errorf("missing tick header, got %q", out)
	}
	if !strings.Contains(out, "# #") {
		t.Errorf("missing grid row, got %q", out)
	}
}
