package gamelog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arborian-games/impasse/internal/search"
)

type stringMove string

func (m stringMove) String() string { return string(m) }

func TestRenderFormatsOneBlockPerPly(t *testing.T) {
	history := []Entry[stringMove]{
		{Move: "Normal A7-B6", Color: search.MAX},
		{Move: "Normal H2-G3", Color: search.MIN},
	}
	got := Render(history)
	want := "O: Normal A7-B6\n\nX: Normal H2-G3\n\n"
	if got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestRenderEmptyHistory(t *testing.T) {
	if got := Render[stringMove](nil); got != "" {
		t.Errorf("Render(nil) = %q, want empty string", got)
	}
}

func TestWriteFileWritesRenderedContent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "Game.txt")
	history := []Entry[stringMove]{{Move: "Impasse D4", Color: search.MAX}}

	if err := WriteFile(path, history); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	want := Render(history)
	if string(got) != want {
		t.Errorf("file content = %q, want %q", got, want)
	}
}
