package layout

import (
	"embed"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"testing"
)

// Fixtures are available by file name in the fixtures/ directory.

//go:embed fixtures
var fixtures embed.FS

func openFixture(name string) fs.File {
	fixture, err := fixtures.Open("fixtures/" + name)
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}
	return fixture
}

// Copy a fixture to a real file, for the path based loaders.
func fixturePath(t *testing.T, name string) string {
	t.Helper()
	data, err := fixtures.ReadFile("fixtures/" + name)
	if err != nil {
		t.Fatalf("Could not load fixture %q: %v", name, err)
	}
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}
