package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/pixil98/go-testutil"
)

type testSpec struct {
	Name  string `json:"name"`
	Count int    `json:"count,omitempty"`
}

func (s *testSpec) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}
	return nil
}

func writeAsset(t *testing.T, dir, file, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, file), []byte(content), 0644); err != nil {
		t.Fatalf("writing asset: %v", err)
	}
}

func TestFileStore_Load(t *testing.T) {
	dir := t.TempDir()
	writeAsset(t, dir, "widget.json", `{"version": 1, "id": "widget", "spec": {"name": "Widget", "count": 3}}`)
	writeAsset(t, dir, "gadget.yml", "version: 1\nid: gadget\nspec:\n  name: Gadget\n")
	writeAsset(t, dir, "notes.txt", "not an asset")

	s, err := NewFileStore[*testSpec](dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	testutil.AssertEqual(t, "record count", len(s.GetAll()), 2)
	testutil.AssertEqual(t, "json asset", s.Get("widget").Count, 3)
	testutil.AssertEqual(t, "yaml asset", s.Get("gadget").Name, "Gadget")

	if s.Get("missing") != nil {
		t.Error("missing id should return nil")
	}
}

func TestFileStore_LoadErrors(t *testing.T) {
	tests := map[string]struct {
		files  map[string]string
		expErr string
	}{
		"invalid spec": {
			files: map[string]string{
				"bad.json": `{"version": 1, "id": "bad", "spec": {"count": 1}}`,
			},
			expErr: "name is required",
		},
		"missing version": {
			files: map[string]string{
				"bad.json": `{"id": "bad", "spec": {"name": "Bad"}}`,
			},
			expErr: "version must be set",
		},
		"duplicate key": {
			files: map[string]string{
				"one.json": `{"version": 1, "id": "thing", "spec": {"name": "One"}}`,
				"two.json": `{"version": 1, "id": "thing", "spec": {"name": "Two"}}`,
			},
			expErr: "duplicate key",
		},
		"malformed yaml": {
			files: map[string]string{
				"bad.yml": "{unclosed: [",
			},
			expErr: "unmarshalling yaml",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			dir := t.TempDir()
			for file, content := range tt.files {
				writeAsset(t, dir, file, content)
			}

			_, err := NewFileStore[*testSpec](dir)
			testutil.AssertErrorContains(t, err, tt.expErr)
		})
	}
}

func TestFileStore_SaveRoundTrip(t *testing.T) {
	dir := t.TempDir()

	s, err := NewFileStore[*testSpec](dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := s.Save("widget", &testSpec{Name: "Widget", Count: 7}); err != nil {
		t.Fatalf("saving: %v", err)
	}
	testutil.AssertEqual(t, "cached", s.Get("widget").Count, 7)

	// A fresh store sees the persisted asset.
	reloaded, err := NewFileStore[*testSpec](dir)
	if err != nil {
		t.Fatalf("reloading: %v", err)
	}
	testutil.AssertEqual(t, "persisted", reloaded.Get("widget").Count, 7)
}

func TestNormalizeId(t *testing.T) {
	tests := map[string]struct {
		in  string
		exp Identifier
	}{
		"bare id":        {in: "cave_troll", exp: "cave_troll"},
		"yml extension":  {in: "cave_troll.yml", exp: "cave_troll"},
		"yaml extension": {in: "cave_troll.yaml", exp: "cave_troll"},
		"json extension": {in: "cave_troll.json", exp: "cave_troll"},
		"mixed case":     {in: "cave_troll.YML", exp: "cave_troll"},
		"empty":          {in: "", exp: ""},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			testutil.AssertEqual(t, "id", NormalizeId(tt.in), tt.exp)
		})
	}
}

func TestAtomicWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")

	if err := AtomicWrite(path, []byte(`{"a": 1}`), 0644); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading back: %v", err)
	}
	testutil.AssertEqual(t, "content", string(data), `{"a": 1}`)

	// No temp file left behind.
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Error("temp file should not remain after write")
	}
}
