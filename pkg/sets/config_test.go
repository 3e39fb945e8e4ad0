package sets

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeSetsFile(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, fileName)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write sets file: %v", err)
	}
	return path
}

func TestLoadRegistryFallsBackToDefaults(t *testing.T) {
	t.Parallel()

	r, err := LoadRegistry(t.TempDir())
	if err != nil {
		t.Fatalf("LoadRegistry returned error: %v", err)
	}
	if !reflect.DeepEqual(r.Names(), Default().Names()) {
		t.Fatalf("LoadRegistry names = %v, want defaults", r.Names())
	}
}

func TestLoadRegistryReadsFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeSetsFile(t, dir, `
[htmlbak]
version = "0.1.0"

[[set]]
name = "docs"
folders = ["/docs", "/docs/api"]

[[set]]
name = "site"
folders = ["/site"]
`)

	r, err := LoadRegistry(dir)
	if err != nil {
		t.Fatalf("LoadRegistry returned error: %v", err)
	}
	if !reflect.DeepEqual(r.Names(), []string{"docs", "site"}) {
		t.Fatalf("names = %v", r.Names())
	}
	folders, _ := r.Folders("docs")
	if !reflect.DeepEqual(folders, []string{"/docs", "/docs/api"}) {
		t.Fatalf("folders = %v", folders)
	}
}

func TestLoadRegistryEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "elsewhere.toml")
	if err := os.WriteFile(path, []byte(`
[[set]]
name = "only"
folders = ["/only"]
`), 0o644); err != nil {
		t.Fatalf("write sets file: %v", err)
	}
	t.Setenv(envConfig, path)

	r, err := LoadRegistry(t.TempDir())
	if err != nil {
		t.Fatalf("LoadRegistry returned error: %v", err)
	}
	if !reflect.DeepEqual(r.Names(), []string{"only"}) {
		t.Fatalf("names = %v", r.Names())
	}
}

func TestLoadRegistryEnvOverrideMustExist(t *testing.T) {
	t.Setenv(envConfig, filepath.Join(t.TempDir(), "missing.toml"))

	if _, err := LoadRegistry(t.TempDir()); err == nil {
		t.Fatal("expected error for missing HTMLBAK_CONFIG file")
	}
}

func TestLoadRegistryRejectsIncompatibleVersion(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeSetsFile(t, dir, `
[htmlbak]
version = "99.0.0"

[[set]]
name = "docs"
folders = ["/docs"]
`)

	if _, err := LoadRegistry(dir); err == nil {
		t.Fatal("expected error for incompatible version")
	}
}

func TestFileRegistryValidation(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		file File
	}{
		{"empty", File{}},
		{"unnamed set", File{Sets: []Set{{Folders: []string{"/x"}}}}},
		{"reserved name", File{Sets: []Set{{Name: "all", Folders: []string{"/x"}}}}},
		{"duplicate name", File{Sets: []Set{
			{Name: "a", Folders: []string{"/x"}},
			{Name: "a", Folders: []string{"/y"}},
		}}},
		{"no folders", File{Sets: []Set{{Name: "a"}}}},
	}

	for _, tc := range cases {
		if _, err := tc.file.Registry("htmlbak.toml"); err == nil {
			t.Fatalf("%s: expected validation error", tc.name)
		}
	}
}
