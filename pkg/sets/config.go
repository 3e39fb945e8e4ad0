package sets

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/okabe/htmlbak/pkg/version"
)

const (
	fileName  = "htmlbak.toml"
	envConfig = "HTMLBAK_CONFIG"
)

// File is the on-disk shape of a sets file. Sets are an array of tables so
// their order in the file is the registration order.
type File struct {
	Htmlbak Meta  `toml:"htmlbak"`
	Sets    []Set `toml:"set"`
}

type Meta struct {
	Version string `toml:"version"`
}

type Set struct {
	Name    string   `toml:"name"`
	Folders []string `toml:"folders"`
}

// LoadRegistry builds the registry for a run. It reads htmlbak.toml from
// baseDir (or the file named by HTMLBAK_CONFIG) when present and falls back
// to the built-in sets otherwise. A path set via HTMLBAK_CONFIG must exist.
func LoadRegistry(baseDir string) (*Registry, error) {
	path := filepath.Join(baseDir, fileName)
	required := false

	if custom := strings.TrimSpace(os.Getenv(envConfig)); custom != "" {
		abs, err := filepath.Abs(custom)
		if err != nil {
			return nil, fmt.Errorf("resolve %s: %w", envConfig, err)
		}
		path = abs
		required = true
	}

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) && !required {
			return Default(), nil
		}
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}

	var file File
	if _, err := toml.DecodeFile(path, &file); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	if err := version.EnsureCompatible(file.Htmlbak.Version); err != nil {
		return nil, fmt.Errorf("unsupported sets file version %q: %w", file.Htmlbak.Version, err)
	}

	return file.Registry(path)
}

// Registry validates the decoded file and converts it. The path is only
// used for error messages.
func (f File) Registry(path string) (*Registry, error) {
	if len(f.Sets) == 0 {
		return nil, fmt.Errorf("%s defines no sets", path)
	}

	r := NewRegistry()
	for _, set := range f.Sets {
		name := strings.TrimSpace(set.Name)
		if name == "" {
			return nil, fmt.Errorf("%s contains a set with no name", path)
		}
		if isAllSelector(name) {
			return nil, fmt.Errorf("%s: set name %q is reserved", path, name)
		}
		if _, exists := r.Folders(name); exists {
			return nil, fmt.Errorf("%s defines set %q twice", path, name)
		}
		if len(set.Folders) == 0 {
			return nil, fmt.Errorf("%s: set %q has no folders", path, name)
		}
		r.Add(name, set.Folders...)
	}

	return r, nil
}
