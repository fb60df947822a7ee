package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/ghodss/yaml"
)

// Format is the encoding of a configuration file.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
)

// FileNames are the configuration file names Find looks for, in order of
// preference.
var FileNames = []string{
	".cz-config.yaml",
	".cz-config.yml",
	".cz-config.json",
	".cz-config.toml",
}

// FormatFromPath guesses the format from the file extension. Unknown
// extensions are treated as yaml, which also accepts json.
func FormatFromPath(p string) Format {
	switch strings.ToLower(filepath.Ext(p)) {
	case ".json":
		return FormatJSON
	case ".toml":
		return FormatTOML
	default:
		return FormatYAML
	}
}

// ParseFormat validates a user supplied format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatYAML, FormatJSON, FormatTOML:
		return f, nil
	case "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("config: unknown format %q", s)
}

// Load reads and validates the configuration file at p.
func Load(p string) (*Config, error) {
	f, err := ReadFile(p)
	if err != nil {
		return nil, err
	}
	cfg, err := New(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", p, err)
	}
	return cfg, nil
}

// ReadFile reads and decodes the configuration file at p without validating
// it.
func ReadFile(p string) (File, error) {
	b, err := os.ReadFile(p)
	if err != nil {
		return File{}, &MalformedConfigError{Path: p, Err: err}
	}
	f, err := Decode(b, FormatFromPath(p))
	if err != nil {
		return File{}, &MalformedConfigError{Path: p, Err: err}
	}
	return f, nil
}

// Decode parses b as a configuration file. Unknown keys are rejected.
func Decode(b []byte, format Format) (File, error) {
	var f File
	switch format {
	case FormatTOML:
		md, err := toml.Decode(string(b), &f)
		if err != nil {
			return File{}, err
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return File{}, fmt.Errorf("unknown key %q", undecoded[0].String())
		}
	default:
		// yaml is a superset of json, so both go through the same path.
		jb, err := yaml.YAMLToJSON(b)
		if err != nil {
			return File{}, err
		}
		if bytes.Equal(bytes.TrimSpace(jb), []byte("null")) {
			return File{}, errors.New("empty configuration")
		}
		dec := json.NewDecoder(bytes.NewReader(jb))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&f); err != nil {
			return File{}, err
		}
	}
	return f, nil
}

// Encode writes f to w in the given format.
func Encode(w io.Writer, f File, format Format) error {
	switch format {
	case FormatTOML:
		return toml.NewEncoder(w).Encode(f)
	case FormatJSON:
		b, err := json.MarshalIndent(f, "", "  ")
		if err != nil {
			return err
		}
		b = append(b, '\n')
		_, err = w.Write(b)
		return err
	default:
		b, err := yaml.Marshal(f)
		if err != nil {
			return err
		}
		_, err = w.Write(b)
		return err
	}
}

// Find looks for a configuration file in dir and each of its parents, and
// returns the path of the first one found.
func Find(dir string) (string, error) {
	wd, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}

	for {
		for _, name := range FileNames {
			candPath := filepath.Join(wd, name)
			info, err := os.Stat(candPath)
			if err != nil {
				if errors.Is(err, os.ErrNotExist) {
					continue
				}
				return "", err
			}
			if info.IsDir() {
				continue
			}
			return candPath, nil
		}

		parent := filepath.Dir(wd)
		if parent == wd {
			break
		}
		wd = parent
	}
	return "", ErrNotFound
}

// Discover finds the configuration file closest to dir and loads it.
func Discover(dir string) (*Config, string, error) {
	p, err := Find(dir)
	if err != nil {
		return nil, "", err
	}
	cfg, err := Load(p)
	if err != nil {
		return nil, p, err
	}
	return cfg, p, nil
}
