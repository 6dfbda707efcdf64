package artists

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"lomtag/internal/genre"
)

//go:embed builtin.toml
var builtinTOML []byte

// fileEntry is the on-disk shape shared by the TOML and YAML formats.
type fileEntry struct {
	Key  string   `toml:"key" yaml:"key"`
	Tags []string `toml:"tags" yaml:"tags"`
}

type fileTable struct {
	Artists []fileEntry `toml:"artists" yaml:"artists"`
}

var builtin = sync.OnceValues(func() (*Table, error) {
	entries, err := decodeTOML(builtinTOML)
	if err != nil {
		return nil, fmt.Errorf("built-in table: %w", err)
	}
	return New(entries)
})

// Builtin returns the curated table shipped with the binary.
func Builtin() (*Table, error) {
	return builtin()
}

// LoadFile reads table entries from a .toml, .yaml or .yml file.
func LoadFile(path string) ([]Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read artist table: %w", err)
	}
	var entries []Entry
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		entries, err = decodeTOML(data)
	case ".yaml", ".yml":
		entries, err = decodeYAML(data)
	default:
		return nil, fmt.Errorf("artist table %s: unsupported extension %q (want .toml, .yaml or .yml)", path, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("artist table %s: %w", path, err)
	}
	return entries, nil
}

// Resolve builds the table a run should use: the built-in table, optionally
// merged with or replaced by the entries in path.
func Resolve(path string, replaceBuiltin bool) (*Table, error) {
	base, err := Builtin()
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(path) == "" {
		return base, nil
	}
	entries, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	if replaceBuiltin {
		return New(entries)
	}
	return base.Merge(entries)
}

func decodeTOML(data []byte) ([]Entry, error) {
	var ft fileTable
	decoder := toml.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&ft); err != nil {
		return nil, fmt.Errorf("parse toml: %w", err)
	}
	return ft.entries()
}

func decodeYAML(data []byte) ([]Entry, error) {
	var ft fileTable
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&ft); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	return ft.entries()
}

func (ft fileTable) entries() ([]Entry, error) {
	out := make([]Entry, 0, len(ft.Artists))
	for i, fe := range ft.Artists {
		tags := make([]genre.Tag, 0, len(fe.Tags))
		for _, name := range fe.Tags {
			tag, err := genre.Parse(name)
			if err != nil {
				return nil, fmt.Errorf("artists[%d] %q: %w", i, fe.Key, err)
			}
			tags = append(tags, tag)
		}
		out = append(out, Entry{Key: fe.Key, Tags: tags})
	}
	return out, nil
}

func toFileTable(entries []Entry) fileTable {
	ft := fileTable{Artists: make([]fileEntry, len(entries))}
	for i, e := range entries {
		names := make([]string, len(e.Tags))
		for j, tag := range e.Tags {
			names[j] = tag.String()
		}
		ft.Artists[i] = fileEntry{Key: e.Key, Tags: names}
	}
	return ft
}

// Encode writes entries in the TOML file format, suitable as a starting point
// for a custom table.
func Encode(entries []Entry) ([]byte, error) {
	ft := toFileTable(entries)
	var buf bytes.Buffer
	encoder := toml.NewEncoder(&buf)
	if err := encoder.Encode(ft); err != nil {
		return nil, fmt.Errorf("encode artist table: %w", err)
	}
	return buf.Bytes(), nil
}

// EncodeYAML writes entries in the YAML file format.
func EncodeYAML(entries []Entry) ([]byte, error) {
	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(toFileTable(entries)); err != nil {
		return nil, fmt.Errorf("encode artist table: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return nil, fmt.Errorf("encode artist table: %w", err)
	}
	return buf.Bytes(), nil
}
