package artists

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lomtag/internal/genre"
)

func TestBuiltinTable(t *testing.T) {
	table, err := Builtin()
	require.NoError(t, err)
	assert.Greater(t, table.Len(), 150)

	tests := []struct {
		artist string
		key    string
		want   genre.Set
	}{
		{"Raimonds Pauls", "Raimonds Pauls", genre.Of(genre.Jazz, genre.Schlager)},
		{"Prāta Vētra", "Prāta Vētra", genre.Of(genre.Pop, genre.HeavyRock)},
		{"Ivo Fomins Band", "Ivo Fomins", genre.Of(genre.Pop, genre.HeavyRock)},
		{"Opus Pro", "Opus Pro", genre.Of(genre.Pop, genre.Schlager)},
		{"Agnese Rakovska", "Agnese Rakovska", genre.Of(genre.Pop, genre.Jazz)},
		{"Rīgas Deju Klubs", "Rīgas Deju Klubs", genre.Of(genre.Dance, genre.Pop)},
		{"Kopkoris", "Kopkoris", genre.Of(genre.Academic, genre.Pop)},
	}
	for _, tt := range tests {
		t.Run(tt.artist, func(t *testing.T) {
			match, ok := table.Lookup(tt.artist)
			require.True(t, ok)
			assert.Equal(t, tt.key, match.Key)
			assert.Equal(t, tt.want, match.Set())
		})
	}

	_, ok := table.Lookup("Unknown Singer")
	assert.False(t, ok)
}

func TestBuiltinTableIsStyleOnly(t *testing.T) {
	table, err := Builtin()
	require.NoError(t, err)
	for _, e := range table.Entries() {
		assert.True(t, e.Set().Intersect(genre.TimePeriods).Empty(), e.Key)
		assert.NotEmpty(t, e.Tags, e.Key)
	}
}

func TestLoadFileTOMLAndYAML(t *testing.T) {
	dir := t.TempDir()
	tomlPath := filepath.Join(dir, "extra.toml")
	require.NoError(t, os.WriteFile(tomlPath, []byte(`
artists = [
  { key = "Zeltene", tags = ["FOLK", "pop"] },
]
`), 0o644))
	yamlPath := filepath.Join(dir, "extra.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte(`
artists:
  - key: Zeltene
    tags: [FOLK, pop]
`), 0o644))

	for _, path := range []string{tomlPath, yamlPath} {
		entries, err := LoadFile(path)
		require.NoError(t, err, path)
		require.Len(t, entries, 1)
		assert.Equal(t, "Zeltene", entries[0].Key)
		assert.Equal(t, []genre.Tag{genre.Folk, genre.Pop}, entries[0].Tags)
	}
}

func TestLoadFileErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadFile(filepath.Join(dir, "missing.toml"))
	assert.Error(t, err)

	txt := filepath.Join(dir, "table.txt")
	require.NoError(t, os.WriteFile(txt, []byte("x"), 0o644))
	_, err = LoadFile(txt)
	assert.ErrorContains(t, err, "unsupported extension")

	bad := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(bad, []byte(`artists = [{ key = "A", tags = ["polka"] }]`), 0o644))
	_, err = LoadFile(bad)
	assert.ErrorIs(t, err, genre.ErrUnknownTag)

	unknown := filepath.Join(dir, "unknown.yaml")
	require.NoError(t, os.WriteFile(unknown, []byte("artists:\n  - key: A\n    genre: [POP]\n"), 0o644))
	_, err = LoadFile(unknown)
	assert.Error(t, err)
}

func TestResolve(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "override.toml")
	require.NoError(t, os.WriteFile(path, []byte(`artists = [{ key = "Prāta Vētra", tags = ["JAZZ"] }]`), 0o644))

	merged, err := Resolve(path, false)
	require.NoError(t, err)
	builtin, err := Builtin()
	require.NoError(t, err)
	assert.Equal(t, builtin.Len(), merged.Len())
	match, ok := merged.Lookup("Prāta Vētra")
	require.True(t, ok)
	assert.Equal(t, genre.Of(genre.Jazz), match.Set())

	replaced, err := Resolve(path, true)
	require.NoError(t, err)
	assert.Equal(t, 1, replaced.Len())

	plain, err := Resolve("  ", false)
	require.NoError(t, err)
	assert.Same(t, builtin, plain)
}

func TestEncodeRoundTrip(t *testing.T) {
	entries := []Entry{{Key: "Līvi", Tags: []genre.Tag{genre.Pop, genre.Schlager}}}
	data, err := Encode(entries)
	require.NoError(t, err)

	decoded, err := decodeTOML(data)
	require.NoError(t, err)
	assert.Equal(t, entries, decoded)
}

func TestEncodeYAMLRoundTrip(t *testing.T) {
	entries := []Entry{
		{Key: "Līvi", Tags: []genre.Tag{genre.Pop, genre.Schlager}},
		{Key: "Ozols", Tags: []genre.Tag{genre.HipHop}},
	}
	data, err := EncodeYAML(entries)
	require.NoError(t, err)
	assert.Contains(t, string(data), "key: Līvi")

	decoded, err := decodeYAML(data)
	require.NoError(t, err)
	assert.Equal(t, entries, decoded)
}
