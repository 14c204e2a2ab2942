package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/migudevelop/openapi-mock-generator/internal/logger"
	assert2 "github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSink struct {
	warns []string
	infos []string
}

var _ logger.Sink = (*recordingSink)(nil)

func (s *recordingSink) Info(msg string, _ ...any) { s.infos = append(s.infos, msg) }
func (s *recordingSink) Success(string, ...any)    {}
func (s *recordingSink) Warn(msg string, _ ...any) { s.warns = append(s.warns, msg) }
func (s *recordingSink) Error(string, ...any)      {}

func writeConfig(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func TestNewDefaultConfig(t *testing.T) {
	assert := assert2.New(t)

	cfg := NewDefaultConfig()
	assert.Equal("./openapi", cfg.OpenAPIFilesPath)
	assert.Equal("./mocks/schemas", cfg.OutputSchemasPath)
	assert.Equal(10, cfg.Count)
	assert.Equal([]string{".yaml"}, cfg.Extensions)
	assert.Equal("json", cfg.Format)
	assert.Equal("original", cfg.FileNameCase)
	assert.Equal(2200, cfg.Port)
	assert.Equal(int64(0), cfg.Seed)
}

func TestFind(t *testing.T) {
	assert := assert2.New(t)

	t.Run("none", func(t *testing.T) {
		assert.Equal("", Find(t.TempDir()))
	})

	t.Run("priority", func(t *testing.T) {
		dir := t.TempDir()
		for _, name := range []string{"openapiMockGenerator.config.json", ".openapiMockGeneratorrc.yml"} {
			require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("count: 1"), 0o600))
		}
		assert.Equal(filepath.Join(dir, ".openapiMockGeneratorrc.yml"), Find(dir))
	})

	t.Run("directories-ignored", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.Mkdir(filepath.Join(dir, ".openapiMockGeneratorrc"), 0o755))
		assert.Equal("", Find(dir))
	})
}

func TestLoad(t *testing.T) {
	t.Run("yaml-file", func(t *testing.T) {
		assert := assert2.New(t)
		sink := &recordingSink{}
		path := writeConfig(t, ".openapiMockGeneratorrc.yaml", `
openApiFilesPath: ./specs
outputSchemasPath: ./out
count: 3
extensions: [yml, .YAML]
format: YAML
fileNameCase: kebab
seed: 42
`)

		cfg, err := Load(path, sink)
		require.NoError(t, err)
		assert.Equal("./specs", cfg.OpenAPIFilesPath)
		assert.Equal("./out", cfg.OutputSchemasPath)
		assert.Equal(3, cfg.Count)
		assert.Equal([]string{".yml", ".yaml"}, cfg.Extensions)
		assert.Equal("yaml", cfg.Format)
		assert.Equal("kebab", cfg.FileNameCase)
		assert.Equal(int64(42), cfg.Seed)
		assert.Equal(2200, cfg.Port)
		assert.Empty(sink.warns)
		assert.Equal([]string{"Using configuration file: " + path}, sink.infos)
	})

	t.Run("json-file", func(t *testing.T) {
		path := writeConfig(t, ".openapiMockGeneratorrc", `{"count": 5, "port": 3000}`)

		cfg, err := Load(path, nil)
		require.NoError(t, err)
		assert2.Equal(t, 5, cfg.Count)
		assert2.Equal(t, 3000, cfg.Port)
		assert2.Equal(t, "./openapi", cfg.OpenAPIFilesPath)
	})

	t.Run("empty-file", func(t *testing.T) {
		sink := &recordingSink{}
		path := writeConfig(t, "openapiMockGenerator.config.yaml", "  \n")

		cfg, err := Load(path, sink)
		require.NoError(t, err)
		assert2.Equal(t, NewDefaultConfig(), cfg)
		assert2.Equal(t, []string{"No configuration file found. Using default values."}, sink.warns)
	})

	t.Run("missing-file", func(t *testing.T) {
		sink := &recordingSink{}

		cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), sink)
		require.NoError(t, err)
		assert2.Equal(t, NewDefaultConfig(), cfg)
		assert2.Len(t, sink.warns, 1)
	})

	t.Run("working-dir-without-file", func(t *testing.T) {
		sink := &recordingSink{}

		cfg, err := Load("", sink)
		require.NoError(t, err)
		assert2.Equal(t, 10, cfg.Count)
		assert2.Len(t, sink.warns, 1)
	})

	t.Run("invalid-yaml", func(t *testing.T) {
		path := writeConfig(t, "bad.yaml", "count: [1")

		_, err := Load(path, nil)
		assert2.ErrorIs(t, err, ErrParseConfig)
	})

	t.Run("invalid-format", func(t *testing.T) {
		path := writeConfig(t, "bad.yaml", "format: xml")

		_, err := Load(path, nil)
		assert2.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("zero-count-kept", func(t *testing.T) {
		path := writeConfig(t, "zero.yaml", "count: 0")

		cfg, err := Load(path, nil)
		require.NoError(t, err)
		assert2.Equal(t, 0, cfg.Count)
	})

	t.Run("zero-count-from-env", func(t *testing.T) {
		t.Setenv("MOCKGEN_COUNT", "0")

		cfg, err := Load(writeConfig(t, "cfg.yaml", "count: 3"), nil)
		require.NoError(t, err)
		assert2.Equal(t, 0, cfg.Count)
	})

	t.Run("negative-count", func(t *testing.T) {
		path := writeConfig(t, "bad.yaml", "count: -1")

		_, err := Load(path, nil)
		assert2.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("env-overrides", func(t *testing.T) {
		t.Setenv("MOCKGEN_COUNT", "7")
		t.Setenv("MOCKGEN_OUTPUT", "./env-out")
		t.Setenv("MOCKGEN_EXTENSIONS", ".json,.yml")
		t.Setenv("MOCKGEN_FILE_NAME_CASE", "pascal")
		path := writeConfig(t, "cfg.yaml", "count: 3\noutputSchemasPath: ./file-out")

		cfg, err := Load(path, nil)
		require.NoError(t, err)
		assert2.Equal(t, 7, cfg.Count)
		assert2.Equal(t, "./env-out", cfg.OutputSchemasPath)
		assert2.Equal(t, []string{".json", ".yml"}, cfg.Extensions)
		assert2.Equal(t, "pascal", cfg.FileNameCase)
	})

	t.Run("env-invalid", func(t *testing.T) {
		t.Setenv("MOCKGEN_COUNT", "many")

		_, err := Load(writeConfig(t, "cfg.yaml", "count: 3"), nil)
		assert2.ErrorIs(t, err, ErrParseEnv)
	})
}
