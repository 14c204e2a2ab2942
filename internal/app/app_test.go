package app

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/migudevelop/openapi-mock-generator/internal/logger"
	"github.com/migudevelop/openapi-mock-generator/pkg/config"
	"github.com/migudevelop/openapi-mock-generator/pkg/mock"
	assert2 "github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const usersYAML = `openapi: 3.0.0
info:
  title: Users
  version: 1.0.0
paths: {}
components:
  schemas:
    User:
      type: object
      properties:
        id:
          type: string
          format: uuid
        name:
          type: string
`

const postsYAML = `openapi: 3.0.0
info:
  title: Posts
  version: 1.0.0
paths: {}
components:
  schemas:
    Post:
      type: object
      properties:
        id:
          type: string
        userId:
          type: string
        title:
          type: string
`

type recordingSink struct {
	errors []string
	warns  []string
}

var _ logger.Sink = (*recordingSink)(nil)

func (s *recordingSink) Info(string, ...any)    {}
func (s *recordingSink) Success(string, ...any) {}
func (s *recordingSink) Warn(msg string, _ ...any) {
	s.warns = append(s.warns, msg)
}
func (s *recordingSink) Error(msg string, _ ...any) {
	s.errors = append(s.errors, msg)
}

type firstRand struct{}

func (firstRand) Intn(int) int { return 0 }

func setup(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()
	input := filepath.Join(dir, "openapi")
	require.NoError(t, os.MkdirAll(filepath.Join(input, "nested"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(input, "users.yaml"), []byte(usersYAML), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(input, "nested", "posts.yaml"), []byte(postsYAML), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(input, "notes.txt"), []byte("ignored"), 0o644))

	cfg := config.NewDefaultConfig()
	cfg.OpenAPIFilesPath = input
	cfg.OutputSchemasPath = filepath.Join(dir, "mocks", "schemas")
	cfg.Count = 3
	cfg.Seed = 7
	return cfg
}

func TestApp_Run(t *testing.T) {
	t.Parallel()

	t.Run("relations-across-documents", func(t *testing.T) {
		assert := assert2.New(t)
		cfg := setup(t)

		cache, err := New(cfg, WithRand(firstRand{})).Run()
		require.NoError(t, err)
		assert.ElementsMatch([]string{"User", "Post"}, cache.Names())

		users, _ := cache.Get("User")
		posts, _ := cache.Get("Post")
		require.Len(t, users, 3)
		require.Len(t, posts, 3)

		firstUserID := users[0].(map[string]any)["id"]
		for _, post := range posts {
			assert.Equal(firstUserID, post.(map[string]any)["userId"])
		}
	})

	t.Run("missing-input", func(t *testing.T) {
		sink := &recordingSink{}
		cfg := config.NewDefaultConfig()
		cfg.OpenAPIFilesPath = filepath.Join(t.TempDir(), "absent")

		_, err := New(cfg, WithLogger(sink)).Run()
		assert2.Error(t, err)
		require.Len(t, sink.errors, 1)
		assert2.True(t, strings.HasPrefix(sink.errors[0], "Error creating mocks: "))
	})

	t.Run("empty-input", func(t *testing.T) {
		sink := &recordingSink{}
		cfg := config.NewDefaultConfig()
		cfg.OpenAPIFilesPath = t.TempDir()

		cache, err := New(cfg, WithLogger(sink)).Run()
		require.NoError(t, err)
		assert2.Equal(t, 0, cache.Len())
		assert2.Len(t, sink.warns, 1)
	})

	t.Run("generator-error", func(t *testing.T) {
		sink := &recordingSink{}
		boom := errors.New("boom")
		values := mock.ValueGeneratorFunc(func(*openapi3.Schema) (any, error) {
			return nil, boom
		})

		_, err := New(setup(t), WithLogger(sink), WithValueGenerator(values)).Run()
		assert2.ErrorIs(t, err, boom)
		assert2.Contains(t, sink.errors, fmt.Sprintf("Error creating mocks: %v", boom))
	})
}

func TestApp_Generate(t *testing.T) {
	t.Parallel()

	t.Run("json", func(t *testing.T) {
		assert := assert2.New(t)
		cfg := setup(t)

		paths, err := New(cfg).Generate()
		require.NoError(t, err)
		assert.ElementsMatch([]string{
			filepath.Join(cfg.OutputSchemasPath, "User.json"),
			filepath.Join(cfg.OutputSchemasPath, "Post.json"),
		}, paths)

		contents, err := os.ReadFile(filepath.Join(cfg.OutputSchemasPath, "User.json"))
		require.NoError(t, err)

		var users []map[string]any
		require.NoError(t, json.Unmarshal(contents, &users))
		assert.Len(users, 3)
		for _, user := range users {
			assert.IsType("", user["id"])
			assert.IsType("", user["name"])
		}
	})

	t.Run("yaml-kebab", func(t *testing.T) {
		cfg := setup(t)
		cfg.Format = "yaml"
		cfg.FileNameCase = "kebab"

		paths, err := New(cfg).Generate()
		require.NoError(t, err)
		assert2.Contains(t, paths, filepath.Join(cfg.OutputSchemasPath, "user.yaml"))
	})

	t.Run("same-seed-same-output", func(t *testing.T) {
		cfg := setup(t)

		first, err := New(cfg).Run()
		require.NoError(t, err)
		second, err := New(cfg).Run()
		require.NoError(t, err)

		a, _ := json.Marshal(first)
		b, _ := json.Marshal(second)
		assert2.JSONEq(t, string(a), string(b))
	})

	t.Run("write-error", func(t *testing.T) {
		sink := &recordingSink{}
		cfg := setup(t)
		blocker := filepath.Join(t.TempDir(), "blocker")
		require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o600))
		cfg.OutputSchemasPath = filepath.Join(blocker, "out")

		_, err := New(cfg, WithLogger(sink)).Generate()
		assert2.Error(t, err)
		assert2.Len(t, sink.errors, 1)
	})
}
