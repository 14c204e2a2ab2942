// Package app wires discovery, loading, generation and writing into the mock pipeline.
package app

import (
	"fmt"
	"math/rand"

	"github.com/migudevelop/openapi-mock-generator/internal/fake"
	"github.com/migudevelop/openapi-mock-generator/internal/files"
	"github.com/migudevelop/openapi-mock-generator/internal/logger"
	"github.com/migudevelop/openapi-mock-generator/internal/openapi"
	"github.com/migudevelop/openapi-mock-generator/pkg/config"
	"github.com/migudevelop/openapi-mock-generator/pkg/mock"
)

// App runs the pipeline for one configuration.
type App struct {
	config *config.Config
	logger logger.Sink
	rnd    mock.Rand
	values mock.ValueGenerator
}

// Option configures an App.
type Option func(*App)

// WithLogger sets the log sink. The default discards everything.
func WithLogger(sink logger.Sink) Option {
	return func(a *App) {
		if sink != nil {
			a.logger = sink
		}
	}
}

// WithRand sets the source used to pick related records.
func WithRand(rnd mock.Rand) Option {
	return func(a *App) {
		a.rnd = rnd
	}
}

// WithValueGenerator replaces the fake value generator.
func WithValueGenerator(values mock.ValueGenerator) Option {
	return func(a *App) {
		a.values = values
	}
}

// New creates an App. A nil cfg uses the defaults.
func New(cfg *config.Config, options ...Option) *App {
	if cfg == nil {
		cfg = config.NewDefaultConfig()
	}

	res := &App{
		config: cfg,
		logger: logger.Nop(),
	}
	for _, opt := range options {
		opt(res)
	}

	if res.values == nil {
		res.values = fake.New(fake.WithSeed(cfg.Seed))
	}
	if res.rnd == nil && cfg.Seed != 0 {
		res.rnd = rand.New(rand.NewSource(cfg.Seed))
	}

	return res
}

// Config returns the configuration the App runs with.
func (a *App) Config() *config.Config {
	return a.config
}

// Run finds and loads every OpenAPI document, merges their schemas and
// generates the mocks in memory.
func (a *App) Run() (*mock.Cache, error) {
	cache, err := a.run()
	if err != nil {
		a.logger.Error(fmt.Sprintf("Error creating mocks: %v", err))
		return nil, err
	}
	return cache, nil
}

// Generate runs the pipeline and writes one mock file per schema.
// It returns the written paths.
func (a *App) Generate() ([]string, error) {
	paths, err := a.generate()
	if err != nil {
		a.logger.Error(fmt.Sprintf("Error creating mocks: %v", err))
		return nil, err
	}
	return paths, nil
}

func (a *App) generate() ([]string, error) {
	cache, err := a.run()
	if err != nil {
		return nil, err
	}

	paths, err := files.WriteMocks(a.config.OutputSchemasPath, cache, files.WriteOptions{
		Format:   files.Format(a.config.Format),
		NameCase: files.NameCase(a.config.FileNameCase),
	}, a.logger)
	if err != nil {
		return nil, err
	}

	a.logger.Success(fmt.Sprintf("Mocks saved in %s", a.config.OutputSchemasPath), "files", len(paths))
	return paths, nil
}

func (a *App) run() (*mock.Cache, error) {
	paths, err := openapi.FindFiles(a.config.OpenAPIFilesPath, a.config.Extensions, a.logger)
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		a.logger.Warn(fmt.Sprintf("No OpenAPI files found in folder: %s", a.config.OpenAPIFilesPath))
	}

	fragments, err := openapi.NewLoader(a.logger).LoadAll(paths)
	if err != nil {
		return nil, err
	}

	schemas := mock.MergeSchemas(fragments...)
	generator := mock.NewGenerator(a.values,
		mock.WithCount(a.config.Count),
		mock.WithRand(a.rnd),
		mock.WithLogger(a.logger),
	)

	return generator.GenerateSchemaMocks(schemas)
}
