package recurrence

import (
	"github.com/reugn/go-recurrence/locale"
	"github.com/reugn/go-recurrence/logger"
)

// GeneratorOptions configures a [Generator].
type GeneratorOptions struct {
	// Catalog supplies the phrases of descriptions and error messages.
	// Defaults to locale.Default().
	Catalog locale.Catalog

	// Logger receives a trace record per pipeline stage and a debug record
	// per rejected configuration. Defaults to logger.NoOpLogger.
	Logger logger.Logger
}

// Generator computes next execution times and descriptions. It holds no
// mutable state and is safe for concurrent use.
type Generator struct {
	catalog locale.Catalog
	logger  logger.Logger
}

// NewGenerator returns a new Generator with the default options.
func NewGenerator() *Generator {
	return NewGeneratorWithOptions(GeneratorOptions{})
}

// NewGeneratorWithOptions returns a new Generator configured as specified.
func NewGeneratorWithOptions(opts GeneratorOptions) *Generator {
	if opts.Catalog == nil {
		opts.Catalog = locale.Default()
	}
	if opts.Logger == nil {
		opts.Logger = logger.NoOpLogger{}
	}
	return &Generator{
		catalog: opts.Catalog,
		logger:  opts.Logger,
	}
}

// Catalog returns the catalog used by the generator.
func (g *Generator) Catalog() locale.Catalog {
	return g.catalog
}

// GenerateDate validates the configuration, computes its next execution
// time and describes it. No partial result is returned on failure.
func (g *Generator) GenerateDate(cfg *Configuration) (CalculationResult, error) {
	next, err := g.NextExecution(cfg)
	if err != nil {
		return CalculationResult{}, err
	}
	return CalculationResult{
		NextExecutionTime: next,
		Description:       g.Describe(cfg, next),
	}, nil
}

func (g *Generator) validate(cfg *Configuration) error {
	if err := Validate(cfg, g.catalog); err != nil {
		g.logger.Debug("configuration rejected", "error", err)
		return err
	}
	return nil
}
