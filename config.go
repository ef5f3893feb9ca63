package randix

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/viant/randix/randvec"
)

// Config holds the embedding pipeline parameters.
type Config struct {
	// Dim is the embedding dimension n.
	Dim int `yaml:"dim"`

	// NonZero is the number m of nonzero entries per context vector.
	NonZero int `yaml:"non_zero"`

	// MinCount is the vocabulary frequency threshold: a token is retained
	// when it occurs strictly more than MinCount times.
	MinCount int `yaml:"min_count"`

	// Seed keys the deterministic random vector generator.
	Seed uint64 `yaml:"seed"`

	// Workers bounds the accumulation fan-out; 0 means GOMAXPROCS.
	Workers int `yaml:"workers"`

	// Strict aborts indexing on the first malformed context instead of
	// skipping it.
	Strict bool `yaml:"strict"`
}

// DefaultConfig returns the reference parameters: 300-dimensional vectors
// with 30 nonzero entries and a frequency threshold of 9.
func DefaultConfig() Config {
	return Config{Dim: 300, NonZero: 30, MinCount: 9}
}

// Validate fails fast on parameters no build could run with.
func (c Config) Validate() error {
	if err := (randvec.Params{Dim: c.Dim, NonZero: c.NonZero}).Validate(); err != nil {
		return err
	}
	if c.MinCount < 0 {
		return fmt.Errorf("randix: min_count must be non-negative, got %d", c.MinCount)
	}
	return nil
}

// LoadConfig reads a YAML configuration, applying defaults for omitted keys.
func LoadConfig(r io.Reader) (Config, error) {
	c := DefaultConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil {
		if err == io.EOF {
			return c, nil
		}
		return Config{}, fmt.Errorf("randix: parsing config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}
