package models

import (
	"fmt"
	"time"

	"github.com/lithium3141/HaplotypeInference/models/constants/consensus"
)

type Config struct {
	Debug bool `yaml:"debug" envconfig:"HISOLVER_DEBUG" default:"false"`

	Phasing struct {
		MaxIterations         int           `yaml:"maxIterations" envconfig:"HISOLVER_MAX_ITERATIONS" default:"10000"`
		MaxStalledEscalations int           `yaml:"maxStalledEscalations" envconfig:"HISOLVER_MAX_STALLED_ESCALATIONS" default:"2"`
		FallbackLocus         int           `yaml:"fallbackLocus" envconfig:"HISOLVER_FALLBACK_LOCUS" default:"1"`
		Consensus             string        `yaml:"consensus" envconfig:"HISOLVER_CONSENSUS" default:"sum"`
		Timeout               time.Duration `yaml:"timeout" envconfig:"HISOLVER_TIMEOUT" default:"0s"`
	} `yaml:"phasing"`

	Ingestion struct {
		LineProcessingConcurrencyLevel int `yaml:"lineProcessingConcurrencyLevel" envconfig:"HISOLVER_LINE_PROCESSING_CONCURRENCY_LEVEL" default:"4"`
	} `yaml:"ingestion"`

	Api struct {
		Port             string        `yaml:"port" envconfig:"HISOLVER_API_PORT" default:"5000"`
		RequestRetention time.Duration `yaml:"requestRetention" envconfig:"HISOLVER_API_REQUEST_RETENTION" default:"1h"`
		MaxGenotypes     int           `yaml:"maxGenotypes" envconfig:"HISOLVER_API_MAX_GENOTYPES" default:"100000"`
	} `yaml:"api"`
}

func (c *Config) Validate() error {
	if c.Phasing.MaxIterations <= 0 {
		return fmt.Errorf("HISOLVER_MAX_ITERATIONS must be positive, got %d", c.Phasing.MaxIterations)
	}
	if c.Phasing.MaxStalledEscalations <= 0 {
		return fmt.Errorf("HISOLVER_MAX_STALLED_ESCALATIONS must be positive, got %d", c.Phasing.MaxStalledEscalations)
	}
	if c.Phasing.FallbackLocus < 0 {
		return fmt.Errorf("HISOLVER_FALLBACK_LOCUS must not be negative, got %d", c.Phasing.FallbackLocus)
	}
	if !consensus.IsKnown(c.Phasing.Consensus) {
		return fmt.Errorf("unknown HISOLVER_CONSENSUS strategy '%s'", c.Phasing.Consensus)
	}
	if c.Phasing.Timeout < 0 {
		return fmt.Errorf("HISOLVER_TIMEOUT must not be negative, got %s", c.Phasing.Timeout)
	}
	if c.Ingestion.LineProcessingConcurrencyLevel <= 0 {
		return fmt.Errorf("HISOLVER_LINE_PROCESSING_CONCURRENCY_LEVEL must be positive, got %d", c.Ingestion.LineProcessingConcurrencyLevel)
	}
	return nil
}
