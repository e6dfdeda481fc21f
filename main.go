package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/lithium3141/HaplotypeInference/models"
	"github.com/lithium3141/HaplotypeInference/services/ingestion"
	"github.com/lithium3141/HaplotypeInference/services/phasing"

	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"
)

const (
	exitOk = iota
	exitFailure
	exitConfig
)

type consoleReporter struct {
	out io.Writer
}

func (cr *consoleReporter) ReportSeed(seed models.Haplotype) {
	fmt.Fprintf(cr.out, "Initial common haplotype: %s\n", seed)
}

func (cr *consoleReporter) ReportEscalation(generated int, added models.Haplotype) {
	fmt.Fprintf(cr.out, "Adding another common haplotype (from %d generated): %s\n", generated, added)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	if len(args) != 2 {
		fmt.Fprintln(stderr, "Please provide an input file")
		name := "hisolver"
		if len(args) > 0 {
			name = filepath.Base(args[0])
		}
		fmt.Fprintf(stderr, "usage: %s <input-file>\n", name)
		return exitFailure
	}

	// Gather environment variables
	var cfg models.Config
	err := envconfig.Process("", &cfg)
	if err == nil {
		err = cfg.Validate()
	}
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitConfig
	}

	logger := logrus.New()
	logger.SetOutput(stderr)
	if cfg.Debug {
		logger.SetLevel(logrus.DebugLevel)
	}

	iz := ingestion.NewIngestionService(&cfg)
	iz.Logger = logger

	ds, err := iz.ReadGenotypeFile(ctx, args[1])
	if err != nil {
		logger.WithError(err).Error("unable to load genotypes")
		return exitFailure
	}

	ps := phasing.NewPhasingService(&cfg, &consoleReporter{out: stdout})
	ps.Logger = logger

	result, err := ps.Run(ctx, ds.Genotypes)
	if err != nil {
		var nonConvergence *phasing.NonConvergenceError
		if errors.As(err, &nonConvergence) {
			logger.WithFields(logrus.Fields{
				"iterations": nonConvergence.Iterations,
				"haplotypes": nonConvergence.Haplotypes,
				"generated":  nonConvergence.Generated,
				"missing":    nonConvergence.Genotypes - nonConvergence.Generated,
			}).Error(err)
		} else {
			logger.WithError(err).Error("phasing failed")
		}
		return exitFailure
	}

	fmt.Fprintf(stdout, "After %d run(s), haplotype list has %d entries and generates %d genotypes; still missing %d genotypes\n",
		result.Iterations, len(result.Haplotypes), result.Generated, result.Missing)
	return exitOk
}
