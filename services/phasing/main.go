package phasing

import (
	"context"
	"fmt"

	"github.com/lithium3141/HaplotypeInference/models"
	"github.com/lithium3141/HaplotypeInference/models/constants"
	"github.com/lithium3141/HaplotypeInference/models/constants/dosage"
	p "github.com/lithium3141/HaplotypeInference/models/phasing"
	"github.com/lithium3141/HaplotypeInference/services/consensus"
	"github.com/lithium3141/HaplotypeInference/services/counting"
	"github.com/lithium3141/HaplotypeInference/services/coverage"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type (
	// Reporter receives the progress lines of a run as they happen
	Reporter interface {
		ReportSeed(seed models.Haplotype)
		ReportEscalation(generated int, added models.Haplotype)
	}

	PhasingService struct {
		Config    *models.Config
		Consensus *consensus.ConsensusBuilder
		Reporter  Reporter
		Logger    logrus.FieldLogger
	}

	Escalation struct {
		Generated int
		Haplotype models.Haplotype
	}

	Result struct {
		RunId       uuid.UUID
		State       p.State
		Iterations  int
		Haplotypes  []models.Haplotype
		Generated   int
		Missing     int
		Escalations []Escalation
	}

	// run holds the state owned by a single invocation of Run
	run struct {
		genotypes  []models.Genotype
		haplotypes []models.Haplotype
		state      p.State
		iterations int
		generated  int
	}
)

func NewPhasingService(cfg *models.Config, reporter Reporter) *PhasingService {
	return &PhasingService{
		Config:    cfg,
		Consensus: consensus.NewConsensusBuilder(constants.ConsensusStrategy(cfg.Phasing.Consensus), cfg.Phasing.FallbackLocus),
		Reporter:  reporter,
		Logger:    logrus.StandardLogger(),
	}
}

func (r *Result) DistinctHaplotypes() int {
	return models.DistinctHaplotypes(r.Haplotypes)
}

// Run infers a haplotype set generating every genotype of the corpus.
//
// The set is seeded with the consensus of the whole corpus and grown to a
// fixed point by deriving complementary haplotypes; when stuck, the
// consensus of the still-ungenerated genotypes is added and expansion
// resumes. A run is aborted with a *NonConvergenceError once the iteration
// bound is exceeded or consecutive escalations stop increasing coverage,
// and with the context's error when ctx is done.
func (ps *PhasingService) Run(ctx context.Context, genotypes []models.Genotype) (*Result, error) {
	length, err := models.ValidateCorpus(genotypes)
	if err != nil {
		return nil, err
	}

	if ps.Config.Phasing.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, ps.Config.Phasing.Timeout)
		defer cancel()
	}

	runId := uuid.New()
	logger := ps.Logger.WithField("run", runId.String())
	logger.WithFields(logrus.Fields{
		"genotypes":    len(genotypes),
		"loci":         length,
		"heterozygous": counting.CountTotal(int(dosage.Heterozygous), genotypes),
	}).Debug("phasing corpus")

	seed, err := ps.Consensus.MostCommon(genotypes)
	if err != nil {
		return nil, err
	}
	ps.report(func(r Reporter) { r.ReportSeed(*seed) })

	st := &run{
		genotypes:  genotypes,
		haplotypes: []models.Haplotype{*seed},
		state:      p.Seeded,
	}
	logger.WithFields(logrus.Fields{
		"state": st.state,
		"seed":  seed.String(),
	}).Debug("seeded haplotype set")

	var (
		escalations    []Escalation
		lastGenerated  = -1
		stalled        = 0
		sinceEscalated = -1 // coverage when the last escalation was made
	)
	for !coverage.GeneratesAll(st.haplotypes, st.genotypes) {
		st.state = p.Expanding

		// build out the set of haplotypes from existing parents, stopping as soon as all are generated
		for lastGenerated != st.generated && st.generated < len(st.genotypes) {
			if err := ctx.Err(); err != nil {
				return nil, fmt.Errorf("phasing cancelled after %d run(s): %w", st.iterations, err)
			}
			if st.iterations >= ps.Config.Phasing.MaxIterations {
				return nil, st.abort(logger, ErrIterationLimit)
			}

			added := st.expand()
			st.iterations++
			lastGenerated = st.generated
			st.generated = coverage.CountGenerated(st.haplotypes, st.genotypes)

			logger.WithFields(logrus.Fields{
				"state":     st.state,
				"iteration": st.iterations,
				"added":     added,
				"generated": st.generated,
			}).Debug("expansion pass")
		}

		if sinceEscalated >= 0 {
			if st.generated > sinceEscalated {
				stalled = 0
			} else {
				stalled++
			}
			if stalled >= ps.Config.Phasing.MaxStalledEscalations {
				return nil, st.abort(logger, ErrNoProgress)
			}
		}

		if st.generated == len(st.genotypes) {
			break
		}

		// can't go further - find the next consensus haplotype
		st.state = p.Stuck
		another, err := ps.Consensus.MostCommon(coverage.Ungenerated(st.haplotypes, st.genotypes))
		if err != nil {
			return nil, err
		}
		st.haplotypes = append(st.haplotypes, *another)
		escalations = append(escalations, Escalation{Generated: st.generated, Haplotype: *another})
		sinceEscalated = st.generated
		lastGenerated = -1

		ps.report(func(r Reporter) { r.ReportEscalation(st.generated, *another) })
		logger.WithFields(logrus.Fields{
			"state":     st.state,
			"generated": st.generated,
			"haplotype": another.String(),
		}).Debug("escalated with another consensus haplotype")
	}

	st.state = p.Done
	return &Result{
		RunId:       runId,
		State:       st.state,
		Iterations:  st.iterations,
		Haplotypes:  st.haplotypes,
		Generated:   st.generated,
		Missing:     len(st.genotypes) - st.generated,
		Escalations: escalations,
	}, nil
}

func (ps *PhasingService) report(fn func(r Reporter)) {
	if ps.Reporter != nil {
		fn(ps.Reporter)
	}
}

// expand makes one pass over the corpus, adding at most one derived
// haplotype per ungenerated genotype, and returns how many were added.
func (st *run) expand() int {
	added := 0
	for _, genotype := range st.genotypes {
		if coverage.Generates(st.haplotypes, genotype) {
			continue
		}
		if parent, ok := firstParentPair(genotype, st.haplotypes); ok {
			st.haplotypes = append(st.haplotypes, parent)
			added++
		}
	}
	return added
}

func (st *run) abort(logger logrus.FieldLogger, reason error) error {
	logger.WithFields(logrus.Fields{
		"from":      st.state,
		"iteration": st.iterations,
		"generated": st.generated,
	}).Debug("aborting run")

	st.state = p.Aborted
	return &NonConvergenceError{
		State:      st.state,
		Reason:     reason,
		Iterations: st.iterations,
		Haplotypes: len(st.haplotypes),
		Generated:  st.generated,
		Genotypes:  len(st.genotypes),
	}
}

// firstParentPair returns the complement derived from the earliest
// haplotype in the set that is consistent with genotype.
func firstParentPair(genotype models.Genotype, haplotypes []models.Haplotype) (models.Haplotype, bool) {
	for _, haplotype := range haplotypes {
		if parent, ok := genotype.ParentPairOf(haplotype); ok {
			return parent, true
		}
	}
	return models.Haplotype{}, false
}
