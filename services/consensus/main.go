package consensus

import (
	"fmt"

	"github.com/lithium3141/HaplotypeInference/models"
	"github.com/lithium3141/HaplotypeInference/models/constants"
	"github.com/lithium3141/HaplotypeInference/models/constants/allele"
	c "github.com/lithium3141/HaplotypeInference/models/constants/consensus"
	"github.com/lithium3141/HaplotypeInference/models/constants/dosage"
)

// DefaultFallbackLocus replaces a summed locus of exactly 0, which would
// otherwise carry no information under the additive dosage encoding.
const DefaultFallbackLocus = 1

type (
	ConsensusBuilder struct {
		Strategy      constants.ConsensusStrategy
		FallbackLocus int
	}
)

func NewConsensusBuilder(strategy constants.ConsensusStrategy, fallbackLocus int) *ConsensusBuilder {
	return &ConsensusBuilder{
		Strategy:      strategy,
		FallbackLocus: fallbackLocus,
	}
}

// MostCommon synthesizes the haplotype most likely to have the most in
// common with all of the given genotypes.
//
// An empty collection yields no haplotype and no error; genotypes of
// differing lengths are rejected before any locus is read.
func (cb *ConsensusBuilder) MostCommon(genotypes []models.Genotype) (*models.Haplotype, error) {
	if len(genotypes) == 0 {
		return nil, nil
	}

	length, err := models.UniformLength(genotypes)
	if err != nil {
		return nil, err
	}

	sums := make([]int, length)
	for _, genotype := range genotypes {
		for i := 0; i < length; i++ {
			sums[i] += genotype.At(i)
		}
	}

	switch cb.Strategy {
	case c.Sum, "":
		for i := range sums {
			if sums[i] == 0 {
				sums[i] = cb.FallbackLocus
			}
		}
	case c.Majority:
		// mean dosage >= 1 means at least half of the 2N chromosomes carry the alternate allele
		for i := range sums {
			if sums[i] >= int(dosage.Heterozygous)*len(genotypes) {
				sums[i] = int(allele.Alternate)
			} else {
				sums[i] = int(allele.Reference)
			}
		}
	default:
		return nil, fmt.Errorf("unknown consensus strategy '%s'", cb.Strategy)
	}

	best := models.NewHaplotype(sums)
	return &best, nil
}
