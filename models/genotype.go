package models

import (
	"fmt"

	"github.com/lithium3141/HaplotypeInference/models/constants/allele"
)

// Genotype is one observed diploid sample under the additive dosage encoding
type Genotype struct {
	SNPSequence
}

func NewGenotype(snps []int) Genotype {
	return Genotype{newSNPSequence(snps)}
}

func (g Genotype) Equal(other Genotype) bool {
	return g.SNPSequence.Equal(other.SNPSequence)
}

// ParentPairOf derives the haplotype that combines with h to form g.
//
// At every locus the complement is g[i]-h[i] and must be a valid allele:
// homozygous loci force h's allele onto the complement, heterozygous loci
// admit only the opposite allele. The second return value is false when h
// is inconsistent with g anywhere, or the lengths differ.
func (g Genotype) ParentPairOf(h Haplotype) (Haplotype, bool) {
	if g.Len() != h.Len() {
		return Haplotype{}, false
	}

	complement := make([]int, g.Len())
	for i := range complement {
		c := g.At(i) - h.At(i)
		if !allele.IsKnown(c) {
			return Haplotype{}, false
		}
		complement[i] = c
	}
	return Haplotype{SNPSequence{snps: complement}}, true
}

// ValidateCorpus checks the invariants of a genotype corpus before any
// haplotype is built and returns the shared locus count.
func ValidateCorpus(genotypes []Genotype) (int, error) {
	if len(genotypes) == 0 {
		return 0, ErrEmptyCorpus
	}

	length, err := UniformLength(genotypes)
	if err != nil {
		return 0, err
	}

	for i, g := range genotypes {
		if err := g.Validate(); err != nil {
			return 0, fmt.Errorf("genotype %d: %w", i, err)
		}
	}
	return length, nil
}
