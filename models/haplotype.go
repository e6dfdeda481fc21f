package models

import (
	"github.com/lithium3141/HaplotypeInference/models/constants/allele"
)

// Haplotype is a candidate haploid chromosome pattern
type Haplotype struct {
	SNPSequence
}

func NewHaplotype(snps []int) Haplotype {
	return Haplotype{newSNPSequence(snps)}
}

func (h Haplotype) Equal(other Haplotype) bool {
	return h.SNPSequence.Equal(other.SNPSequence)
}

// CombineWith adds the two haplotypes locus by locus into the genotype they
// would produce together. Haplotypes of different lengths combine into an
// empty genotype, which never matches a validated one.
func (h Haplotype) CombineWith(other Haplotype) Genotype {
	if h.Len() != other.Len() {
		return Genotype{}
	}

	snps := make([]int, h.Len())
	for i := range snps {
		snps[i] = h.At(i) + other.At(i)
	}
	return Genotype{SNPSequence{snps: snps}}
}

// IsAllelic reports whether every locus holds a reference or alternate allele.
// Consensus seeds built by summation usually do not.
func (h Haplotype) IsAllelic() bool {
	for _, v := range h.snps {
		if !allele.IsKnown(v) {
			return false
		}
	}
	return true
}

// DistinctHaplotypes counts the haplotypes with different content
func DistinctHaplotypes(haplotypes []Haplotype) int {
	seen := make(map[string]bool, len(haplotypes))
	for _, h := range haplotypes {
		seen[h.Key()] = true
	}
	return len(seen)
}
