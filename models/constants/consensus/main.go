package consensus

import (
	"github.com/lithium3141/HaplotypeInference/models/constants"
)

const (
	// elementwise sum of the genotype dosages, zeros replaced by the fallback locus
	Sum constants.ConsensusStrategy = "sum"

	// per-locus majority allele; always yields a valid haplotype
	Majority constants.ConsensusStrategy = "majority"
)

func IsKnown(value string) bool {
	switch constants.ConsensusStrategy(value) {
	case Sum, Majority:
		return true
	default:
		return false
	}
}
