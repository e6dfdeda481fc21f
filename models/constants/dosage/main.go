package dosage

import (
	"github.com/lithium3141/HaplotypeInference/models/constants"
)

// Additive diploid dosage: the number of alternate alleles carried at a locus
const (
	HomozygousReference constants.Dosage = iota
	Heterozygous
	HomozygousAlternate
)

func IsKnown(value int) bool {
	return value >= int(HomozygousReference) && value <= int(HomozygousAlternate)
}

func DosageToString(d constants.Dosage) string {
	switch d {
	case HomozygousReference:
		return "HOMOZYGOUS_REFERENCE"
	case Heterozygous:
		return "HETEROZYGOUS"
	case HomozygousAlternate:
		return "HOMOZYGOUS_ALTERNATE"
	default:
		return "UNKNOWN"
	}
}
