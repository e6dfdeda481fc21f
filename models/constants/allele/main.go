package allele

import (
	"github.com/lithium3141/HaplotypeInference/models/constants"
)

const (
	Reference constants.Allele = iota
	Alternate
)

func IsKnown(value int) bool {
	return value >= int(Reference) && value <= int(Alternate)
}
