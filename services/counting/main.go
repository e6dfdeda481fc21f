package counting

import (
	"github.com/lithium3141/HaplotypeInference/models"

	. "github.com/ahmetb/go-linq"
)

// CountAt returns how many sequences hold value at position
func CountAt[S models.Sequence](value int, position int, sequences []S) int {
	if len(sequences) == 0 {
		return 0
	}

	return From(sequences).Where(func(s interface{}) bool {
		return s.(S).At(position) == value
	}).Count()
}

// CountTotal returns the occurrences of value across every locus of every sequence
func CountTotal[S models.Sequence](value int, sequences []S) int {
	if len(sequences) == 0 {
		return 0
	}

	return From(sequences).SelectMany(func(s interface{}) Query {
		return From(s.(S).Snps())
	}).Where(func(v interface{}) bool {
		return v.(int) == value
	}).Count()
}
