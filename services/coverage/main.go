package coverage

import (
	"github.com/lithium3141/HaplotypeInference/models"
)

// Generates reports whether two haplotypes at distinct positions of the set
// combine into genotype. The same haplotype value must therefore appear
// twice to explain a genotype that is combine(h, h).
func Generates(haplotypes []models.Haplotype, genotype models.Genotype) bool {
	_, _, ok := FindPair(haplotypes, genotype)
	return ok
}

// FindPair returns the first positions i < j of the set whose haplotypes
// combine into genotype
func FindPair(haplotypes []models.Haplotype, genotype models.Genotype) (int, int, bool) {
	for i := 0; i < len(haplotypes); i++ {
		for j := i + 1; j < len(haplotypes); j++ {
			if haplotypes[i].CombineWith(haplotypes[j]).Equal(genotype) {
				return i, j, true
			}
		}
	}
	return -1, -1, false
}

func GeneratesAll(haplotypes []models.Haplotype, genotypes []models.Genotype) bool {
	for _, genotype := range genotypes {
		if !Generates(haplotypes, genotype) {
			return false
		}
	}
	return true
}

func CountGenerated(haplotypes []models.Haplotype, genotypes []models.Genotype) int {
	generated := 0
	for _, genotype := range genotypes {
		if Generates(haplotypes, genotype) {
			generated++
		}
	}
	return generated
}

// Ungenerated returns, in corpus order, the genotypes the set cannot produce
func Ungenerated(haplotypes []models.Haplotype, genotypes []models.Genotype) []models.Genotype {
	ungenerated := []models.Genotype{}
	for _, genotype := range genotypes {
		if !Generates(haplotypes, genotype) {
			ungenerated = append(ungenerated, genotype)
		}
	}
	return ungenerated
}
