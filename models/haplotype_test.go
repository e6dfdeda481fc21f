package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCombineWith(t *testing.T) {
	haplotypes := []Haplotype{
		NewHaplotype([]int{0, 0, 0}),
		NewHaplotype([]int{1, 0, 1}),
		NewHaplotype([]int{1, 1, 1}),
		NewHaplotype([]int{2, 2, 2}),
	}

	t.Run("should add alleles into dosages", func(t *testing.T) {
		assert.Equal(t, []int{2, 1, 2}, haplotypes[1].CombineWith(haplotypes[2]).Snps())
		assert.Equal(t, []int{0, 0, 0}, haplotypes[0].CombineWith(haplotypes[0]).Snps())
	})

	t.Run("should be commutative", func(t *testing.T) {
		for _, a := range haplotypes {
			for _, b := range haplotypes {
				assert.True(t, a.CombineWith(b).Equal(b.CombineWith(a)), "%s + %s", a, b)
			}
		}
	})

	t.Run("should produce an empty genotype on length mismatch", func(t *testing.T) {
		assert.Equal(t, 0, NewHaplotype([]int{1}).CombineWith(haplotypes[0]).Len())
	})
}

func TestIsAllelic(t *testing.T) {
	assert.True(t, NewHaplotype([]int{0, 1, 0}).IsAllelic())
	assert.False(t, NewHaplotype([]int{2, 2, 2}).IsAllelic())
}

func TestDistinctHaplotypes(t *testing.T) {
	assert.Equal(t, 0, DistinctHaplotypes(nil))
	assert.Equal(t, 2, DistinctHaplotypes([]Haplotype{
		NewHaplotype([]int{0, 1}),
		NewHaplotype([]int{1, 0}),
		NewHaplotype([]int{0, 1}),
	}))
}
