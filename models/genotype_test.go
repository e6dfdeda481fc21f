package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParentPairOf(t *testing.T) {
	t.Run("should derive the complement at heterozygous loci", func(t *testing.T) {
		g := NewGenotype([]int{1, 1, 1})

		parent, ok := g.ParentPairOf(NewHaplotype([]int{0, 1, 0}))
		require.True(t, ok)
		assert.Equal(t, []int{1, 0, 1}, parent.Snps())
	})

	t.Run("should force the same allele at homozygous loci", func(t *testing.T) {
		g := NewGenotype([]int{0, 2, 1})

		parent, ok := g.ParentPairOf(NewHaplotype([]int{0, 1, 1}))
		require.True(t, ok)
		assert.Equal(t, []int{0, 1, 0}, parent.Snps())
	})

	t.Run("should reproduce the genotype when combined back", func(t *testing.T) {
		g := NewGenotype([]int{2, 1, 0, 1})
		h := NewHaplotype([]int{1, 1, 0, 0})

		parent, ok := g.ParentPairOf(h)
		require.True(t, ok)
		assert.True(t, h.CombineWith(parent).Equal(g))
	})

	t.Run("should accept non-allelic haplotypes with a valid complement", func(t *testing.T) {
		parent, ok := NewGenotype([]int{2, 2}).ParentPairOf(NewHaplotype([]int{2, 2}))
		require.True(t, ok)
		assert.Equal(t, []int{0, 0}, parent.Snps())
	})

	t.Run("should fail on inconsistent haplotypes", func(t *testing.T) {
		g := NewGenotype([]int{2, 1, 0})

		_, ok := g.ParentPairOf(NewHaplotype([]int{0, 1, 0}))
		assert.False(t, ok, "homozygous alternate locus cannot pair with a reference allele")

		_, ok = g.ParentPairOf(NewHaplotype([]int{1, 1, 1}))
		assert.False(t, ok, "homozygous reference locus cannot pair with an alternate allele")

		_, ok = g.ParentPairOf(NewHaplotype([]int{2, 2, 2}))
		assert.False(t, ok)
	})

	t.Run("should fail on length mismatch", func(t *testing.T) {
		_, ok := NewGenotype([]int{1, 1}).ParentPairOf(NewHaplotype([]int{0}))
		assert.False(t, ok)
	})
}

func TestValidateCorpus(t *testing.T) {
	t.Run("should return the locus count", func(t *testing.T) {
		length, err := ValidateCorpus([]Genotype{NewGenotype([]int{2, 1, 0}), NewGenotype([]int{0, 1, 2})})
		assert.NoError(t, err)
		assert.Equal(t, 3, length)
	})

	t.Run("should reject an empty corpus", func(t *testing.T) {
		_, err := ValidateCorpus(nil)
		assert.ErrorIs(t, err, ErrEmptyCorpus)
	})

	t.Run("should reject inconsistent lengths", func(t *testing.T) {
		_, err := ValidateCorpus([]Genotype{NewGenotype([]int{2, 1, 0}), NewGenotype([]int{0, 1})})
		assert.ErrorIs(t, err, ErrInconsistentLength)
	})

	t.Run("should reject zero-length genotypes", func(t *testing.T) {
		_, err := ValidateCorpus([]Genotype{NewGenotype([]int{})})
		assert.ErrorIs(t, err, ErrEmptySequence)
	})
}
