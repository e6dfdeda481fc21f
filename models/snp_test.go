package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSNPSequence(t *testing.T) {
	t.Run("should copy the loci it is built from", func(t *testing.T) {
		snps := []int{0, 1, 2}
		g := NewGenotype(snps)
		snps[0] = 2

		assert.Equal(t, 0, g.At(0))

		out := g.Snps()
		out[1] = 2
		assert.Equal(t, 1, g.At(1))
	})

	t.Run("should compare by value", func(t *testing.T) {
		a := NewHaplotype([]int{0, 1, 1})
		b := NewHaplotype([]int{0, 1, 1})
		c := NewHaplotype([]int{0, 1, 0})
		d := NewHaplotype([]int{0, 1})

		assert.True(t, a.Equal(b))
		assert.False(t, a.Equal(c))
		assert.False(t, a.Equal(d))
	})

	t.Run("should share a key exactly when equal", func(t *testing.T) {
		assert.Equal(t, NewHaplotype([]int{1, 10}).Key(), NewHaplotype([]int{1, 10}).Key())
		assert.NotEqual(t, NewHaplotype([]int{1, 10}).Key(), NewHaplotype([]int{11, 0}).Key())
		assert.NotEqual(t, NewHaplotype([]int{1}).Key(), NewHaplotype([]int{1, 1}).Key())
	})

	t.Run("should format as a bracketed list", func(t *testing.T) {
		assert.Equal(t, "[2 2 2]", NewHaplotype([]int{2, 2, 2}).String())
	})

	t.Run("should reject empty and negative sequences", func(t *testing.T) {
		assert.ErrorIs(t, NewGenotype(nil).Validate(), ErrEmptySequence)
		assert.ErrorIs(t, NewGenotype([]int{0, -1}).Validate(), ErrNegativeLocus)
		assert.NoError(t, NewGenotype([]int{0, 1, 2}).Validate())
	})
}

func TestUniformLength(t *testing.T) {
	length, err := UniformLength([]Genotype{})
	assert.NoError(t, err)
	assert.Equal(t, 0, length)

	length, err = UniformLength([]Haplotype{NewHaplotype([]int{0, 1}), NewHaplotype([]int{1, 1})})
	assert.NoError(t, err)
	assert.Equal(t, 2, length)

	_, err = UniformLength([]Genotype{NewGenotype([]int{0, 1}), NewGenotype([]int{1})})
	assert.ErrorIs(t, err, ErrInconsistentLength)
}
