package consensus

import (
	"testing"

	"github.com/lithium3141/HaplotypeInference/models"
	c "github.com/lithium3141/HaplotypeInference/models/constants/consensus"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMostCommon(t *testing.T) {
	sum := NewConsensusBuilder(c.Sum, DefaultFallbackLocus)

	t.Run("should return no haplotype for no genotypes", func(t *testing.T) {
		best, err := sum.MostCommon([]models.Genotype{})
		assert.NoError(t, err)
		assert.Nil(t, best)
	})

	t.Run("should sum the genotypes elementwise", func(t *testing.T) {
		best, err := sum.MostCommon([]models.Genotype{
			models.NewGenotype([]int{2, 1, 0}),
			models.NewGenotype([]int{0, 1, 2}),
		})
		require.NoError(t, err)
		require.NotNil(t, best)
		assert.Equal(t, []int{2, 2, 2}, best.Snps())
	})

	t.Run("should replace zero sums with the fallback locus", func(t *testing.T) {
		best, err := sum.MostCommon([]models.Genotype{
			models.NewGenotype([]int{0, 1, 0}),
			models.NewGenotype([]int{0, 1, 2}),
		})
		require.NoError(t, err)
		assert.Equal(t, []int{1, 2, 2}, best.Snps())

		best, err = NewConsensusBuilder(c.Sum, 3).MostCommon([]models.Genotype{models.NewGenotype([]int{0, 1})})
		require.NoError(t, err)
		assert.Equal(t, []int{3, 1}, best.Snps())
	})

	t.Run("should keep the genotype length", func(t *testing.T) {
		best, err := sum.MostCommon([]models.Genotype{models.NewGenotype([]int{1, 1, 1, 1, 1})})
		require.NoError(t, err)
		assert.Equal(t, 5, best.Len())
	})

	t.Run("should reject genotypes of differing lengths", func(t *testing.T) {
		_, err := sum.MostCommon([]models.Genotype{
			models.NewGenotype([]int{2, 1, 0}),
			models.NewGenotype([]int{0, 1}),
		})
		assert.ErrorIs(t, err, models.ErrInconsistentLength)
	})

	t.Run("should pick the majority allele", func(t *testing.T) {
		best, err := NewConsensusBuilder(c.Majority, DefaultFallbackLocus).MostCommon([]models.Genotype{
			models.NewGenotype([]int{2, 1, 0, 0, 1}),
			models.NewGenotype([]int{2, 1, 1, 0, 1}),
			models.NewGenotype([]int{0, 1, 2, 0, 0}),
		})
		require.NoError(t, err)
		// a locus summing to exactly one dosage per genotype is alternate, one below is reference
		assert.Equal(t, []int{1, 1, 1, 0, 0}, best.Snps())
		assert.True(t, best.IsAllelic())
	})

	t.Run("should reject unknown strategies", func(t *testing.T) {
		_, err := NewConsensusBuilder("median", 1).MostCommon([]models.Genotype{models.NewGenotype([]int{1})})
		assert.Error(t, err)
	})
}
