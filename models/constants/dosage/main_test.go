package dosage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsKnown(t *testing.T) {
	assert.True(t, IsKnown(0))
	assert.True(t, IsKnown(1))
	assert.True(t, IsKnown(2))
	assert.False(t, IsKnown(-1))
	assert.False(t, IsKnown(3))
}

func TestDosageToString(t *testing.T) {
	assert.Equal(t, "HOMOZYGOUS_REFERENCE", DosageToString(HomozygousReference))
	assert.Equal(t, "HETEROZYGOUS", DosageToString(Heterozygous))
	assert.Equal(t, "HOMOZYGOUS_ALTERNATE", DosageToString(HomozygousAlternate))
	assert.Equal(t, "UNKNOWN", DosageToString(7))
}
