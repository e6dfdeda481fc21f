package ingestion

import (
	"context"
	"strings"
	"testing"

	"github.com/lithium3141/HaplotypeInference/models"
	"github.com/lithium3141/HaplotypeInference/tests/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testVcf = `##fileformat=VCFv4.2
##source=test
#CHROM	POS	ID	REF	ALT	QUAL	FILTER	INFO	FORMAT	S1	S2	S3
1	100	rs1	A	G	.	PASS	.	GT	0/1	1|1	0|0
1	200	rs2	C	T	.	PASS	.	GT:DP	0|0:10	0/1:12	1/1:8
1	300	rs3	G	A	.	PASS	.	DP:GT	7:1|0	9:0|0	3:0/1
`

func TestReadVcf(t *testing.T) {
	iz := NewIngestionService(common.InitConfig())

	t.Run("should turn each sample into a genotype of dosages", func(t *testing.T) {
		ds, err := iz.ReadVcf(context.Background(), strings.NewReader(testVcf))
		require.NoError(t, err)

		assert.Equal(t, []string{"S1", "S2", "S3"}, ds.SampleIds)
		assert.Equal(t, [][]int{{1, 0, 1}, {2, 1, 0}, {0, 2, 1}}, snpsOf(ds))
	})

	t.Run("should require a header line", func(t *testing.T) {
		_, err := iz.ReadVcf(context.Background(), strings.NewReader("##fileformat=VCFv4.2\n1\t100\n"))
		assert.ErrorIs(t, err, ErrNoVcfHeader)
	})

	t.Run("should require sample columns", func(t *testing.T) {
		vcf := "#CHROM\tPOS\tID\tREF\tALT\tQUAL\tFILTER\tINFO\tFORMAT\n"
		_, err := iz.ReadVcf(context.Background(), strings.NewReader(vcf))
		assert.ErrorIs(t, err, ErrNoVcfSamples)
	})

	t.Run("should reject a corpus without variants", func(t *testing.T) {
		vcf := "#CHROM\tPOS\tID\tREF\tALT\tQUAL\tFILTER\tINFO\tFORMAT\tS1\n"
		_, err := iz.ReadVcf(context.Background(), strings.NewReader(vcf))
		assert.ErrorIs(t, err, models.ErrEmptySequence)
	})

	rejections := []struct {
		name   string
		row    string
		target error
	}{
		{"missing calls", "1\t400\trs4\tA\tG\t.\tPASS\t.\tGT\t./.\t0/1\t0/0", ErrMissingCall},
		{"multi-allelic calls", "1\t400\trs4\tA\tG,T\t.\tPASS\t.\tGT\t0/2\t0/1\t0/0", ErrUnsupportedCall},
		{"haploid calls", "1\t400\trs4\tA\tG\t.\tPASS\t.\tGT\t1\t0/1\t0/0", ErrUnsupportedCall},
		{"rows without a GT field", "1\t400\trs4\tA\tG\t.\tPASS\t.\tDP\t3\t4\t5", ErrNoGenotypeField},
		{"rows with too many columns", "1\t400\trs4\tA\tG\t.\tPASS\t.\tGT\t0/1\t0/1\t0/0\t1/1", models.ErrInconsistentLength},
		{"rows with too few columns", "1\t400\trs4\tA\tG\t.\tPASS\t.\tGT\t0/1\t0/1", models.ErrInconsistentLength},
	}
	for _, r := range rejections {
		r := r
		t.Run("should reject "+r.name, func(t *testing.T) {
			_, err := iz.ReadVcf(context.Background(), strings.NewReader(testVcf+r.row+"\n"))
			require.Error(t, err)
			assert.ErrorIs(t, err, r.target)
			assert.Contains(t, err.Error(), "vcf line 7")
		})
	}
}

func TestGtToDosage(t *testing.T) {
	for gt, expected := range map[string]int{"0/0": 0, "0|1": 1, "1/0": 1, "1|1": 2} {
		d, err := gtToDosage(gt)
		assert.NoError(t, err, gt)
		assert.Equal(t, expected, d, gt)
	}
}
