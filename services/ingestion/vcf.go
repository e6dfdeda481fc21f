package ingestion

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/lithium3141/HaplotypeInference/models"
	"github.com/lithium3141/HaplotypeInference/models/constants"
	"github.com/lithium3141/HaplotypeInference/models/constants/allele"
	"github.com/lithium3141/HaplotypeInference/utils"

	"github.com/mitchellh/mapstructure"
	"golang.org/x/sync/errgroup"
)

var (
	ErrNoVcfHeader     = errors.New("no #CHROM header line found")
	ErrNoVcfSamples    = errors.New("vcf has no sample columns")
	ErrNoGenotypeField = errors.New("variant has no GT format field")
	ErrMissingCall     = errors.New("missing genotype call")
	ErrUnsupportedCall = errors.New("unsupported genotype call")
)

type vcfRow struct {
	Chrom   string   `mapstructure:"chrom"`
	Pos     int64    `mapstructure:"pos"`
	Id      string   `mapstructure:"id"`
	Format  []string `mapstructure:"format"`
	Samples []string `mapstructure:"samples"`
}

// ReadVcf turns every sample column of a VCF into one genotype whose loci
// are the sample's alternate allele dosages, in variant order. Only
// biallelic diploid calls are accepted: missing, multi-allelic and
// non-diploid calls are rejected.
func (i *IngestionService) ReadVcf(ctx context.Context, r io.Reader) (*Dataset, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 64*1024*1024)

	var (
		discoveredHeaders bool
		headers           []string
		lines             []string
		lineNumbers       []int
	)

	lineNumber := 0
	for scanner.Scan() {
		lineNumber++

		// Gather Header row by seeking the CHROM string
		line := scanner.Text()
		if !discoveredHeaders {
			if strings.HasPrefix(line, "#CHROM") {
				headers = strings.Split(line, "\t")
				discoveredHeaders = true
			}
			continue
		}
		if len(strings.TrimSpace(line)) == 0 {
			continue
		}

		lines = append(lines, line)
		lineNumbers = append(lineNumbers, lineNumber)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if !discoveredHeaders {
		return nil, ErrNoVcfHeader
	}

	// any column that is not a default vcf header is assumed to be a sample
	sampleIds := []string{}
	for _, header := range headers {
		key := strings.ToLower(strings.TrimSpace(strings.ReplaceAll(header, "#", "")))
		if !utils.StringInSlice(key, constants.VcfHeaders) {
			sampleIds = append(sampleIds, strings.TrimSpace(header))
		}
	}
	if len(sampleIds) == 0 {
		return nil, ErrNoVcfSamples
	}

	// - manage # of lines being concurrently processed at any given time
	dosages := make([][]int, len(lines))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(i.Config.Ingestion.LineProcessingConcurrencyLevel)

	for idx := range lines {
		idx := idx
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			row, err := decodeVcfRow(headers, lines[idx])
			if err != nil {
				return fmt.Errorf("vcf line %d: %w", lineNumbers[idx], err)
			}
			if len(row.Samples) != len(sampleIds) {
				return fmt.Errorf("vcf line %d: %w: found %d sample columns, expected %d",
					lineNumbers[idx], models.ErrInconsistentLength, len(row.Samples), len(sampleIds))
			}

			rowDosages, err := row.dosages()
			if err != nil {
				return fmt.Errorf("vcf line %d (%s:%d): %w", lineNumbers[idx], row.Chrom, row.Pos, err)
			}
			dosages[idx] = rowDosages
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// transpose variants x samples into one genotype per sample
	ds := &Dataset{SampleIds: sampleIds}
	for s := range sampleIds {
		snps := make([]int, len(dosages))
		for v := range dosages {
			snps[v] = dosages[v][s]
		}
		ds.Genotypes = append(ds.Genotypes, models.NewGenotype(snps))
	}

	if _, err := models.ValidateCorpus(ds.Genotypes); err != nil {
		return nil, err
	}
	return ds, nil
}

func decodeVcfRow(headers []string, line string) (*vcfRow, error) {
	rowComponents := strings.Split(line, "\t")

	tmpVariant := map[string]interface{}{}
	samples := []string{}
	for idx, rc := range rowComponents {
		if idx >= len(headers) {
			// more columns than headers
			return nil, fmt.Errorf("%w: row has %d columns, header has %d", models.ErrInconsistentLength, len(rowComponents), len(headers))
		}

		key := strings.ToLower(strings.TrimSpace(strings.ReplaceAll(headers[idx], "#", "")))
		value := strings.TrimSpace(rc)

		if !utils.StringInSlice(key, constants.VcfHeaders) {
			// assume its a sampleId header
			samples = append(samples, value)
			continue
		}

		switch key {
		case "pos":
			pos, err := strconv.ParseInt(value, 10, 64)
			if err != nil {
				pos = -1
			}
			tmpVariant[key] = pos
		case "format":
			tmpVariant[key] = strings.Split(value, ":")
		default:
			tmpVariant[key] = value
		}
	}
	tmpVariant["samples"] = samples

	var row vcfRow
	if err := mapstructure.Decode(tmpVariant, &row); err != nil {
		return nil, err
	}
	return &row, nil
}

func (row *vcfRow) dosages() ([]int, error) {
	genotypePosition := utils.IndexOf("GT", row.Format)
	if genotypePosition < 0 {
		return nil, ErrNoGenotypeField
	}

	dosages := make([]int, len(row.Samples))
	for s, sample := range row.Samples {
		values := strings.Split(sample, ":")
		if genotypePosition >= len(values) {
			return nil, fmt.Errorf("%w: sample column %d", ErrMissingCall, s+1)
		}

		d, err := gtToDosage(values[genotypePosition])
		if err != nil {
			return nil, fmt.Errorf("sample column %d: %w", s+1, err)
		}
		dosages[s] = d
	}
	return dosages, nil
}

// gtToDosage maps a diploid GT value such as "0/1" or "1|1" to the number
// of alternate alleles it carries
func gtToDosage(gt string) (int, error) {
	var alleleStringSplits []string
	if strings.Contains(gt, "|") {
		alleleStringSplits = strings.Split(gt, "|")
	} else {
		alleleStringSplits = strings.Split(gt, "/")
	}

	if len(alleleStringSplits) != 2 {
		return 0, fmt.Errorf("%w '%s': not diploid", ErrUnsupportedCall, gt)
	}

	total := 0
	for _, a := range alleleStringSplits {
		if a == "." {
			return 0, fmt.Errorf("%w '%s'", ErrMissingCall, gt)
		}

		value, err := strconv.Atoi(a)
		if err != nil {
			return 0, fmt.Errorf("%w '%s'", ErrUnsupportedCall, gt)
		}
		if !allele.IsKnown(value) {
			return 0, fmt.Errorf("%w '%s': multi-allelic", ErrUnsupportedCall, gt)
		}
		total += value
	}
	return total, nil
}
