package ingestion

import (
	"bufio"
	"compress/gzip"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode"

	"github.com/lithium3141/HaplotypeInference/models"
	"github.com/lithium3141/HaplotypeInference/models/constants"
	"github.com/lithium3141/HaplotypeInference/models/constants/dosage"
	"github.com/lithium3141/HaplotypeInference/services/counting"

	"github.com/sirupsen/logrus"
)

var (
	ErrInvalidLocus = errors.New("invalid locus value")
)

type (
	IngestionService struct {
		Config *models.Config
		Logger logrus.FieldLogger
	}

	// Dataset is a validated genotype corpus along with the sample each
	// genotype was read from
	Dataset struct {
		SampleIds []string
		Genotypes []models.Genotype
	}
)

func NewIngestionService(cfg *models.Config) *IngestionService {
	return &IngestionService{
		Config: cfg,
		Logger: logrus.StandardLogger(),
	}
}

// ReadGenotypeFile loads a genotype corpus from path. Files named *.vcf or
// *.vcf.gz are read as VCF, anything else as a plain genotype matrix; a
// .gz suffix is decompressed transparently. The corpus is validated before
// it is returned.
func (i *IngestionService) ReadGenotypeFile(ctx context.Context, path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var r io.Reader = f
	name := strings.ToLower(path)
	if strings.HasSuffix(name, ".gz") {
		gr, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("opening gzipped file %s: %w", path, err)
		}
		defer gr.Close()

		r = gr
		name = strings.TrimSuffix(name, ".gz")
	}

	var ds *Dataset
	if strings.HasSuffix(name, ".vcf") {
		ds, err = i.ReadVcf(ctx, r)
	} else {
		ds, err = i.ReadMatrix(r)
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	// loci where every sample is homozygous reference carry no phase information
	monomorphic := 0
	for position := 0; position < ds.Genotypes[0].Len(); position++ {
		if counting.CountAt(int(dosage.HomozygousReference), position, ds.Genotypes) == len(ds.Genotypes) {
			monomorphic++
		}
	}

	fields := logrus.Fields{
		"path":        path,
		"genotypes":   len(ds.Genotypes),
		"loci":        ds.Genotypes[0].Len(),
		"monomorphic": monomorphic,
	}
	for _, d := range []constants.Dosage{dosage.HomozygousReference, dosage.Heterozygous, dosage.HomozygousAlternate} {
		fields[dosage.DosageToString(d)] = counting.CountTotal(int(d), ds.Genotypes)
	}
	i.Logger.WithFields(fields).Debug("genotype file loaded")

	return ds, nil
}

// ReadMatrix reads one genotype per line. Loci are either written as
// contiguous digits ("0120") or separated by whitespace or commas
// ("0 1 2 0"). A line may be prefixed with "<sampleId>:"; blank lines and
// lines starting with '#' are skipped.
func (i *IngestionService) ReadMatrix(r io.Reader) (*Dataset, error) {
	ds := &Dataset{}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	lineNumber := 0
	for scanner.Scan() {
		lineNumber++

		line := strings.TrimSpace(scanner.Text())
		if len(line) == 0 || strings.HasPrefix(line, "#") {
			continue
		}

		sampleId := fmt.Sprintf("genotype-%d", len(ds.Genotypes)+1)
		if label, rest, found := strings.Cut(line, ":"); found {
			sampleId = strings.TrimSpace(label)
			line = strings.TrimSpace(rest)
		}

		snps, err := parseLoci(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNumber, err)
		}

		ds.SampleIds = append(ds.SampleIds, sampleId)
		ds.Genotypes = append(ds.Genotypes, models.NewGenotype(snps))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if _, err := models.ValidateCorpus(ds.Genotypes); err != nil {
		return nil, err
	}
	return ds, nil
}

func parseLoci(line string) ([]int, error) {
	isSeparator := func(r rune) bool {
		return unicode.IsSpace(r) || r == ','
	}

	var tokens []string
	if strings.IndexFunc(line, isSeparator) >= 0 {
		tokens = strings.FieldsFunc(line, isSeparator)
	} else {
		// contiguous single-digit loci
		tokens = strings.Split(line, "")
	}

	snps := make([]int, 0, len(tokens))
	for _, token := range tokens {
		// every locus is a single digit, "01" is a typo rather than a dosage
		if len(token) != 1 {
			return nil, fmt.Errorf("%w '%s'", ErrInvalidLocus, token)
		}
		value, err := strconv.Atoi(token)
		if err != nil || !dosage.IsKnown(value) {
			return nil, fmt.Errorf("%w '%s'", ErrInvalidLocus, token)
		}
		snps = append(snps, value)
	}
	return snps, nil
}
