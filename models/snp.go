package models

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrEmptyCorpus        = errors.New("genotype corpus is empty")
	ErrEmptySequence      = errors.New("snp sequence has no loci")
	ErrNegativeLocus      = errors.New("snp sequence has a negative locus value")
	ErrInconsistentLength = errors.New("snp sequences have inconsistent lengths")
)

// Sequence is the read-only view shared by genotypes and haplotypes
type Sequence interface {
	Len() int
	At(pos int) int
	Snps() []int
}

// SNPSequence is an ordered, fixed-length vector of locus codes.
// The backing slice is never exposed, so values are immutable once built.
type SNPSequence struct {
	snps []int
}

func newSNPSequence(snps []int) SNPSequence {
	cp := make([]int, len(snps))
	copy(cp, snps)
	return SNPSequence{snps: cp}
}

func (s SNPSequence) Len() int {
	return len(s.snps)
}

func (s SNPSequence) At(pos int) int {
	return s.snps[pos]
}

// Snps returns a copy of the locus values
func (s SNPSequence) Snps() []int {
	cp := make([]int, len(s.snps))
	copy(cp, s.snps)
	return cp
}

func (s SNPSequence) Equal(other SNPSequence) bool {
	if len(s.snps) != len(other.snps) {
		return false
	}
	for i := range s.snps {
		if s.snps[i] != other.snps[i] {
			return false
		}
	}
	return true
}

// Key is a content hash usable as a map key; two sequences share
// a key exactly when they are Equal.
func (s SNPSequence) Key() string {
	var sb strings.Builder
	for i, v := range s.snps {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(v))
	}
	return sb.String()
}

func (s SNPSequence) String() string {
	return fmt.Sprint(s.snps)
}

func (s SNPSequence) Validate() error {
	if len(s.snps) == 0 {
		return ErrEmptySequence
	}
	for i, v := range s.snps {
		if v < 0 {
			return fmt.Errorf("%w: %d at position %d", ErrNegativeLocus, v, i)
		}
	}
	return nil
}

// UniformLength returns the shared length of the given sequences, or an
// ErrInconsistentLength error naming the first offender. An empty
// collection has length 0.
func UniformLength[S Sequence](sequences []S) (int, error) {
	if len(sequences) == 0 {
		return 0, nil
	}

	length := sequences[0].Len()
	for i, s := range sequences {
		if s.Len() != length {
			return 0, fmt.Errorf("%w: sequence %d has %d loci, expected %d", ErrInconsistentLength, i, s.Len(), length)
		}
	}
	return length, nil
}
