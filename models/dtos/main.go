package dtos

import "time"

// PhasingRunRequestDto is the body of a phasing run. Loci are decoded as
// numbers and checked for integral dosages by the handler.
type PhasingRunRequestDto struct {
	Genotypes [][]float64 `json:"genotypes" mapstructure:"genotypes"`
	SampleIds []string    `json:"sampleIds,omitempty" mapstructure:"sampleIds"`
}

type PhasingResultDto struct {
	RequestId             string          `json:"requestId"`
	RunId                 string          `json:"runId"`
	State                 string          `json:"state"`
	Iterations            int             `json:"iterations"`
	NumHaplotypes         int             `json:"numHaplotypes"`
	NumDistinctHaplotypes int             `json:"numDistinctHaplotypes"`
	Generated             int             `json:"generated"`
	Missing               int             `json:"missing"`
	Haplotypes            [][]int         `json:"haplotypes"`
	Escalations           []EscalationDto `json:"escalations"`
	Phases                []SamplePhase   `json:"phases"`
}

type EscalationDto struct {
	Generated int   `json:"generated"`
	Haplotype []int `json:"haplotype"`
}

// SamplePhase is the haplotype pair explaining one genotype; Left and Right
// index into Haplotypes
type SamplePhase struct {
	SampleId string `json:"sampleId"`
	Genotype []int  `json:"genotype"`
	Left     int    `json:"left"`
	Right    int    `json:"right"`
}

// -- errors

type GeneralErrorResponseDto struct {
	Code      int            `json:"code"`
	Message   string         `json:"message"`
	Timestamp time.Time      `json:"timestamp"`
	Errors    []GeneralError `json:"errors"`
}

type GeneralError struct {
	Message string `json:"message"`
}
