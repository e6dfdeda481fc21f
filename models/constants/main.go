package constants

/*
	Defines a set of base level
	constants and enums to be used
	throughout hisolver and its
	associated services.
*/
type Dosage int
type Allele int

type ConsensusStrategy string

var VcfHeaders = []string{"chrom", "pos", "id", "ref", "alt", "qual", "filter", "info", "format"}
