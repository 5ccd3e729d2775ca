// Package gen creates the deterministic Illumina-style toy dataset:
// one synthetic reference plus two mated FASTQ files and a SHA256SUMS
// manifest. Regenerating with the same seed and settings is
// byte-identical.
package gen

import "fmt"

// Alphabet is the nucleotide alphabet every sequence is drawn from.
const Alphabet = "ACGT"

// Fixed dataset policy. These mirror a typical short-read Illumina run
// and are deliberately not tunable from the CLI.
const (
	// ReadLength is the length of every emitted read
	ReadLength = 150

	// ErrorRate is the independent per-base substitution probability
	ErrorRate = 0.01

	// QualityChar fills each read's constant quality string
	QualityChar = 'I'

	// ReadBaseName prefixes every read pair's name
	ReadBaseName = "toy_read"
)

// complement maps each nucleotide to its Watson-Crick partner. Kept as
// an explicit table so the mapping is auditable.
var complement = map[byte]byte{
	'A': 'T',
	'T': 'A',
	'C': 'G',
	'G': 'C',
}

// SynthesizeReference draws length independent bases from the stream,
// in order, producing the reference sequence.
func SynthesizeReference(length int, s *Stream) ([]byte, error) {
	if length <= 0 {
		return nil, fmt.Errorf("reference length must be positive, got %d", length)
	}

	ref := make([]byte, length)
	for i := range ref {
		ref[i] = s.Base()
	}
	return ref, nil
}

// ReverseComplement returns the mate-strand sequence: complement each
// base, then reverse the order. Involutive over ACGT.
func ReverseComplement(seq []byte) []byte {
	rc := make([]byte, len(seq))
	for i, base := range seq {
		rc[len(seq)-1-i] = complement[base]
	}
	return rc
}

// InjectErrors copies seq and, for each position independently,
// substitutes a different base with probability errorRate. The input
// slice is left untouched since fragments alias the reference.
func InjectErrors(seq []byte, errorRate float64, s *Stream) []byte {
	mutated := make([]byte, len(seq))
	copy(mutated, seq)

	for i, base := range mutated {
		if s.Float64() < errorRate {
			mutated[i] = s.Other(base)
		}
	}
	return mutated
}

// PairCount sizes the read set from the depth-of-coverage settings:
// totalReads = max(1, floor(refLength*coverage/readLength)) and half of
// those (again clamped to 1) become pairs.
func PairCount(refLength, coverage, readLength int) int {
	totalReads := refLength * coverage / readLength
	if totalReads < 1 {
		totalReads = 1
	}

	pairs := totalReads / 2
	if pairs < 1 {
		pairs = 1
	}
	return pairs
}

// SampleFragment draws a start offset uniformly from
// [0, len(reference)-readLength-1] and returns that offset with the
// forward fragment it selects. The fragment aliases the reference.
// Callers must have checked that the sampling range is non-empty.
func SampleFragment(reference []byte, readLength int, s *Stream) (int, []byte) {
	maxStart := len(reference) - readLength - 1
	start := s.IntN(maxStart + 1)
	return start, reference[start : start+readLength]
}
