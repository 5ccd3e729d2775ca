package gen

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/logannye/rosalind/config"
)

// Output file names, all siblings in the run's output directory.
const (
	ReferenceName = "reference.fa"
	R1Name        = "reads_R1.fastq"
	R2Name        = "reads_R2.fastq"

	// ReferenceID is the single reference's FASTA header
	ReferenceID = "chrToy"
)

// Dataset lists the files a generation run produced, with their
// manifest entries in generation order.
type Dataset struct {
	Dir      string
	Entries  []ManifestEntry
	PairCnt  int
	RefBases int
}

// Run executes one full generation pass: synthesize and persist the
// reference, sample/perturb/write the read pairs, then hash everything
// into the manifest. Every random choice comes from one stream seeded
// once, so runs with equal settings are byte-identical.
func Run(outDir string, flags config.GenerateFlags) (*Dataset, error) {
	if flags.Length <= 0 {
		return nil, fmt.Errorf("reference length must be positive, got %d", flags.Length)
	}
	if flags.Length < ReadLength+1 {
		return nil, fmt.Errorf(
			"reference length %d leaves no room to sample %dbp reads; need at least %d",
			flags.Length, ReadLength, ReadLength+1,
		)
	}

	if err := os.MkdirAll(outDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory %s: %w", outDir, err)
	}

	stream := NewStream(flags.Seed)

	reference, err := SynthesizeReference(flags.Length, stream)
	if err != nil {
		return nil, err
	}

	refPath := filepath.Join(outDir, ReferenceName)
	if err := writeReference(refPath, reference); err != nil {
		return nil, err
	}

	pairs := PairCount(flags.Length, flags.Coverage, ReadLength)

	r1Path := filepath.Join(outDir, R1Name)
	r2Path := filepath.Join(outDir, R2Name)
	if err := writeReadPairs(r1Path, r2Path, reference, pairs, stream); err != nil {
		return nil, err
	}

	// manifest order follows generation order
	entries, err := BuildManifest([]string{refPath, r1Path, r2Path})
	if err != nil {
		return nil, err
	}
	if err := WriteManifest(filepath.Join(outDir, ManifestName), entries); err != nil {
		return nil, err
	}

	return &Dataset{
		Dir:      outDir,
		Entries:  entries,
		PairCnt:  pairs,
		RefBases: flags.Length,
	}, nil
}

// writeReference persists the reference as wrapped FASTA.
func writeReference(path string, reference []byte) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if err := WriteFASTA(w, ReferenceID, reference); err != nil {
		return fmt.Errorf("failed to write reference: %w", err)
	}
	return w.Flush()
}

// writeReadPairs samples pairs fragments from the reference and writes
// the two mate files in lockstep. Per pair the stream is consumed in a
// fixed order: start offset, then mate 1's error draws, then mate 2's.
func writeReadPairs(r1Path, r2Path string, reference []byte, pairs int, stream *Stream) error {
	r1File, err := os.Create(r1Path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", r1Path, err)
	}
	defer r1File.Close()

	r2File, err := os.Create(r2Path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", r2Path, err)
	}
	defer r2File.Close()

	r1 := bufio.NewWriter(r1File)
	r2 := bufio.NewWriter(r2File)
	quality := bytes.Repeat([]byte{QualityChar}, ReadLength)

	for idx := 0; idx < pairs; idx++ {
		_, fragment := SampleFragment(reference, ReadLength, stream)
		mate := ReverseComplement(fragment)

		read1 := InjectErrors(fragment, ErrorRate, stream)
		read2 := InjectErrors(mate, ErrorRate, stream)

		name1, name2 := PairNames(idx)
		if err := WriteFASTQ(r1, name1, read1, quality); err != nil {
			return fmt.Errorf("failed to write %s: %w", r1Path, err)
		}
		if err := WriteFASTQ(r2, name2, read2, quality); err != nil {
			return fmt.Errorf("failed to write %s: %w", r2Path, err)
		}
	}

	if err := r1.Flush(); err != nil {
		return err
	}
	return r2.Flush()
}
