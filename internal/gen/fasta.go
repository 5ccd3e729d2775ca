package gen

import (
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"
)

// fastaLineWidth is the column the reference body wraps at.
const fastaLineWidth = 80

// Record is one named FASTA sequence.
type Record struct {
	ID  string
	Seq string
}

// WriteFASTA writes one record as a `>` header followed by the sequence
// wrapped at 80 columns, every line newline-terminated.
func WriteFASTA(w io.Writer, id string, seq []byte) error {
	if _, err := fmt.Fprintf(w, ">%s\n", id); err != nil {
		return err
	}

	for i := 0; i < len(seq); i += fastaLineWidth {
		end := i + fastaLineWidth
		if end > len(seq) {
			end = len(seq)
		}
		if _, err := fmt.Fprintf(w, "%s\n", seq[i:end]); err != nil {
			return err
		}
	}
	return nil
}

// unwantedChars strips anything that isn't a nucleotide from a
// sequence line
var unwantedChars = regexp.MustCompile(`(?im)[^atgc]|\W`)

// ReadFASTA reads a FASTA file to a slice of Records
func ReadFASTA(path string) ([]Record, error) {
	dat, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open fasta file %s: %w", path, err)
	}

	// split by newlines
	lines := strings.Split(string(dat), "\n")

	// read in the headers
	var headerIndices []int
	var ids []string
	for i, line := range lines {
		if strings.HasPrefix(line, ">") {
			headerIndices = append(headerIndices, i)
			ids = append(ids, line[1:])
		}
	}

	// accumulate the sequences from between the headers
	var seqs []string
	for i, headerIndex := range headerIndices {
		nextLine := len(lines)
		if i < len(headerIndices)-1 {
			nextLine = headerIndices[i+1]
		}
		seqLines := lines[headerIndex+1 : nextLine]
		seqJoined := strings.Join(seqLines, "")
		seqs = append(seqs, unwantedChars.ReplaceAllString(seqJoined, ""))
	}

	records := make([]Record, len(ids))
	for i, id := range ids {
		records[i] = Record{ID: id, Seq: seqs[i]}
	}
	return records, nil
}
