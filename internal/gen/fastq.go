package gen

import (
	"fmt"
	"io"
)

// WriteFASTQ writes one read as the four FASTQ lines: name, sequence,
// the `+` separator, and the per-base quality string.
func WriteFASTQ(w io.Writer, name string, seq, quality []byte) error {
	_, err := fmt.Fprintf(w, "@%s\n%s\n+\n%s\n", name, seq, quality)
	return err
}

// PairNames returns the mate names for the pair generated at the given
// 0-based index, e.g. toy_read_12/1 and toy_read_12/2. Mates are
// correlated downstream by this shared prefix, so the numbering must
// follow generation order.
func PairNames(index int) (string, string) {
	return fmt.Sprintf("%s_%d/1", ReadBaseName, index),
		fmt.Sprintf("%s_%d/2", ReadBaseName, index)
}
