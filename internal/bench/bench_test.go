package bench

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/logannye/rosalind/config"
	"github.com/logannye/rosalind/internal/gen"
)

func TestAlignArgs(t *testing.T) {
	got := alignArgs(
		[]string{"cargo", "run", "--release", "--", "align"},
		"data/reference.fa",
		"data/reads_R1.fastq",
		"sam",
		"/tmp/benchmark_output.sam",
	)

	want := []string{
		"cargo", "run", "--release", "--", "align",
		"--reference", "data/reference.fa",
		"--reads", "data/reads_R1.fastq",
		"--format", "sam",
		"--output", "/tmp/benchmark_output.sam",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("alignArgs() = %v, want %v", got, want)
	}
}

func TestSummarize(t *testing.T) {
	timings := []time.Duration{
		300 * time.Millisecond,
		100 * time.Millisecond,
		200 * time.Millisecond,
	}

	got := summarize("bam", timings, 4096)

	if got.format != "bam" {
		t.Errorf("format = %q, want %q", got.format, "bam")
	}
	if got.avg != 200*time.Millisecond {
		t.Errorf("avg = %v, want %v", got.avg, 200*time.Millisecond)
	}
	if got.min != 100*time.Millisecond {
		t.Errorf("min = %v, want %v", got.min, 100*time.Millisecond)
	}
	if got.max != 300*time.Millisecond {
		t.Errorf("max = %v, want %v", got.max, 300*time.Millisecond)
	}
	if got.size != 4096 {
		t.Errorf("size = %d, want 4096", got.size)
	}
}

// when both dataset files are present no subprocess is spawned
func TestEnsureDataset_existing(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{gen.ReferenceName, gen.R1Name} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
	}

	reference, reads, err := ensureDataset(dir)
	if err != nil {
		t.Fatal(err)
	}
	if reference != filepath.Join(dir, gen.ReferenceName) {
		t.Errorf("reference = %q", reference)
	}
	if reads != filepath.Join(dir, gen.R1Name) {
		t.Errorf("reads = %q", reads)
	}
}

func TestRun_badOptions(t *testing.T) {
	if err := Run(config.BenchFlags{Iterations: 3}, nil); err == nil {
		t.Error("expected an error for an empty aligner command")
	}

	if err := Run(config.BenchFlags{Iterations: 0}, []string{"aligner"}); err == nil {
		t.Error("expected an error for zero iterations")
	}
}
