// Package bench times the external aligner over the toy dataset, once
// per output format, and reports wall-clock stats and output sizes. It
// never looks inside the aligner's output; the aligner is a black box
// invoked as a subprocess.
package bench

import (
	"errors"
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/logannye/rosalind/config"
	"github.com/logannye/rosalind/internal/gen"
)

var (
	// stderr is for logging to Stderr (without an annoying timestamp)
	stderr = log.New(os.Stderr, "", 0)

	// the output formats the aligner is timed against
	formats = []string{"sam", "bam"}
)

// result holds the timing stats for one output format.
type result struct {
	format string
	avg    time.Duration
	min    time.Duration
	max    time.Duration
	size   int64
}

// Run ensures the dataset exists, then times the aligner per format.
func Run(flags config.BenchFlags, aligner []string) error {
	if len(aligner) == 0 {
		return errors.New("aligner command must not be empty")
	}
	if flags.Iterations < 1 {
		return fmt.Errorf("iterations must be at least 1, got %d", flags.Iterations)
	}

	reference, reads, err := ensureDataset(flags.Dataset)
	if err != nil {
		return err
	}

	env, err := buildEnv(os.Environ(), flags.EnvFile, flags.Env)
	if err != nil {
		return err
	}

	tmpdir, err := os.MkdirTemp("", "rosalind-bench")
	if err != nil {
		return fmt.Errorf("failed to create scratch directory: %w", err)
	}
	defer os.RemoveAll(tmpdir)

	var results []result
	for _, format := range formats {
		output := filepath.Join(tmpdir, "benchmark_output."+format)
		argv := alignArgs(aligner, reference, reads, format, output)

		timings := make([]time.Duration, 0, flags.Iterations)
		for i := 0; i < flags.Iterations; i++ {
			duration, err := runTimed(argv, env)
			if err != nil {
				return err
			}
			timings = append(timings, duration)
		}

		info, err := os.Stat(output)
		if err != nil {
			return fmt.Errorf("aligner exited 0 but wrote no %s output: %w", format, err)
		}

		results = append(results, summarize(format, timings, info.Size()))
	}

	printReport(reference, reads, flags.Iterations, results)
	return nil
}

// ensureDataset returns the reference and read-1 paths, regenerating
// the dataset via this binary's own generate command when either file
// is missing. Generator failure aborts the whole benchmark.
func ensureDataset(dir string) (string, string, error) {
	reference := filepath.Join(dir, gen.ReferenceName)
	reads := filepath.Join(dir, gen.R1Name)

	if exists(reference) && exists(reads) {
		return reference, reads, nil
	}

	stderr.Printf("[bench] dataset %s missing, generating…", dir)

	exe, err := os.Executable()
	if err != nil {
		return "", "", fmt.Errorf("failed to locate own executable: %w", err)
	}

	genCmd := exec.Command(exe, "generate", dir)
	if output, err := genCmd.CombinedOutput(); err != nil {
		return "", "", fmt.Errorf("failed to generate dataset in %s: %v: %s", dir, err, string(output))
	}
	return reference, reads, nil
}

// alignArgs assembles one aligner invocation from the command prefix.
func alignArgs(aligner []string, reference, reads, format, output string) []string {
	argv := make([]string, 0, len(aligner)+8)
	argv = append(argv, aligner...)
	argv = append(argv,
		"--reference", reference,
		"--reads", reads,
		"--format", format,
		"--output", output,
	)
	return argv
}

// runTimed executes one aligner invocation and returns its wall-clock
// duration. Output is discarded; only the exit code matters here.
func runTimed(argv, env []string) (time.Duration, error) {
	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Env = env

	start := time.Now()
	err := cmd.Run()
	duration := time.Since(start)

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return 0, fmt.Errorf(
				"command %v failed with exit code %d; "+
					"if the aligner cannot link against Python, set PYO3_PYTHON to a valid interpreter "+
					"or disable bindings with PYO3_NO_PYTHON=1",
				argv, exitErr.ExitCode(),
			)
		}
		return 0, fmt.Errorf("failed to execute %v: %w", argv, err)
	}
	return duration, nil
}

// summarize folds the per-iteration timings into one result row.
func summarize(format string, timings []time.Duration, size int64) result {
	var total time.Duration
	min, max := timings[0], timings[0]
	for _, t := range timings {
		total += t
		if t < min {
			min = t
		}
		if t > max {
			max = t
		}
	}

	return result{
		format: format,
		avg:    total / time.Duration(len(timings)),
		min:    min,
		max:    max,
		size:   size,
	}
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
