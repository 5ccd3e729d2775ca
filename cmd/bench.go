package cmd

import (
	"log"
	"path/filepath"
	"strings"

	"github.com/logannye/rosalind/config"
	"github.com/logannye/rosalind/internal/bench"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// benchCmd represents the bench command
var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Compare the aligner's SAM vs BAM output performance",
	Long: `Time the external aligner against the toy dataset, once per output
format, and report average/min/max wall-clock time plus output size.

The dataset is generated first if its files are missing. The aligner is
any command that accepts --reference, --reads, --format, and --output;
extra environment for its toolchain can be passed with --env or loaded
from a dotenv file with --env-file.`,
	Run: runBench,
}

// set flags
func init() {
	rootCmd.AddCommand(benchCmd)

	benchCmd.Flags().StringP("dataset", "d", filepath.Join("examples", "data", "illumina_toy"),
		"Directory holding (or receiving) the generated dataset")
	benchCmd.Flags().IntP("iterations", "n", 3, "Number of repetitions per format")
	benchCmd.Flags().StringP("aligner", "a", "cargo run --release -- align",
		"Command prefix used to invoke the external aligner")
	benchCmd.Flags().StringArrayP("env", "e", nil, "Additional KEY=VALUE pairs for the aligner's environment")
	benchCmd.Flags().String("env-file", "", "Dotenv file merged into the aligner's environment")

	// Bind the parameters to viper
	viper.BindPFlag("bench.dataset", benchCmd.Flags().Lookup("dataset"))
	viper.BindPFlag("bench.iterations", benchCmd.Flags().Lookup("iterations"))
	viper.BindPFlag("bench.aligner", benchCmd.Flags().Lookup("aligner"))
	viper.BindPFlag("bench.env", benchCmd.Flags().Lookup("env"))
	viper.BindPFlag("bench.env-file", benchCmd.Flags().Lookup("env-file"))
}

// runBench executes the benchmark and aborts on any subprocess failure
func runBench(cmd *cobra.Command, args []string) {
	c := config.New()

	if err := bench.Run(c.Bench, strings.Fields(c.Bench.Aligner)); err != nil {
		log.Fatalf("%v", err)
	}
}
