package cmd

import (
	"fmt"
	"log"

	"github.com/logannye/rosalind/config"
	"github.com/logannye/rosalind/internal/gen"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// generateCmd represents the generate command
var generateCmd = &cobra.Command{
	Use:   "generate [output-dir]",
	Short: "Generate the deterministic toy sequencing dataset",
	Long: `Generate a synthetic Illumina-style dataset into the output directory:
a random reference (reference.fa), two mated read files (reads_R1.fastq,
reads_R2.fastq) with 1% substitution noise, and a SHA256SUMS manifest.

Every random choice is drawn from a single seeded stream, so re-running
with the same length, coverage, and seed reproduces the files byte for
byte. Read length (150bp) and error rate are fixed policy.`,
	Args: cobra.ExactArgs(1),
	Run:  runGenerate,
}

// set flags
func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().IntP("length", "l", 1000000, "Reference length (bp)")
	generateCmd.Flags().IntP("coverage", "c", 10, "Approximate paired depth")
	generateCmd.Flags().Int64P("seed", "s", 1337, "Random seed")

	// Bind the parameters to viper
	viper.BindPFlag("generate.length", generateCmd.Flags().Lookup("length"))
	viper.BindPFlag("generate.coverage", generateCmd.Flags().Lookup("coverage"))
	viper.BindPFlag("generate.seed", generateCmd.Flags().Lookup("seed"))
}

// runGenerate executes one generation run and prints the checksums
func runGenerate(cmd *cobra.Command, args []string) {
	c := config.New()

	dataset, err := gen.Run(args[0], c.Generate)
	if err != nil {
		log.Fatalf("%v", err)
	}

	fmt.Println("Generated dataset:")
	for _, entry := range dataset.Entries {
		fmt.Printf("  %s: %s\n", entry.Name, entry.Digest)
	}
}
