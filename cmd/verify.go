package cmd

import (
	"fmt"
	"log"
	"strings"

	"github.com/logannye/rosalind/internal/gen"
	"github.com/spf13/cobra"
)

// verifyCmd represents the verify command
var verifyCmd = &cobra.Command{
	Use:   "verify [dataset-dir]",
	Short: "Verify a dataset against its SHA256SUMS manifest",
	Long: `Recompute the SHA-256 digest of every file listed in the dataset's
SHA256SUMS and compare against the recorded values. Any mismatch means
the dataset was altered after generation and should be regenerated.`,
	Args: cobra.ExactArgs(1),
	Run:  runVerify,
}

func init() {
	rootCmd.AddCommand(verifyCmd)
}

// runVerify rechecks the manifest and exits nonzero on any mismatch
func runVerify(cmd *cobra.Command, args []string) {
	mismatched, err := gen.VerifyManifest(args[0])
	if err != nil {
		log.Fatalf("%v", err)
	}
	if len(mismatched) > 0 {
		log.Fatalf("checksum mismatch: %s", strings.Join(mismatched, ", "))
	}

	fmt.Printf("%s: OK\n", args[0])
}
