// Package cmd is for command line interactions with the rosalind
// dataset tooling
package cmd

import (
	"log"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use: "rosalind",
	Short: `Create and benchmark a deterministic Illumina-style toy dataset.
Generate a reference plus mated reads, verify their checksums, and time
an external aligner against them`,
	Version: "0.1.0",
}

// settings can also come from the environment, eg ROSALIND_GENERATE_SEED
func init() {
	viper.SetEnvPrefix("rosalind")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("%v", err)
	}
}
