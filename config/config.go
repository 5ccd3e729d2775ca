// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"log"

	"github.com/spf13/viper"
)

// GenerateFlags are those that are passed to the generate command
type GenerateFlags struct {
	// the number of base pairs in the synthesized reference
	Length int `mapstructure:"length"`

	// approximate paired sequencing depth used to size the read set
	Coverage int `mapstructure:"coverage"`

	// seed for the random stream backing the whole run
	Seed int64 `mapstructure:"seed"`
}

// BenchFlags are those that are passed to the bench command
type BenchFlags struct {
	// directory holding (or receiving) the toy dataset
	Dataset string `mapstructure:"dataset"`

	// number of repetitions per output format
	Iterations int `mapstructure:"iterations"`

	// command prefix used to invoke the external aligner
	Aligner string `mapstructure:"aligner"`

	// KEY=VALUE pairs forwarded to the aligner's environment
	Env []string `mapstructure:"env"`

	// optional dotenv file merged into the aligner's environment
	EnvFile string `mapstructure:"env-file"`
}

// Config is the root-level settings struct and is a mix
// of defaults and command line arguments
type Config struct {
	// generate settings passed thru CLI
	Generate GenerateFlags

	// bench settings passed thru CLI
	Bench BenchFlags
}

// New returns a new Config struct populated by Viper settings
// (defaults and/or command line arguments)
func New() Config {
	var c Config

	if err := viper.Unmarshal(&c); err != nil {
		log.Fatalf("unable to decode settings into struct, %v", err)
	}

	return c
}
