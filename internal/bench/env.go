package bench

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
)

// buildEnv layers the aligner's environment: the inherited base, then
// the dotenv file (if any), then explicit KEY=VALUE overrides, in that
// order so the command line always wins.
func buildEnv(base []string, envFile string, overrides []string) ([]string, error) {
	env := make([]string, len(base))
	copy(env, base)

	if envFile != "" {
		fileVars, err := godotenv.Read(envFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read env file %s: %w", envFile, err)
		}
		for key, value := range fileVars {
			env = setEnv(env, key, value)
		}
	}

	for _, assignment := range overrides {
		key, value, ok := strings.Cut(assignment, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid env assignment: %s", assignment)
		}
		env = setEnv(env, key, value)
	}

	return env, nil
}

// setEnv replaces key's entry if present, appends otherwise.
func setEnv(env []string, key, value string) []string {
	prefix := key + "="
	for i, entry := range env {
		if strings.HasPrefix(entry, prefix) {
			env[i] = prefix + value
			return env
		}
	}
	return append(env, prefix+value)
}
