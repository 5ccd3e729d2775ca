package gen

import (
	"bufio"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// ManifestName is the checksum listing written next to the payload files.
const ManifestName = "SHA256SUMS"

// ManifestEntry pairs an output filename with the hex digest of its
// content. Entry order follows the order the files were generated.
type ManifestEntry struct {
	Name   string
	Digest string
}

// HashFile computes the SHA-256 digest of a file's full byte content,
// streaming so the file is never held in memory whole.
func HashFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open %s for hashing: %w", path, err)
	}
	defer f.Close()

	digest := sha256.New()
	if _, err := io.Copy(digest, f); err != nil {
		return "", fmt.Errorf("failed to hash %s: %w", path, err)
	}
	return hex.EncodeToString(digest.Sum(nil)), nil
}

// BuildManifest hashes each path in order and returns one entry per
// file, keyed by base filename.
func BuildManifest(paths []string) ([]ManifestEntry, error) {
	entries := make([]ManifestEntry, 0, len(paths))
	for _, p := range paths {
		digest, err := HashFile(p)
		if err != nil {
			return nil, err
		}
		entries = append(entries, ManifestEntry{Name: filepath.Base(p), Digest: digest})
	}
	return entries, nil
}

// WriteManifest writes the entries in order, one `<digest>  <name>`
// line per file, in the same two-space format sha256sum emits.
func WriteManifest(path string, entries []ManifestEntry) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create manifest %s: %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, entry := range entries {
		if _, err := fmt.Fprintf(w, "%s  %s\n", entry.Digest, entry.Name); err != nil {
			return err
		}
	}
	return w.Flush()
}

// ReadManifest parses a manifest written by WriteManifest.
func ReadManifest(path string) ([]ManifestEntry, error) {
	dat, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest %s: %w", path, err)
	}

	var entries []ManifestEntry
	for _, line := range strings.Split(string(dat), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, fmt.Errorf("malformed manifest line %q in %s", line, path)
		}
		entries = append(entries, ManifestEntry{Name: fields[1], Digest: fields[0]})
	}
	return entries, nil
}

// VerifyManifest re-hashes every file listed in the directory's
// manifest and returns the names whose content no longer matches.
func VerifyManifest(dir string) ([]string, error) {
	entries, err := ReadManifest(filepath.Join(dir, ManifestName))
	if err != nil {
		return nil, err
	}

	var mismatched []string
	for _, entry := range entries {
		digest, err := HashFile(filepath.Join(dir, entry.Name))
		if err != nil {
			return nil, err
		}
		if digest != entry.Digest {
			mismatched = append(mismatched, entry.Name)
		}
	}
	return mismatched, nil
}
