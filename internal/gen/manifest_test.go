package gen

import (
	"crypto/sha256"
	"encoding/hex"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestHashFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "payload.txt", "ACGT\n")

	got, err := HashFile(path)
	require.NoError(t, err)

	sum := sha256.Sum256([]byte("ACGT\n"))
	require.Equal(t, hex.EncodeToString(sum[:]), got)
	require.Len(t, got, 64)
}

func TestHashFile_missing(t *testing.T) {
	_, err := HashFile(filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)
}

func TestManifestRoundTrip(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.fa", ">x\nACGT\n")
	b := writeFile(t, dir, "b.fastq", "@r\nACGT\n+\nIIII\n")

	entries, err := BuildManifest([]string{a, b})
	require.NoError(t, err)
	require.Len(t, entries, 2)

	// entry order follows the order the files were listed
	require.Equal(t, "a.fa", entries[0].Name)
	require.Equal(t, "b.fastq", entries[1].Name)

	manifestPath := filepath.Join(dir, ManifestName)
	require.NoError(t, WriteManifest(manifestPath, entries))

	read, err := ReadManifest(manifestPath)
	require.NoError(t, err)
	require.Equal(t, entries, read)
}

func TestReadManifest_malformed(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, ManifestName, "justonefield\n")

	_, err := ReadManifest(path)
	require.Error(t, err)
}

func TestVerifyManifest(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.fa", ">x\nACGT\n")
	writeFile(t, dir, "b.fastq", "@r\nACGT\n+\nIIII\n")

	entries, err := BuildManifest([]string{a, filepath.Join(dir, "b.fastq")})
	require.NoError(t, err)
	require.NoError(t, WriteManifest(filepath.Join(dir, ManifestName), entries))

	mismatched, err := VerifyManifest(dir)
	require.NoError(t, err)
	require.Empty(t, mismatched)

	// flip a byte and the file must be flagged
	require.NoError(t, os.WriteFile(a, []byte(">x\nACGA\n"), 0644))

	mismatched, err = VerifyManifest(dir)
	require.NoError(t, err)
	require.Equal(t, []string{"a.fa"}, mismatched)
}
