package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWritePrimesFile_OneDecimalPerLine(t *testing.T) {
	// GIVEN a prime list and a target path
	path := filepath.Join(t.TempDir(), "primes.txt")
	primes := []uint64{2, 3, 5, 7, 11}

	// WHEN the list is written
	err := WritePrimesFile(path, primes)
	require.NoError(t, err)

	// THEN the file holds one decimal integer per line, no header
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "2\n3\n5\n7\n11\n", string(data))
}

func TestWritePrimesFile_EmptyList(t *testing.T) {
	// GIVEN an empty prime list
	path := filepath.Join(t.TempDir(), "primes.txt")

	// WHEN the list is written
	err := WritePrimesFile(path, nil)
	require.NoError(t, err)

	// THEN the file exists and is empty
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Empty(t, data)
}

func TestPrintPrimeList_SpaceSeparated(t *testing.T) {
	var buf bytes.Buffer
	printPrimeList(&buf, []uint64{2, 3, 5})
	assert.Equal(t, "2 3 5\n", buf.String())
}
