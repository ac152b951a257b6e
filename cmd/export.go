package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
)

// WritePrimesFile writes the prime list to path, one decimal integer per
// line with no header.
func WritePrimesFile(path string, primes []uint64) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, p := range primes {
		if _, err := w.WriteString(strconv.FormatUint(p, 10)); err != nil {
			return err
		}
		if err := w.WriteByte('\n'); err != nil {
			return err
		}
	}
	return w.Flush()
}

// printPrimeList writes the primes to w, space-separated on one line.
func printPrimeList(w io.Writer, primes []uint64) {
	for i, p := range primes {
		if i > 0 {
			fmt.Fprint(w, " ")
		}
		fmt.Fprintf(w, "%d", p)
	}
	fmt.Fprintln(w)
}
