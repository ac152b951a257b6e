package cmd

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sieve "github.com/rns-sieve/rns-sieve/sieve"
)

var (
	// CLI flags for the generate subcommand
	printPrimes bool   // Print the prime list to stdout
	showStats   bool   // Print work counters after generation
	outFile     string // File to write the prime list to, one per line
	useNaive    bool   // Use the immediate-activation baseline
	logLevel    string // Log verbosity level
	presetName  string // Named preset from the presets file
	presetsFile string // Path to the YAML presets file
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "rns-sieve",
	Short: "Division-free prime generator based on residue number system digits",
}

// parseCount parses and range-checks the positional count argument. The
// engine is never invoked for an out-of-range count.
func parseCount(arg string) (int64, error) {
	count, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("count argument %q is not an integer", arg)
	}
	if count < 1 || count > sieve.MaxCount {
		return 0, &sieve.InvalidCountError{Count: count}
	}
	return count, nil
}

// generateCmd produces the first N primes using parameters from CLI flags
var generateCmd = &cobra.Command{
	Use:   "generate <count>",
	Short: "Generate the first <count> primes",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		// Set up logging
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		variant := sieve.VariantDeferred
		if useNaive {
			variant = sieve.VariantNaive
		}

		var count int64
		if presetName != "" {
			preset := GetRunPreset(presetsFile, presetName)
			if preset == nil {
				logrus.Fatalf("Preset %q not found in %s", presetName, presetsFile)
			}
			count, printPrimes, showStats = preset.Count, preset.Print, preset.Stats
			if preset.Naive {
				variant = sieve.VariantNaive
			}
			if err := sieve.NewGeneratorConfig(count, showStats, variant).Validate(); err != nil {
				logrus.Fatalf("%v", err)
			}
		} else {
			if len(args) != 1 {
				logrus.Fatalf("Expected a prime count argument (or --preset)")
			}
			count, err = parseCount(args[0])
			if err != nil {
				logrus.Fatalf("%v", err)
			}
		}

		logrus.Infof("Generating the first %d primes (%s variant)", count, variant)
		startTime := time.Now()

		g := sieve.NewGenerator(sieve.NewGeneratorConfig(count, showStats, variant))
		primes, err := g.Run()
		if err != nil {
			logrus.Fatalf("Prime generation failed: %v", err)
		}
		elapsed := time.Since(startTime)

		if printPrimes {
			printPrimeList(os.Stdout, primes)
		}
		if showStats {
			g.Stats.Print()
		}
		if outFile != "" {
			if err := WritePrimesFile(outFile, primes); err != nil {
				logrus.Fatalf("Unable to write %s: %v", outFile, err)
			}
			logrus.Infof("Primes saved to %s", outFile)
		}

		logrus.Infof("Prime generation complete in %v", elapsed)
	},
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	generateCmd.Flags().BoolVarP(&printPrimes, "print", "p", false, "Print primes to stdout")
	generateCmd.Flags().BoolVarP(&showStats, "stats", "s", false, "Print generation statistics")
	generateCmd.Flags().StringVarP(&outFile, "file", "f", "", "File to save primes to, one decimal per line")
	generateCmd.Flags().BoolVar(&useNaive, "naive", false, "Use the immediate-activation baseline variant")
	generateCmd.Flags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")
	generateCmd.Flags().StringVar(&presetName, "preset", "", "Named run preset to load")
	generateCmd.Flags().StringVar(&presetsFile, "presets-file", "presets.yaml", "Path to the YAML presets file")

	// Attach `generate` as a subcommand to `root`
	rootCmd.AddCommand(generateCmd)
}
