// Command benchmark drives the self-play benchmark harness from the
// command line (spec.md §6): a single positional argument selects
// "comprehensive" (900 games), "quick" (50 games), "help", or a
// positive integer sample size, grounded on
// original_source/benchmark_runner.rs's comprehensive/random split.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/lexigon/wordlesolver/bench"
	"github.com/lexigon/wordlesolver/config"
	"github.com/lexigon/wordlesolver/solver"
	"github.com/lexigon/wordlesolver/words"
)

var rootCmd = &cobra.Command{
	Use:   "benchmark [comprehensive|quick|N]",
	Short: "Run the Wordle solver self-play benchmark",
	Args:  cobra.ExactArgs(1),
	RunE:  runBenchmark,
}

var lexiconsDir string

func init() {
	rootCmd.Flags().StringVar(&lexiconsDir, "lexicons-dir", "", "directory containing answers.json and guesses.txt")
}

func runBenchmark(cmd *cobra.Command, args []string) error {
	if args[0] == "help" {
		return cmd.Help()
	}

	repo := words.NewRepository()
	if lexiconsDir != "" {
		res := repo.LoadFromFiles(lexiconsDir+"/answers.json", lexiconsDir+"/guesses.txt")
		if !res.OK() {
			return fmt.Errorf("loading lexicons: %s", res.Reason)
		}
	}
	if !repo.Loaded() {
		return fmt.Errorf("no lexicons loaded; pass --lexicons-dir")
	}

	s := solver.New(repo, config.NewStore())
	answers := repo.AnswerWords()

	var report bench.Report
	switch mode := args[0]; mode {
	case "comprehensive":
		report = bench.NewReport(s, answers, 900)
	case "quick":
		report = bench.NewReport(s, answers, 50)
	default:
		n, err := strconv.Atoi(mode)
		if err != nil || n <= 0 {
			return fmt.Errorf("argument must be \"comprehensive\", \"quick\", or a positive integer, got %q", mode)
		}
		report = bench.NewReport(s, answers, n)
	}

	report.WriteTo(os.Stdout)
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
