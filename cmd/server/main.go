// Command server boots the HTTP/SSE surface over the solver engine
// (SPEC_FULL.md §4.11), loading lexicons from disk and wiring
// configuration through cobra/viper/godotenv, the layered config
// convention borrowed from the 88lin-divinesense example's
// cmd/divinesense/main.go.
package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/lexigon/wordlesolver/config"
	"github.com/lexigon/wordlesolver/internal/httpapi"
	"github.com/lexigon/wordlesolver/logger"
	"github.com/lexigon/wordlesolver/solver"
	"github.com/lexigon/wordlesolver/words"
)

var rootCmd = &cobra.Command{
	Use:   "server",
	Short: "Serve the Wordle solver engine over HTTP",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		_ = godotenv.Load()
		return nil
	},
	RunE: run,
}

func init() {
	rootCmd.Flags().String("lexicons-dir", "", "directory containing answers.json and guesses.txt")
	rootCmd.Flags().String("addr", ":8080", "address to listen on")

	viper.SetDefault("lexicons-dir", "")
	viper.SetDefault("addr", ":8080")

	if err := viper.BindPFlag("lexicons-dir", rootCmd.Flags().Lookup("lexicons-dir")); err != nil {
		panic(err)
	}
	if err := viper.BindPFlag("addr", rootCmd.Flags().Lookup("addr")); err != nil {
		panic(err)
	}

	viper.SetEnvPrefix("wordlesolver")
	viper.AutomaticEnv()
	viper.SetConfigName("wordlesolver")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	_ = viper.ReadInConfig() // optional; absence is not an error
}

func run(cmd *cobra.Command, args []string) error {
	log := logger.New().WithTag("server")

	repo := words.NewRepository()
	lexiconsDir := viper.GetString("lexicons-dir")
	if lexiconsDir != "" {
		res := repo.LoadFromFiles(lexiconsDir+"/answers.json", lexiconsDir+"/guesses.txt")
		if !res.OK() {
			log.Error("failed to load lexicons", "reason", res.Reason)
			return fmt.Errorf("loading lexicons: %s", res.Reason)
		}
	} else {
		log.Warn("no --lexicons-dir given; server will report no valid guesses until one is configured")
	}

	store := config.NewStore()
	s := solver.New(repo, store)
	server := httpapi.NewServer(s, repo)

	addr := viper.GetString("addr")
	log.Info("starting server", "addr", addr)
	return http.ListenAndServe(addr, server.NewRouter())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
