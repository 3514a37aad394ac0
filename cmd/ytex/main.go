package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func init() {
	// Load .env if present (silently ignore if missing).
	godotenv.Load()
}

var (
	apiKey        string
	clientVersion string
	proxyURL      string
	timeoutSec    int
	rpm           int
	jsonOutput    bool
	verbose       bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "ytex",
		Short: "Extract YouTube video metadata and formats",
		Long: `ytex resolves a YouTube video URL or ID into its metadata and the list
of playable formats, using the platform's internal player API with an
embed-page scraping fallback.`,
	}

	infoCmd := &cobra.Command{
		Use:   "info <url|id>",
		Short: "Print video metadata and formats",
		Args:  cobra.ExactArgs(1),
		RunE:  runInfo,
	}

	formatsCmd := &cobra.Command{
		Use:   "formats <url|id>",
		Short: "Print the format table only",
		Args:  cobra.ExactArgs(1),
		RunE:  runFormats,
	}

	idCmd := &cobra.Command{
		Use:   "id <url>",
		Short: "Extract the video ID from a URL",
		Args:  cobra.ExactArgs(1),
		RunE:  runID,
	}

	rootCmd.PersistentFlags().StringVar(&apiKey, "api-key", envDefault("YTEX_API_KEY", ""), "InnerTube API key override")
	rootCmd.PersistentFlags().StringVar(&clientVersion, "client-version", envDefault("YTEX_CLIENT_VERSION", ""), "InnerTube client version override")
	rootCmd.PersistentFlags().StringVar(&proxyURL, "proxy", envDefault("YTEX_PROXY", ""), "Proxy URL for outbound requests")
	rootCmd.PersistentFlags().IntVar(&timeoutSec, "timeout", 30, "Overall request timeout in seconds")
	rootCmd.PersistentFlags().IntVar(&rpm, "rpm", 0, "Throttle outbound requests (per minute, 0 = off)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Emit JSON instead of a table")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(formatsCmd)
	rootCmd.AddCommand(idCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func envDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
