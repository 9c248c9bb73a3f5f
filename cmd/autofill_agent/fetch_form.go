package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/rishi/placement-autofill/internal/fetch"
)

var fetchFormCmd = &cobra.Command{
	Use:   "fetch-form <url>",
	Short: "Fetch a form page and save its HTML",
	Long: `Fetch a form page over HTTP, falling back to a headless browser when the
form is rendered by JavaScript, and write the HTML to a file for offline
matching.`,
	Args: cobra.ExactArgs(1),
	RunE: runFetchForm,
}

var (
	fetchOutputFile string
	fetchTimeout    time.Duration
	fetchBrowser    bool
	fetchVerbose    bool
)

func init() {
	fetchFormCmd.Flags().StringVarP(&fetchOutputFile, "out", "o", "form.html", "Path to output HTML file")
	fetchFormCmd.Flags().DurationVar(&fetchTimeout, "timeout", 90*time.Second, "Fetch timeout")
	fetchFormCmd.Flags().BoolVar(&fetchBrowser, "browser", false, "Always render in the headless browser")
	fetchFormCmd.Flags().BoolVarP(&fetchVerbose, "verbose", "v", false, "Print fetch details")

	rootCmd.AddCommand(fetchFormCmd)
}

func runFetchForm(_ *cobra.Command, args []string) error {
	url := args[0]
	ctx := context.Background()

	opts := fetch.DefaultOptions()
	opts.Timeout = fetchTimeout

	var html string
	if fetchBrowser {
		rendered, err := fetch.WithBrowser(ctx, url, fetchTimeout, fetchVerbose)
		if err != nil {
			return err
		}
		html = rendered
	} else {
		result, err := fetch.FormPage(ctx, url, opts, fetchVerbose)
		if err != nil {
			return err
		}
		html = result.HTML
		if fetchVerbose && result.Rendered {
			fmt.Fprintln(os.Stderr, "Static HTML had no controls; used browser rendering")
		}
	}

	if err := os.WriteFile(fetchOutputFile, []byte(html), 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	fmt.Printf("Saved %d bytes to %s (%d controls)\n", len(html), fetchOutputFile, fetch.CountFormControls(html))
	return nil
}
