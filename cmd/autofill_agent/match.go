package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/rishi/placement-autofill/internal/assembler"
	"github.com/rishi/placement-autofill/internal/fetch"
	"github.com/rishi/placement-autofill/internal/formdom"
	"github.com/rishi/placement-autofill/internal/observability"
	"github.com/rishi/placement-autofill/internal/profile"
	"github.com/rishi/placement-autofill/internal/types"
)

var matchCmd = &cobra.Command{
	Use:   "match [form.html ...]",
	Short: "Match form questions against an answer profile",
	Long: `Match parses one or more saved form HTML files (or a live URL) and proposes
a fill value for every question it can match against the profile. Candidates
below the confidence threshold are flagged for review.`,
	RunE: runMatch,
}

var (
	matchURL         string
	matchProfileFile string
	matchProfileName string
	matchStorePath   string
	matchJSON        bool
	matchPlan        bool
	matchDump        bool
	matchVerbose     bool
)

func init() {
	matchCmd.Flags().StringVar(&matchURL, "url", "", "Form URL to fetch and match")
	matchCmd.Flags().StringVarP(&matchProfileFile, "profile", "p", "", "Path to a profile JSON file")
	matchCmd.Flags().StringVar(&matchProfileName, "profile-name", "", "Named profile from the local store (default: last used)")
	matchCmd.Flags().StringVar(&matchStorePath, "store", "", "Path to the profile store file")
	matchCmd.Flags().BoolVar(&matchJSON, "json", false, "Emit candidates as JSON")
	matchCmd.Flags().BoolVar(&matchPlan, "plan", false, "Emit an apply plan instead of candidates (implies --json)")
	matchCmd.Flags().BoolVar(&matchDump, "dump", false, "Dump the parsed form snapshot as JSON and skip matching")
	matchCmd.Flags().BoolVarP(&matchVerbose, "verbose", "v", false, "Print detailed match information")

	rootCmd.AddCommand(matchCmd)
}

func runMatch(_ *cobra.Command, args []string) error {
	if matchURL == "" && len(args) == 0 {
		return fmt.Errorf("provide form HTML files or --url")
	}
	if matchURL != "" && len(args) > 0 {
		return fmt.Errorf("cannot combine --url with form files")
	}

	var prof types.Profile
	if !matchDump {
		var err error
		prof, err = resolveProfile()
		if err != nil {
			return err
		}
	}

	ctx := context.Background()

	if matchURL != "" {
		opts := fetch.DefaultOptions()
		opts.Timeout = 90 * time.Second
		result, err := fetch.FormPage(ctx, matchURL, opts, matchVerbose)
		if err != nil {
			return err
		}
		snapshot, err := formdom.Parse(result.HTML)
		if err != nil {
			return fmt.Errorf("failed to parse form: %w", err)
		}
		snapshot.URL = matchURL
		if snapshot.Title == "" {
			snapshot.Title = result.Title
		}
		return reportMatch(snapshot, prof)
	}

	// Parse files concurrently, report in input order.
	snapshots := make([]*types.FormSnapshot, len(args))
	g, _ := errgroup.WithContext(ctx)
	for i, path := range args {
		g.Go(func() error {
			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("failed to read form file %s: %w", path, err)
			}
			snapshot, err := formdom.Parse(string(data))
			if err != nil {
				return fmt.Errorf("failed to parse form %s: %w", path, err)
			}
			snapshot.Title = path
			snapshots[i] = snapshot
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for i, snapshot := range snapshots {
		if len(args) > 1 && !matchJSON && !matchPlan && !matchDump {
			fmt.Printf("=== %s ===\n", args[i])
		}
		if err := reportMatch(snapshot, prof); err != nil {
			return err
		}
	}
	return nil
}

var storeOnce sync.Once
var storeErr error
var sharedStore *profile.Store

func openStore() (*profile.Store, error) {
	storeOnce.Do(func() {
		sharedStore, storeErr = profile.NewStore(matchStorePath)
	})
	return sharedStore, storeErr
}

// resolveProfile loads the profile from --profile, the named store entry, or
// the last used store entry, in that order.
func resolveProfile() (types.Profile, error) {
	if matchProfileFile != "" {
		return profile.FromFile(matchProfileFile)
	}

	store, err := openStore()
	if err != nil {
		return nil, err
	}
	if matchProfileName != "" {
		p, err := store.Load(matchProfileName)
		if err != nil {
			return nil, err
		}
		if err := store.MarkUsed(matchProfileName); err != nil {
			return nil, err
		}
		return p, nil
	}

	name, p, err := store.LoadLastUsed()
	if err != nil {
		return nil, fmt.Errorf("no profile given and %w", err)
	}
	if matchVerbose {
		fmt.Fprintf(os.Stderr, "Using last used profile: %s\n", name)
	}
	return p, nil
}

func reportMatch(snapshot *types.FormSnapshot, prof types.Profile) error {
	if matchDump {
		return emitJSON(snapshot)
	}

	candidates := assembler.Assemble(snapshot, prof)
	relaxed := false
	if len(candidates) == 0 {
		candidates = assembler.AssembleRelaxed(snapshot, prof)
		relaxed = len(candidates) > 0
	}

	printer := observability.NewPrinter(os.Stdout)
	if matchVerbose {
		printer.PrintSnapshot(snapshot)
	}

	switch {
	case matchPlan:
		return emitJSON(formdom.BuildApplyPlan(candidates))
	case matchJSON:
		return emitJSON(types.MatchResponse{Candidates: candidates, Relaxed: relaxed})
	default:
		printer.PrintCandidates(candidates, relaxed)
		if matchVerbose {
			printer.PrintUnmatched(snapshot, candidates)
		}
	}
	return nil
}

func emitJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}
