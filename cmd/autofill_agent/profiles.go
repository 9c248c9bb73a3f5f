package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rishi/placement-autofill/internal/profile"
	"github.com/rishi/placement-autofill/internal/schemas"
)

var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "Manage saved answer profiles",
}

var profilesStorePath string

var profilesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved profiles",
	RunE: func(_ *cobra.Command, _ []string) error {
		store, err := profile.NewStore(profilesStorePath)
		if err != nil {
			return err
		}
		names, err := store.List()
		if err != nil {
			return err
		}
		if len(names) == 0 {
			fmt.Println("No profiles saved")
			return nil
		}
		for _, name := range names {
			fmt.Println(name)
		}
		return nil
	},
}

var profilesSaveCmd = &cobra.Command{
	Use:   "save <name> <profile.json>",
	Short: "Save a profile file under a name",
	Args:  cobra.ExactArgs(2),
	RunE: func(_ *cobra.Command, args []string) error {
		name, path := args[0], args[1]

		if err := schemas.ValidateProfileFile(path); err != nil {
			return fmt.Errorf("profile does not validate: %w", err)
		}

		p, err := profile.FromFile(path)
		if err != nil {
			return err
		}

		store, err := profile.NewStore(profilesStorePath)
		if err != nil {
			return err
		}
		if err := store.Save(name, p); err != nil {
			return err
		}
		fmt.Printf("Saved profile %q (%d fields) to %s\n", name, len(p), store.Path())
		return nil
	},
}

var profilesShowCmd = &cobra.Command{
	Use:   "show [name]",
	Short: "Print a saved profile (default: last used)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		store, err := profile.NewStore(profilesStorePath)
		if err != nil {
			return err
		}

		var p map[string]string
		if len(args) == 1 {
			loaded, err := store.Load(args[0])
			if err != nil {
				return err
			}
			p = loaded
		} else {
			name, loaded, err := store.LoadLastUsed()
			if err != nil {
				return err
			}
			fmt.Fprintf(os.Stderr, "Last used profile: %s\n", name)
			p = loaded
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(p)
	},
}

var profilesDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a saved profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		store, err := profile.NewStore(profilesStorePath)
		if err != nil {
			return err
		}
		if err := store.Delete(args[0]); err != nil {
			return err
		}
		fmt.Printf("Deleted profile %q\n", args[0])
		return nil
	},
}

func init() {
	profilesCmd.PersistentFlags().StringVar(&profilesStorePath, "store", "", "Path to the profile store file")
	profilesCmd.AddCommand(profilesListCmd)
	profilesCmd.AddCommand(profilesSaveCmd)
	profilesCmd.AddCommand(profilesShowCmd)
	profilesCmd.AddCommand(profilesDeleteCmd)
	rootCmd.AddCommand(profilesCmd)
}
