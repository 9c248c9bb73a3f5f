package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rishi/placement-autofill/internal/schemas"
)

var validateCmd = &cobra.Command{
	Use:   "validate <profile.json>",
	Short: "Validate a profile file against the answer profile schema",
	Args:  cobra.ExactArgs(1),
	RunE:  runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(_ *cobra.Command, args []string) error {
	err := schemas.ValidateProfileFile(args[0])
	if err == nil {
		fmt.Printf("%s is a valid answer profile\n", args[0])
		return nil
	}

	var validationErr *schemas.ValidationError
	if errors.As(err, &validationErr) {
		for _, fieldErr := range validationErr.Errors {
			fmt.Printf("  %s: %s\n", fieldErr.Field, fieldErr.Message)
		}
		return fmt.Errorf("%s failed validation with %d errors", args[0], len(validationErr.Errors))
	}
	return err
}
