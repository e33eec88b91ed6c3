package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCommand builds the workdays command tree.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "workdays",
		Short: "Working-time arithmetic on the Bogota business calendar",
		Long: `workdays adds working days and working hours to an instant.

Working time is Monday to Friday, 08:00-12:00 and 13:00-17:00 in
America/Bogota. Holidays come from the public holiday feed unless
--offline is given.`,
		SilenceUsage: true,
	}
	root.PersistentFlags().String("log-level", "warn", "log level (debug, info, warn, error)")
	root.AddCommand(newCalcCommand())
	return root
}

// Execute runs the root command.
func Execute() error {
	root := NewRootCommand()
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return err
	}
	return nil
}
