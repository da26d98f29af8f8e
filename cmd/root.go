package cmd

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/Rorical/RoriFactor/internal/app"
)

var profileFlag string

var rootCmd = &cobra.Command{
	Use:   "rorifactor",
	Short: "Refactor Python code from the terminal",
	Long: `RoriFactor edits Python source in the terminal, sends it to a remote
refactoring endpoint and shows the reformatted code with its functions and scores.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// A missing .env is not an error
		_ = godotenv.Load()
	},
	Run: func(cmd *cobra.Command, args []string) {
		runApp(cmd)
	},
}

// clearOnResetOverride returns the flag value only when it was given, so
// --clear-on-reset=false can switch off a profile that enables clearing.
func clearOnResetOverride(cmd *cobra.Command) *bool {
	if !cmd.Flags().Changed("clear-on-reset") {
		return nil
	}
	value, err := cmd.Flags().GetBool("clear-on-reset")
	if err != nil {
		return nil
	}
	return &value
}

func runApp(cmd *cobra.Command) {
	application, err := app.NewApplication(app.Options{
		Profile:      profileFlag,
		ClearOnReset: clearOnResetOverride(cmd),
	})
	if err != nil {
		log.Fatalf("Failed to create application: %v", err)
	}
	defer application.Stop()

	if err := application.Start(); err != nil {
		log.Fatalf("Application error: %v", err)
	}
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Printf("Command execution error: %v", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&profileFlag, "profile", "p", "", "profile to use for this run (does not change the active profile)")
	rootCmd.PersistentFlags().Bool("clear-on-reset", false, "clear results and scores on reset (overrides the profile either way)")

	// Add subcommands
	rootCmd.AddCommand(profileCmd)
}
