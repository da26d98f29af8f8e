package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/Rorical/RoriFactor/internal/config"
	"github.com/Rorical/RoriFactor/internal/core"
	"github.com/Rorical/RoriFactor/internal/models"
	"github.com/Rorical/RoriFactor/internal/refactor"
	"github.com/Rorical/RoriFactor/ui/components"
)

var (
	jsonOutput bool
	modelFlag  string
)

var refactorCmd = &cobra.Command{
	Use:   "refactor [file]",
	Short: "Refactor a Python file once and print the result",
	Long: `Send a Python file (or stdin when no file is given) to the refactor
endpoint of the active profile and print the reformatted code, its functions
and scores.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		source, err := readSource(cmd.InOrStdin(), args)
		if err != nil {
			log.Fatalf("Failed to read source: %v", err)
		}

		cfg, err := config.LoadConfig()
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		if profileFlag != "" {
			if err := cfg.UseProfile(profileFlag); err != nil {
				log.Fatalf("%v", err)
			}
		}
		endpoint, err := cfg.GetEndpoint()
		if err != nil {
			log.Fatalf("Profile '%s' has no usable endpoint: %v", cfg.ActiveProfile, err)
		}

		model := cfg.GetModel()
		if modelFlag != "" {
			model = modelFlag
		}
		if !models.IsKnownModel(model) {
			log.Fatalf("Unknown model %q (known: %v)", model, models.KnownModels)
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		state := core.NewRefactorState(source)
		refactorErr := core.RefactorOnce(ctx, refactor.NewClient(endpoint), state, model)
		if refactorErr != nil {
			log.Printf("Refactor failed: %v", refactorErr)
		}

		snap := state.Snapshot()
		out := cmd.OutOrStdout()
		if jsonOutput {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			if err := enc.Encode(snap); err != nil {
				log.Fatalf("Failed to encode result: %v", err)
			}
		} else if refactorErr == nil {
			printResult(out, snap, isatty.IsTerminal(os.Stdout.Fd()))
		}

		if refactorErr != nil {
			os.Exit(1)
		}
	},
}

func readSource(stdin io.Reader, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(stdin)
		return string(data), err
	}
	data, err := os.ReadFile(args[0])
	return string(data), err
}

func printResult(w io.Writer, snap models.Snapshot, color bool) {
	code := snap.Text
	if color {
		code = components.HighlightPython(code)
	}
	fmt.Fprintln(w, code)

	for _, section := range []string{
		components.RenderElapsed(snap),
		components.RenderFunctions(snap.Result.FunctionList()),
		components.RenderScores(snap.Result.Scores()),
	} {
		if section != "" {
			fmt.Fprintln(w, section)
		}
	}
}

func init() {
	refactorCmd.Flags().BoolVar(&jsonOutput, "json", false, "print the full result snapshot as JSON")
	refactorCmd.Flags().StringVarP(&modelFlag, "model", "m", "", "model_name to send instead of the profile's")
	rootCmd.AddCommand(refactorCmd)
}
