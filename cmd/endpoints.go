package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Rorical/RoriFactor/internal/config"
	"github.com/Rorical/RoriFactor/internal/models"
)

var endpointsCmd = &cobra.Command{
	Use:   "endpoints",
	Short: "List built-in endpoints and known models",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("Built-in Endpoints:")
		for _, name := range config.BuiltinEndpoints() {
			url, _ := config.BuiltinEndpointURL(name)
			marker := ""
			if name == config.DefaultEndpointName {
				marker = " (default)"
			}
			fmt.Printf("  %s%s\n    %s\n", name, marker, url)
		}

		fmt.Println("\nModels:")
		for _, m := range models.KnownModels {
			fmt.Printf("  %s\n", m)
		}
		fmt.Println("\nA profile may also name any http(s) URL as its endpoint.")
	},
}

func init() {
	rootCmd.AddCommand(endpointsCmd)
}
