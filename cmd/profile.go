package cmd

import (
	"fmt"
	"log"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/Rorical/RoriFactor/internal/config"
	"github.com/Rorical/RoriFactor/internal/models"
)

const serviceDefaultModel = "(service default)"

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage endpoint profiles",
	Long:  `Manage profiles that pick the refactor endpoint, model and reset behavior.`,
}

var listProfilesCmd = &cobra.Command{
	Use:   "list",
	Short: "List all profiles",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig()
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		fmt.Printf("Active Profile: %s\n\n", cfg.ActiveProfile)
		fmt.Println("Available Profiles:")
		for _, name := range cfg.ProfileNames() {
			profile := cfg.Profiles[name]
			marker := ""
			if name == cfg.ActiveProfile {
				marker = " (active)"
			}
			fmt.Printf("  %s%s\n", name, marker)
			printProfile(profile, "    ")
			fmt.Println()
		}
	},
}

var showProfileCmd = &cobra.Command{
	Use:   "show [profile-name]",
	Short: "Show profile details",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig()
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		profileName := args[0]
		profile, exists := cfg.Profiles[profileName]
		if !exists {
			log.Fatalf("Profile '%s' does not exist", profileName)
		}

		fmt.Printf("Profile: %s\n", profileName)
		printProfile(profile, "")
		if err := profile.Validate(); err != nil {
			fmt.Printf("Problem: %v\n", err)
		}
	},
}

func printProfile(profile config.Profile, indent string) {
	fmt.Printf("%sEndpoint: %s\n", indent, profile.Endpoint)
	if url, ok := config.BuiltinEndpointURL(profile.Endpoint); ok {
		fmt.Printf("%sURL: %s\n", indent, url)
	}
	model := profile.Model
	if model == "" {
		model = serviceDefaultModel
	}
	fmt.Printf("%sModel: %s\n", indent, model)
	fmt.Printf("%sClear results on reset: %t\n", indent, profile.ClearResultsOnReset)
}

var addProfileCmd = &cobra.Command{
	Use:   "add [profile-name]",
	Short: "Add a new profile",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig()
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		var profileName string
		if len(args) > 0 {
			profileName = args[0]
		} else {
			prompt := promptui.Prompt{
				Label: "Profile name",
			}
			profileName, err = prompt.Run()
			if err != nil {
				log.Fatalf("Prompt failed: %v", err)
			}
		}

		if _, exists := cfg.Profiles[profileName]; exists {
			log.Fatalf("Profile '%s' already exists", profileName)
		}

		profile, err := promptProfile(config.DefaultProfile())
		if err != nil {
			log.Fatalf("Prompt failed: %v", err)
		}

		cfg.Profiles[profileName] = profile
		if err := cfg.Save(); err != nil {
			log.Fatalf("Failed to save config: %v", err)
		}

		fmt.Printf("Profile '%s' added successfully!\n", profileName)
	},
}

var editProfileCmd = &cobra.Command{
	Use:   "edit [profile-name]",
	Short: "Edit an existing profile",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig()
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		var profileName string
		if len(args) > 0 {
			profileName = args[0]
		} else {
			profileName, err = selectProfile("Select profile to edit", cfg.ProfileNames())
			if err != nil {
				log.Fatalf("Selection failed: %v", err)
			}
		}

		profile, exists := cfg.Profiles[profileName]
		if !exists {
			log.Fatalf("Profile '%s' does not exist", profileName)
		}

		profile, err = promptProfile(profile)
		if err != nil {
			log.Fatalf("Prompt failed: %v", err)
		}

		cfg.Profiles[profileName] = profile
		if err := cfg.Save(); err != nil {
			log.Fatalf("Failed to save config: %v", err)
		}

		fmt.Printf("Profile '%s' updated successfully!\n", profileName)
	},
}

var deleteProfileCmd = &cobra.Command{
	Use:   "delete [profile-name]",
	Short: "Delete a profile",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig()
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		var profileName string
		if len(args) > 0 {
			profileName = args[0]
		} else {
			profileName, err = selectProfile("Select profile to delete", cfg.ProfileNames())
			if err != nil {
				log.Fatalf("Selection failed: %v", err)
			}
		}

		if _, exists := cfg.Profiles[profileName]; !exists {
			log.Fatalf("Profile '%s' does not exist", profileName)
		}

		confirmPrompt := promptui.Prompt{
			Label:     fmt.Sprintf("Delete profile '%s'? (y/N)", profileName),
			IsConfirm: true,
		}
		if _, err := confirmPrompt.Run(); err != nil {
			fmt.Println("Deletion cancelled")
			return
		}

		delete(cfg.Profiles, profileName)

		if cfg.ActiveProfile == profileName {
			// Keep at least one profile so the editor can always start
			if len(cfg.Profiles) == 0 {
				cfg.Profiles["default"] = config.DefaultProfile()
			}
			cfg.ActiveProfile = cfg.ProfileNames()[0]
		}

		if err := cfg.Save(); err != nil {
			log.Fatalf("Failed to save config: %v", err)
		}

		fmt.Printf("Profile '%s' deleted successfully!\n", profileName)
	},
}

var switchProfileCmd = &cobra.Command{
	Use:   "switch [profile-name]",
	Short: "Switch to a different profile",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig()
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		var profileName string
		if len(args) > 0 {
			profileName = args[0]
		} else {
			others := make([]string, 0, len(cfg.Profiles))
			for _, name := range cfg.ProfileNames() {
				if name != cfg.ActiveProfile {
					others = append(others, name)
				}
			}

			if len(others) == 0 {
				fmt.Println("No other profiles available to switch to")
				return
			}

			profileName, err = selectProfile("Select profile to switch to", others)
			if err != nil {
				log.Fatalf("Selection failed: %v", err)
			}
		}

		if err := cfg.UseProfile(profileName); err != nil {
			log.Fatalf("%v", err)
		}
		if err := cfg.Save(); err != nil {
			log.Fatalf("Failed to save config: %v", err)
		}

		fmt.Printf("Switched to profile '%s'\n", profileName)
	},
}

func selectProfile(label string, names []string) (string, error) {
	if len(names) == 0 {
		return "", fmt.Errorf("no profiles available")
	}
	prompt := promptui.Select{
		Label: label,
		Items: names,
	}
	_, name, err := prompt.Run()
	return name, err
}

// promptProfile asks for every profile field, defaulting to current
func promptProfile(current config.Profile) (config.Profile, error) {
	profile := current

	endpointPrompt := promptui.Prompt{
		Label:   fmt.Sprintf("Endpoint (%v or an http(s) URL)", config.BuiltinEndpoints()),
		Default: current.Endpoint,
		Validate: func(input string) error {
			_, err := config.ResolveEndpoint(input)
			return err
		},
	}
	endpoint, err := endpointPrompt.Run()
	if err != nil {
		return current, err
	}
	profile.Endpoint = endpoint

	items := append([]string{serviceDefaultModel}, models.KnownModels...)
	cursor := 0
	for i, item := range items {
		if item == current.Model {
			cursor = i
		}
	}
	modelSelect := promptui.Select{
		Label:     "Model",
		Items:     items,
		CursorPos: cursor,
	}
	_, model, err := modelSelect.Run()
	if err != nil {
		return current, err
	}
	if model == serviceDefaultModel {
		model = ""
	}
	profile.Model = model

	resetSelect := promptui.Select{
		Label: "Clear results on reset",
		Items: []string{"No", "Yes"},
	}
	if current.ClearResultsOnReset {
		resetSelect.CursorPos = 1
	}
	choice, _, err := resetSelect.Run()
	if err != nil {
		return current, err
	}
	profile.ClearResultsOnReset = choice == 1

	return profile, nil
}

func init() {
	// Add subcommands to profile
	profileCmd.AddCommand(listProfilesCmd)
	profileCmd.AddCommand(showProfileCmd)
	profileCmd.AddCommand(addProfileCmd)
	profileCmd.AddCommand(editProfileCmd)
	profileCmd.AddCommand(deleteProfileCmd)
	profileCmd.AddCommand(switchProfileCmd)
}
