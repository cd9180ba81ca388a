package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"
)

// RunWizard runs an interactive configuration wizard and returns the
// resulting Config. It also saves the config to .campusbot.yml.
func RunWizard() (*Config, error) {
	fmt.Println("Welcome to campusbot! Let's configure your assistant.")
	fmt.Println()

	// 1. Provider selection.
	providerPrompt := promptui.Select{
		Label: "Select LLM provider for escalated questions",
		Items: []string{"openai", "openrouter", "ollama"},
	}
	_, providerStr, err := providerPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("provider selection: %w", err)
	}
	provider := ProviderType(providerStr)
	preset := GetPreset(provider)

	// 2. Model.
	modelPrompt := promptui.Prompt{
		Label:   "Model for escalated questions",
		Default: preset.Model,
	}
	model, err := modelPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("model: %w", err)
	}

	// 3. Generated images. Only the OpenAI preset ships an image model.
	images := false
	imageModel := ""
	if preset.ImageModel != "" {
		imagesPrompt := promptui.Select{
			Label: "Generate illustrative images for escalated answers",
			Items: []string{"yes", "no"},
		}
		idx, _, err := imagesPrompt.Run()
		if err != nil {
			return nil, fmt.Errorf("images: %w", err)
		}
		images = idx == 0
		imageModel = preset.ImageModel
	}

	// 4. Answer language.
	langPrompt := promptui.Prompt{
		Label:   "Answer language (ISO code)",
		Default: "en",
	}
	language, err := langPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("language: %w", err)
	}

	// 5. Data directory.
	dataPrompt := promptui.Prompt{
		Label:   "Data directory for the knowledge base",
		Default: ".campusbot",
	}
	dataDir, err := dataPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("data dir: %w", err)
	}

	// 6. Server port.
	portPrompt := promptui.Prompt{
		Label:   "HTTP server port",
		Default: "8950",
		Validate: func(s string) error {
			n, err := strconv.Atoi(strings.TrimSpace(s))
			if err != nil || n < 1 || n > 65535 {
				return fmt.Errorf("enter a port between 1 and 65535")
			}
			return nil
		},
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	port, _ := strconv.Atoi(strings.TrimSpace(portStr))

	cfg := DefaultConfig()
	cfg.Provider = provider
	cfg.Model = model
	cfg.ImageModel = imageModel
	cfg.Images = images
	cfg.Language = language
	cfg.DataDir = dataDir
	cfg.Server.Port = port

	// Check for API key.
	if envVar := APIKeyEnvVar(provider); envVar != "" {
		if os.Getenv(envVar) == "" {
			fmt.Printf("\nNote: Set %s in your environment before running campusbot serve.\n", envVar)
		}
	}

	if err := cfg.Save(".campusbot.yml"); err != nil {
		return nil, err
	}
	fmt.Println("\nConfiguration saved to .campusbot.yml")
	return cfg, nil
}
