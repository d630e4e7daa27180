package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/manifoldco/promptui"
)

// RunWizard runs an interactive configuration wizard and returns the
// resulting Config. It also saves the config to path.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to oasexamples! Let's configure your catalog.")
	fmt.Println()

	cfg := DefaultConfig()

	// 1. Examples directory.
	examplesPrompt := promptui.Prompt{
		Label:   "Directory holding <version>/<id>.json and .yaml files",
		Default: cfg.ExamplesDir,
	}
	examplesDir, err := examplesPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("examples dir: %w", err)
	}
	cfg.ExamplesDir = examplesDir

	// 2. Example list: scan once to seed the config, or keep the bundled list.
	if info, statErr := os.Stat(examplesDir); statErr == nil && info.IsDir() {
		sourcePrompt := promptui.Select{
			Label: "Example list",
			Items: []string{
				"scan the directory now and save the result",
				"use the bundled oas-examples list",
			},
		}
		idx, _, err := sourcePrompt.Run()
		if err != nil {
			return nil, fmt.Errorf("example list: %w", err)
		}
		if idx == 0 {
			versions, err := Scaffold(examplesDir)
			if err != nil {
				return nil, err
			}
			cfg.Versions = versions
		}
	}

	// 3. Default version.
	labels := cfg.VersionLabels()
	items := append([]string{"second declared version"}, labels...)
	defaultPrompt := promptui.Select{
		Label: "Version selected on page load",
		Items: items,
	}
	idx, _, err := defaultPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("default version: %w", err)
	}
	if idx > 0 {
		cfg.DefaultVersion = labels[idx-1]
	}

	// 4. Output directory.
	outputPrompt := promptui.Prompt{
		Label:   "Output directory for the generated site",
		Default: cfg.OutputDir,
	}
	outputDir, err := outputPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("output dir: %w", err)
	}
	cfg.OutputDir = outputDir

	// 5. Port for serve.
	portPrompt := promptui.Prompt{
		Label:   "Port for `oasexamples serve`",
		Default: strconv.Itoa(cfg.Port),
		Validate: func(s string) error {
			n, err := strconv.Atoi(s)
			if err != nil || n <= 0 || n > 65535 {
				return fmt.Errorf("enter a port between 1 and 65535")
			}
			return nil
		},
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	cfg.Port, _ = strconv.Atoi(portStr)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}
