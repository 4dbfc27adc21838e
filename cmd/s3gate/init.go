package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a config file interactively",
	Long: `Generate an s3gate config file by answering a few prompts.

You will be prompted for:
  - Object store endpoint and region
  - Default bucket (optional)
  - Access and secret keys (optional, empty means anonymous access)
  - Bind host and port

The result is written as YAML; pass it to the server with --config.`,
	RunE: runInit,
}

var initOutput string

func init() {
	initCmd.Flags().StringVar(&initOutput, "output", "s3gate.yaml", "where to write the config file")
	rootCmd.AddCommand(initCmd)
}

// configFile mirrors the config package's structure for the generated
// YAML; only the commonly tuned keys show up in the output.
type configFile struct {
	Server struct {
		Host      string `yaml:"host"`
		Port      int    `yaml:"port"`
		URLPrefix string `yaml:"url_prefix,omitempty"`
	} `yaml:"server"`
	Store struct {
		Endpoint  string `yaml:"endpoint"`
		Region    string `yaml:"region"`
		Bucket    string `yaml:"bucket,omitempty"`
		AccessKey string `yaml:"access_key,omitempty"`
		SecretKey string `yaml:"secret_key,omitempty"`
		UseSSL    bool   `yaml:"use_ssl"`
	} `yaml:"store"`
	Log struct {
		Level string `yaml:"level"`
	} `yaml:"log"`
}

func runInit(_ *cobra.Command, _ []string) error {
	if _, err := os.Stat(initOutput); err == nil {
		prompt := promptui.Prompt{
			Label:     fmt.Sprintf("%s already exists. Overwrite it", initOutput),
			IsConfirm: true,
		}
		if _, promptErr := prompt.Run(); promptErr != nil {
			fmt.Println("Cancelled.")
			return nil //nolint:nilerr // User cancelled, not an error
		}
	}

	var cfg configFile

	endpointPrompt := promptui.Prompt{
		Label:   "Object store endpoint",
		Default: "s3.amazonaws.com",
		Validate: func(input string) error {
			if strings.TrimSpace(input) == "" {
				return errors.New("endpoint is required")
			}
			return nil
		},
	}
	endpoint, err := endpointPrompt.Run()
	if err != nil {
		return handlePromptError(err)
	}
	cfg.Store.Endpoint = strings.TrimSpace(endpoint)
	cfg.Store.UseSSL = !strings.HasPrefix(cfg.Store.Endpoint, "http://")

	regionPrompt := promptui.Prompt{
		Label:   "Region",
		Default: "us-east-1",
	}
	if cfg.Store.Region, err = regionPrompt.Run(); err != nil {
		return handlePromptError(err)
	}

	bucketPrompt := promptui.Prompt{
		Label: "Default bucket (empty: bucket comes from the URL)",
	}
	if cfg.Store.Bucket, err = bucketPrompt.Run(); err != nil {
		return handlePromptError(err)
	}

	accessKeyPrompt := promptui.Prompt{
		Label: "Access Key (empty: anonymous)",
	}
	if cfg.Store.AccessKey, err = accessKeyPrompt.Run(); err != nil {
		return handlePromptError(err)
	}

	if cfg.Store.AccessKey != "" {
		secretKeyPrompt := promptui.Prompt{
			Label: "Secret Key",
			Mask:  '*',
		}
		if cfg.Store.SecretKey, err = secretKeyPrompt.Run(); err != nil {
			return handlePromptError(err)
		}
	}

	hostPrompt := promptui.Prompt{
		Label:   "Bind host",
		Default: "0.0.0.0",
	}
	if cfg.Server.Host, err = hostPrompt.Run(); err != nil {
		return handlePromptError(err)
	}

	portPrompt := promptui.Prompt{
		Label:   "Bind port",
		Default: "8080",
		Validate: func(input string) error {
			var port int
			if _, scanErr := fmt.Sscanf(input, "%d", &port); scanErr != nil || port < 1 || port > 65535 {
				return errors.New("port must be 1-65535")
			}
			return nil
		},
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return handlePromptError(err)
	}
	_, _ = fmt.Sscanf(portStr, "%d", &cfg.Server.Port)

	cfg.Log.Level = "info"

	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	// Secret keys may end up in here; keep it owner-only.
	if err := os.WriteFile(initOutput, data, 0o600); err != nil {
		return fmt.Errorf("write config: %w", err)
	}

	fmt.Printf("Wrote %s\n", initOutput)
	return nil
}

// handlePromptError handles promptui errors.
func handlePromptError(err error) error {
	if errors.Is(err, promptui.ErrInterrupt) {
		fmt.Println("\nCancelled.")
		os.Exit(0)
	}
	if errors.Is(err, promptui.ErrAbort) {
		fmt.Println("Cancelled.")
		return nil
	}
	return err
}
