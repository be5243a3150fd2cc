package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"syscall"

	"github.com/fivetwenty-io/paymill-go/internal/constants"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

// Config represents the CLI configuration.
type Config struct {
	APIKey    string `json:"api_key,omitempty"    yaml:"api_key,omitempty"`
	BaseURL   string `json:"base_url,omitempty"   yaml:"base_url,omitempty"`
	Output    string `json:"output,omitempty"     yaml:"output,omitempty"`
	RetryMax  int    `json:"retry_max,omitempty"  yaml:"retry_max,omitempty"`
	LogLevel  string `json:"log_level,omitempty"  yaml:"log_level,omitempty"`
	LogFormat string `json:"log_format,omitempty" yaml:"log_format,omitempty"`
}

// configKeys are the keys accepted by "config set" and "config unset".
var configKeys = []string{"api_key", "base_url", "output", "retry_max", "log_level", "log_format"}

// NewConfigCommand creates the config command group.
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long:  "Manage PAYMILL CLI configuration including the API key and output settings",
	}

	cmd.AddCommand(newConfigShowCommand())
	cmd.AddCommand(newConfigSetCommand())
	cmd.AddCommand(newConfigSetKeyCommand())
	cmd.AddCommand(newConfigUnsetCommand())
	cmd.AddCommand(newConfigClearCommand())

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Long:  "Display the current CLI configuration. The API key is masked.",
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()
			config.APIKey = maskKey(config.APIKey)

			w := cmd.OutOrStdout()

			switch viper.GetString("output") {
			case constants.FormatJSON:
				encoder := json.NewEncoder(w)
				encoder.SetIndent("", strings.Repeat(" ", constants.JSONIndentSize))

				return encoder.Encode(config)
			case constants.FormatYAML:
				encoder := yaml.NewEncoder(w)

				return encoder.Encode(config)
			default:
				return displayConfigTable(w, config)
			}
		},
	}
}

func newConfigSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Set a configuration value",
		Long:  "Set a configuration value. Keys: " + strings.Join(configKeys, ", "),
		Args:  cobra.ExactArgs(2), //nolint:mnd // key and value
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()

			err := setConfigValue(config, args[0], args[1])
			if err != nil {
				return err
			}

			err = saveConfigStruct(config)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Set %s\n", args[0])

			return nil
		},
	}
}

func newConfigSetKeyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set-key [KEY]",
		Short: "Store the private API key",
		Long:  "Store the private API key. Without an argument the key is read from the terminal without echo.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := ""
			if len(args) == 1 {
				key = args[0]
			} else {
				_, _ = fmt.Fprint(cmd.OutOrStdout(), "API key: ")

				keyBytes, err := term.ReadPassword(int(syscall.Stdin))
				if err != nil {
					return fmt.Errorf("failed to read API key: %w", err)
				}

				_, _ = fmt.Fprintln(cmd.OutOrStdout())
				key = string(keyBytes)
			}

			key = strings.TrimSpace(key)
			if key == "" {
				return constants.ErrEmptyAPIKey
			}

			err := NewConfigPersister().UpdateAPIKey(key)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Stored API key %s\n", maskKey(key))

			return nil
		},
	}
}

func newConfigUnsetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "unset KEY",
		Short: "Unset a configuration value",
		Long:  "Remove a configuration value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()

			err := unsetConfigValue(config, args[0])
			if err != nil {
				return err
			}

			err = saveConfigStruct(config)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Unset %s\n", args[0])

			return nil
		},
	}
}

func newConfigClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Clear configuration",
		Long:  "Remove the configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			configFile, err := configFilePath()
			if err != nil {
				return err
			}

			err = os.Remove(configFile)
			if err != nil && !os.IsNotExist(err) {
				return fmt.Errorf("failed to remove config file: %w", err)
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Cleared configuration")

			return nil
		},
	}
}

func loadConfig() *Config {
	return &Config{
		APIKey:    viper.GetString("api_key"),
		BaseURL:   viper.GetString("base_url"),
		Output:    viper.GetString("output"),
		RetryMax:  viper.GetInt("retry_max"),
		LogLevel:  viper.GetString("log_level"),
		LogFormat: viper.GetString("log_format"),
	}
}

func setConfigValue(config *Config, key, value string) error {
	switch key {
	case "api_key":
		if strings.TrimSpace(value) == "" {
			return constants.ErrEmptyAPIKey
		}

		config.APIKey = value
	case "base_url":
		config.BaseURL = value
	case "output":
		if !slices.Contains([]string{constants.FormatTable, constants.FormatJSON, constants.FormatYAML}, value) {
			return constants.ErrInvalidOutputFormat
		}

		config.Output = value
	case "retry_max":
		retries, err := strconv.Atoi(value)
		if err != nil || retries < 0 {
			return fmt.Errorf("%w: %q", constants.ErrInvalidRetryMax, value)
		}

		config.RetryMax = retries
	case "log_level":
		config.LogLevel = value
	case "log_format":
		config.LogFormat = value
	default:
		return fmt.Errorf("%w '%s', use one of %s", constants.ErrUnknownConfigKey, key, strings.Join(configKeys, ", "))
	}

	return nil
}

func unsetConfigValue(config *Config, key string) error {
	switch key {
	case "api_key":
		config.APIKey = ""
	case "base_url":
		config.BaseURL = ""
	case "output":
		config.Output = ""
	case "retry_max":
		config.RetryMax = 0
	case "log_level":
		config.LogLevel = ""
	case "log_format":
		config.LogFormat = ""
	default:
		return fmt.Errorf("%w '%s', use one of %s", constants.ErrUnknownConfigKey, key, strings.Join(configKeys, ", "))
	}

	return nil
}

func configFilePath() (string, error) {
	configFile := viper.ConfigFileUsed()
	if configFile != "" {
		return configFile, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	return filepath.Join(home, ".paymill", "config.yml"), nil
}

func saveConfigStruct(config *Config) error {
	configFile, err := configFilePath()
	if err != nil {
		return err
	}

	err = os.MkdirAll(filepath.Dir(configFile), constants.ConfigDirPerm)
	if err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config to YAML: %w", err)
	}

	err = os.WriteFile(configFile, data, constants.ConfigFilePerm)
	if err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// maskKey hides all but the last few characters of an API key.
func maskKey(key string) string {
	if key == "" {
		return ""
	}

	if len(key) <= constants.MaskedKeyVisibleChars {
		return constants.MaskedSecret
	}

	return constants.MaskedSecret + key[len(key)-constants.MaskedKeyVisibleChars:]
}

func displayConfigTable(w io.Writer, config *Config) error {
	table := tablewriter.NewWriter(w)
	table.Header("Property", "Value")

	_ = table.Append("API Key", orNA(config.APIKey))
	_ = table.Append("Base URL", orDefault(config.BaseURL, constants.DefaultBaseURL))
	_ = table.Append("Output", orDefault(config.Output, constants.FormatTable))
	_ = table.Append("Retry Max", strconv.Itoa(config.RetryMax))
	_ = table.Append("Log Level", orDefault(config.LogLevel, "info"))
	_ = table.Append("Log Format", orDefault(config.LogFormat, "json"))

	err := table.Render()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}
