package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/fkoehler/znuny-ticket-cli/internal/znuny"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	configFileSubPath = "/ticket_cli_config.json"
)

var (
	cfgFile  string
	conf     cfg
	testConn = "Y"
)

type cfg struct {
	Znuny znunyCfg `mapstructure:"znuny" json:"znuny"`
}

type znunyCfg struct {
	Creds znuny.Creds `mapstructure:"api_creds" json:"api_creds"`
}

var configCmd = &cobra.Command{
	Use:     "config",
	Aliases: []string{"cfg"},
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := conf.credsForm().Run(); err != nil {
			return err
		}

		viper.Set("znuny", conf.Znuny)

		if err := viper.WriteConfig(); err != nil {
			return err
		}

		client = znuny.NewClient(conf.Znuny.Creds, http.DefaultClient)
		if strings.ToLower(testConn) == "y" {
			return client.ConnectionTest(ctx)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	// Find home directory.
	home, err := os.UserHomeDir()
	cobra.CheckErr(err)

	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Search config in home directory with name "ticket_cli_config" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigType("json")
		viper.SetConfigName("ticket_cli_config")
	}

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if errors.As(err, &configFileNotFoundError) {
			setCfgDefaults()
			path := home + configFileSubPath
			fmt.Println("Creating default config file")
			if err := viper.WriteConfigAs(path); err != nil {
				fmt.Println("Error creating default config file:", err)
				os.Exit(1)
			}
		} else {
			fmt.Println("Error reading config file:", err)
			os.Exit(1)
		}
	}
}

func setCfgDefaults() {
	slog.Debug("setting config defaults")
	viper.SetDefault("znuny", znunyCfg{})
}

func (cfg *cfg) validateRequiredValues() error {
	slog.Debug("validating required fields")
	var missing []string

	required := map[string]string{
		"base_url": cfg.Znuny.Creds.BaseUrl,
		"username": cfg.Znuny.Creds.Username,
		"password": cfg.Znuny.Creds.Password,
	}

	for key, value := range required {
		if value == "" {
			slog.Warn("missing required config value", "key", key)
			missing = append(missing, key)
		}
	}

	if len(missing) > 0 {
		slog.Error("missing required config values", "missing", missing)
		return fmt.Errorf("missing required config values: %s - run the config command to set them", strings.Join(missing, ", "))
	}

	return nil
}

func (cfg *cfg) credsForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Base URL").
				Placeholder(cfg.Znuny.Creds.BaseUrl).
				Validate(requiredInput).
				Inline(true).
				Value(&cfg.Znuny.Creds.BaseUrl),
			huh.NewInput().
				Title("Username").
				Placeholder(cfg.Znuny.Creds.Username).
				Validate(requiredInput).
				Inline(true).
				Value(&cfg.Znuny.Creds.Username),
			huh.NewInput().
				Title("Password").
				Placeholder(cfg.Znuny.Creds.Password).
				Validate(requiredInput).
				EchoMode(huh.EchoModePassword).
				Inline(true).
				Value(&cfg.Znuny.Creds.Password),
			huh.NewInput().
				Title("Test connection after saving? (Y/n)").
				Inline(true).
				Value(&testConn),
		),
	)
}

func requiredInput(s string) error {
	if s == "" {
		return errors.New("field is required")
	}
	return nil
}
