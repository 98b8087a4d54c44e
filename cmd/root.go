package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/fkoehler/znuny-ticket-cli/internal/znuny"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	ctx    context.Context
	client *znuny.Client
	debug  bool
)

var rootCmd = &cobra.Command{
	Use:               "znuny-ticket-cli",
	Short:             "Create and update tickets on a Znuny/OTRS helpdesk",
	SilenceUsage:      true,
	PersistentPreRunE: preRun,
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/ticket_cli_config.json)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	cobra.OnInitialize(initConfig)
}

func preRun(cmd *cobra.Command, args []string) error {
	ctx = context.Background()
	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("getting home directory: %w", err)
	}

	file, err := openLogFile(filepath.Join(home, "znuny-ticket-cli.log"))
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}

	if err := setLogger(file); err != nil {
		return fmt.Errorf("setting logger: %w", err)
	}

	if err := viper.Unmarshal(&conf); err != nil {
		return fmt.Errorf("unmarshaling config: %w", err)
	}

	// the config command fills in the credentials itself
	if cmd.Name() == "config" {
		return nil
	}

	if err := conf.validateRequiredValues(); err != nil {
		return err
	}

	client = znuny.NewClient(conf.Znuny.Creds, http.DefaultClient)
	return nil
}
