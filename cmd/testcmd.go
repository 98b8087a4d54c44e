package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var testCmd = &cobra.Command{
	Use: "test",
}

var testConnectionCmd = &cobra.Command{
	Use: "connection",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := client.ConnectionTest(ctx); err != nil {
			return fmt.Errorf("connection test failed: %w", err)
		}

		fmt.Println("Connection test successful")
		return nil
	},
}

func init() {
	testCmd.AddCommand(testConnectionCmd)
	rootCmd.AddCommand(testCmd)
}
