package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	yaml "gopkg.in/yaml.v2"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Prints the effective site configuration",
	Long: `The config command prints the fully resolved site configuration as
YAML: file values merged over defaults and environment overrides, after
validation. Useful to see exactly what the generator will be handed.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := yaml.Marshal(siteConfig)
		if err != nil {
			return fmt.Errorf("failed to encode configuration: %w", err)
		}
		_, err = os.Stdout.Write(out)
		return err
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}
