package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

func newConfigCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Show the effective configuration",
		Long:  "Show the configuration after merging flags, EXIFSTAMP_* environment variables and ~/.exifstamp.yaml.",
		Example: `  exifstamp config
  EXIFSTAMP_WRITER=native exifstamp config`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(v, cmd)
			if err != nil {
				return err
			}

			out, err := yaml.Marshal(cfg)
			if err != nil {
				return fmt.Errorf("marshaling config: %w", err)
			}

			source := cfg.ConfigFile
			if source == "" {
				source = "none"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "# config file: %s\n", source)
			fmt.Fprint(cmd.OutOrStdout(), string(out))
			return nil
		},
	}
}
