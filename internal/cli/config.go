package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jmylchreest/swatch/internal/config"
	"github.com/spf13/cobra"
)

func newConfigCmd(a *app) *cobra.Command {
	var showPath bool

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show the effective configuration",
		Long: `Print the configuration in effect after merging defaults, the config file
and SWATCH_* environment variables, as TOML.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if showPath {
				fmt.Fprintln(cmd.OutOrStdout(), a.configPath())
				return nil
			}
			if err := a.config.Validate(); err != nil {
				a.logger.Warn("configuration is invalid", "error", err)
			}
			return a.config.Encode(cmd.OutOrStdout())
		},
	}

	cmd.Flags().BoolVar(&showPath, "path", false, "print the config file path instead")

	cmd.AddCommand(newConfigInitCmd(a))

	return cmd
}

func newConfigInitCmd(a *app) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default configuration file",
		Long: `Write the default configuration as TOML. The existing file is not read,
so this also repairs a config that other commands reject.`,
		Args:        cobra.NoArgs,
		Annotations: map[string]string{annotationSkipConfig: "true"},
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := a.configPath()
			if path == "" {
				return errors.New("no config directory available, pass --config")
			}
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("config file %s already exists, use --force to overwrite", path)
			}
			if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
				return fmt.Errorf("failed to create config directory: %w", err)
			}

			f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o600) // #nosec G304 -- user-chosen config path
			if err != nil {
				return fmt.Errorf("failed to create config file: %w", err)
			}
			defer f.Close()

			if err := config.Default().Encode(f); err != nil {
				return fmt.Errorf("failed to write config file: %w", err)
			}
			if !a.opts.quiet {
				fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %s\n", path)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")

	return cmd
}

func (a *app) configPath() string {
	if a.opts.configPath != "" {
		return a.opts.configPath
	}
	return config.DefaultPath()
}
