package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/teranos/declower/config"
	"github.com/teranos/declower/errors"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show, validate and initialize declower configuration",
	}

	var configPath string
	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file (default: search for declower.toml)")

	var format string
	show := &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			return printConfig(cmd, cfg, format)
		},
	}
	show.Flags().StringVar(&format, "format", "toml", "Output format: toml, json, yaml")

	validate := &cobra.Command{
		Use:   "validate",
		Short: "Validate the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := loadConfig(configPath); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "configuration is valid")
			return nil
		},
	}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init [dir]",
		Short: "Write a declower.toml with default settings",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			path := filepath.Join(dir, config.ProjectFileName)
			if _, err := os.Stat(path); err == nil && !force {
				return errors.WithHint(errors.Newf("%s already exists", path), "pass --force to overwrite it; the old file is kept as a backup")
			}
			if err := config.Save(path, config.Default()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			return nil
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing file")

	cmd.AddCommand(show, validate, initCmd)
	return cmd
}

func printConfig(cmd *cobra.Command, cfg *config.Config, format string) error {
	out := cmd.OutOrStdout()
	switch format {
	case "toml":
		data, err := toml.Marshal(cfg)
		if err != nil {
			return errors.Wrap(err, "marshal toml")
		}
		_, err = out.Write(data)
		return err
	case "json":
		data, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return errors.Wrap(err, "marshal json")
		}
		fmt.Fprintln(out, string(data))
		return nil
	case "yaml":
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(cfg); err != nil {
			return errors.Wrap(err, "marshal yaml")
		}
		return enc.Close()
	}
	return errors.Newf("unknown format %q (want toml, json or yaml)", format)
}
