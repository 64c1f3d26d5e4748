/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package cmd provides CLI commands for shorthand.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/shorthand/cmd/convert"
	"bennypowers.dev/shorthand/cmd/expand"
	"bennypowers.dev/shorthand/cmd/lint"
	"bennypowers.dev/shorthand/cmd/list"
	"bennypowers.dev/shorthand/cmd/mcp"
	"bennypowers.dev/shorthand/cmd/search"
	"bennypowers.dev/shorthand/cmd/validate"
	"bennypowers.dev/shorthand/cmd/version"
	"bennypowers.dev/shorthand/config"
	"bennypowers.dev/shorthand/fs"
	"bennypowers.dev/shorthand/internal/logger"
)

var rootCmd = &cobra.Command{
	Use:   "shorthand",
	Short: "Expand CSS shorthand properties into longhands",
	Long: `shorthand expands CSS shorthand declarations such as padding, border and flex
into their longhand properties, for single values or whole style objects.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log expansion details to stderr")
	rootCmd.PersistentFlags().StringP("config", "c", "", "Config file (default: .config/shorthand.{yaml,yml,json,toml})")
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))

	rootCmd.AddCommand(convert.Cmd)
	rootCmd.AddCommand(expand.Cmd)
	rootCmd.AddCommand(lint.Cmd)
	rootCmd.AddCommand(list.Cmd)
	rootCmd.AddCommand(mcp.Cmd)
	rootCmd.AddCommand(search.Cmd)
	rootCmd.AddCommand(validate.Cmd)
	rootCmd.AddCommand(version.Cmd)
}

func setup(cmd *cobra.Command, args []string) error {
	logger.SetVerbose(viper.GetBool("verbose"))

	cfg, err := loadConfig(fs.NewOSFileSystem(), viper.GetString("config"))
	if err != nil {
		return err
	}
	applyConfig(viper.GetViper(), cfg)
	return nil
}

// loadConfig reads the config file at path, or searches the working
// directory when path is empty.
func loadConfig(filesystem fs.FileSystem, path string) (*config.Config, error) {
	if path == "" {
		return config.LoadOrDefault(filesystem, "."), nil
	}
	cfg, err := config.LoadFile(filesystem, path)
	if err != nil {
		return nil, fmt.Errorf("error loading config: %w", err)
	}
	return cfg, nil
}

// applyConfig registers config values as viper defaults, so that flags the
// user sets explicitly take precedence.
func applyConfig(v *viper.Viper, cfg *config.Config) {
	v.SetDefault("files", cfg.Files)
	v.SetDefault("properties", cfg.ExpandOptions().Properties)
	v.SetDefault("convert.format", cfg.Format)
	v.SetDefault("convert.kebab", cfg.Kebab)
	v.SetDefault("convert.drop-unknown", cfg.DropUnknown)
	v.SetDefault("convert.lint", cfg.Lint)
	v.SetDefault("expand.kebab", cfg.Kebab)
}
