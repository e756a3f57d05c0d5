// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"mkmod-cli/internal/config"

	"github.com/spf13/cobra"
)

var (
	configInitForce bool

	// configCmd groups configuration-related subcommands.
	configCmd = &cobra.Command{
		Use:   "config",
		Short: "Inspect and manage mkmod configuration",
	}

	configShowCmd = &cobra.Command{
		Use:   "show",
		Short: "Show the resolved configuration",
		RunE:  runConfigShow,
	}

	configInitCmd = &cobra.Command{
		Use:   "init",
		Short: "Write a default config file",
		RunE:  runConfigInit,
	}
)

func init() {
	configInitCmd.Flags().BoolVarP(&configInitForce, "force", "f", false, "overwrite an existing config file")

	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	rendered, err := config.Render(cfg)
	if err != nil {
		return err
	}

	path, pathErr := config.ConfigFilePath()
	if pathErr == nil {
		fmt.Println(SubtitleStyle.Render("# " + path))
	}
	fmt.Print(rendered)
	return nil
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path, err := config.Init(configInitForce)
	if err != nil {
		return err
	}
	fmt.Printf("%s Created %s\n", successIcon, PathStyle.Render(path))
	return nil
}
