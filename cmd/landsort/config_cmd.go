package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Nomadcxx/landsort/internal/config"
	"github.com/Nomadcxx/landsort/internal/paths"
)

var configForce bool

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the landsort configuration file",
	}

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default config file",
		RunE:  runConfigInit,
	}
	initCmd.Flags().BoolVar(&configForce, "force", false, "overwrite an existing config file")

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		RunE:  runConfigShow,
	}

	cmd.AddCommand(initCmd)
	cmd.AddCommand(showCmd)

	return cmd
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	if config.Exists() && !configForce {
		path, _ := paths.ConfigPath()
		return fmt.Errorf("config already exists at %s (use --force to overwrite)", path)
	}

	cfg := config.DefaultConfig()
	if err := cfg.Save(); err != nil {
		return fmt.Errorf("unable to write config: %w", err)
	}

	path, _ := paths.ConfigPath()
	fmt.Printf("Wrote default config to %s\n", path)
	return nil
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	path, _ := paths.ConfigPath()
	if config.Exists() {
		fmt.Printf("# %s\n\n", path)
	} else {
		fmt.Printf("# no config file at %s, showing defaults\n\n", path)
	}
	fmt.Print(cfg.ToTOML())
	return nil
}
