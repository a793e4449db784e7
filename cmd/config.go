package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/boardview/internal/cli"
	"github.com/thenoetrevino/boardview/internal/config"
)

type configKey struct{}

func withConfig(ctx context.Context, cfg *config.Config) context.Context {
	return context.WithValue(ctx, configKey{}, cfg)
}

func configFromContext(ctx context.Context) *config.Config {
	if cfg, ok := ctx.Value(configKey{}).(*config.Config); ok {
		return cfg
	}
	return config.Default()
}

func configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or create the configuration file",
	}

	show := &cobra.Command{
		Use:         "show",
		Short:       "Print the effective configuration",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{skipApp: "true"},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cli.NewFormatter(cmd).YAML(configFromContext(cmd.Context()))
		},
	}
	cli.AddOutputFlags(show)

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default configuration file",
		Long: `Write the default configuration to the config path (or --config).
An existing file is kept unless --force is given.`,
		Args:        cobra.NoArgs,
		Annotations: map[string]string{skipApp: "true"},
		RunE:        runConfigInit,
	}
	initCmd.Flags().Bool("force", false, "Overwrite an existing file")
	cli.AddOutputFlags(initCmd)

	cmd.AddCommand(show, initCmd)
	return cmd
}

func runConfigInit(cmd *cobra.Command, _ []string) error {
	formatter := cli.NewFormatter(cmd)

	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		var err error
		if path, err = config.Path(); err != nil {
			return formatter.Fail(err)
		}
	}

	force, _ := cmd.Flags().GetBool("force")
	if _, err := os.Stat(path); err == nil && !force {
		return formatter.FailWithSuggestion(fmt.Errorf("%s already exists", path), "Pass --force to overwrite it")
	} else if err != nil && !errors.Is(err, os.ErrNotExist) {
		return formatter.Fail(err)
	}

	if err := config.Default().SaveTo(path); err != nil {
		return formatter.Fail(fmt.Errorf("failed to write config: %w", err))
	}
	return formatter.Success(map[string]string{"path": path}, "Wrote "+path, path)
}
