package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/curados-dev/curados/internal/cli/config"
	"github.com/curados-dev/curados/internal/cli/envselect"
	"github.com/curados-dev/curados/internal/cli/store"
)

// NewEnvCmd creates the env command
func NewEnvCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "env",
		Short: "Show or select the backend environment",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEnvShow()
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "select",
		Short: "Interactively select the backend environment",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEnvSelect()
		},
	})

	return cmd
}

func runEnvShow() error {
	cfg, err := config.LoadDefault()
	if err != nil {
		return fmt.Errorf("failed to load config: %w\nRun 'curados init' to create a configuration file", err)
	}

	st, err := newStore()
	if err != nil {
		return err
	}

	selected, _ := st.Get(store.KeyEnvironment)
	for _, env := range cfg.Environments {
		marker := " "
		if env.Name == selected {
			marker = "*"
		}
		fmt.Printf("%s %s (%s)\n", marker, env.Name, env.URL)
	}
	return nil
}

func runEnvSelect() error {
	cfg, err := config.LoadDefault()
	if err != nil {
		return fmt.Errorf("failed to load config: %w\nRun 'curados init' to create a configuration file", err)
	}

	st, err := newStore()
	if err != nil {
		return err
	}

	env, err := envselect.Prompt(cfg)
	if err != nil {
		return err
	}

	if err := st.Set(store.KeyEnvironment, env.Name); err != nil {
		return fmt.Errorf("failed to save selected environment: %w", err)
	}

	fmt.Printf("✓ Using environment %s (%s)\n", env.Name, env.URL)
	return nil
}
