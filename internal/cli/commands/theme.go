package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/curados-dev/curados/internal/cli/session"
)

// NewThemeCmd creates the theme command
func NewThemeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Show the persisted UI theme",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTheme(false)
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "toggle",
		Short: "Switch between light and dark theme",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTheme(true)
		},
	})

	return cmd
}

// runTheme works purely against local state; no backend needed. The theme
// preference is independent of authentication.
func runTheme(toggle bool) error {
	st, err := newStore()
	if err != nil {
		return err
	}

	sess := session.New(noAPI{}, st)
	if toggle {
		fmt.Printf("Theme set to %s\n", sess.ToggleTheme())
		return nil
	}

	fmt.Printf("Theme: %s\n", sess.Theme())
	return nil
}
