package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewWhoamiCmd creates the whoami command
func NewWhoamiCmd() *cobra.Command {
	var envName string
	var cached bool

	cmd := &cobra.Command{
		Use:   "whoami",
		Short: "Show the current session",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWhoami(envName, cached)
		},
	}

	cmd.Flags().StringVar(&envName, "env", "", "Environment name from curados.yaml")
	cmd.Flags().BoolVar(&cached, "cached", false, "Show the locally cached user without contacting the backend")

	return cmd
}

func runWhoami(envName string, cached bool) error {
	a, err := setup(envName)
	if err != nil {
		return err
	}

	if cached {
		user := a.Session.CachedUser()
		if user == nil {
			fmt.Println("Not logged in (no cached session)")
			return nil
		}
		fmt.Printf("Cached user: %s (%s)\n", user.Name, user.Email)
		if user.IsAdmin() {
			fmt.Println("Role: Admin")
		}
		return nil
	}

	// Reconcile the stored token against the backend. A rejected token
	// resolves to logged-out and clears the stored credential.
	a.Session.Bootstrap()

	if !a.Session.IsAuthenticated() {
		fmt.Println("Not logged in")
		return nil
	}

	user := a.Session.User()
	fmt.Printf("Logged in to %s as %s (%s)\n", a.Env.Name, user.Name, user.Email)
	if user.IsAdmin() {
		fmt.Println("Role: Admin")
	}
	fmt.Printf("Theme: %s\n", a.Session.Theme())

	return nil
}
