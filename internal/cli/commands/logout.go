package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/curados-dev/curados/internal/cli/client"
	"github.com/curados-dev/curados/internal/cli/session"
)

// NewLogoutCmd creates the logout command
func NewLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the stored session",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLogout()
		},
	}
}

// runLogout clears local state only. Logout never calls the backend, so it
// works offline and without a project config.
func runLogout() error {
	st, err := newStore()
	if err != nil {
		return err
	}

	session.New(noAPI{}, st).Logout()
	fmt.Println("✓ Logged out")
	return nil
}

// noAPI satisfies session.API for operations that never reach the backend.
type noAPI struct{}

func (noAPI) Login(email, password string) (*client.LoginResponse, error) {
	return nil, fmt.Errorf("no backend configured")
}

func (noAPI) CheckSession(token string) (*client.SessionCheck, error) {
	return nil, fmt.Errorf("no backend configured")
}
