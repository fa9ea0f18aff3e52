package commands

import (
	"fmt"
	"os"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// NewLoginCmd creates the login command
func NewLoginCmd() *cobra.Command {
	var email, password, envName string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Authenticate with the Curados backend",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLogin(email, password, envName)
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Email address (or set CURADOS_EMAIL)")
	cmd.Flags().StringVar(&password, "password", "", "Password (or set CURADOS_PASSWORD, will prompt if not provided)")
	cmd.Flags().StringVar(&envName, "env", "", "Environment name from curados.yaml")

	return cmd
}

func runLogin(email, password, envName string) error {
	// Check for environment variables (useful for CI/CD)
	if email == "" {
		email = os.Getenv("CURADOS_EMAIL")
	}
	if password == "" {
		password = os.Getenv("CURADOS_PASSWORD")
	}

	if email == "" {
		return fmt.Errorf("email is required (use --email flag or CURADOS_EMAIL env var)")
	}

	a, err := setup(envName)
	if err != nil {
		return err
	}

	if password == "" {
		password, err = promptPassword("Password: ")
		if err != nil {
			return err
		}
	}

	fmt.Printf("Logging in to %s (%s)...\n", a.Env.Name, a.Env.URL)

	result := a.Session.Login(email, password)
	if !result.Success {
		return fmt.Errorf("login failed: %s", result.Message)
	}

	user := a.Session.User()
	fmt.Println("✓ Login successful!")
	fmt.Printf("  User: %s (%s)\n", user.Name, user.Email)
	if user.IsAdmin() {
		fmt.Println("  Role: Admin")
	}

	return nil
}

// promptPassword reads a password from the terminal without echo. Fails in
// non-interactive mode so piped invocations get a clear error instead of a
// hanging prompt.
func promptPassword(label string) (string, error) {
	if !term.IsTerminal(int(syscall.Stdin)) {
		return "", fmt.Errorf("password is required in non-interactive mode (use --password flag or CURADOS_PASSWORD env var)")
	}

	fmt.Print(label)
	bytePassword, err := term.ReadPassword(int(syscall.Stdin))
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	fmt.Println()
	return string(bytePassword), nil
}
