package commands

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"

	"github.com/curados-dev/curados/internal/cli/client"
	"github.com/curados-dev/curados/internal/cli/passwordcheck"
)

// registerForm is validated client-side before the request goes out, the
// same checks the signup form runs.
type registerForm struct {
	Name     string `validate:"required"`
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=8"`
}

// NewRegisterCmd creates the register command
func NewRegisterCmd() *cobra.Command {
	var name, email, password, envName string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a new customer account",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRegister(name, email, password, envName)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Full name")
	cmd.Flags().StringVar(&email, "email", "", "Email address")
	cmd.Flags().StringVar(&password, "password", "", "Password (will prompt if not provided)")
	cmd.Flags().StringVar(&envName, "env", "", "Environment name from curados.yaml")

	return cmd
}

func runRegister(name, email, password, envName string) error {
	validate := validator.New()

	// Check the flag-provided fields before prompting, so a missing email
	// is reported without making the user type a password first.
	form := registerForm{Name: name, Email: email, Password: password}
	if err := validate.StructPartial(form, "Name", "Email"); err != nil {
		return validationError(err)
	}

	if password == "" {
		var err error
		password, err = promptPassword("Password: ")
		if err != nil {
			return err
		}
		form.Password = password
	}

	if err := validate.Struct(form); err != nil {
		return validationError(err)
	}

	strength := passwordcheck.Score(password)
	if strength <= passwordcheck.Weak {
		fmt.Fprintf(os.Stderr, "Warning: password strength is %s\n", strength)
	}

	a, err := setup(envName)
	if err != nil {
		return err
	}

	resp, err := a.Client.Register(client.RegisterRequest{
		Name:     name,
		Email:    email,
		Password: password,
	})
	if err != nil {
		return fmt.Errorf("registration failed: %w", err)
	}

	fmt.Println("✓ Account created!")
	if resp.User != nil {
		fmt.Printf("  User: %s (%s)\n", resp.User.Name, resp.User.Email)
	}
	fmt.Println("Run 'curados login' to sign in.")
	return nil
}
