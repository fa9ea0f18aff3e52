package commands

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"

	"github.com/curados-dev/curados/internal/cli/client"
)

type contactForm struct {
	Name    string `validate:"required"`
	Email   string `validate:"required,email"`
	Message string `validate:"required,min=10"`
}

// NewContactCmd creates the contact command
func NewContactCmd() *cobra.Command {
	var name, email, message, envName string

	cmd := &cobra.Command{
		Use:   "contact",
		Short: "Send a message to the store",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runContact(name, email, message, envName)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Your name")
	cmd.Flags().StringVar(&email, "email", "", "Your email address")
	cmd.Flags().StringVar(&message, "message", "", "Message text")
	cmd.Flags().StringVar(&envName, "env", "", "Environment name from curados.yaml")

	return cmd
}

func runContact(name, email, message, envName string) error {
	form := contactForm{Name: name, Email: email, Message: message}
	if err := validator.New().Struct(form); err != nil {
		return validationError(err)
	}

	a, err := setup(envName)
	if err != nil {
		return err
	}

	if err := a.Client.SendContactMessage(client.ContactRequest{
		Name:    name,
		Email:   email,
		Message: message,
	}); err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}

	fmt.Println("✓ Message sent")
	return nil
}
