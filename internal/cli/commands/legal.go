package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewLegalCmd creates the legal command
func NewLegalCmd() *cobra.Command {
	var envName string

	cmd := &cobra.Command{
		Use:   "legal <slug>",
		Short: "Show a legal document (terms, privacy, ...)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLegal(envName, args[0])
		},
	}
	cmd.Flags().StringVar(&envName, "env", "", "Environment name from curados.yaml")

	return cmd
}

func runLegal(envName, slug string) error {
	a, err := setup(envName)
	if err != nil {
		return err
	}

	doc, err := a.Client.FetchLegalDocument(slug)
	if err != nil {
		return fmt.Errorf("failed to fetch document: %w", err)
	}

	fmt.Printf("%s (updated %s)\n\n", doc.Title, doc.UpdatedAt)
	fmt.Println(doc.Content)
	return nil
}
