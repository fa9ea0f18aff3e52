package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// NewPromosCmd creates the promos command
func NewPromosCmd() *cobra.Command {
	var envName string

	cmd := &cobra.Command{
		Use:   "promos",
		Short: "List active promotions",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPromos(envName)
		},
	}
	cmd.Flags().StringVar(&envName, "env", "", "Environment name from curados.yaml")

	return cmd
}

func runPromos(envName string) error {
	a, err := setup(envName)
	if err != nil {
		return err
	}

	promos, err := a.Client.ListPromotions()
	if err != nil {
		return fmt.Errorf("failed to list promotions: %w", err)
	}

	if len(promos) == 0 {
		fmt.Println("No active promotions")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "TITLE\tDISCOUNT\tENDS")
	for _, p := range promos {
		fmt.Fprintf(w, "%s\t%.0f%%\t%s\n", p.Title, p.Discount, p.EndsAt)
	}
	return w.Flush()
}
