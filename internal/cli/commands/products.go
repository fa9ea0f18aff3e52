package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// NewProductsCmd creates the products command
func NewProductsCmd() *cobra.Command {
	var envName string

	cmd := &cobra.Command{
		Use:   "products",
		Short: "Browse the liqueur catalog",
	}
	cmd.PersistentFlags().StringVar(&envName, "env", "", "Environment name from curados.yaml")

	var category string
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List products",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProductsList(envName, category)
		},
	}
	listCmd.Flags().StringVar(&category, "category", "", "Filter by category")

	getCmd := &cobra.Command{
		Use:   "get <product-id>",
		Short: "Show one product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProductsGet(envName, args[0])
		},
	}

	cmd.AddCommand(listCmd)
	cmd.AddCommand(getCmd)
	return cmd
}

func runProductsList(envName, category string) error {
	a, err := setup(envName)
	if err != nil {
		return err
	}

	products, err := a.Client.ListProducts(category)
	if err != nil {
		return fmt.Errorf("failed to list products: %w", err)
	}

	if len(products) == 0 {
		fmt.Println("No products found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tCATEGORY\tPRICE\tSTOCK")
	for _, p := range products {
		fmt.Fprintf(w, "%s\t%s\t%s\t$%.2f\t%d\n", p.ID, p.Name, p.Category, p.Price, p.Stock)
	}
	return w.Flush()
}

func runProductsGet(envName, id string) error {
	a, err := setup(envName)
	if err != nil {
		return err
	}

	p, err := a.Client.GetProduct(id)
	if err != nil {
		return fmt.Errorf("failed to get product: %w", err)
	}

	fmt.Printf("%s (%s)\n", p.Name, p.ID)
	fmt.Printf("Category: %s\n", p.Category)
	fmt.Printf("Price:    $%.2f\n", p.Price)
	fmt.Printf("Stock:    %d\n", p.Stock)
	if p.Description != "" {
		fmt.Printf("\n%s\n", p.Description)
	}
	return nil
}
