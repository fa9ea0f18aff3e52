package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// NewOrdersCmd creates the orders command
func NewOrdersCmd() *cobra.Command {
	var envName string

	cmd := &cobra.Command{
		Use:   "orders",
		Short: "Track your orders",
	}
	cmd.PersistentFlags().StringVar(&envName, "env", "", "Environment name from curados.yaml")

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List your orders",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOrdersList(envName)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "status <order-id>",
		Short: "Show an order and its tracking status",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOrderStatus(envName, args[0])
		},
	})

	return cmd
}

func runOrdersList(envName string) error {
	a, err := setup(envName)
	if err != nil {
		return err
	}

	token, err := authToken(a.Store)
	if err != nil {
		return err
	}

	orders, err := a.Client.ListOrders(token)
	if err != nil {
		return fmt.Errorf("failed to list orders: %w", err)
	}

	if len(orders) == 0 {
		fmt.Println("No orders yet")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSTATUS\tTOTAL\tCREATED")
	for _, o := range orders {
		fmt.Fprintf(w, "%s\t%s\t$%.2f\t%s\n", o.ID, o.Status, o.Total, o.CreatedAt)
	}
	return w.Flush()
}

func runOrderStatus(envName, id string) error {
	a, err := setup(envName)
	if err != nil {
		return err
	}

	token, err := authToken(a.Store)
	if err != nil {
		return err
	}

	order, err := a.Client.GetOrder(token, id)
	if err != nil {
		return fmt.Errorf("failed to get order: %w", err)
	}

	fmt.Printf("Order %s\n", order.ID)
	fmt.Printf("Status:  %s\n", order.Status)
	fmt.Printf("Total:   $%.2f\n", order.Total)
	fmt.Printf("Created: %s\n", order.CreatedAt)
	if len(order.Items) > 0 {
		fmt.Println("Items:")
		for _, item := range order.Items {
			fmt.Printf("  %dx %s ($%.2f)\n", item.Quantity, item.Name, item.UnitPrice)
		}
	}
	return nil
}
