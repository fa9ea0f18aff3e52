package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/curados-dev/curados/internal/cli/client"
)

// NewCheckoutCmd creates the checkout command
func NewCheckoutCmd() *cobra.Command {
	var items []string
	var address, envName string

	cmd := &cobra.Command{
		Use:   "checkout",
		Short: "Place an order",
		Long: `Place an order for one or more products.

Items are given as product-id:quantity pairs, e.g.:

  curados checkout --item mezcal-damiana:2 --item licor-cafe:1 --address "..."

Payment is captured server-side; the command reports the created order and
its initial status.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheckout(items, address, envName)
		},
	}

	cmd.Flags().StringArrayVar(&items, "item", nil, "Product to order as id:quantity (repeatable)")
	cmd.Flags().StringVar(&address, "address", "", "Shipping address")
	cmd.Flags().StringVar(&envName, "env", "", "Environment name from curados.yaml")

	return cmd
}

func runCheckout(rawItems []string, address, envName string) error {
	if len(rawItems) == 0 {
		return fmt.Errorf("at least one --item is required")
	}
	if address == "" {
		return fmt.Errorf("--address is required")
	}

	items, err := parseItems(rawItems)
	if err != nil {
		return err
	}

	a, err := setup(envName)
	if err != nil {
		return err
	}

	token, err := authToken(a.Store)
	if err != nil {
		return err
	}

	order, err := a.Client.CreateOrder(token, client.CreateOrderRequest{
		Items:           items,
		ShippingAddress: address,
	})
	if err != nil {
		return fmt.Errorf("checkout failed: %w", err)
	}

	fmt.Println("✓ Order placed!")
	fmt.Printf("  Order:  %s\n", order.ID)
	fmt.Printf("  Status: %s\n", order.Status)
	fmt.Printf("  Total:  $%.2f\n", order.Total)
	return nil
}

// parseItems parses id:quantity pairs. A bare id means quantity 1.
func parseItems(rawItems []string) ([]client.OrderItem, error) {
	items := make([]client.OrderItem, 0, len(rawItems))
	for _, raw := range rawItems {
		id, qtyStr, found := strings.Cut(raw, ":")
		if id == "" {
			return nil, fmt.Errorf("invalid item %q: expected id:quantity", raw)
		}

		quantity := 1
		if found {
			q, err := strconv.Atoi(qtyStr)
			if err != nil || q < 1 {
				return nil, fmt.Errorf("invalid quantity in item %q", raw)
			}
			quantity = q
		}

		items = append(items, client.OrderItem{ProductID: id, Quantity: quantity})
	}
	return items, nil
}
