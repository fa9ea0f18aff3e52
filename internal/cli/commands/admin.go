package commands

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
)

// NewAdminCmd creates the admin command group. All subcommands require an
// admin account; the backend enforces the role, the CLI just forwards the
// token.
func NewAdminCmd() *cobra.Command {
	var envName string

	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Store administration dashboards",
	}
	cmd.PersistentFlags().StringVar(&envName, "env", "", "Environment name from curados.yaml")

	cmd.AddCommand(&cobra.Command{
		Use:   "users",
		Short: "List registered users",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdminUsers(envName)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "messages",
		Short: "List received contact messages",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdminMessages(envName)
		},
	})

	var threshold int
	stockCmd := &cobra.Command{
		Use:   "stock",
		Short: "List products running low on stock",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdminStock(envName, threshold)
		},
	}
	stockCmd.Flags().IntVar(&threshold, "threshold", 5, "Stock level at or below which a product is listed")
	cmd.AddCommand(stockCmd)

	var from, to, bucket string
	salesCmd := &cobra.Command{
		Use:   "sales",
		Short: "Show sales totals bucketed by date",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdminSales(envName, from, to, bucket)
		},
	}
	salesCmd.Flags().StringVar(&from, "from", "", "Start date (YYYY-MM-DD, default 30 days ago)")
	salesCmd.Flags().StringVar(&to, "to", "", "End date (YYYY-MM-DD, default today)")
	salesCmd.Flags().StringVar(&bucket, "bucket", "day", "Aggregation bucket: day, week or month")
	cmd.AddCommand(salesCmd)

	return cmd
}

func runAdminUsers(envName string) error {
	a, err := setup(envName)
	if err != nil {
		return err
	}

	token, err := authToken(a.Store)
	if err != nil {
		return err
	}

	users, err := a.Client.ListUsers(token)
	if err != nil {
		return fmt.Errorf("failed to list users: %w", err)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tEMAIL\tROLE")
	for _, u := range users {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", u.ID, u.Name, u.Email, u.Role)
	}
	return w.Flush()
}

func runAdminMessages(envName string) error {
	a, err := setup(envName)
	if err != nil {
		return err
	}

	token, err := authToken(a.Store)
	if err != nil {
		return err
	}

	messages, err := a.Client.ListMessages(token)
	if err != nil {
		return fmt.Errorf("failed to list messages: %w", err)
	}

	if len(messages) == 0 {
		fmt.Println("No messages")
		return nil
	}

	for _, m := range messages {
		fmt.Printf("[%s] %s <%s>\n", m.CreatedAt, m.Name, m.Email)
		fmt.Printf("  %s\n\n", m.Message)
	}
	return nil
}

func runAdminStock(envName string, threshold int) error {
	a, err := setup(envName)
	if err != nil {
		return err
	}

	token, err := authToken(a.Store)
	if err != nil {
		return err
	}

	products, err := a.Client.LowStockProducts(token, threshold)
	if err != nil {
		return fmt.Errorf("failed to list low-stock products: %w", err)
	}

	if len(products) == 0 {
		fmt.Printf("No products at or below %d units\n", threshold)
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tSTOCK")
	for _, p := range products {
		fmt.Fprintf(w, "%s\t%s\t%d\n", p.ID, p.Name, p.Stock)
	}
	return w.Flush()
}

func runAdminSales(envName, from, to, bucket string) error {
	if to == "" {
		to = time.Now().Format("2006-01-02")
	}
	if from == "" {
		from = time.Now().AddDate(0, 0, -30).Format("2006-01-02")
	}
	switch bucket {
	case "day", "week", "month":
	default:
		return fmt.Errorf("invalid bucket '%s': must be day, week or month", bucket)
	}

	a, err := setup(envName)
	if err != nil {
		return err
	}

	token, err := authToken(a.Store)
	if err != nil {
		return err
	}

	buckets, err := a.Client.SalesSummary(token, from, to, bucket)
	if err != nil {
		return fmt.Errorf("failed to fetch sales summary: %w", err)
	}

	if len(buckets) == 0 {
		fmt.Printf("No sales between %s and %s\n", from, to)
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "BUCKET\tORDERS\tTOTAL")
	var totalOrders int
	var totalSales float64
	for _, b := range buckets {
		fmt.Fprintf(w, "%s\t%d\t$%.2f\n", b.Bucket, b.Orders, b.Total)
		totalOrders += b.Orders
		totalSales += b.Total
	}
	fmt.Fprintf(w, "TOTAL\t%d\t$%.2f\n", totalOrders, totalSales)
	return w.Flush()
}
