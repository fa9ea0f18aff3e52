package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/curados-dev/curados/internal/cli/commands"
	"github.com/curados-dev/curados/internal/logger"
)

var version = "dev" // Will be set during build

var rootCmd = &cobra.Command{
	Use:   "curados",
	Short: "Curados - artisanal liqueur store client",
	Long: `Curados CLI - browse the catalog, place orders and manage the store
from the terminal. Talks to the same backend API as the web shop.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := os.Getenv("CURADOS_LOG_LEVEL")
		if level == "" {
			level = "warn"
		}
		logger.Init(level, os.Getenv("CURADOS_LOG_FORMAT"))
	},
}

func init() {
	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("curados version %s\n", version)
		},
	})

	rootCmd.AddCommand(commands.NewInitCmd())
	rootCmd.AddCommand(commands.NewLoginCmd())
	rootCmd.AddCommand(commands.NewLogoutCmd())
	rootCmd.AddCommand(commands.NewWhoamiCmd())
	rootCmd.AddCommand(commands.NewThemeCmd())
	rootCmd.AddCommand(commands.NewRegisterCmd())
	rootCmd.AddCommand(commands.NewProductsCmd())
	rootCmd.AddCommand(commands.NewPromosCmd())
	rootCmd.AddCommand(commands.NewOrdersCmd())
	rootCmd.AddCommand(commands.NewCheckoutCmd())
	rootCmd.AddCommand(commands.NewContactCmd())
	rootCmd.AddCommand(commands.NewLegalCmd())
	rootCmd.AddCommand(commands.NewAdminCmd())
	rootCmd.AddCommand(commands.NewEnvCmd())
}

// Execute runs the root command
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}
