package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var Version = "dev"

func main() {
	v := viper.New()
	rootCmd := &cobra.Command{
		Use:     "logviewer",
		Short:   "Operator view of the checkout log events",
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return loadSettings(v, cmd)
		},
	}

	rootCmd.PersistentFlags().String("endpoint", defaultEndpoint, "Log sink base URL (serves GET /api/logs)")
	rootCmd.PersistentFlags().String("email", "", "Only entries whose meta.email contains this text")
	rootCmd.PersistentFlags().String("status", "", "Only entries with this status (pending, sending, ok, error, failed, done)")
	rootCmd.PersistentFlags().Int("limit", defaultLimit, "Entries requested per poll")
	rootCmd.PersistentFlags().Duration("timeout", defaultTimeout, "HTTP timeout per poll")
	rootCmd.PersistentFlags().String("timezone", defaultTimezone, "Display timezone")
	rootCmd.PersistentFlags().String("config", "", "Config file (default ~/.arthub/logviewer.yaml)")

	rootCmd.AddCommand(watchCmd(v))
	rootCmd.AddCommand(listCmd(v))

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
