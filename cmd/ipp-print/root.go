package main

import (
	"time"

	"github.com/spf13/cobra"
)

var (
	flagConfigPath      string
	flagUserName        string
	flagTimeoutSeconds  int
	flagIgnoreTLSErrors bool
)

var rootCmd = &cobra.Command{
	Use:           "ipp-print",
	Short:         "Submit and inspect print jobs over IPP",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigPath, "config", "", "optional YAML config file")
	rootCmd.PersistentFlags().StringVar(&flagUserName, "user-name", "", "requesting user name")
	rootCmd.PersistentFlags().IntVar(&flagTimeoutSeconds, "timeout", 0, "request timeout in seconds (default 30)")
	rootCmd.PersistentFlags().BoolVar(&flagIgnoreTLSErrors, "ignore-tls-errors", false, "skip TLS certificate verification for ipps:// printers")

	rootCmd.AddCommand(printCmd)
	rootCmd.AddCommand(statusCmd)
}

// resolvedSettings folds --config values underneath whatever flags
// the user actually set, since flags always win.
type resolvedSettings struct {
	userName string
	timeout  time.Duration
}

func resolveSettings(cmd *cobra.Command) (resolvedSettings, error) {
	file, err := loadFileConfig(flagConfigPath)
	if err != nil {
		return resolvedSettings{}, argError("reading config file: " + err.Error())
	}

	settings := resolvedSettings{
		userName: file.UserName,
		timeout:  30 * time.Second,
	}
	if file.Timeout > 0 {
		settings.timeout = time.Duration(file.Timeout) * time.Second
	}

	if cmd.Flags().Changed("user-name") {
		settings.userName = flagUserName
	}
	if cmd.Flags().Changed("timeout") {
		settings.timeout = time.Duration(flagTimeoutSeconds) * time.Second
	}

	return settings, nil
}
