package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/inkjetcore/goipp/goipp/ippclient"
	"github.com/inkjetcore/goipp/goipp/ippop"
)

var statusAttributes = []string{
	"printer-name",
	"printer-state",
	"printer-state-reasons",
	"printer-is-accepting-jobs",
	"queued-job-count",
}

var statusCmd = &cobra.Command{
	Use:   "status <printer-uri>",
	Short: "Print a printer's current status",
	Args:  cobra.ExactArgs(1),
	RunE:  runStatus,
}

func runStatus(cmd *cobra.Command, args []string) error {
	printerURI := args[0]

	settings, err := resolveSettings(cmd)
	if err != nil {
		return err
	}

	client := ippclient.New()
	client.IgnoreTLSErrors = flagIgnoreTLSErrors
	client.Timeout = settings.timeout

	ctx, cancel := context.WithTimeout(cmd.Context(), settings.timeout)
	defer cancel()

	op := &ippop.GetPrinterAttributes{
		PrinterURI:          printerURI,
		RequestedAttributes: statusAttributes,
	}
	resp, err := client.SendRequest(ctx, printerURI, op.Build(0))
	if err != nil {
		return err
	}

	printer := resp.Printer()
	for _, name := range statusAttributes {
		cmd.Printf("%s: %s\n", name, printer.String(name))
	}
	return nil
}
