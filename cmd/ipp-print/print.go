package main

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/inkjetcore/goipp/goipp"
	"github.com/inkjetcore/goipp/goipp/ippclient"
	"github.com/inkjetcore/goipp/goipp/ippop"
)

var (
	flagFile         string
	flagJobName      string
	flagOptions      []string
	flagNoCheckState bool
)

var printCmd = &cobra.Command{
	Use:   "print <printer-uri>",
	Short: "Submit a document as a Print-Job request",
	Args:  cobra.ExactArgs(1),
	RunE:  runPrint,
}

func init() {
	printCmd.Flags().StringVar(&flagFile, "file", "", "document to print (reads stdin if omitted)")
	printCmd.Flags().StringVar(&flagJobName, "job-name", "", "job-name attribute")
	printCmd.Flags().StringArrayVar(&flagOptions, "option", nil, "job attribute as key=value, repeatable")
	printCmd.Flags().BoolVar(&flagNoCheckState, "no-check-state", false, "skip the printer-state pre-check")
}

func runPrint(cmd *cobra.Command, args []string) error {
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

	if !flagNoCheckState {
		if err := checkPrinterState(ctx, client, printerURI); err != nil {
			return err
		}
	}

	payload, documentFormat, err := openPayload(flagFile)
	if err != nil {
		return argError(err.Error())
	}
	if closer, ok := payload.(io.Closer); ok {
		defer closer.Close()
	}

	op := &ippop.PrintJob{
		PrinterURI:     printerURI,
		UserName:       settings.userName,
		JobName:        flagJobName,
		DocumentFormat: documentFormat,
		Payload:        payload,
	}
	for _, raw := range flagOptions {
		name, tag, value, err := parseOption(raw)
		if err != nil {
			return argError(err.Error())
		}
		op.SetJobAttribute(name, tag, value)
	}

	req := op.Build(1)
	resp, err := client.SendRequest(ctx, printerURI, req)
	if err != nil {
		return err
	}

	job := resp.Job()
	cmd.Printf("job submitted: job-id=%s job-state=%s\n", job.String("job-id"), job.String("job-state"))
	return nil
}

func checkPrinterState(ctx context.Context, client *ippclient.Client, printerURI string) error {
	op := &ippop.GetPrinterAttributes{
		PrinterURI:          printerURI,
		RequestedAttributes: []string{"printer-state", "printer-state-reasons"},
	}
	resp, err := client.SendRequest(ctx, printerURI, op.Build(0))
	if err != nil {
		return err
	}
	return ippclient.CheckPrinterState(resp)
}

func openPayload(path string) (io.Reader, string, error) {
	if path == "" {
		return os.Stdin, "application/octet-stream", nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, "", err
	}
	return f, documentFormatFor(path), nil
}

func documentFormatFor(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return "application/pdf"
	case ".ps":
		return "application/postscript"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	default:
		return "application/octet-stream"
	}
}

func parseOption(raw string) (name string, tag goipp.Tag, value goipp.Value, err error) {
	parts := strings.SplitN(raw, "=", 2)
	if len(parts) != 2 || parts[0] == "" {
		return "", 0, nil, argError("malformed --option " + raw + " (want key=value)")
	}
	tag, value = ippop.ParseOptionValue(parts[1])
	return parts[0], tag, value, nil
}
