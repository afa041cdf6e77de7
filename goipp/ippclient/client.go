// Package ippclient implements the HTTP transport side of an IPP
// client: translating ipp/ipps URIs to http/https, POSTing an encoded
// goipp.Message, and decoding the response.
package ippclient

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/inkjetcore/goipp/goipp"
)

// printerStateStopped and the set of printer-state-reasons values
// that indicate a printer cannot currently accept a job, per the
// printer-state pre-check run before Print-Job.
const printerStateStopped = 5

var blockingStateReasons = map[string]bool{
	"media-jam":           true,
	"toner-empty":         true,
	"spool-area-full":     true,
	"cover-open":          true,
	"door-open":           true,
	"input-tray-missing":  true,
	"output-tray-missing": true,
	"marker-supply-empty": true,
	"paused":              true,
	"shutdown":            true,
}

// statusErrorThreshold is the boundary above which an IPP status code
// represents an error response rather than a successful or
// informational one (RFC 8011 §13.1: 0x0000-0x00FF are successful).
const statusErrorThreshold = 0x00ff

const maxRedirects = 10

// TransportError wraps a failure in the underlying HTTP exchange
// (DNS, dial, TLS, a non-2xx HTTP status, or a read/write failure).
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string { return fmt.Sprintf("ipp transport: %s: %s", e.Op, e.Err) }
func (e *TransportError) Unwrap() error { return e.Err }

// StatusError reports an IPP-level error response: the HTTP exchange
// succeeded, but the printer's Status code indicates failure.
type StatusError struct {
	Status goipp.Status
}

func (e *StatusError) Error() string { return fmt.Sprintf("ipp: %s", e.Status) }

// PrinterStateError is returned by the printer-state pre-check when a
// printer reports it is stopped or carries a blocking
// printer-state-reasons value.
type PrinterStateError struct {
	State   int
	Reasons []string
}

func (e *PrinterStateError) Error() string {
	return fmt.Sprintf("printer is not accepting jobs (state=%d, reasons=%v)", e.State, e.Reasons)
}

// Client sends IPP requests over HTTP/HTTPS.
type Client struct {
	HTTPClient      *http.Client
	IgnoreTLSErrors bool
	Timeout         time.Duration
	Log             zerolog.Logger
}

// New returns a Client with the connection defaults the original
// reference client uses: a 10-second dial timeout and redirect
// following capped at 10 hops.
func New() *Client {
	return &Client{
		Timeout: 10 * time.Second,
		Log:     log.Logger,
	}
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}

	timeout := c.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	dialer := &net.Dialer{Timeout: timeout}
	transport := &http.Transport{
		DialContext: dialer.DialContext,
		TLSClientConfig: &tls.Config{
			InsecureSkipVerify: c.IgnoreTLSErrors,
		},
	}

	return &http.Client{
		Transport: transport,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if len(via) >= maxRedirects {
				return fmt.Errorf("stopped after %d redirects", maxRedirects)
			}
			return nil
		},
	}
}

// targetURL translates an ipp(s):// printer URI into the http(s)://
// URL the request is actually POSTed to: ipp -> http, ipps -> https,
// with the RFC 8010 default port of 631 filled in when the URI omits
// one. This is distinct from goipp.CanonicalizePrinterURI, which
// rewrites the printer-uri *attribute value* rather than the
// transport address.
func targetURL(printerURI string) (string, error) {
	u, err := url.Parse(printerURI)
	if err != nil {
		return "", fmt.Errorf("invalid printer URI: %w", err)
	}

	switch strings.ToLower(u.Scheme) {
	case "ipp":
		u.Scheme = "http"
	case "ipps":
		u.Scheme = "https"
	case "http", "https":
		// already a transport URL
	default:
		return "", fmt.Errorf("unsupported URI scheme %q", u.Scheme)
	}

	if u.Port() == "" {
		u.Host = net.JoinHostPort(u.Hostname(), "631")
	}

	return u.String(), nil
}

// Send encodes req, POSTs it to printerURI, and decodes the response.
// It does not inspect the response status; use SendRequest for that.
func (c *Client) Send(ctx context.Context, printerURI string, req *goipp.Message) (*goipp.Message, error) {
	target, err := targetURL(printerURI)
	if err != nil {
		return nil, &TransportError{Op: "resolve-url", Err: err}
	}

	body, err := req.EncodeBytes()
	if err != nil {
		return nil, &TransportError{Op: "encode", Err: err}
	}

	c.Log.Debug().
		Str("op", goipp.Op(req.Code).String()).
		Uint32("request-id", req.RequestID).
		Str("url", target).
		Msg("sending ipp request")

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, target, bytes.NewReader(body))
	if err != nil {
		return nil, &TransportError{Op: "build-request", Err: err}
	}
	httpReq.Header.Set("Content-Type", goipp.ContentType)

	resp, err := c.httpClient().Do(httpReq)
	if err != nil {
		return nil, &TransportError{Op: "do-request", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &TransportError{Op: "http-status", Err: fmt.Errorf("unexpected HTTP status %s", resp.Status)}
	}

	respData, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Op: "read-body", Err: err}
	}

	var respMsg goipp.Message
	if err := respMsg.DecodeBytes(respData); err != nil {
		return nil, &TransportError{Op: "decode", Err: err}
	}

	c.Log.Debug().
		Str("status", goipp.Status(respMsg.Code).String()).
		Uint32("request-id", respMsg.RequestID).
		Msg("received ipp response")

	return &respMsg, nil
}

// SendRequest is Send plus an IPP-level status check: a response
// whose Status is above the successful range is returned alongside a
// *StatusError, so callers that only care about success/failure can
// check the error and ignore the response.
func (c *Client) SendRequest(ctx context.Context, printerURI string, req *goipp.Message) (*goipp.Message, error) {
	resp, err := c.Send(ctx, printerURI, req)
	if err != nil {
		return nil, err
	}

	if uint16(resp.Code) > statusErrorThreshold {
		c.Log.Warn().
			Str("status", goipp.Status(resp.Code).String()).
			Msg("printer returned an error status")
		return resp, &StatusError{Status: goipp.Status(resp.Code)}
	}

	return resp, nil
}

// CheckPrinterState inspects a Get-Printer-Attributes response and
// returns a *PrinterStateError if the printer is stopped or reports a
// printer-state-reasons value that blocks new jobs.
func CheckPrinterState(resp *goipp.Message) error {
	printer := resp.Groups.First(goipp.TagPrinterGroup)

	state, _ := printer.Int("printer-state")
	if state == printerStateStopped {
		reasons := stateReasons(printer)
		return &PrinterStateError{State: state, Reasons: reasons}
	}

	reasons := stateReasons(printer)
	for _, r := range reasons {
		r = strings.TrimSuffix(r, "-warning")
		r = strings.TrimSuffix(r, "-report")
		if blockingStateReasons[r] {
			return &PrinterStateError{State: state, Reasons: reasons}
		}
	}

	return nil
}

func stateReasons(printer goipp.Attributes) []string {
	a, ok := printer.Get("printer-state-reasons")
	if !ok {
		return nil
	}
	reasons := make([]string, len(a.Values))
	for i, v := range a.Values {
		reasons[i] = v.V.String()
	}
	return reasons
}
