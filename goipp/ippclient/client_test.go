package ippclient

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/inkjetcore/goipp/goipp"
)

func TestTargetURL(t *testing.T) {
	tests := []struct{ in, want string }{
		{"ipp://printer.local/ipp/print", "http://printer.local:631/ipp/print"},
		{"ipps://printer.local:8443/ipp/print", "https://printer.local:8443/ipp/print"},
		{"http://printer.local:9000/ipp/print", "http://printer.local:9000/ipp/print"},
	}
	for _, test := range tests {
		got, err := targetURL(test.in)
		if err != nil {
			t.Errorf("targetURL(%q): %s", test.in, err)
			continue
		}
		if got != test.want {
			t.Errorf("targetURL(%q) = %q, want %q", test.in, got, test.want)
		}
	}
}

func TestTargetURLRejectsUnknownScheme(t *testing.T) {
	if _, err := targetURL("ftp://printer.local/print"); err == nil {
		t.Error("expected error for unsupported scheme")
	}
}

func TestClientSendRoundTrip(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ct := r.Header.Get("Content-Type"); ct != goipp.ContentType {
			t.Errorf("unexpected Content-Type: %s", ct)
		}

		var req goipp.Message
		body, _ := io.ReadAll(r.Body)
		if err := req.DecodeBytes(body); err != nil {
			t.Fatalf("server: decode request: %s", err)
		}

		resp := goipp.NewResponse(goipp.DefaultVersion, goipp.StatusOk, req.RequestID)
		resp.Operation().Set("attributes-charset", goipp.TagCharset, goipp.String("utf-8"))
		resp.Operation().Set("attributes-natural-language", goipp.TagLanguage, goipp.String("en"))

		data, err := resp.EncodeBytes()
		if err != nil {
			t.Fatalf("server: encode response: %s", err)
		}
		w.Header().Set("Content-Type", goipp.ContentType)
		w.Write(data)
	}))
	defer srv.Close()

	c := New()
	req := goipp.NewRequest(goipp.DefaultVersion, goipp.OpGetPrinterAttributes, 9)
	req.InitRequestHeaders("utf-8", "en", "printer-uri", srv.URL)

	resp, err := c.SendRequest(context.Background(), srv.URL, req)
	if err != nil {
		t.Fatalf("SendRequest: %s", err)
	}
	if resp.RequestID != 9 {
		t.Errorf("request-id mismatch: got %d", resp.RequestID)
	}
	if goipp.Status(resp.Code) != goipp.StatusOk {
		t.Errorf("unexpected status: %s", goipp.Status(resp.Code))
	}
}

func TestClientSendRequestStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req goipp.Message
		body, _ := io.ReadAll(r.Body)
		req.DecodeBytes(body)

		resp := goipp.NewResponse(goipp.DefaultVersion, goipp.StatusErrorNotFound, req.RequestID)
		data, _ := resp.EncodeBytes()
		w.Write(data)
	}))
	defer srv.Close()

	c := New()
	req := goipp.NewRequest(goipp.DefaultVersion, goipp.OpGetJobAttributes, 1)
	req.InitRequestHeaders("utf-8", "en", "printer-uri", srv.URL)

	_, err := c.SendRequest(context.Background(), srv.URL, req)
	if err == nil {
		t.Fatal("expected a status error")
	}
	statusErr, ok := err.(*StatusError)
	if !ok {
		t.Fatalf("expected *StatusError, got %T", err)
	}
	if statusErr.Status != goipp.StatusErrorNotFound {
		t.Errorf("unexpected status: %s", statusErr.Status)
	}
}

func TestCheckPrinterStateBlocksOnReason(t *testing.T) {
	resp := goipp.NewResponse(goipp.DefaultVersion, goipp.StatusOk, 1)
	printer := resp.Printer()
	printer.Set("printer-state", goipp.TagEnum, goipp.Integer(4))
	var reasons goipp.Values
	reasons.Add(goipp.TagKeyword, goipp.String("media-jam"))
	printer.SetValues("printer-state-reasons", reasons)

	if err := CheckPrinterState(resp); err == nil {
		t.Fatal("expected a printer state error")
	}
}

func TestCheckPrinterStateOK(t *testing.T) {
	resp := goipp.NewResponse(goipp.DefaultVersion, goipp.StatusOk, 1)
	printer := resp.Printer()
	printer.Set("printer-state", goipp.TagEnum, goipp.Integer(3))
	var reasons goipp.Values
	reasons.Add(goipp.TagKeyword, goipp.String("none"))
	printer.SetValues("printer-state-reasons", reasons)

	if err := CheckPrinterState(resp); err != nil {
		t.Errorf("unexpected error: %s", err)
	}
}
