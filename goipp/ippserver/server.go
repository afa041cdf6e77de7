// Package ippserver routes decoded IPP requests to per-operation
// handlers and serves them over HTTP.
package ippserver

import (
	"io"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/inkjetcore/goipp/goipp"
)

// Dispatcher handles one decoded IPP request per operation. Each
// method returns the complete response message, plus the status it
// carries (used for logging; the response's own Code is what goes on
// the wire).
type Dispatcher interface {
	PrintJob(req *goipp.Message) (*goipp.Message, goipp.Status)
	ValidateJob(req *goipp.Message) (*goipp.Message, goipp.Status)
	CreateJob(req *goipp.Message) (*goipp.Message, goipp.Status)
	SendDocument(req *goipp.Message) (*goipp.Message, goipp.Status)
	CancelJob(req *goipp.Message) (*goipp.Message, goipp.Status)
	GetJobAttributes(req *goipp.Message) (*goipp.Message, goipp.Status)
	GetJobs(req *goipp.Message) (*goipp.Message, goipp.Status)
	GetPrinterAttributes(req *goipp.Message) (*goipp.Message, goipp.Status)
	PurgeJobs(req *goipp.Message) (*goipp.Message, goipp.Status)
	CUPSGetPrinters(req *goipp.Message) (*goipp.Message, goipp.Status)
	CUPSDeletePrinter(req *goipp.Message) (*goipp.Message, goipp.Status)
}

// UnimplementedDispatcher embeds into a concrete Dispatcher so that an
// implementation only needs to override the operations it supports;
// everything else answers server-error-operation-not-supported.
type UnimplementedDispatcher struct{}

func (UnimplementedDispatcher) notSupported(req *goipp.Message) (*goipp.Message, goipp.Status) {
	return goipp.NewResponse(req.Version, goipp.StatusErrorOperationNotSupported, req.RequestID), goipp.StatusErrorOperationNotSupported
}

func (d UnimplementedDispatcher) PrintJob(req *goipp.Message) (*goipp.Message, goipp.Status) {
	return d.notSupported(req)
}
func (d UnimplementedDispatcher) ValidateJob(req *goipp.Message) (*goipp.Message, goipp.Status) {
	return d.notSupported(req)
}
func (d UnimplementedDispatcher) CreateJob(req *goipp.Message) (*goipp.Message, goipp.Status) {
	return d.notSupported(req)
}
func (d UnimplementedDispatcher) SendDocument(req *goipp.Message) (*goipp.Message, goipp.Status) {
	return d.notSupported(req)
}
func (d UnimplementedDispatcher) CancelJob(req *goipp.Message) (*goipp.Message, goipp.Status) {
	return d.notSupported(req)
}
func (d UnimplementedDispatcher) GetJobAttributes(req *goipp.Message) (*goipp.Message, goipp.Status) {
	return d.notSupported(req)
}
func (d UnimplementedDispatcher) GetJobs(req *goipp.Message) (*goipp.Message, goipp.Status) {
	return d.notSupported(req)
}
func (d UnimplementedDispatcher) GetPrinterAttributes(req *goipp.Message) (*goipp.Message, goipp.Status) {
	return d.notSupported(req)
}
func (d UnimplementedDispatcher) PurgeJobs(req *goipp.Message) (*goipp.Message, goipp.Status) {
	return d.notSupported(req)
}
func (d UnimplementedDispatcher) CUPSGetPrinters(req *goipp.Message) (*goipp.Message, goipp.Status) {
	return d.notSupported(req)
}
func (d UnimplementedDispatcher) CUPSDeletePrinter(req *goipp.Message) (*goipp.Message, goipp.Status) {
	return d.notSupported(req)
}

// Server serves IPP requests over HTTP, decoding the body and routing
// it to a Dispatcher.
type Server struct {
	Dispatcher Dispatcher
	Log        zerolog.Logger
}

// New returns a Server wrapping the given Dispatcher.
func New(d Dispatcher) *Server {
	return &Server{Dispatcher: d, Log: log.Logger}
}

// HandleRequest routes an already-decoded IPP request to the matching
// Dispatcher method, returning the response message to encode.
func (s *Server) HandleRequest(req *goipp.Message) *goipp.Message {
	var resp *goipp.Message
	var status goipp.Status

	switch goipp.Op(req.Code) {
	case goipp.OpPrintJob:
		resp, status = s.Dispatcher.PrintJob(req)
	case goipp.OpValidateJob:
		resp, status = s.Dispatcher.ValidateJob(req)
	case goipp.OpCreateJob:
		resp, status = s.Dispatcher.CreateJob(req)
	case goipp.OpSendDocument:
		resp, status = s.Dispatcher.SendDocument(req)
	case goipp.OpCancelJob:
		resp, status = s.Dispatcher.CancelJob(req)
	case goipp.OpGetJobAttributes:
		resp, status = s.Dispatcher.GetJobAttributes(req)
	case goipp.OpGetJobs:
		resp, status = s.Dispatcher.GetJobs(req)
	case goipp.OpGetPrinterAttributes:
		resp, status = s.Dispatcher.GetPrinterAttributes(req)
	case goipp.OpPurgeJobs:
		resp, status = s.Dispatcher.PurgeJobs(req)
	case goipp.OpCupsGetPrinters:
		resp, status = s.Dispatcher.CUPSGetPrinters(req)
	case goipp.OpCupsDeletePrinter:
		resp, status = s.Dispatcher.CUPSDeletePrinter(req)
	default:
		s.Log.Warn().Str("op", goipp.Op(req.Code).String()).Msg("unsupported operation")
		resp = goipp.NewResponse(req.Version, goipp.StatusErrorOperationNotSupported, req.RequestID)
		status = goipp.StatusErrorOperationNotSupported
	}

	s.Log.Debug().
		Str("op", goipp.Op(req.Code).String()).
		Str("status", status.String()).
		Uint32("request-id", req.RequestID).
		Msg("handled ipp request")

	return resp
}

// ServeHTTP implements http.Handler: it reads the full request body,
// decodes it as an IPP message, dispatches it, and writes back the
// encoded response.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		s.Log.Error().Err(err).Msg("failed to read request body")
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	var req goipp.Message
	if err := req.DecodeBytesEx(body, goipp.DecoderOptions{Context: r.Context()}); err != nil {
		s.Log.Error().Err(err).Msg("failed to decode ipp request")
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	resp := s.HandleRequest(&req)

	data, err := resp.EncodeBytes()
	if err != nil {
		s.Log.Error().Err(err).Msg("failed to encode ipp response")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", goipp.ContentType)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
