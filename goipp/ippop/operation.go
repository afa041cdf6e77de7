// Package ippop builds IPP request messages for the operations a
// printer client needs: Print-Job, Validate-Job, Create-Job,
// Send-Document, Cancel-Job, Get-Job-Attributes, Get-Jobs,
// Get-Printer-Attributes, Purge-Jobs, and the CUPS vendor extensions
// CUPS-Get-Printers and CUPS-Delete-Printer.
//
// Each operation is a plain struct with public fields for its
// documented attributes; Build turns it into a wire-ready
// *goipp.Message. This package never talks to the network itself —
// that is ippclient's job.
package ippop

import (
	"fmt"
	"io"
	"strconv"

	"github.com/inkjetcore/goipp/goipp"
)

// DefaultCharset and DefaultNaturalLanguage are the values every
// operation's attributes-charset/attributes-natural-language header
// attributes carry unless the caller overrides them.
const (
	DefaultCharset         = "utf-8"
	DefaultNaturalLanguage = "en"
)

// Operation builds a request Message for a given request ID.
type Operation interface {
	Build(requestID uint32) *goipp.Message
}

// AttributeError reports a missing or wrong-typed attribute lookup
// against a response message, e.g. while extracting printer-state out
// of a Get-Printer-Attributes response.
type AttributeError struct {
	Name string
	Err  error
}

func (e *AttributeError) Error() string {
	return fmt.Sprintf("attribute %q: %s", e.Name, e.Err)
}
func (e *AttributeError) Unwrap() error { return e.Err }

// ParseOptionValue turns a raw CLI option value into the IPP value
// type that best represents it: an integer string becomes Integer, a
// literal "true"/"false" becomes Boolean, and anything else becomes a
// Keyword. This mirrors the option-parsing behavior of the original
// command-line client's --option flag.
func ParseOptionValue(raw string) (goipp.Tag, goipp.Value) {
	if n, err := strconv.Atoi(raw); err == nil {
		return goipp.TagInteger, goipp.Integer(n)
	}
	if raw == "true" {
		return goipp.TagBoolean, goipp.Boolean(true)
	}
	if raw == "false" {
		return goipp.TagBoolean, goipp.Boolean(false)
	}
	return goipp.TagKeyword, goipp.String(raw)
}

// jobAttributes is embedded by every operation that carries
// Job-Attributes, providing the repeatable --option key=value
// mechanism used by the CLI and any other caller building a request
// programmatically.
type jobAttributes struct {
	extra goipp.Attributes
}

// SetJobAttribute adds (or replaces) a Job-Attributes attribute.
func (j *jobAttributes) SetJobAttribute(name string, tag goipp.Tag, value goipp.Value) {
	j.extra.Set(name, tag, value)
}

func (j *jobAttributes) apply(m *goipp.Message) {
	if len(j.extra) == 0 {
		return
	}
	job := m.Job()
	for _, attr := range j.extra {
		job.SetValues(attr.Name, attr.Values)
	}
}

// PrintJob builds a Print-Job request. Payload, if non-nil, is
// encoded as the message's Payload (the document bytes that follow
// the attribute groups on the wire).
type PrintJob struct {
	jobAttributes

	PrinterURI     string
	UserName       string
	JobName        string
	DocumentFormat string
	Copies         int
	Payload        io.Reader
}

func (op *PrintJob) Build(requestID uint32) *goipp.Message {
	m := goipp.NewRequest(goipp.DefaultVersion, goipp.OpPrintJob, requestID)
	m.InitRequestHeaders(DefaultCharset, DefaultNaturalLanguage, "printer-uri", op.PrinterURI)

	opAttrs := m.Operation()
	if op.UserName != "" {
		opAttrs.Set("requesting-user-name", goipp.TagName, goipp.String(op.UserName))
	}
	if op.JobName != "" {
		opAttrs.Set("job-name", goipp.TagName, goipp.String(op.JobName))
	}
	if op.DocumentFormat != "" {
		opAttrs.Set("document-format", goipp.TagMimeType, goipp.String(op.DocumentFormat))
	}
	if op.Copies > 0 {
		m.Job().Set("copies", goipp.TagInteger, goipp.Integer(op.Copies))
	}

	op.apply(m)

	if op.Payload != nil {
		m.Payload = op.Payload
	}

	return m
}

// ValidateJob builds a Validate-Job request: identical attributes to
// Print-Job, without a document payload.
type ValidateJob struct {
	jobAttributes

	PrinterURI     string
	UserName       string
	JobName        string
	DocumentFormat string
}

func (op *ValidateJob) Build(requestID uint32) *goipp.Message {
	m := goipp.NewRequest(goipp.DefaultVersion, goipp.OpValidateJob, requestID)
	m.InitRequestHeaders(DefaultCharset, DefaultNaturalLanguage, "printer-uri", op.PrinterURI)

	opAttrs := m.Operation()
	if op.UserName != "" {
		opAttrs.Set("requesting-user-name", goipp.TagName, goipp.String(op.UserName))
	}
	if op.JobName != "" {
		opAttrs.Set("job-name", goipp.TagName, goipp.String(op.JobName))
	}
	if op.DocumentFormat != "" {
		opAttrs.Set("document-format", goipp.TagMimeType, goipp.String(op.DocumentFormat))
	}

	op.apply(m)
	return m
}

// CreateJob builds a Create-Job request, the first half of the
// Create-Job/Send-Document two-step submission sequence.
type CreateJob struct {
	jobAttributes

	PrinterURI string
	UserName   string
	JobName    string
}

func (op *CreateJob) Build(requestID uint32) *goipp.Message {
	m := goipp.NewRequest(goipp.DefaultVersion, goipp.OpCreateJob, requestID)
	m.InitRequestHeaders(DefaultCharset, DefaultNaturalLanguage, "printer-uri", op.PrinterURI)

	opAttrs := m.Operation()
	if op.UserName != "" {
		opAttrs.Set("requesting-user-name", goipp.TagName, goipp.String(op.UserName))
	}
	if op.JobName != "" {
		opAttrs.Set("job-name", goipp.TagName, goipp.String(op.JobName))
	}

	op.apply(m)
	return m
}

// SendDocument builds a Send-Document request, carrying the document
// bytes for a job previously created by Create-Job.
type SendDocument struct {
	PrinterURI     string
	JobID          int
	UserName       string
	DocumentFormat string
	LastDocument   bool
	Payload        io.Reader
}

func (op *SendDocument) Build(requestID uint32) *goipp.Message {
	m := goipp.NewRequest(goipp.DefaultVersion, goipp.OpSendDocument, requestID)
	m.InitRequestHeaders(DefaultCharset, DefaultNaturalLanguage, "printer-uri", op.PrinterURI)

	opAttrs := m.Operation()
	opAttrs.Set("job-id", goipp.TagInteger, goipp.Integer(op.JobID))
	if op.UserName != "" {
		opAttrs.Set("requesting-user-name", goipp.TagName, goipp.String(op.UserName))
	}
	if op.DocumentFormat != "" {
		opAttrs.Set("document-format", goipp.TagMimeType, goipp.String(op.DocumentFormat))
	}
	opAttrs.Set("last-document", goipp.TagBoolean, goipp.Boolean(op.LastDocument))

	if op.Payload != nil {
		m.Payload = op.Payload
	}
	return m
}

// CancelJob builds a Cancel-Job request.
type CancelJob struct {
	PrinterURI string
	JobID      int
	UserName   string
}

func (op *CancelJob) Build(requestID uint32) *goipp.Message {
	m := goipp.NewRequest(goipp.DefaultVersion, goipp.OpCancelJob, requestID)
	m.InitRequestHeaders(DefaultCharset, DefaultNaturalLanguage, "printer-uri", op.PrinterURI)

	opAttrs := m.Operation()
	opAttrs.Set("job-id", goipp.TagInteger, goipp.Integer(op.JobID))
	if op.UserName != "" {
		opAttrs.Set("requesting-user-name", goipp.TagName, goipp.String(op.UserName))
	}
	return m
}

// GetJobAttributes builds a Get-Job-Attributes request.
type GetJobAttributes struct {
	PrinterURI          string
	JobID               int
	RequestedAttributes []string
}

func (op *GetJobAttributes) Build(requestID uint32) *goipp.Message {
	m := goipp.NewRequest(goipp.DefaultVersion, goipp.OpGetJobAttributes, requestID)
	m.InitRequestHeaders(DefaultCharset, DefaultNaturalLanguage, "printer-uri", op.PrinterURI)

	opAttrs := m.Operation()
	opAttrs.Set("job-id", goipp.TagInteger, goipp.Integer(op.JobID))
	setRequestedAttributes(opAttrs, op.RequestedAttributes)
	return m
}

// GetJobs builds a Get-Jobs request.
type GetJobs struct {
	PrinterURI          string
	WhichJobs           string // "completed", "not-completed", ""
	MyJobs              bool
	Limit               int
	RequestedAttributes []string
}

func (op *GetJobs) Build(requestID uint32) *goipp.Message {
	m := goipp.NewRequest(goipp.DefaultVersion, goipp.OpGetJobs, requestID)
	m.InitRequestHeaders(DefaultCharset, DefaultNaturalLanguage, "printer-uri", op.PrinterURI)

	opAttrs := m.Operation()
	if op.Limit > 0 {
		opAttrs.Set("limit", goipp.TagInteger, goipp.Integer(op.Limit))
	}
	if op.WhichJobs != "" {
		opAttrs.Set("which-jobs", goipp.TagKeyword, goipp.String(op.WhichJobs))
	}
	if op.MyJobs {
		opAttrs.Set("my-jobs", goipp.TagBoolean, goipp.Boolean(true))
	}
	setRequestedAttributes(opAttrs, op.RequestedAttributes)
	return m
}

// GetPrinterAttributes builds a Get-Printer-Attributes request.
type GetPrinterAttributes struct {
	PrinterURI          string
	RequestedAttributes []string
}

func (op *GetPrinterAttributes) Build(requestID uint32) *goipp.Message {
	m := goipp.NewRequest(goipp.DefaultVersion, goipp.OpGetPrinterAttributes, requestID)
	m.InitRequestHeaders(DefaultCharset, DefaultNaturalLanguage, "printer-uri", op.PrinterURI)
	setRequestedAttributes(m.Operation(), op.RequestedAttributes)
	return m
}

// PurgeJobs builds a Purge-Jobs request.
type PurgeJobs struct {
	PrinterURI string
}

func (op *PurgeJobs) Build(requestID uint32) *goipp.Message {
	m := goipp.NewRequest(goipp.DefaultVersion, goipp.OpPurgeJobs, requestID)
	m.InitRequestHeaders(DefaultCharset, DefaultNaturalLanguage, "printer-uri", op.PrinterURI)
	return m
}

// CUPSGetPrinters builds a CUPS-Get-Printers request, which (unlike
// the RFC 8011 operations) carries no target printer-uri: it enumerates
// every printer the server knows about.
type CUPSGetPrinters struct {
	RequestedAttributes []string
}

func (op *CUPSGetPrinters) Build(requestID uint32) *goipp.Message {
	m := goipp.NewRequest(goipp.DefaultVersion, goipp.OpCupsGetPrinters, requestID)
	m.InitRequestHeaders(DefaultCharset, DefaultNaturalLanguage, "", "")
	setRequestedAttributes(m.Operation(), op.RequestedAttributes)
	return m
}

// CUPSDeletePrinter builds a CUPS-Delete-Printer request.
type CUPSDeletePrinter struct {
	PrinterURI string
}

func (op *CUPSDeletePrinter) Build(requestID uint32) *goipp.Message {
	m := goipp.NewRequest(goipp.DefaultVersion, goipp.OpCupsDeletePrinter, requestID)
	m.InitRequestHeaders(DefaultCharset, DefaultNaturalLanguage, "printer-uri", op.PrinterURI)
	return m
}

func setRequestedAttributes(attrs *goipp.Attributes, names []string) {
	if len(names) == 0 {
		return
	}
	var values goipp.Values
	for _, name := range names {
		values.Add(goipp.TagKeyword, goipp.String(name))
	}
	attrs.SetValues("requested-attributes", values)
}
