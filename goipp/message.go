// IPP protocol messages.

package goipp

import (
	"bytes"
	"fmt"
	"io"
	"net/url"
)

// Code carries either an Op (request) or a Status (response). The
// wire representation of both is the same 16-bit field; which one it
// means is a property of whether the Message is a request or a
// response, not of the field itself.
type Code uint16

// Version is a packed IPP protocol version: the high byte is the
// major version, the low byte is the minor version.
type Version uint16

// DefaultVersion is IPP/2.0, the version new requests should use
// unless a specific printer is known to require otherwise.
const DefaultVersion Version = 0x0200

// MakeVersion packs a major.minor version pair.
func MakeVersion(major, minor uint8) Version {
	return Version(major)<<8 | Version(minor)
}

// Major returns the major version number.
func (v Version) Major() uint8 { return uint8(v >> 8) }

// Minor returns the minor version number.
func (v Version) Minor() uint8 { return uint8(v) }

func (v Version) String() string {
	return fmt.Sprintf("%d.%d", v.Major(), v.Minor())
}

// Message is a single IPP message: either a client request or a
// server response, they share one wire format. Code holds an Op for a
// request and a Status for a response — the caller knows which, since
// it knows which one it built or is about to interpret.
type Message struct {
	Version   Version
	Code      Code
	RequestID uint32

	Groups Groups

	// Payload is the document data that may follow the
	// end-of-attributes tag (RFC 8010 §3.1.1), e.g. the document
	// bytes of a Print-Job request. A message built in memory leaves
	// it nil unless the caller sets it; Decode always sets it to the
	// remainder of its input, which may be empty. Reading from
	// Payload continues pulling bytes from the same underlying
	// io.Reader the message was decoded from, so it must be fully
	// drained (or discarded) before the connection is reused.
	Payload io.Reader
}

// NewRequest creates a new, empty request message. Use DefaultVersion
// unless the target printer is known to need a different version.
func NewRequest(v Version, op Op, id uint32) *Message {
	return &Message{Version: v, Code: Code(op), RequestID: id}
}

// NewResponse creates a new, empty response message.
func NewResponse(v Version, status Status, id uint32) *Message {
	return &Message{Version: v, Code: Code(status), RequestID: id}
}

// Operation returns the request's Operation-Attributes group,
// creating it if absent. Since a message has exactly one such group,
// repeated calls always return the same group.
func (m *Message) Operation() *Attributes { return m.Groups.EnsureFirst(TagOperationGroup) }

// Job returns the first Job-Attributes group, creating it if absent.
func (m *Message) Job() *Attributes { return m.Groups.EnsureFirst(TagJobGroup) }

// Printer returns the first Printer-Attributes group, creating it if
// absent.
func (m *Message) Printer() *Attributes { return m.Groups.EnsureFirst(TagPrinterGroup) }

// Unsupported returns the Unsupported-Attributes group, creating it
// if absent.
func (m *Message) Unsupported() *Attributes { return m.Groups.EnsureFirst(TagUnsupportedGroup) }

// NewJobGroup appends a fresh, empty Job-Attributes group and returns
// it. Used by servers building a Get-Jobs response, which carries one
// Job group per job rather than a single merged group.
func (m *Message) NewJobGroup() *Attributes { return m.Groups.Push(TagJobGroup) }

// InitRequestHeaders populates the charset, natural-language and
// target-uri attributes that RFC 8011 §4.1.4 requires to appear
// first, in that order, in every request's Operation-Attributes
// group. uriName is either "printer-uri" or "job-uri" depending on
// the operation.
func (m *Message) InitRequestHeaders(charset, naturalLanguage, uriName, uri string) {
	op := m.Operation()
	op.Set("attributes-charset", TagCharset, String(charset))
	op.Set("attributes-natural-language", TagLanguage, String(naturalLanguage))
	if uriName != "" {
		op.Set(uriName, TagURI, String(uri))
	}
}

// CanonicalizePrinterURI rewrites a printer/job URI into the form IPP
// attributes carry on the wire: scheme forced to "ipp", userinfo and
// query dropped, host/port/path preserved. This is distinct from the
// transport-level scheme translation a client performs when it
// actually dials the printer (ipp/ipps -> http/https): the attribute
// value itself is always ipp:, regardless of which transport carried
// the request.
func CanonicalizePrinterURI(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("invalid printer URI: %w", err)
	}
	u.Scheme = "ipp"
	u.User = nil
	u.RawQuery = ""
	u.Fragment = ""
	return u.String(), nil
}

// Equal reports whether two messages have the same header and the
// same groups. Group order, and attribute order within a group, are
// not compared (see Groups.Equal and Attributes.Equal); Payload is
// not compared.
func (m Message) Equal(m2 Message) bool {
	return m.Version == m2.Version &&
		m.Code == m2.Code &&
		m.RequestID == m2.RequestID &&
		m.Groups.Equal(m2.Groups)
}

// Reset restores the message to its zero value.
func (m *Message) Reset() {
	*m = Message{}
}

// Encode writes the message, including payload if set, to out.
func (m *Message) Encode(out io.Writer) error {
	enc := messageEncoder{out: out}
	return enc.encode(m)
}

// EncodeBytes encodes the message to a byte slice.
func (m *Message) EncodeBytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := m.Encode(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decode reads a message from in. Any bytes remaining in in after the
// end-of-attributes tag become m.Payload.
func (m *Message) Decode(in io.Reader) error {
	return m.DecodeEx(in, DecoderOptions{})
}

// DecodeEx reads a message from in, with explicit DecoderOptions.
func (m *Message) DecodeEx(in io.Reader, opt DecoderOptions) error {
	dec := messageDecoder{in: in, opt: opt}
	m.Reset()
	return dec.decode(m)
}

// DecodeBytes decodes a message from a byte slice. Since the whole
// message is already in memory, the payload (if any) is captured into
// m.Payload as a *bytes.Reader rather than left pointing at a stream.
func (m *Message) DecodeBytes(data []byte) error {
	return m.Decode(bytes.NewReader(data))
}

// DecodeBytesEx decodes a message from a byte slice, with explicit
// DecoderOptions.
func (m *Message) DecodeBytesEx(data []byte, opt DecoderOptions) error {
	return m.DecodeEx(bytes.NewReader(data), opt)
}

const msgPrintIndent = "  "

// Print pretty-prints the message for debugging. request selects
// whether Code is rendered as an Op or a Status.
func (m *Message) Print(out io.Writer, request bool) {
	fmt.Fprint(out, "{\n")
	fmt.Fprintf(out, msgPrintIndent+"VERSION %s\n", m.Version)

	if request {
		fmt.Fprintf(out, msgPrintIndent+"OPERATION %s\n", Op(m.Code))
	} else {
		fmt.Fprintf(out, msgPrintIndent+"STATUS %s\n", Status(m.Code))
	}

	for _, grp := range m.Groups {
		fmt.Fprintf(out, "\n"+msgPrintIndent+"GROUP %s\n", grp.Tag)
		for _, attr := range grp.Attrs {
			printAttribute(out, attr, 1)
			fmt.Fprint(out, "\n")
		}
	}

	fmt.Fprint(out, "}\n")
}

// printAttribute pretty-prints a single attribute, recursing into
// Collection values.
func printAttribute(out io.Writer, attr Attribute, indent int) {
	printIndent(out, indent)
	fmt.Fprintf(out, "ATTR %q", attr.Name)

	tag := TagZero
	for _, val := range attr.Values {
		if val.T != tag {
			fmt.Fprintf(out, " %s:", val.T)
			tag = val.T
		}

		if collection, ok := val.V.(Collection); ok {
			fmt.Fprint(out, " {\n")
			for _, member := range collection {
				printAttribute(out, member, indent+1)
				fmt.Fprint(out, "\n")
			}
			printIndent(out, indent)
			fmt.Fprint(out, "}")
		} else {
			fmt.Fprintf(out, " %s", val.V)
		}
	}
}

func printIndent(out io.Writer, indent int) {
	for i := 0; i < indent; i++ {
		fmt.Fprint(out, msgPrintIndent)
	}
}
