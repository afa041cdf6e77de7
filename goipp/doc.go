/*
Package goipp implements the IPP core protocol, as defined by RFC 8010
(encoding) and RFC 8011 (operational model), plus a handful of CUPS
vendor extensions.

It does not implement high-level operations such as "print a document"
or "cancel a print job" — those live in the ippop, ippclient and
ippserver packages built on top of this one. This package's scope is
limited to the value model, attribute groups, and the binary wire
codec.

IPP uses a simple request/response model. A Message represents either
side of that exchange; its Code field holds an Op for requests and a
Status for responses.

Example:

	package main

	import (
		"bytes"
		"net/http"
		"os"

		"github.com/inkjetcore/goipp/goipp"
	)

	const uri = "http://192.168.1.102:631"

	func makeRequest() ([]byte, error) {
		m := goipp.NewRequest(goipp.DefaultVersion, goipp.OpGetPrinterAttributes, 1)
		op := m.Operation()
		op.Set("attributes-charset", goipp.TagCharset, goipp.String("utf-8"))
		op.Set("attributes-natural-language", goipp.TagLanguage, goipp.String("en"))
		op.Set("printer-uri", goipp.TagURI, goipp.String(uri))
		op.Set("requested-attributes", goipp.TagKeyword, goipp.String("all"))

		return m.EncodeBytes()
	}

	func main() {
		request, err := makeRequest()
		if err != nil {
			panic(err)
		}

		resp, err := http.Post(uri, goipp.ContentType, bytes.NewBuffer(request))
		if err != nil {
			panic(err)
		}

		var respMsg goipp.Message
		if err := respMsg.Decode(resp.Body); err != nil {
			panic(err)
		}

		respMsg.Print(os.Stdout, false)
	}
*/
package goipp

// ContentType is the MIME type of an IPP message body, as required
// by RFC 8010 §3.
const ContentType = "application/ipp"
