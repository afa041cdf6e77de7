package goipp

import "testing"

// goodMessage1 is a hand-built Print-Job request carrying a nested
// collection (media-col containing a nested media-size collection),
// exercising collection recursion end to end.
var goodMessage1 = []byte{
	0x01, 0x01, // IPP version
	0x00, 0x02, // Print-Job operation
	0x00, 0x00, 0x00, 0x01, // Request ID

	uint8(TagOperationGroup),

	uint8(TagCharset),
	0x00, 0x12,
	'a', 't', 't', 'r', 'i', 'b', 'u', 't', 'e', 's', '-',
	'c', 'h', 'a', 'r', 's', 'e', 't',
	0x00, 0x05,
	'u', 't', 'f', '-', '8',

	uint8(TagLanguage),
	0x00, 0x1b,
	'a', 't', 't', 'r', 'i', 'b', 'u', 't', 'e', 's', '-',
	'n', 'a', 't', 'u', 'r', 'a', 'l', '-', 'l', 'a', 'n',
	'g', 'u', 'a', 'g', 'e',
	0x00, 0x02,
	'e', 'n',

	uint8(TagURI),
	0x00, 0x0b,
	'p', 'r', 'i', 'n', 't', 'e', 'r', '-', 'u', 'r', 'i',
	0x00, 0x1c,
	'i', 'p', 'p', ':', '/', '/', 'l', 'o', 'c', 'a', 'l',
	'h', 'o', 's', 't', '/', 'p', 'r', 'i', 'n', 't', 'e',
	'r', 's', '/', 'f', 'o', 'o',

	uint8(TagJobGroup),

	uint8(TagBeginCollection),
	0x00, 0x09,
	'm', 'e', 'd', 'i', 'a', '-', 'c', 'o', 'l',
	0x00, 0x00,

	uint8(TagMemberName),
	0x00, 0x00,
	0x00, 0x0a,
	'm', 'e', 'd', 'i', 'a', '-', 's', 'i', 'z', 'e',

	uint8(TagBeginCollection),
	0x00, 0x00,
	0x00, 0x00,

	uint8(TagMemberName),
	0x00, 0x00,
	0x00, 0x0b,
	'x', '-', 'd', 'i', 'm', 'e', 'n', 's', 'i', 'o', 'n',

	uint8(TagInteger),
	0x00, 0x00,
	0x00, 0x04,
	0x00, 0x00, 0x54, 0x56,

	uint8(TagMemberName),
	0x00, 0x00,
	0x00, 0x0b,
	'y', '-', 'd', 'i', 'm', 'e', 'n', 's', 'i', 'o', 'n',

	uint8(TagInteger),
	0x00, 0x00,
	0x00, 0x04,
	0x00, 0x00, 0x6d, 0x24,

	uint8(TagEndCollection),
	0x00, 0x00,
	0x00, 0x00,

	uint8(TagEndCollection),
	0x00, 0x00,
	0x00, 0x00,

	uint8(TagEnd),
}

// goodMessage2 is a response carrying a plain 1setOf rangeOfInteger
// value with no preceding operation attributes group complexity.
var goodMessage2 = []byte{
	0x01, 0x01,
	0x00, 0x00, // successful-ok
	0x00, 0x00, 0x00, 0x01,

	uint8(TagOperationGroup),

	uint8(TagRange),
	0x00, 0x1f,
	'n', 'o', 't', 'i', 'f', 'y', '-', 'l', 'e', 'a', 's', 'e',
	'-', 'd', 'u', 'r', 'a', 't', 'i', 'o', 'n', '-', 's', 'u',
	'p', 'p', 'o', 'r', 't', 'e', 'd',
	0x00, 0x08,
	0x00, 0x00, 0x00, 0x10,
	0x00, 0x00, 0x00, 0x20,

	uint8(TagEnd),
}

// badMessage1 places a group delimiter tag inside a collection frame,
// which is never valid regardless of how permissive the decoder is
// about member-name framing.
var badMessage1 = []byte{
	0x01, 0x01,
	0x00, 0x02,
	0x00, 0x00, 0x00, 0x01,

	uint8(TagOperationGroup),

	uint8(TagCharset),
	0x00, 0x12,
	'a', 't', 't', 'r', 'i', 'b', 'u', 't', 'e', 's', '-',
	'c', 'h', 'a', 'r', 's', 'e', 't',
	0x00, 0x05,
	'u', 't', 'f', '-', '8',

	uint8(TagJobGroup),

	uint8(TagBeginCollection),
	0x00, 0x09,
	'm', 'e', 'd', 'i', 'a', '-', 'c', 'o', 'l',
	0x00, 0x00,

	uint8(TagJobGroup), // invalid: a delimiter tag cannot appear inside a collection

	uint8(TagEnd),
}

func TestDecodeNestedCollection(t *testing.T) {
	var m Message
	if err := m.DecodeBytes(goodMessage1); err != nil {
		t.Fatalf("DecodeBytes: %s", err)
	}

	job := m.Groups.First(TagJobGroup)
	mediaCol, ok := job.Get("media-col")
	if !ok {
		t.Fatal("media-col attribute missing")
	}

	outer, ok := mediaCol.Values[0].V.(Collection)
	if !ok {
		t.Fatalf("expected Collection, got %T", mediaCol.Values[0].V)
	}

	mediaSize, ok := Attributes(outer).Get("media-size")
	if !ok {
		t.Fatal("nested media-size member missing")
	}

	inner, ok := mediaSize.Values[0].V.(Collection)
	if !ok {
		t.Fatalf("expected nested Collection, got %T", mediaSize.Values[0].V)
	}

	if n, ok := Attributes(inner).Int("x-dimension"); !ok || n != 0x5456 {
		t.Errorf("x-dimension: got %d, ok=%v", n, ok)
	}
	if n, ok := Attributes(inner).Int("y-dimension"); !ok || n != 0x6d24 {
		t.Errorf("y-dimension: got %d, ok=%v", n, ok)
	}
}

func TestDecodeOneSetOfRange(t *testing.T) {
	var m Message
	if err := m.DecodeBytes(goodMessage2); err != nil {
		t.Fatalf("DecodeBytes: %s", err)
	}

	op := m.Groups.First(TagOperationGroup)
	a, ok := op.Get("notify-lease-duration-supported")
	if !ok {
		t.Fatal("attribute missing")
	}
	if len(a.Values) != 1 {
		t.Fatalf("expected 1 value, got %d", len(a.Values))
	}
	r, ok := a.Values[0].V.(Range)
	if !ok || r.Lower != 0x10 || r.Upper != 0x20 {
		t.Errorf("unexpected range value: %#v", a.Values[0].V)
	}
}

func TestDecodeMalformedCollection(t *testing.T) {
	var m Message
	if err := m.DecodeBytes(badMessage1); err == nil {
		t.Fatal("expected an error decoding malformed collection framing")
	}
}
