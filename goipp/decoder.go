// IPP message decoder.

package goipp

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// DecoderOptions controls optional decoder behavior.
type DecoderOptions struct {
	// Context, if non-nil, is checked between reads so that a
	// server can abort an in-progress decode when the client
	// connection is cancelled. A plain client-side Decode call
	// normally leaves this nil and simply blocks on the reader.
	Context context.Context
}

// DecodeError is returned for malformed IPP wire data. Kind
// identifies which stage of decoding failed, so callers that need to
// distinguish "this isn't an IPP message at all" from "this is IPP
// but uses a feature we don't support" can do so without parsing the
// message string.
type DecodeError struct {
	Kind string // "header", "tag", "attribute", "collection"
	Err  error
}

func (e *DecodeError) Error() string { return fmt.Sprintf("ipp: %s: %s", e.Kind, e.Err) }
func (e *DecodeError) Unwrap() error { return e.Err }

func decodeErr(kind string, err error) error {
	if err == nil {
		return nil
	}
	return &DecodeError{Kind: kind, Err: err}
}

// messageDecoder holds the state of a single Message.Decode call.
type messageDecoder struct {
	in  io.Reader
	opt DecoderOptions
	off int
	cnt int
}

func (md *messageDecoder) decode(m *Message) error {
	var err error
	m.Version, err = md.decodeVersion()
	if err == nil {
		m.Code, err = md.decodeCode()
	}
	if err == nil {
		m.RequestID, err = md.decodeU32()
	}
	if err != nil {
		return decodeErr("header", fmt.Errorf("%s at 0x%x", err, md.off))
	}

	var group *Attributes
	var prev *Attribute

	for {
		if err := md.checkContext(); err != nil {
			return decodeErr("header", err)
		}

		tag, err := md.decodeTag()
		if err != nil {
			return decodeErr("tag", fmt.Errorf("%s at 0x%x", err, md.off))
		}

		if tag.IsDelimiter() {
			prev = nil

			switch tag {
			case TagZero:
				return decodeErr("tag", fmt.Errorf("invalid tag 0 at 0x%x", md.off))
			case TagEnd:
				m.Payload = md.in
				return nil
			default:
				group = m.Groups.Push(tag)
			}
			continue
		}

		if tag == TagMemberName || tag == TagEndCollection {
			return decodeErr("attribute", fmt.Errorf("unexpected %s at 0x%x", tag, md.off))
		}

		attr, err := md.decodeAttribute(tag)
		if err != nil {
			return decodeErr("attribute", fmt.Errorf("%s at 0x%x", err, md.off))
		}

		if tag == TagBeginCollection {
			coll, err := md.decodeCollection()
			if err != nil {
				return decodeErr("collection", fmt.Errorf("%s at 0x%x", err, md.off))
			}
			attr.Values[0].V = coll
		}

		switch {
		case attr.Name == "":
			// A bare value with no name extends the preceding
			// attribute's Values: the decoded form of 1setOf.
			if prev == nil {
				return decodeErr("attribute", fmt.Errorf("value without a preceding attribute at 0x%x", md.off))
			}
			prev.Values.Add(attr.Values[0].T, attr.Values[0].V)
		case group != nil:
			group.Add(attr)
			prev = &(*group)[len(*group)-1]
		default:
			return decodeErr("attribute", fmt.Errorf("attribute outside any group at 0x%x", md.off))
		}
	}
}

// decodeCollection decodes the memberAttrName/value pairs of a
// collection value, up to and including its TagEndCollection
// terminator. Member attributes nest recursively, since a collection
// member may itself be a collection.
//
// The decoder accepts a bare value with no preceding TagMemberName
// inside a collection (treating it as an unnamed member), which is
// more permissive than RFC 8010's strict framing — some printers in
// the wild emit collections that way. The encoder always produces the
// strict form.
func (md *messageDecoder) decodeCollection() (Collection, error) {
	collection := make(Collection, 0)
	var name string
	haveName := false

	for {
		tag, err := md.decodeTag()
		if err != nil {
			return nil, err
		}

		if tag == TagEndCollection {
			if _, err := md.decodeAttribute(tag); err != nil {
				return nil, err
			}
			return collection, nil
		}

		if tag == TagMemberName {
			attr, err := md.decodeAttribute(tag)
			if err != nil {
				return nil, err
			}
			name = string(attr.Values[0].V.(String))
			haveName = true
			continue
		}

		if tag.IsDelimiter() {
			return nil, fmt.Errorf("collection: unexpected %s", tag)
		}

		attr, err := md.decodeAttribute(tag)
		if err != nil {
			return nil, err
		}

		if tag == TagBeginCollection {
			nested, err := md.decodeCollection()
			if err != nil {
				return nil, err
			}
			attr.Values[0].V = nested
		}

		if haveName {
			attr.Name = name
			haveName = false
		}
		collection = append(collection, attr)
	}
}

func (md *messageDecoder) checkContext() error {
	if md.opt.Context == nil {
		return nil
	}
	return md.opt.Context.Err()
}

func (md *messageDecoder) decodeTag() (Tag, error) {
	t, err := md.decodeU8()
	return Tag(t), err
}

func (md *messageDecoder) decodeVersion() (Version, error) {
	v, err := md.decodeU16()
	return Version(v), err
}

func (md *messageDecoder) decodeCode() (Code, error) {
	c, err := md.decodeU16()
	return Code(c), err
}

// decodeAttribute reads one name/value token: a 2-byte name length,
// the name itself, a 2-byte value length, and the value payload. tag
// has already been consumed by the caller.
func (md *messageDecoder) decodeAttribute(tag Tag) (Attribute, error) {
	name, err := md.decodeString()
	if err != nil {
		return Attribute{}, err
	}

	data, err := md.decodeBytes()
	if err != nil {
		return Attribute{}, err
	}

	if tag == TagExtension {
		if len(data) < 4 {
			return Attribute{}, errors.New("extension tag truncated")
		}
		t := binary.BigEndian.Uint32(data[:4])
		if t > 0x7fffffff {
			return Attribute{}, errors.New("extension tag out of range")
		}
		tag = Tag(t)
		data = data[4:]
	}

	value, err := decodeValue(tag, data)
	if err != nil {
		return Attribute{}, fmt.Errorf("%s: %w", tag, err)
	}

	attr := Attribute{Name: name}
	attr.Values.Add(tag, value)
	return attr, nil
}

func (md *messageDecoder) decodeU8() (uint8, error) {
	var buf [1]byte
	err := md.read(buf[:])
	return buf[0], err
}

func (md *messageDecoder) decodeU16() (uint16, error) {
	var buf [2]byte
	err := md.read(buf[:])
	return binary.BigEndian.Uint16(buf[:]), err
}

func (md *messageDecoder) decodeU32() (uint32, error) {
	var buf [4]byte
	err := md.read(buf[:])
	return binary.BigEndian.Uint32(buf[:]), err
}

func (md *messageDecoder) decodeBytes() ([]byte, error) {
	length, err := md.decodeU16()
	if err != nil {
		return nil, err
	}

	data := make([]byte, length)
	if err := md.read(data); err != nil {
		return nil, err
	}
	return data, nil
}

func (md *messageDecoder) decodeString() (string, error) {
	data, err := md.decodeBytes()
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (md *messageDecoder) read(data []byte) error {
	md.off = md.cnt
	for len(data) > 0 {
		n, err := md.in.Read(data)
		if err != nil {
			md.off = md.cnt
			return err
		}
		md.cnt += n
		data = data[n:]
	}
	return nil
}
