// IPP message encoder.

package goipp

import (
	"errors"
	"fmt"
	"io"
	"math"
)

// headerAttrOrder lists the attribute names RFC 8011 §4.1.4/§4.1.5
// requires to appear first, in this order, in the first
// Operation-Attributes group of a message. Any of them absent from
// the group is simply skipped; anything not in this list keeps
// whatever relative order it already has.
var headerAttrOrder = []string{
	"attributes-charset",
	"attributes-natural-language",
	"printer-uri",
	"job-uri",
}

type messageEncoder struct {
	out io.Writer
}

func (me *messageEncoder) encode(m *Message) error {
	if err := me.encodeU16(uint16(m.Version)); err != nil {
		return err
	}
	if err := me.encodeU16(uint16(m.Code)); err != nil {
		return err
	}
	if err := me.encodeU32(m.RequestID); err != nil {
		return err
	}

	firstOperationGroup := true
	for _, grp := range m.Groups {
		if err := me.encodeTag(grp.Tag); err != nil {
			return err
		}

		attrs := grp.Attrs
		if grp.Tag == TagOperationGroup && firstOperationGroup {
			attrs = projectHeaderOrder(attrs)
			firstOperationGroup = false
		}

		for _, attr := range attrs {
			if attr.Name == "" {
				return errors.New("attribute without a name")
			}
			if len(attr.Values) == 0 {
				// A zero-length array has nothing to put on the
				// wire; skip it rather than erroring, since it is
				// a legitimate (if empty) 1setOf.
				continue
			}
			if err := me.encodeAttr(attr); err != nil {
				return err
			}
		}
	}

	if err := me.encodeTag(TagEnd); err != nil {
		return err
	}

	if m.Payload != nil {
		_, err := io.Copy(me.out, m.Payload)
		return err
	}

	return nil
}

// projectHeaderOrder returns attrs with the RFC 8011 header
// attributes moved to the front, in headerAttrOrder's order. This is
// a serialization-time-only projection: it does not mutate attrs, so
// in-memory attribute order is unaffected.
func projectHeaderOrder(attrs Attributes) Attributes {
	out := make(Attributes, 0, len(attrs))
	used := make(map[string]bool, len(headerAttrOrder))

	for _, name := range headerAttrOrder {
		if a, ok := attrs.Get(name); ok {
			out = append(out, a)
			used[name] = true
		}
	}
	for _, a := range attrs {
		if !used[a.Name] {
			out = append(out, a)
		}
	}
	return out
}

// encodeAttr encodes one attribute: its first value carries the
// attribute name, every subsequent value (the tail of a 1setOf) is
// written with an empty name.
func (me *messageEncoder) encodeAttr(attr Attribute) error {
	name := attr.Name
	for _, val := range attr.Values {
		if err := me.encodeTag(val.T); err != nil {
			return err
		}
		if err := me.encodeName(name); err != nil {
			return err
		}
		if err := me.encodeValue(val.T, val.V); err != nil {
			return err
		}
		name = ""
	}
	return nil
}

func (me *messageEncoder) encodeU8(v uint8) error {
	return me.write([]byte{v})
}

func (me *messageEncoder) encodeU16(v uint16) error {
	return me.write([]byte{byte(v >> 8), byte(v)})
}

func (me *messageEncoder) encodeU32(v uint32) error {
	return me.write([]byte{byte(v >> 24), byte(v >> 16), byte(v >> 8), byte(v)})
}

func (me *messageEncoder) encodeTag(tag Tag) error {
	return me.encodeU8(byte(tag))
}

func (me *messageEncoder) encodeName(name string) error {
	if len(name) > math.MaxUint16 {
		return fmt.Errorf("attribute name exceeds %d bytes", math.MaxUint16)
	}
	if err := me.encodeU16(uint16(len(name))); err != nil {
		return err
	}
	return me.write([]byte(name))
}

func (me *messageEncoder) encodeValue(tag Tag, v Value) error {
	tagType := tag.Type()
	switch tagType {
	case TypeInvalid:
		return fmt.Errorf("tag %s cannot carry a value", tag)
	case TypeVoid:
		v = Void{}
	default:
		if tagType != v.Type() {
			return fmt.Errorf("tag %s requires a %s value, got %s", tag, tagType, v.Type())
		}
	}

	data, err := v.encode()
	if err != nil {
		return err
	}
	if len(data) > math.MaxUint16 {
		return fmt.Errorf("attribute value exceeds %d bytes", math.MaxUint16)
	}

	if err := me.encodeU16(uint16(len(data))); err != nil {
		return err
	}
	if err := me.write(data); err != nil {
		return err
	}

	if collection, ok := v.(Collection); ok {
		return me.encodeCollection(collection)
	}
	return nil
}

// encodeCollection writes a collection's member attributes in the
// strict RFC 8010 §3.1.7 form: a TagMemberName/name pair followed by
// the member's value, for every member, terminated by
// TagEndCollection. The decoder is more permissive about what it will
// accept, but the encoder always produces this canonical form.
func (me *messageEncoder) encodeCollection(collection Collection) error {
	for _, attr := range collection {
		if attr.Name == "" {
			return errors.New("collection member without a name")
		}

		nameAttr := MakeAttribute("", TagMemberName, String(attr.Name))
		if err := me.encodeAttr(nameAttr); err != nil {
			return err
		}
		if err := me.encodeAttr(Attribute{Name: "", Values: attr.Values}); err != nil {
			return err
		}
	}
	return me.encodeAttr(MakeAttribute("", TagEndCollection, Void{}))
}

func (me *messageEncoder) write(data []byte) error {
	for len(data) > 0 {
		n, err := me.out.Write(data)
		if err != nil {
			return err
		}
		data = data[n:]
	}
	return nil
}
