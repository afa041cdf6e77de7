// Message attributes.

package goipp

import "fmt"

// Attribute is a single named attribute: an attribute name paired
// with one or more Values. A multi-element Values is the decoded
// form of IPP's 1setOf construct.
type Attribute struct {
	Name   string
	Values Values
}

// MakeAttribute builds a single-valued Attribute.
func MakeAttribute(name string, tag Tag, value Value) Attribute {
	attr := Attribute{Name: name}
	attr.Values.Add(tag, value)
	return attr
}

func (a Attribute) String() string {
	return fmt.Sprintf("%s=%s", a.Name, a.Values)
}

// Equal reports whether two attributes have the same name and
// element-wise equal values.
func (a Attribute) Equal(b Attribute) bool {
	return a.Name == b.Name && a.Values.Equal(b.Values)
}

// Attributes is an ordered collection of Attribute, as carried by one
// attribute group or one Collection value. RFC 8010 forbids duplicate
// attribute names within a group; Set enforces that invariant, while
// Add is the permissive append the decoder uses to build up a group
// token by token.
type Attributes []Attribute

// Add appends attr unconditionally. Used by the decoder, which never
// sees duplicate names on a well-formed wire message and should not
// pay the cost of scanning for one.
func (attrs *Attributes) Add(attr Attribute) {
	*attrs = append(*attrs, attr)
}

// Set adds a single-valued attribute, replacing any existing
// attribute with the same name. This is the entry point operation
// builders use, since IPP attribute groups carry at most one
// attribute per name.
func (attrs *Attributes) Set(name string, tag Tag, value Value) {
	attr := MakeAttribute(name, tag, value)
	for i := range *attrs {
		if (*attrs)[i].Name == name {
			(*attrs)[i] = attr
			return
		}
	}
	*attrs = append(*attrs, attr)
}

// SetValues replaces (or adds) the attribute named name with the
// given Values, used when an attribute carries a 1setOf of more than
// one element.
func (attrs *Attributes) SetValues(name string, values Values) {
	attr := Attribute{Name: name, Values: values}
	for i := range *attrs {
		if (*attrs)[i].Name == name {
			(*attrs)[i] = attr
			return
		}
	}
	*attrs = append(*attrs, attr)
}

// Get returns the named attribute and true, or a zero Attribute and
// false if no attribute by that name is present.
func (attrs Attributes) Get(name string) (Attribute, bool) {
	for _, a := range attrs {
		if a.Name == name {
			return a, true
		}
	}
	return Attribute{}, false
}

// String returns the first value of the named attribute as a string,
// or "" if the attribute is absent. Convenient for the common case of
// reading a single keyword/text/uri attribute out of a response.
func (attrs Attributes) String(name string) string {
	if a, ok := attrs.Get(name); ok && len(a.Values) > 0 {
		return a.Values[0].V.String()
	}
	return ""
}

// Int returns the first value of the named attribute as an Integer,
// or 0, false if the attribute is absent or not an Integer.
func (attrs Attributes) Int(name string) (int, bool) {
	a, ok := attrs.Get(name)
	if !ok || len(a.Values) == 0 {
		return 0, false
	}
	i, ok := a.Values[0].V.(Integer)
	return int(i), ok
}

// Equal reports whether two Attributes hold the same attributes,
// compared as a name-keyed collection rather than positionally: a
// group's attributes carry no meaningful parse order, so two groups
// with the same names and values in different insertion order are
// equal.
func (attrs Attributes) Equal(other Attributes) bool {
	if len(attrs) != len(other) {
		return false
	}
	byName := make(map[string]Attribute, len(attrs))
	for _, a := range attrs {
		byName[a.Name] = a
	}
	for _, b := range other {
		a, ok := byName[b.Name]
		if !ok || !a.Equal(b) {
			return false
		}
	}
	return true
}

// clone returns a deep-enough copy of attrs suitable for building a
// response from a request's operation attributes without aliasing
// the request's backing array.
func (attrs Attributes) clone() Attributes {
	out := make(Attributes, len(attrs))
	copy(out, attrs)
	return out
}
