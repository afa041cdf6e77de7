// Groups of attributes.

package goipp

// Group is one attribute group, tagged with the delimiter tag that
// introduced it on the wire (TagOperationGroup, TagJobGroup,
// TagPrinterGroup, and so on).
type Group struct {
	Tag   Tag
	Attrs Attributes
}

// Add appends attr to the group.
func (g *Group) Add(attr Attribute) {
	g.Attrs.Add(attr)
}

// Equal reports whether two groups carry the same tag and attributes.
func (g Group) Equal(g2 Group) bool {
	return g.Tag == g2.Tag && g.Attrs.Equal(g2.Attrs)
}

// Groups is the sequence of attribute groups that make up a Message
// body, in wire order. A Message may legitimately carry more than one
// group with the same tag — Get-Jobs responses return one Job group
// per job — so Groups is a plain ordered slice rather than a
// tag-keyed map.
type Groups []Group

// Push appends a new, empty group with the given tag and returns a
// pointer to its Attrs, ready to be populated. Used unconditionally
// by the decoder, which creates one Group per delimiter token it
// reads off the wire.
func (groups *Groups) Push(tag Tag) *Attributes {
	*groups = append(*groups, Group{Tag: tag})
	return &(*groups)[len(*groups)-1].Attrs
}

// EnsureFirst returns the Attrs of the first group carrying tag,
// creating it if none exists yet. Operation builders use this: a
// request has exactly one Operation-Attributes group, so repeated
// calls to Message.Operation() must return the same group rather than
// appending a new one each time.
func (groups *Groups) EnsureFirst(tag Tag) *Attributes {
	for i := range *groups {
		if (*groups)[i].Tag == tag {
			return &(*groups)[i].Attrs
		}
	}
	return groups.Push(tag)
}

// First returns the Attrs of the first group carrying tag, or nil if
// no such group exists. Used for read-only lookups (e.g. pulling
// printer-state out of a response) where the caller does not want the
// group created as a side effect.
func (groups Groups) First(tag Tag) Attributes {
	for _, g := range groups {
		if g.Tag == tag {
			return g.Attrs
		}
	}
	return nil
}

// All returns the Attrs of every group carrying tag, in wire order.
// Used to enumerate the repeated Job groups of a Get-Jobs response.
func (groups Groups) All(tag Tag) []Attributes {
	var out []Attributes
	for _, g := range groups {
		if g.Tag == tag {
			out = append(out, g.Attrs)
		}
	}
	return out
}

// Equal reports whether groups and other hold the same multiset of
// groups: matching is order-insensitive, since a message's round-trip
// identity is defined over equal sets of equal delimiter-keyed
// attribute maps, not over wire position.
func (groups Groups) Equal(other Groups) bool {
	if len(groups) != len(other) {
		return false
	}
	used := make([]bool, len(other))
	for _, g := range groups {
		matched := false
		for j, g2 := range other {
			if used[j] {
				continue
			}
			if g.Equal(g2) {
				used[j] = true
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}
	return true
}
