package goipp

import "testing"

func TestGroupsPush(t *testing.T) {
	var groups Groups
	attrs := groups.Push(TagJobGroup)
	attrs.Set("job-id", TagInteger, Integer(1))

	if len(groups) != 1 {
		t.Fatalf("expected 1 group, got %d", len(groups))
	}
	if groups[0].Tag != TagJobGroup {
		t.Errorf("unexpected group tag %s", groups[0].Tag)
	}

	groups.Push(TagJobGroup)
	if len(groups) != 2 {
		t.Fatalf("Push must always append a new group, got %d groups", len(groups))
	}
}

func TestGroupsEnsureFirst(t *testing.T) {
	var groups Groups
	op1 := groups.EnsureFirst(TagOperationGroup)
	op1.Set("printer-uri", TagURI, String("ipp://localhost/printers/test"))

	op2 := groups.EnsureFirst(TagOperationGroup)
	op2.Set("requested-attributes", TagKeyword, String("all"))

	if len(groups) != 1 {
		t.Fatalf("EnsureFirst must reuse the existing group, got %d groups", len(groups))
	}
	if len(groups[0].Attrs) != 2 {
		t.Fatalf("expected 2 attributes in the reused group, got %d", len(groups[0].Attrs))
	}
}

func TestGroupsFirstAndAll(t *testing.T) {
	var groups Groups
	groups.Push(TagOperationGroup)
	j1 := groups.Push(TagJobGroup)
	j1.Set("job-id", TagInteger, Integer(1))
	j2 := groups.Push(TagJobGroup)
	j2.Set("job-id", TagInteger, Integer(2))

	first := groups.First(TagJobGroup)
	if n, _ := first.Int("job-id"); n != 1 {
		t.Errorf("First should return the first matching group, got job-id %d", n)
	}

	all := groups.All(TagJobGroup)
	if len(all) != 2 {
		t.Fatalf("expected 2 job groups, got %d", len(all))
	}
	if n, _ := all[1].Int("job-id"); n != 2 {
		t.Errorf("expected second job group's job-id to be 2, got %d", n)
	}

	if groups.First(TagPrinterGroup) != nil {
		t.Error("expected First on absent tag to return nil")
	}
}

func TestGroupsEqual(t *testing.T) {
	var a, b Groups
	a.Push(TagOperationGroup).Set("printer-uri", TagURI, String("ipp://x/p"))
	b.Push(TagOperationGroup).Set("printer-uri", TagURI, String("ipp://x/p"))

	if !a.Equal(b) {
		t.Error("expected equal Groups to compare equal")
	}

	b.Push(TagJobGroup)
	if a.Equal(b) {
		t.Error("expected Groups of different length to compare unequal")
	}
}

func TestGroupsEqualIgnoresOrder(t *testing.T) {
	var a, b Groups
	a.Push(TagOperationGroup).Set("printer-uri", TagURI, String("ipp://x/p"))
	j1 := a.Push(TagJobGroup)
	j1.Set("job-id", TagInteger, Integer(1))
	j2 := a.Push(TagJobGroup)
	j2.Set("job-id", TagInteger, Integer(2))

	// Same three groups, assembled in a different order: the two Job
	// groups are swapped relative to a.
	k2 := b.Push(TagJobGroup)
	k2.Set("job-id", TagInteger, Integer(2))
	k1 := b.Push(TagJobGroup)
	k1.Set("job-id", TagInteger, Integer(1))
	b.Push(TagOperationGroup).Set("printer-uri", TagURI, String("ipp://x/p"))

	if !a.Equal(b) {
		t.Error("expected Groups holding the same multiset of groups in a different order to compare equal")
	}
	if !b.Equal(a) {
		t.Error("Equal should be symmetric under reordering")
	}
}
