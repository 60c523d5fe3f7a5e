package dn

import (
	"strings"
)

// EndsWith reports whether the name sits at or under other in the
// organizational hierarchy. The domains must be lookup-equal (both empty
// counts as equal). A bare-domain argument then matches outright; otherwise
// the trailing, root-ward attributes of this name's path must sequence-equal
// the whole of other's path.
func (d *DN) EndsWith(other *DN) bool {
	if !d.Domain().Equal(other.Domain()) {
		return false
	}
	dp, op := d.Path(), other.Path()
	if op.Len() == 0 {
		return true
	}
	if dp.Len() < op.Len() {
		return false
	}
	tail := dp.attrs[dp.Len()-op.Len():]
	for i, a := range op.attrs {
		if !a.equalFold(tail[i]) {
			return false
		}
	}
	return true
}

// EndsWithString is the purely textual variant: a case-insensitive literal
// suffix test against the canonical string. It knows nothing of attribute
// structure and can disagree with EndsWith on reordered or re-cased names.
func (d *DN) EndsWithString(suffix string) bool {
	return strings.HasSuffix(strings.ToLower(d.String()), strings.ToLower(suffix))
}

// Append returns a new name with other's attributes appended after this
// name's, e.g. Parse("CN=web01") appended with Parse("OU=Servers,DC=example,DC=com")
// yields "CN=web01,OU=Servers,DC=example,DC=com".
func (d *DN) Append(other *DN) *DN {
	attrs := make([]Attribute, 0, len(d.attrs)+len(other.attrs))
	attrs = append(attrs, d.attrs...)
	attrs = append(attrs, other.attrs...)
	return New(attrs...)
}

// Strip returns the leading leaf portion of the name that is not covered by
// base: the path attributes in front of the matched tail, with the domain
// removed. It fails with ErrNotSubordinate when EndsWith(base) is false.
// Strip and Append together splice a name onto the anchor computed by
// ReplacementBase.
func (d *DN) Strip(base *DN) (*DN, error) {
	if !d.EndsWith(base) {
		return nil, ErrNotSubordinate
	}
	dp := d.Path()
	return New(dp.attrs[:dp.Len()-base.Path().Len()]...), nil
}

// Names sorts deepest name first, so removing entries in sorted order
// deletes a subtree leaves-first:
//
//	all := dn.Names{n1, n2, n3}
//	sort.Sort(all)
type Names []*DN

func (n Names) Len() int {
	return len(n)
}

func (n Names) Swap(i, j int) {
	n[i], n[j] = n[j], n[i]
}

func (n Names) Less(i, j int) bool {
	if n[i].IsEmpty() || n[j].IsEmpty() {
		return !n[i].IsEmpty()
	}
	if n[i].Len() > n[j].Len() && n[i].EndsWith(n[j]) {
		return true
	}
	if n[i].Parent().Equal(n[j].Parent()) {
		return attrLess(n[i].attrs[0], n[j].attrs[0])
	}
	return false
}

func attrLess(a, b Attribute) bool {
	if !strings.EqualFold(a.Type, b.Type) {
		return strings.ToLower(a.Type) < strings.ToLower(b.Type)
	}
	return strings.ToLower(a.Value) < strings.ToLower(b.Value)
}
