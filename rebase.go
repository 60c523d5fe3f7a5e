package dn

// walkEntry is one step of a rebasing walk: either the domain boundary
// sentinel or a path attribute. The explicit tag keeps the boundary case
// out of the attribute value space.
type walkEntry struct {
	boundary bool
	attr     Attribute
}

// walkSequence lays a name out root-to-leaf for the rebasing walk: a single
// boundary entry when the domain is non-empty, followed by the path
// attributes reversed out of their leaf-first storage order.
func walkSequence(d *DN) []walkEntry {
	var seq []walkEntry
	if !d.Domain().IsEmpty() {
		seq = append(seq, walkEntry{boundary: true})
	}
	path := d.Path().attrs
	for i := len(path) - 1; i >= 0; i-- {
		seq = append(seq, walkEntry{attr: path[i]})
	}
	return seq
}

// ReplacementBase computes the portion of replacementBase that corresponds
// to the leading, root-ward segment of this name matched against
// searchBase. Splicing the name's remaining leaf attributes onto the result
// (see Strip and Append) migrates the name from the old base to the new.
//
// The three names are walked in lockstep from the root, bounded by the
// shortest walk. When all three start with a domain, the whole of
// replacementBase's domain is taken; from then on every position where this
// name and searchBase carry the same attribute contributes replacementBase's
// attribute at that position. The first disagreement — differing
// attributes, or the names disagreeing on whether a domain is present —
// ends the walk.
//
// Unrelated inputs are not an error; they just produce a short or empty
// result.
func (d *DN) ReplacementBase(searchBase, replacementBase *DN) *DN {
	this := walkSequence(d)
	search := walkSequence(searchBase)
	repl := walkSequence(replacementBase)

	var domain, path []Attribute
	n := min(len(this), len(search), len(repl))
	for i := 0; i < n; i++ {
		if this[i].boundary || search[i].boundary || repl[i].boundary {
			if !this[i].boundary || !search[i].boundary || !repl[i].boundary {
				break
			}
			domain = append(domain, replacementBase.Domain().attrs...)
			continue
		}
		if !this[i].attr.equalFold(search[i].attr) {
			break
		}
		path = append(path, repl[i].attr)
	}

	// Back from root-to-leaf collection order into leaf-first storage.
	attrs := make([]Attribute, 0, len(domain)+len(path))
	for i := len(path) - 1; i >= 0; i-- {
		attrs = append(attrs, path[i])
	}
	attrs = append(attrs, domain...)
	return New(attrs...)
}
