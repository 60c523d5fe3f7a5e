package dn

import (
	"hash/fnv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Equal is the primary comparison: order-independent lookup equality. Two
// names are equal when, for every attribute type present in either, Get
// returns the same case-folded value on both. "A=1,B=2" therefore equals
// "B=2,A=1".
//
// Equal can disagree with EqualSequence on the same pair of names; callers
// that need positional identity (or hash consistency) must use
// EqualSequence instead.
func (d *DN) Equal(other *DN) bool {
	for _, t := range typeUnion(d, other) {
		v1, ok1 := d.Get(t)
		v2, ok2 := other.Get(t)
		if ok1 != ok2 || !strings.EqualFold(v1, v2) {
			return false
		}
	}
	return true
}

// EqualString parses s and compares it to the name by lookup equality.
// Unparsable input is simply not equal.
func (d *DN) EqualString(s string) bool {
	other, err := Parse(s)
	if err != nil {
		return false
	}
	return d.Equal(other)
}

// EqualSequence is structural equality: same attribute count and, at every
// position, the same type and value, case-insensitively. Order matters.
// This is the only comparison Hash is consistent with.
func (d *DN) EqualSequence(other *DN) bool {
	if len(d.attrs) != len(other.attrs) {
		return false
	}
	for i, a := range d.attrs {
		if !a.equalFold(other.attrs[i]) {
			return false
		}
	}
	return true
}

// Hash returns an order-sensitive hash consistent with EqualSequence:
// names that are sequence-equal hash identically. It is NOT consistent
// with Equal, which ignores attribute order.
func (d *DN) Hash() uint64 {
	h := uint64(len(d.attrs))
	for _, a := range d.attrs {
		h = h*17 + a.hash()
	}
	return h
}

func (a Attribute) hash() uint64 {
	return foldHash(a.Type)*31 + foldHash(a.Value)
}

func foldHash(s string) uint64 {
	h := fnv.New64a()
	var buf [utf8.UTFMax]byte
	for _, r := range s {
		n := utf8.EncodeRune(buf[:], foldRune(r))
		h.Write(buf[:n])
	}
	return h.Sum64()
}

// foldRune maps r to the smallest rune of its case-folding orbit, the same
// orbit strings.EqualFold walks, so fold-equal strings hash identically
// even where ToLower would disagree (Kelvin sign, long s).
func foldRune(r rune) rune {
	m := r
	for f := unicode.SimpleFold(r); f != r; f = unicode.SimpleFold(f) {
		if f < m {
			m = f
		}
	}
	return m
}

// typeUnion collects the distinct folded attribute types of both names,
// in first-seen order.
func typeUnion(a, b *DN) []string {
	var types []string
	seen := make(map[string]bool)
	for _, d := range []*DN{a, b} {
		for _, attr := range d.attrs {
			t := strings.ToUpper(attr.Type)
			if !seen[t] {
				seen[t] = true
				types = append(types, t)
			}
		}
	}
	return types
}
