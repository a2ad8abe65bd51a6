package lsystem

import "sort"

// Symbol is a single letter of an L-system alphabet.
type Symbol rune

func (s Symbol) String() string {
	return string(s)
}

type SymbolSet map[Symbol]struct{}

func (ss SymbolSet) Contains(s Symbol) bool {
	_, exists := ss[s]
	return exists
}

func (ss SymbolSet) Add(s Symbol) {
	ss[s] = struct{}{}
}

// AsSlice returns the members in ascending order.
func (ss SymbolSet) AsSlice() []Symbol {
	slice := make([]Symbol, 0, len(ss))
	for s := range ss {
		slice = append(slice, s)
	}
	sort.Slice(slice, func(i, j int) bool { return slice[i] < slice[j] })
	return slice
}

func (ss SymbolSet) String() string {
	var out []rune
	for _, s := range ss.AsSlice() {
		out = append(out, rune(s))
	}
	return string(out)
}
