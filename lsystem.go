package lsystem

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

const defaultPoolCapacity = 1024

// LSystem is a deterministic, context-free (D0L) rewriting system.
//
// Every step rewrites all symbols of the current state simultaneously: the
// next generation is built only from the previous generation's symbols.
// Once a step leaves the state unchanged the system is stable and further
// steps are no-ops.
//
// An LSystem is not safe for concurrent use.
type LSystem struct {
	Axiom   string
	Rules   RuleSet
	MemPool *BufferPool

	current    string
	generation int
	stable     bool
}

// NewLSystem validates the axiom and rules and returns a system positioned at
// generation 0. The rule set is copied.
func NewLSystem(axiom string, rules RuleSet) (*LSystem, error) {
	if axiom == "" {
		return nil, ErrEmptyAxiom
	}
	if len(rules) == 0 {
		return nil, ErrEmptyRules
	}

	capacity := defaultPoolCapacity
	if len(axiom) > capacity {
		capacity = len(axiom)
	}
	l := &LSystem{
		Axiom:   axiom,
		Rules:   rules.Clone(),
		MemPool: NewBufferPool(capacity),
	}
	l.Reset()
	return l, nil
}

// Reset returns the system to its axiom at generation 0.
func (l *LSystem) Reset() {
	l.MemPool.Load(l.Axiom)
	l.current = l.Axiom
	l.generation = 0
	l.stable = false
}

// Step applies count generations and returns the resulting state. When a
// generation reproduces its input the system is marked stable, the generation
// counter stops, and the remaining steps return the same state.
func (l *LSystem) Step(count int) string {
	for i := 0; i < count; i++ {
		if l.stable {
			return l.current
		}
		if !l.applyRules() {
			l.stable = true
			return l.current
		}
		l.generation++
	}
	return l.current
}

// applyRules writes the next generation into the pool and reports whether it
// differs from the previous one.
func (l *LSystem) applyRules() bool {
	prev := l.MemPool.ReadAll()
	l.MemPool.ResetWritingHead()

	for i := 0; i < len(prev); {
		r, size := utf8.DecodeRune(prev[i:])
		if succ, ok := l.Rules[Symbol(r)]; ok {
			l.MemPool.AppendString(succ)
		} else {
			l.MemPool.AppendBytes(prev[i : i+size])
		}
		i += size
	}

	if bytes.Equal(prev, l.MemPool.GetActive().Bytes) {
		return false
	}
	l.MemPool.Swap()
	l.current = string(l.MemPool.ReadAll())
	return true
}

// Evolve returns an iterator producing the next n generations of l.
func (l *LSystem) Evolve(n int) *Evolution {
	return newEvolution(l, n)
}

func (l *LSystem) State() string {
	return l.current
}

func (l *LSystem) Generation() int {
	return l.generation
}

func (l *LSystem) IsStable() bool {
	return l.stable
}

// Variables returns the symbols that have a production rule.
func (l *LSystem) Variables() SymbolSet {
	vars := make(SymbolSet, len(l.Rules))
	for s := range l.Rules {
		vars.Add(s)
	}
	return vars
}

// Constants returns the symbols appearing in the axiom or in any successor
// that have no production rule.
func (l *LSystem) Constants() SymbolSet {
	consts := make(SymbolSet)
	add := func(str string) {
		for _, r := range str {
			if _, ok := l.Rules[Symbol(r)]; !ok {
				consts.Add(Symbol(r))
			}
		}
	}
	add(l.Axiom)
	for _, succ := range l.Rules {
		add(succ)
	}
	return consts
}

func (l *LSystem) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "| axiom=%s\n", l.Axiom)
	for _, r := range l.Rules.Rules() {
		fmt.Fprintf(&sb, "| %s\n", r)
	}
	sb.WriteString("+--\n")
	fmt.Fprintf(&sb, "= %s", l.current)
	return sb.String()
}

// Trace steps the system n times, writing the axiom, the rules and every
// produced generation to w.
func (l *LSystem) Trace(w io.Writer, n int) error {
	if _, err := fmt.Fprintf(w, "| axiom : %s\n", l.Axiom); err != nil {
		return err
	}
	for _, r := range l.Rules.Rules() {
		if _, err := fmt.Fprintf(w, "| %s\n", r); err != nil {
			return err
		}
	}
	it := l.Evolve(n)
	for it.Next() {
		if _, err := fmt.Fprintf(w, "gen %d: %s\n", l.Generation(), it.State()); err != nil {
			return err
		}
	}
	return nil
}
