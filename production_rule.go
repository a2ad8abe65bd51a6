package lsystem

import (
	"sort"
	"strings"
)

// ProductionRule rewrites a single predecessor symbol into a successor string.
// An empty successor deletes the symbol.
type ProductionRule struct {
	Predecessor Symbol
	Successor   string
}

func NewProductionRule(predecessor Symbol, successor string) ProductionRule {
	return ProductionRule{
		Predecessor: predecessor,
		Successor:   successor,
	}
}

func (r ProductionRule) String() string {
	var sb strings.Builder
	sb.WriteRune(rune(r.Predecessor))
	sb.WriteString(" -> ")
	sb.WriteString(r.Successor)
	return sb.String()
}

// RuleSet maps each symbol to its successor. Symbols without an entry are
// copied verbatim when rewriting.
type RuleSet map[Symbol]string

// Successor returns the rewrite of s and whether a rule exists for it.
func (rs RuleSet) Successor(s Symbol) (string, bool) {
	succ, ok := rs[s]
	return succ, ok
}

// Rules returns the rule set as production rules ordered by predecessor.
func (rs RuleSet) Rules() []ProductionRule {
	rules := make([]ProductionRule, 0, len(rs))
	for pred, succ := range rs {
		rules = append(rules, NewProductionRule(pred, succ))
	}
	sort.Slice(rules, func(i, j int) bool { return rules[i].Predecessor < rules[j].Predecessor })
	return rules
}

// Clone returns a copy that shares nothing with rs.
func (rs RuleSet) Clone() RuleSet {
	out := make(RuleSet, len(rs))
	for k, v := range rs {
		out[k] = v
	}
	return out
}

func (rs RuleSet) String() string {
	rules := rs.Rules()
	parts := make([]string, len(rules))
	for i, r := range rules {
		parts[i] = r.String()
	}
	return strings.Join(parts, "; ")
}
