package lsystem

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// ParseRule parses a single rule written as "F -> F+F" or "F = F+F".
// Whitespace inside the successor is dropped, so "F -> F [+F] F" and
// "F->F[+F]F" are the same rule. An empty successor is a deletion rule.
func ParseRule(str string) (ProductionRule, error) {
	sep := "->"
	idx := strings.Index(str, sep)
	if idx < 0 {
		sep = "="
		idx = strings.Index(str, sep)
	}
	if idx < 0 {
		return ProductionRule{}, fmt.Errorf("%w: %q has no '->' or '='", ErrInvalidRule, str)
	}

	pred, err := parsePredecessor(str[:idx])
	if err != nil {
		return ProductionRule{}, err
	}
	return NewProductionRule(pred, stripSpace(str[idx+len(sep):])), nil
}

// ParseRuleList parses rules separated by ';' or newlines. Blank entries are skipped.
func ParseRuleList(str string) (RuleSet, error) {
	rules := make(RuleSet)
	groups := strings.FieldsFunc(str, func(r rune) bool { return r == ';' || r == '\n' })
	for _, group := range groups {
		if strings.TrimSpace(group) == "" {
			continue
		}
		rule, err := ParseRule(group)
		if err != nil {
			return nil, err
		}
		if _, dup := rules[rule.Predecessor]; dup {
			return nil, fmt.Errorf("%w: duplicate rule for %q", ErrInvalidRule, rule.Predecessor)
		}
		rules[rule.Predecessor] = rule.Successor
	}
	if len(rules) == 0 {
		return nil, ErrEmptyRules
	}
	return rules, nil
}

// ParseRules converts a loosely typed mapping, as decoded from a grammar file,
// into a RuleSet. Every key must be exactly one symbol.
func ParseRules(rulesMap map[string]string) (RuleSet, error) {
	if len(rulesMap) == 0 {
		return nil, ErrEmptyRules
	}
	rules := make(RuleSet, len(rulesMap))
	for key, value := range rulesMap {
		pred, err := parsePredecessor(key)
		if err != nil {
			return nil, err
		}
		rules[pred] = stripSpace(value)
	}
	return rules, nil
}

func parsePredecessor(str string) (Symbol, error) {
	key := strings.TrimSpace(str)
	if utf8.RuneCountInString(key) != 1 {
		return 0, fmt.Errorf("%w: predecessor %q must be a single symbol", ErrInvalidRule, key)
	}
	r, _ := utf8.DecodeRuneInString(key)
	return Symbol(r), nil
}

func stripSpace(str string) string {
	return strings.Join(strings.Fields(str), "")
}
