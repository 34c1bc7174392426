package domain

import (
	"fmt"
	"regexp"
	"strings"

	m "github.com/mouse-blink/solscan/internal/model"
	"github.com/sahilm/fuzzy"
)

// Catalog is the compiled, read-only rule set for one run.
type Catalog struct {
	rules []compiledRule
	index map[string]int
}

type compiledRule struct {
	rule     m.Rule
	patterns []*regexp.Regexp
}

// NewCatalog validates the definitions and compiles every pattern with
// case-insensitive, unanchored search semantics.
func NewCatalog(defs []m.Rule) (*Catalog, error) {
	c := &Catalog{
		rules: make([]compiledRule, 0, len(defs)),
		index: make(map[string]int, len(defs)),
	}

	for _, def := range defs {
		if err := def.Validate(); err != nil {
			return nil, err
		}

		if _, dup := c.index[def.ID]; dup {
			return nil, fmt.Errorf("duplicate rule id %s", def.ID)
		}

		compiled := compiledRule{rule: def}

		for _, p := range def.Patterns {
			re, err := regexp.Compile("(?i)" + p)
			if err != nil {
				return nil, fmt.Errorf("rule %s: compiling pattern %q: %w", def.ID, p, err)
			}

			compiled.patterns = append(compiled.patterns, re)
		}

		c.index[def.ID] = len(c.rules)
		c.rules = append(c.rules, compiled)
	}

	return c, nil
}

// Rules returns the rule definitions in catalog order.
func (c *Catalog) Rules() []m.Rule {
	out := make([]m.Rule, 0, len(c.rules))
	for _, cr := range c.rules {
		out = append(out, cr.rule)
	}

	return out
}

// Lookup returns the rule with the given id.
func (c *Catalog) Lookup(id string) (m.Rule, bool) {
	i, ok := c.index[id]
	if !ok {
		return m.Rule{}, false
	}

	return c.rules[i].rule, true
}

// Without returns a new catalog with the given rule ids removed. Unknown ids
// are an error that names the closest known id.
func (c *Catalog) Without(ids ...string) (*Catalog, error) {
	if len(ids) == 0 {
		return c, nil
	}

	drop := make(map[string]struct{}, len(ids))

	for _, id := range ids {
		id = strings.ToUpper(strings.TrimSpace(id))
		if _, ok := c.index[id]; !ok {
			return nil, c.unknownRuleError(id)
		}

		drop[id] = struct{}{}
	}

	out := &Catalog{index: make(map[string]int, len(c.rules))}

	for _, cr := range c.rules {
		if _, skip := drop[cr.rule.ID]; skip {
			continue
		}

		out.index[cr.rule.ID] = len(out.rules)
		out.rules = append(out.rules, cr)
	}

	return out, nil
}

func (c *Catalog) unknownRuleError(id string) error {
	known := make([]string, 0, len(c.rules))
	for _, cr := range c.rules {
		known = append(known, cr.rule.ID)
	}

	matches := fuzzy.Find(id, known)
	if len(matches) > 0 {
		return fmt.Errorf("unknown rule %q (did you mean %s?)", id, matches[0].Str)
	}

	return fmt.Errorf("unknown rule %q (known rules: %s)", id, strings.Join(known, ", "))
}

func (c *Catalog) patternRules() []compiledRule {
	out := make([]compiledRule, 0, len(c.rules))

	for _, cr := range c.rules {
		if !cr.rule.IsSpecial() {
			out = append(out, cr)
		}
	}

	return out
}

func (c *Catalog) specialRules() []m.Rule {
	var out []m.Rule

	for _, cr := range c.rules {
		if cr.rule.IsSpecial() {
			out = append(out, cr.rule)
		}
	}

	return out
}
