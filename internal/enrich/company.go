// Package enrich applies rule-based heuristics to infer industry and
// company-size tags from company names.
package enrich

import (
	"os"
	"strings"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"

	"github.com/sells-group/leads-cli/internal/lead"
)

// Rule tags a lead when the company name contains any marker substring.
// Matching is case-sensitive and first-match-wins.
type Rule struct {
	Markers     []string `yaml:"markers"`
	Industry    string   `yaml:"industry"`
	CompanySize string   `yaml:"company_size"`
}

// Enricher evaluates rules in priority order against cleaned leads.
type Enricher struct {
	rules []Rule
}

// DefaultRules returns the built-in rule set. Tech/software outranks the
// startup rule, so "Acme Tech Startup" tags as IT & Software.
func DefaultRules() []Rule {
	return []Rule{
		{
			Markers:     []string{"Tech", "Software"},
			Industry:    "IT & Software",
			CompanySize: "51-200 employees",
		},
		{
			Markers:     []string{"Startup"},
			Industry:    "Innovation & Technology",
			CompanySize: "11-50 employees",
		},
	}
}

// New builds an Enricher from the given rules; nil means DefaultRules.
func New(rules []Rule) *Enricher {
	if rules == nil {
		rules = DefaultRules()
	}
	return &Enricher{rules: rules}
}

// LoadRules reads a YAML rules file. An empty path yields the defaults.
func LoadRules(path string) ([]Rule, error) {
	if path == "" {
		return DefaultRules(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrap(err, "enrich: read rules file")
	}
	var doc struct {
		Rules []Rule `yaml:"rules"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, eris.Wrap(err, "enrich: parse rules file")
	}
	if len(doc.Rules) == 0 {
		return nil, eris.Errorf("enrich: no rules in %s", path)
	}
	return doc.Rules, nil
}

// Apply sets industry and company size on the first matching rule. Leads
// without a company, or with an unmatched name, keep their prior values.
func (e *Enricher) Apply(l *lead.Lead) {
	if l.Company == nil {
		return
	}
	for _, rule := range e.rules {
		for _, marker := range rule.Markers {
			if strings.Contains(*l.Company, marker) {
				industry := rule.Industry
				size := rule.CompanySize
				l.Industry = &industry
				l.CompanySize = &size
				return
			}
		}
	}
}
