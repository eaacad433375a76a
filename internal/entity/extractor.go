// Package entity wraps named-entity extraction behind a pluggable interface
// so the pipeline degrades gracefully when no NLP model is available.
package entity

import (
	"github.com/jdkato/prose/v2"
	"go.uber.org/zap"

	"github.com/sells-group/leads-cli/internal/lead"
)

// Extractor pulls categorized entity mentions out of cleaned free text.
type Extractor interface {
	// Extract returns mentions in detection order, duplicates included.
	Extract(text string) *lead.Entities
	// Available reports whether extraction is actually backed by a model.
	Available() bool
}

// Prose is an Extractor backed by the prose NER model.
type Prose struct{}

// NewProse builds the prose-backed extractor, verifying the model loads by
// running it once. On failure the caller should fall back to Disabled.
func NewProse() (*Prose, error) {
	// prose loads its model data lazily on first use; exercise it here so
	// a broken installation is a startup fact, not a per-record one.
	if _, err := prose.NewDocument("probe", prose.WithSegmentation(false)); err != nil {
		return nil, err
	}
	return &Prose{}, nil
}

// Available implements Extractor.
func (p *Prose) Available() bool { return true }

// Extract implements Extractor. Tokenizer errors degrade to an empty
// extraction rather than failing the record.
func (p *Prose) Extract(text string) *lead.Entities {
	ents := &lead.Entities{
		Persons:       []string{},
		Organizations: []string{},
		Locations:     []string{},
		Misc:          []lead.Span{},
	}

	doc, err := prose.NewDocument(text, prose.WithSegmentation(false))
	if err != nil {
		zap.L().Debug("entity extraction failed", zap.Error(err))
		return ents
	}

	for _, e := range doc.Entities() {
		switch e.Label {
		case "PERSON":
			ents.Persons = append(ents.Persons, e.Text)
		case "ORG":
			ents.Organizations = append(ents.Organizations, e.Text)
		case "GPE":
			ents.Locations = append(ents.Locations, e.Text)
		default:
			ents.Misc = append(ents.Misc, lead.Span{Text: e.Text, Label: e.Label})
		}
	}
	return ents
}

// Disabled is the no-op stand-in used when the NLP capability is missing
// or switched off. Callers receive no entities rather than an error.
type Disabled struct{}

// Available implements Extractor.
func (Disabled) Available() bool { return false }

// Extract implements Extractor.
func (Disabled) Extract(string) *lead.Entities { return nil }
