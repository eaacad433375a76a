// Package cleaner orchestrates the normalizers, company enricher, and
// entity extractor into a single raw-record to canonical-record transform.
package cleaner

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/sells-group/leads-cli/internal/enrich"
	"github.com/sells-group/leads-cli/internal/entity"
	"github.com/sells-group/leads-cli/internal/lead"
	"github.com/sells-group/leads-cli/internal/normalize"
)

// Cleaner turns raw leads into canonical ones. Clean is total: any
// malformed sub-field degrades to null and no input can make it fail.
type Cleaner struct {
	region    string
	enricher  *enrich.Enricher
	extractor entity.Extractor

	// injectable for tests; identity and timestamp are regenerated on
	// every clean by contract.
	now   func() time.Time
	newID func() string
}

// Option configures a Cleaner.
type Option func(*Cleaner)

// WithClock overrides the timestamp source.
func WithClock(now func() time.Time) Option {
	return func(c *Cleaner) { c.now = now }
}

// WithIDFunc overrides the identifier source.
func WithIDFunc(newID func() string) Option {
	return func(c *Cleaner) { c.newID = newID }
}

// New builds a Cleaner. A nil extractor disables entity extraction.
func New(defaultRegion string, enricher *enrich.Enricher, extractor entity.Extractor, opts ...Option) *Cleaner {
	if extractor == nil {
		extractor = entity.Disabled{}
	}
	c := &Cleaner{
		region:    defaultRegion,
		enricher:  enricher,
		extractor: extractor,
		now:       time.Now,
		newID:     func() string { return uuid.New().String() },
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Clean produces the canonical record for one raw lead.
func (c *Cleaner) Clean(raw lead.RawLead) lead.Lead {
	l := lead.Lead{
		ID:       c.newID(),
		FullName: normalize.CleanString(raw.FullName),
		Email:    normalize.Email(raw.Email),
		Phone:    normalize.Phone(raw.Phone, c.region),
		Company:  normalize.CleanString(raw.Company),
		JobTitle: normalize.CleanString(raw.JobTitle),
		Address: lead.Address{
			Street:     normalize.CleanString(raw.Address.Street),
			City:       normalize.CleanString(raw.Address.City),
			PostalCode: normalize.CleanString(raw.Address.PostalCode),
			Country:    normalize.CleanString(raw.Address.Country),
		},
		LinkedInURL: normalize.URL(raw.LinkedInURL),
		WebsiteURL:  normalize.URL(raw.WebsiteURL),
		Industry:    normalize.CleanString(raw.Industry),
		CompanySize: normalize.CleanString(raw.CompanySize),
		LastUpdated: c.now().UTC().Format(time.RFC3339),
		Source:      lead.DefaultSource,
	}
	if raw.Source != nil {
		l.Source = *raw.Source
	}

	if l.FullName != nil {
		first, last := splitName(*l.FullName)
		l.FirstName = first
		l.LastName = last
	}

	c.enricher.Apply(&l)

	if l.JobTitle != nil && c.extractor.Available() {
		l.Entities = c.extractor.Extract(*l.JobTitle)
	}

	return l
}

// CleanBatch cleans every record in a single pass. Clean never fails, so
// the output length always equals the input length.
func (c *Cleaner) CleanBatch(raws []lead.RawLead) []lead.Lead {
	leads := make([]lead.Lead, 0, len(raws))
	for _, raw := range raws {
		leads = append(leads, c.Clean(raw))
	}
	return leads
}

// splitName splits a cleaned full name on the first whitespace run and
// title-cases each half. A single token yields only a first name.
func splitName(full string) (first, last *string) {
	titler := cases.Title(language.Und)
	head, tail, found := strings.Cut(full, " ")
	f := titler.String(head)
	first = &f
	if found && tail != "" {
		l := titler.String(tail)
		last = &l
	}
	return first, last
}
