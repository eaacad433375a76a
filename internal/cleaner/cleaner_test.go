package cleaner

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/leads-cli/internal/enrich"
	"github.com/sells-group/leads-cli/internal/lead"
)

func strp(s string) *string { return &s }

// stubExtractor records calls and returns a canned extraction.
type stubExtractor struct {
	calls []string
	ents  *lead.Entities
}

func (s *stubExtractor) Available() bool { return true }

func (s *stubExtractor) Extract(text string) *lead.Entities {
	s.calls = append(s.calls, text)
	return s.ents
}

func newTestCleaner(opts ...Option) *Cleaner {
	return New("US", enrich.New(nil), nil, opts...)
}

func TestClean_FullRecord(t *testing.T) {
	c := newTestCleaner()

	l := c.Clean(lead.RawLead{
		FullName: strp("  john   smith "),
		Email:    strp("John.Smith@Example.COM"),
		Phone:    strp("+1 415-555-0100"),
		Company:  strp("Acme Tech Inc"),
		JobTitle: strp("VP of  Engineering"),
		Address: lead.RawAddress{
			Street:  strp(" 12 Main St. "),
			City:    strp("San   Francisco"),
			Country: strp("USA"),
		},
		LinkedInURL: strp("linkedin.com/in/jsmith"),
		WebsiteURL:  strp("https://acme.example.com"),
		Source:      strp("webform"),
	})

	assert.NotEmpty(t, l.ID)
	assert.Equal(t, "john smith", *l.FullName)
	assert.Equal(t, "John", *l.FirstName)
	assert.Equal(t, "Smith", *l.LastName)
	assert.Equal(t, "john.smith@example.com", *l.Email)
	assert.Equal(t, "+14155550100", *l.Phone)
	assert.Equal(t, "VP of Engineering", *l.JobTitle)
	assert.Equal(t, "12 Main St.", *l.Address.Street)
	assert.Equal(t, "San Francisco", *l.Address.City)
	assert.Nil(t, l.Address.PostalCode)
	assert.Equal(t, "http://linkedin.com/in/jsmith", *l.LinkedInURL)
	assert.Equal(t, "https://acme.example.com", *l.WebsiteURL)
	assert.Equal(t, "webform", l.Source)

	// company enrichment applied during cleaning
	require.NotNil(t, l.Industry)
	assert.Equal(t, "IT & Software", *l.Industry)
	assert.Equal(t, "51-200 employees", *l.CompanySize)

	_, err := time.Parse(time.RFC3339, l.LastUpdated)
	assert.NoError(t, err)
}

func TestClean_EmptyRecord(t *testing.T) {
	c := newTestCleaner()

	l := c.Clean(lead.RawLead{})

	assert.NotEmpty(t, l.ID)
	assert.Nil(t, l.FullName)
	assert.Nil(t, l.FirstName)
	assert.Nil(t, l.LastName)
	assert.Nil(t, l.Email)
	assert.Nil(t, l.Phone)
	assert.Nil(t, l.Industry)
	assert.Nil(t, l.Entities)
	assert.Equal(t, lead.DefaultSource, l.Source)
}

func TestClean_InvalidFieldsDegradeToNull(t *testing.T) {
	c := newTestCleaner()

	l := c.Clean(lead.RawLead{
		Email:      strp("not-an-email"),
		Phone:      strp("123"),
		WebsiteURL: strp(""),
	})

	assert.Nil(t, l.Email)
	assert.Nil(t, l.Phone)
	assert.Nil(t, l.WebsiteURL)
}

func TestClean_NameSplitting(t *testing.T) {
	tests := []struct {
		name      string
		fullName  string
		wantFirst string
		wantLast  *string
	}{
		{"two tokens", "John Smith", "John", strp("Smith")},
		{"single token", "Madonna", "Madonna", nil},
		{"lowercase gets title-cased", "jane doe", "Jane", strp("Doe")},
		{"multi-word last name", "ana de armas", "Ana", strp("De Armas")},
	}

	c := newTestCleaner()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := c.Clean(lead.RawLead{FullName: &tt.fullName})
			require.NotNil(t, l.FirstName)
			assert.Equal(t, tt.wantFirst, *l.FirstName)
			if tt.wantLast == nil {
				assert.Nil(t, l.LastName)
			} else {
				require.NotNil(t, l.LastName)
				assert.Equal(t, *tt.wantLast, *l.LastName)
			}
		})
	}
}

func TestClean_FreshIdentityEveryRun(t *testing.T) {
	c := newTestCleaner()
	raw := lead.RawLead{Email: strp("a@x.com")}

	first := c.Clean(raw)
	second := c.Clean(raw)

	assert.NotEqual(t, first.ID, second.ID)
}

func TestClean_IdempotentExceptIdentity(t *testing.T) {
	fixed := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	c := newTestCleaner(
		WithClock(func() time.Time { return fixed }),
		WithIDFunc(func() string { return "fixed-id" }),
	)

	once := c.Clean(lead.RawLead{
		FullName: strp("Jane Doe"),
		Email:    strp("jane@example.com"),
		Company:  strp("Acme Startup Labs"),
	})

	// feed the cleaned values back through
	again := c.Clean(lead.RawLead{
		FullName: once.FullName,
		Email:    once.Email,
		Company:  once.Company,
	})

	assert.Equal(t, once, again)
	assert.Equal(t, "Innovation & Technology", *again.Industry)
}

func TestClean_EntitiesRequireJobTitleAndExtractor(t *testing.T) {
	ents := &lead.Entities{Locations: []string{"Berlin"}}

	t.Run("attached when both present", func(t *testing.T) {
		stub := &stubExtractor{ents: ents}
		c := New("US", enrich.New(nil), stub)
		l := c.Clean(lead.RawLead{JobTitle: strp("Head of Sales Berlin")})
		require.NotNil(t, l.Entities)
		assert.Equal(t, []string{"Berlin"}, l.Entities.Locations)
		assert.Equal(t, []string{"Head of Sales Berlin"}, stub.calls)
	})

	t.Run("omitted without job title", func(t *testing.T) {
		stub := &stubExtractor{ents: ents}
		c := New("US", enrich.New(nil), stub)
		l := c.Clean(lead.RawLead{Company: strp("Acme")})
		assert.Nil(t, l.Entities)
		assert.Empty(t, stub.calls)
	})

	t.Run("omitted when extractor disabled", func(t *testing.T) {
		c := newTestCleaner()
		l := c.Clean(lead.RawLead{JobTitle: strp("CTO")})
		assert.Nil(t, l.Entities)
	})
}

func TestCleanBatch_LengthPreserved(t *testing.T) {
	c := newTestCleaner()

	raws := []lead.RawLead{
		{Email: strp("a@x.com")},
		{}, // fully empty still cleans
		{Phone: strp("garbage")},
	}

	leads := c.CleanBatch(raws)
	assert.Len(t, leads, len(raws))
}
