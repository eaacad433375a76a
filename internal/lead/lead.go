// Package lead defines the raw and canonical lead record types.
package lead

import "strings"

// RawLead is an inbound contact/company record. Every field is optional;
// records arrive as loosely-typed JSON and are converted once at the
// decode boundary (see DecodeDocument).
type RawLead struct {
	FullName    *string    `json:"full_name"`
	Email       *string    `json:"email"`
	Phone       *string    `json:"phone"`
	Company     *string    `json:"company"`
	JobTitle    *string    `json:"job_title"`
	Address     RawAddress `json:"address"`
	LinkedInURL *string    `json:"linkedin_url"`
	WebsiteURL  *string    `json:"website_url"`
	Industry    *string    `json:"industry"`
	CompanySize *string    `json:"company_size"`
	Source      *string    `json:"source"`
}

// RawAddress is the nested address block of a raw lead.
type RawAddress struct {
	Street     *string `json:"street"`
	City       *string `json:"city"`
	PostalCode *string `json:"postal_code"`
	Country    *string `json:"country"`
}

// Lead is the canonical cleaned record. Nullable fields are pointers and
// serialize as JSON null when the raw value was absent or invalid.
type Lead struct {
	ID          string    `json:"id"`
	FullName    *string   `json:"full_name"`
	FirstName   *string   `json:"first_name"`
	LastName    *string   `json:"last_name"`
	Email       *string   `json:"email"`
	Phone       *string   `json:"phone"`
	Company     *string   `json:"company"`
	JobTitle    *string   `json:"job_title"`
	Address     Address   `json:"address"`
	LinkedInURL *string   `json:"linkedin_url"`
	WebsiteURL  *string   `json:"website_url"`
	Industry    *string   `json:"industry"`
	CompanySize *string   `json:"company_size"`
	LastUpdated string    `json:"last_updated"`
	Source      string    `json:"source"`
	Entities    *Entities `json:"entities,omitempty"`
}

// Address is the cleaned address block of a canonical lead.
type Address struct {
	Street     *string `json:"street"`
	City       *string `json:"city"`
	PostalCode *string `json:"postal_code"`
	Country    *string `json:"country"`
}

// Entities holds named-entity mentions extracted from free text.
// Lists preserve detection order and keep duplicates.
type Entities struct {
	Persons       []string `json:"persons"`
	Organizations []string `json:"organizations"`
	Locations     []string `json:"locations"`
	Misc          []Span   `json:"misc"`
}

// Span is an entity mention outside the person/org/location taxonomy.
type Span struct {
	Text  string `json:"text"`
	Label string `json:"label"`
}

// DefaultSource is used when a raw record carries no source marker.
const DefaultSource = "Unknown"

// Field returns the string form of a named lead field for composite-key
// building. Unknown or unset fields yield the empty string.
func (l *Lead) Field(name string) string {
	switch strings.ToLower(name) {
	case "id":
		return l.ID
	case "full_name":
		return deref(l.FullName)
	case "first_name":
		return deref(l.FirstName)
	case "last_name":
		return deref(l.LastName)
	case "email":
		return deref(l.Email)
	case "phone":
		return deref(l.Phone)
	case "company":
		return deref(l.Company)
	case "job_title":
		return deref(l.JobTitle)
	case "linkedin_url":
		return deref(l.LinkedInURL)
	case "website_url":
		return deref(l.WebsiteURL)
	case "industry":
		return deref(l.Industry)
	case "company_size":
		return deref(l.CompanySize)
	case "source":
		return l.Source
	case "street":
		return deref(l.Address.Street)
	case "city":
		return deref(l.Address.City)
	case "postal_code":
		return deref(l.Address.PostalCode)
	case "country":
		return deref(l.Address.Country)
	default:
		return ""
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
