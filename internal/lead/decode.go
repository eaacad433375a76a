package lead

import (
	"bytes"
	"encoding/json"

	"github.com/rotisserie/eris"
)

// DecodeDocument parses a raw JSON document into a batch of leads. A single
// object is treated as a one-element batch; an array as a multi-record batch.
// Field values are coerced once here: strings pass through, numbers keep
// their literal form, anything else is treated as absent.
func DecodeDocument(data []byte) ([]RawLead, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, eris.Wrap(err, "lead: decode document")
	}

	switch v := doc.(type) {
	case map[string]any:
		return []RawLead{fromMap(v)}, nil
	case []any:
		raws := make([]RawLead, 0, len(v))
		for i, el := range v {
			obj, ok := el.(map[string]any)
			if !ok {
				return nil, eris.Errorf("lead: record %d is not an object", i)
			}
			raws = append(raws, fromMap(obj))
		}
		return raws, nil
	default:
		return nil, eris.New("lead: document is neither object nor array")
	}
}

func fromMap(m map[string]any) RawLead {
	raw := RawLead{
		FullName:    stringField(m, "full_name"),
		Email:       stringField(m, "email"),
		Phone:       stringField(m, "phone"),
		Company:     stringField(m, "company"),
		JobTitle:    stringField(m, "job_title"),
		LinkedInURL: stringField(m, "linkedin_url"),
		WebsiteURL:  stringField(m, "website_url"),
		Industry:    stringField(m, "industry"),
		CompanySize: stringField(m, "company_size"),
		Source:      stringField(m, "source"),
	}
	if addr, ok := m["address"].(map[string]any); ok {
		raw.Address = RawAddress{
			Street:     stringField(addr, "street"),
			City:       stringField(addr, "city"),
			PostalCode: stringField(addr, "postal_code"),
			Country:    stringField(addr, "country"),
		}
	}
	return raw
}

// stringField pulls a scalar out of a decoded JSON object. Numbers are kept
// in their literal form so a numeric postal code or phone still cleans.
func stringField(m map[string]any, key string) *string {
	switch v := m[key].(type) {
	case string:
		return &v
	case json.Number:
		s := v.String()
		return &s
	default:
		return nil
	}
}
