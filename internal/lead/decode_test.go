package lead

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeDocument_SingleObject(t *testing.T) {
	doc := []byte(`{
		"full_name": "Jane Doe",
		"email": "jane@example.com",
		"address": {"city": "Berlin", "postal_code": 10115}
	}`)

	raws, err := DecodeDocument(doc)
	require.NoError(t, err)
	require.Len(t, raws, 1)

	raw := raws[0]
	require.NotNil(t, raw.FullName)
	assert.Equal(t, "Jane Doe", *raw.FullName)
	require.NotNil(t, raw.Address.City)
	assert.Equal(t, "Berlin", *raw.Address.City)

	// numeric postal code keeps its literal form
	require.NotNil(t, raw.Address.PostalCode)
	assert.Equal(t, "10115", *raw.Address.PostalCode)

	assert.Nil(t, raw.Phone)
	assert.Nil(t, raw.Source)
}

func TestDecodeDocument_Array(t *testing.T) {
	doc := []byte(`[{"email": "a@x.com"}, {"email": "b@x.com"}]`)

	raws, err := DecodeDocument(doc)
	require.NoError(t, err)
	require.Len(t, raws, 2)
	assert.Equal(t, "a@x.com", *raws[0].Email)
	assert.Equal(t, "b@x.com", *raws[1].Email)
}

func TestDecodeDocument_CoercesScalars(t *testing.T) {
	doc := []byte(`{"phone": 4155550100, "company": true, "job_title": null}`)

	raws, err := DecodeDocument(doc)
	require.NoError(t, err)
	require.Len(t, raws, 1)

	require.NotNil(t, raws[0].Phone)
	assert.Equal(t, "4155550100", *raws[0].Phone)
	// non-scalar-string values other than numbers are treated as absent
	assert.Nil(t, raws[0].Company)
	assert.Nil(t, raws[0].JobTitle)
}

func TestDecodeDocument_Malformed(t *testing.T) {
	_, err := DecodeDocument([]byte(`{not json`))
	assert.Error(t, err)
}

func TestDecodeDocument_NonObjectElement(t *testing.T) {
	_, err := DecodeDocument([]byte(`[1, 2, 3]`))
	assert.Error(t, err)
}

func TestDecodeDocument_ScalarDocument(t *testing.T) {
	_, err := DecodeDocument([]byte(`"just a string"`))
	assert.Error(t, err)
}

func TestLeadField(t *testing.T) {
	email := "a@x.com"
	city := "Paris"
	l := Lead{
		ID:      "abc",
		Email:   &email,
		Source:  "CRM",
		Address: Address{City: &city},
	}

	assert.Equal(t, "a@x.com", l.Field("email"))
	assert.Equal(t, "a@x.com", l.Field("Email"))
	assert.Equal(t, "CRM", l.Field("source"))
	assert.Equal(t, "Paris", l.Field("city"))
	assert.Equal(t, "", l.Field("phone"))
	assert.Equal(t, "", l.Field("no_such_field"))
}
