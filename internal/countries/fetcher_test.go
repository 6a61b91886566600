package countries

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const v3Payload = `[
	{
		"name": {"common": "France", "official": "French Republic", "nativeName": {}},
		"altSpellings": ["FR", "République française"],
		"cca2": "FR",
		"cca3": "FRA",
		"continents": ["Europe"],
		"region": "Europe",
		"flags": {"png": "https://flagcdn.com/w320/fr.png", "svg": "https://flagcdn.com/fr.svg"}
	},
	{
		"name": {"common": "Brazil", "official": "Federative Republic of Brazil"},
		"cca2": "BR",
		"cca3": "BRA",
		"continents": ["South America"],
		"region": "Americas",
		"flags": {"svg": "https://flagcdn.com/br.svg"}
	},
	{"region": "Nowhere"}
]`

const v2Payload = `[
	{
		"name": "Chile",
		"alpha2Code": "CL",
		"alpha3Code": "CHL",
		"altSpellings": ["CL", "Republic of Chile"],
		"region": "Americas",
		"subregion": "South America",
		"flag": "https://restcountries.eu/data/chl.svg"
	},
	{
		"name": "Canada",
		"alpha2Code": "CA",
		"alpha3Code": "CAN",
		"region": "Americas",
		"subregion": "Northern America",
		"flags": {"png": "https://flagcdn.com/w320/ca.png"}
	},
	{"name": "Antarctica", "alpha2Code": "AQ", "alpha3Code": "ATA", "region": "Polar"}
]`

func TestDecodeRecords_V3(t *testing.T) {
	records, err := DecodeRecords(context.Background(), []byte(v3Payload))
	require.NoError(t, err)
	require.Len(t, records, 2, "records without name or code are dropped")

	fr := records[0]
	assert.Equal(t, "France", fr.Name)
	assert.Equal(t, "French Republic", fr.OfficialName)
	assert.Equal(t, []string{"FR", "République française"}, fr.AltSpellings)
	assert.Equal(t, "FR", fr.CCA2)
	assert.Equal(t, "FRA", fr.CCA3)
	assert.Equal(t, "Europe", fr.Continent)
	assert.Equal(t, "https://flagcdn.com/w320/fr.png", fr.FlagURL, "png preferred over svg")

	br := records[1]
	assert.Equal(t, "South America", br.Continent)
	assert.Equal(t, "https://flagcdn.com/br.svg", br.FlagURL)
}

func TestDecodeRecords_V2(t *testing.T) {
	records, err := DecodeRecords(context.Background(), []byte(v2Payload))
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, "Chile", records[0].Name)
	assert.Equal(t, "CL", records[0].CCA2)
	assert.Equal(t, "CHL", records[0].CCA3)
	assert.Equal(t, "South America", records[0].Continent)
	assert.Equal(t, "https://restcountries.eu/data/chl.svg", records[0].FlagURL)

	assert.Equal(t, "North America", records[1].Continent)
	assert.Equal(t, "https://flagcdn.com/w320/ca.png", records[1].FlagURL)

	assert.Equal(t, "Antarctica", records[2].Continent)
}

func TestDecodeRecords_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"not json", `{"broken":`, ErrMsgInvalidPayload},
		{"object", `{"name": "France"}`, ErrMsgInvalidPayload},
		{"empty array", `[]`, ErrMsgEmptyReferenceSet},
		{"only junk", `[{"region": "x"}]`, ErrMsgEmptyReferenceSet},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeRecords(context.Background(), []byte(tt.body))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestHTTPFetcher_Fetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(v3Payload))
	}))
	defer srv.Close()

	records, err := NewHTTPFetcher(srv.URL, srv.Client()).Fetch(context.Background())
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestHTTPFetcher_StatusClassification(t *testing.T) {
	tests := []struct {
		status    int
		retryable bool
	}{
		{http.StatusServiceUnavailable, true},
		{http.StatusTooManyRequests, true},
		{http.StatusNotFound, false},
		{http.StatusBadRequest, false},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			_, err := NewHTTPFetcher(srv.URL, srv.Client()).Fetch(context.Background())
			require.Error(t, err)

			var fe *FetchError
			require.ErrorAs(t, err, &fe)
			assert.Equal(t, tt.status, fe.StatusCode)
			assert.Equal(t, tt.retryable, IsRetryable(err))
		})
	}
}

func TestHTTPFetcher_DecodeFailureNotRetryable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>maintenance</html>`))
	}))
	defer srv.Close()

	_, err := NewHTTPFetcher(srv.URL, srv.Client()).Fetch(context.Background())
	require.Error(t, err)
	assert.False(t, IsRetryable(err))
	assert.Contains(t, err.Error(), "decode")
}

func TestHTTPFetcher_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := NewHTTPFetcher(url, nil).Fetch(context.Background())
	require.Error(t, err)
	assert.True(t, IsRetryable(err))
}

func TestStaticFetcher(t *testing.T) {
	records, err := StaticFetcher{Records: testRecords}.Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, testRecords, records)

	_, err = StaticFetcher{}.Fetch(context.Background())
	assert.Error(t, err)
}

func TestIsRetryable(t *testing.T) {
	assert.False(t, IsRetryable(nil))
	assert.True(t, IsRetryable(assert.AnError))
	assert.False(t, IsRetryable(&FetchError{Op: "decode", Err: assert.AnError}))
}
