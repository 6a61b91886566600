package countries

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/osse101/GlobePalette_Go/internal/domain"
	"github.com/osse101/GlobePalette_Go/internal/logger"
)

// maxPayloadBytes bounds the reference response body.
const maxPayloadBytes = 16 << 20

// Fetcher loads the full reference set in one call.
type Fetcher interface {
	Fetch(ctx context.Context) ([]domain.Country, error)
}

// HTTPFetcher reads the reference set from a restcountries-style endpoint.
type HTTPFetcher struct {
	client *http.Client
	url    string
}

// NewHTTPFetcher returns a fetcher for url. A nil client uses http.DefaultClient.
func NewHTTPFetcher(url string, client *http.Client) *HTTPFetcher {
	if client == nil {
		client = http.DefaultClient
	}
	if url == "" {
		url = DefaultReferenceURL
	}
	return &HTTPFetcher{client: client, url: url}
}

// Fetch performs one GET and decodes the body.
func (f *HTTPFetcher) Fetch(ctx context.Context) ([]domain.Country, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, nil)
	if err != nil {
		return nil, &FetchError{Op: "build request", Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, &FetchError{
			Op:        "request",
			Retryable: !errors.Is(err, context.Canceled),
			Err:       err,
		}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, NewStatusError(resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxPayloadBytes))
	if err != nil {
		return nil, &FetchError{Op: "read body", Retryable: true, Err: err}
	}

	records, err := DecodeRecords(ctx, body)
	if err != nil {
		return nil, &FetchError{Op: "decode", Err: err}
	}
	return records, nil
}

// DecodeRecords parses a JSON array of country objects. Both the v3 layout
// (name.common, cca2, flags.png) and the older v2 layout (name, alpha2Code,
// flag) are accepted. Entries with neither a name nor a code are dropped.
func DecodeRecords(ctx context.Context, data []byte) ([]domain.Country, error) {
	if !gjson.ValidBytes(data) {
		return nil, errors.New(ErrMsgInvalidPayload)
	}
	root := gjson.ParseBytes(data)
	if !root.IsArray() {
		return nil, errors.New(ErrMsgInvalidPayload)
	}

	items := root.Array()
	records := make([]domain.Country, 0, len(items))
	for i, item := range items {
		c := decodeRecord(item)
		if c.Name == "" && c.CCA2 == "" && c.CCA3 == "" {
			logger.FromContext(ctx).Debug(LogMsgRecordSkipped, "index", i)
			continue
		}
		records = append(records, c)
	}

	if len(records) == 0 {
		return nil, errors.New(ErrMsgEmptyReferenceSet)
	}
	return records, nil
}

func decodeRecord(item gjson.Result) domain.Country {
	var c domain.Country

	name := item.Get("name")
	if name.Type == gjson.String {
		c.Name = name.String()
		c.OfficialName = item.Get("officialName").String()
	} else {
		c.Name = name.Get("common").String()
		c.OfficialName = name.Get("official").String()
	}

	for _, alt := range item.Get("altSpellings").Array() {
		if s := strings.TrimSpace(alt.String()); s != "" {
			c.AltSpellings = append(c.AltSpellings, s)
		}
	}

	c.CCA2 = firstString(item, "cca2", "alpha2Code")
	c.CCA3 = firstString(item, "cca3", "alpha3Code")
	c.Region = item.Get("region").String()
	c.Continent = decodeContinent(item)
	c.FlagURL = firstString(item, "flags.png", "flags.svg", "flag")
	return c
}

func decodeContinent(item gjson.Result) string {
	if first := item.Get("continents.0"); first.Exists() {
		return first.String()
	}

	// v2 only carries region/subregion
	region := item.Get("region").String()
	switch region {
	case "Americas":
		if strings.Contains(item.Get("subregion").String(), "South America") {
			return "South America"
		}
		return "North America"
	case "Polar", "Antarctic":
		return "Antarctica"
	}
	return region
}

func firstString(item gjson.Result, paths ...string) string {
	for _, p := range paths {
		if v := item.Get(p); v.Type == gjson.String && v.String() != "" {
			return v.String()
		}
	}
	return ""
}

// StaticFetcher serves a fixed reference set. Used for offline runs and
// warm starts from a file.
type StaticFetcher struct {
	Records []domain.Country
}

// Fetch returns the configured records.
func (f StaticFetcher) Fetch(ctx context.Context) ([]domain.Country, error) {
	if len(f.Records) == 0 {
		return nil, fmt.Errorf("static: %s", ErrMsgEmptyReferenceSet)
	}
	return f.Records, nil
}
