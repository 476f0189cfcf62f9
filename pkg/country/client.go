package country

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"countryhub/pkg/apperrors"
)

const defaultBaseURL = "https://restcountries.com/v3.1"

const capitalFallback = "Capital City not found"

// Client queries the public country directory.
type Client struct {
	baseURL string
	client  *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
}

// upstream record, only the fields we reshape
type upstreamCountry struct {
	Name struct {
		Common string `json:"common"`
	} `json:"name"`
	Currencies map[string]Currency `json:"currencies"`
	Capital    []string            `json:"capital"`
	Languages  map[string]string   `json:"languages"`
	Flags      Flag                `json:"flags"`
}

func (c *Client) Lookup(ctx context.Context, name string) (*Details, error) {
	endpoint := fmt.Sprintf("%s/name/%s", c.baseURL, url.PathEscape(name))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", apperrors.ErrUpstream)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("country directory unreachable: %w", apperrors.ErrUpstream)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, apperrors.E(apperrors.ErrNotFound, "country not found")
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("country directory status %d: %w", resp.StatusCode, apperrors.ErrUpstream)
	}

	var records []upstreamCountry
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, fmt.Errorf("decode country response: %w", apperrors.ErrUpstream)
	}
	if len(records) == 0 {
		return nil, apperrors.E(apperrors.ErrNotFound, "country not found")
	}

	rec := records[0]

	capital := capitalFallback
	if len(rec.Capital) > 0 {
		capital = rec.Capital[0]
	}

	return &Details{
		CountryName:     rec.Name.Common,
		Currencies:      rec.Currencies,
		CapitalCity:     capital,
		SpokenLanguages: rec.Languages,
		NationalFlag:    rec.Flags,
	}, nil
}
