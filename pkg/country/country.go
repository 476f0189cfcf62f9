package country

import "context"

type Currency struct {
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
}

type Flag struct {
	PNG string `json:"png"`
	SVG string `json:"svg"`
	Alt string `json:"alt,omitempty"`
}

// Details is the reshaped record served to clients.
type Details struct {
	CountryName     string              `json:"countryName"`
	Currencies      map[string]Currency `json:"currencies"`
	CapitalCity     string              `json:"capitalCity"`
	SpokenLanguages map[string]string   `json:"spokenLanguages"`
	NationalFlag    Flag                `json:"nationalFlag"`
}

type Lookuper interface {
	Lookup(ctx context.Context, name string) (*Details, error)
}
