package collector

import (
	"fmt"

	"SignalBoard/internal/config"
)

// NewFetcher picks the provider named in the config.
func NewFetcher(cfg *config.Config) (Fetcher, error) {
	ds := cfg.DataSource
	switch ds.Provider {
	case config.ProviderAlphaVantage:
		return NewAlphaVantageFetcher(ds.AlphaVantage.APIKey, ds.AlphaVantage.BaseURL, cfg.Proxy), nil
	case config.ProviderYahoo:
		return NewYahooFetcher(), nil
	case config.ProviderAlpaca:
		return NewAlpacaFetcher(ds.Alpaca.APIKey, ds.Alpaca.APISecret), nil
	case config.ProviderMock:
		return &MockFetcher{}, nil
	default:
		return nil, fmt.Errorf("unknown provider %q", ds.Provider)
	}
}
