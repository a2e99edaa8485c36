package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

// RateTable maps a currency/asset symbol to its price expressed in the base
// currency the table was fetched for.
type RateTable map[string]float64

type cachedTable struct {
	rates     RateTable
	fetchedAt time.Time
}

var (
	cachedTables = sync.Map{} // base currency -> cachedTable
	cacheTimeout = 1 * time.Hour
	defaultAPI   = "https://api.coingecko.com/api/v3/simple/price"
	ratesAPIURL  atomic.Value // string; set once at startup from config

	// CoinGecko ids for the assets we track, mapped to our symbols
	trackedAssets = map[string]string{
		"bitcoin":  "BTC",
		"ethereum": "ETH",
		"tether":   "USDT",
		"usd":      "USD",
		"eur":      "EUR",
		"brl":      "BRL",
		"gbp":      "GBP",
	}
)

// GetRateTable returns the cached rate table for the base currency,
// refetching when the hour-long cache has expired. On total fetch failure a
// stale table is better than none; with no cache at all an empty table is
// returned and conversion falls open downstream.
func GetRateTable(baseCurrency string) RateTable {
	base := strings.ToLower(baseCurrency)
	if base == "" {
		base = "usd"
	}

	if v, ok := cachedTables.Load(base); ok {
		cached := v.(cachedTable)
		if time.Since(cached.fetchedAt) < cacheTimeout {
			return cached.rates
		}
	}

	rates, err := fetchRateTable(base)
	if err != nil {
		log.Printf("Failed to fetch exchange rates for %s: %v", base, err)
		if v, ok := cachedTables.Load(base); ok {
			log.Printf("Using stale cached rates for base currency: %s", base)
			return v.(cachedTable).rates
		}
		return RateTable{}
	}

	cachedTables.Store(base, cachedTable{rates: rates, fetchedAt: time.Now()})
	return rates
}

// RefreshRateTable forces a refetch, used by the hourly cron job so user
// requests mostly hit a warm cache.
func RefreshRateTable(baseCurrency string) error {
	base := strings.ToLower(baseCurrency)
	if base == "" {
		base = "usd"
	}
	rates, err := fetchRateTable(base)
	if err != nil {
		return err
	}
	cachedTables.Store(base, cachedTable{rates: rates, fetchedAt: time.Now()})
	return nil
}

// SetRatesAPIURL overrides the rates endpoint; called from main with the
// configured value so this package never reads the environment itself.
func SetRatesAPIURL(apiURL string) {
	ratesAPIURL.Store(apiURL)
}

func fetchRateTable(base string) (RateTable, error) {
	apiURL := defaultAPI
	if v, ok := ratesAPIURL.Load().(string); ok && v != "" {
		apiURL = v
	}

	ids := make([]string, 0, len(trackedAssets))
	for id := range trackedAssets {
		ids = append(ids, id)
	}

	client := http.Client{Timeout: 10 * time.Second}
	requestURL := fmt.Sprintf("%s?ids=%s&vs_currencies=%s",
		apiURL, url.QueryEscape(strings.Join(ids, ",")), url.QueryEscape(base))

	var lastErr error
	for i := 0; i < 3; i++ {
		resp, err := client.Get(requestURL)
		if err != nil {
			lastErr = err
			log.Printf("Error fetching rates (attempt %d): %v", i+1, err)
			time.Sleep(2 * time.Second)
			continue
		}

		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			lastErr = errors.New("rates API returned non-OK status")
			log.Printf("Rates API returned status %d (attempt %d)", resp.StatusCode, i+1)
			time.Sleep(2 * time.Second)
			continue
		}

		// Response shape: { "bitcoin": { "usd": 95000 }, ... }
		var payload map[string]map[string]float64
		err = json.NewDecoder(resp.Body).Decode(&payload)
		resp.Body.Close()
		if err != nil {
			lastErr = err
			log.Printf("Error decoding rates response (attempt %d): %v", i+1, err)
			time.Sleep(2 * time.Second)
			continue
		}

		rates := RateTable{}
		for id, symbol := range trackedAssets {
			if quote, ok := payload[id]; ok {
				if rate, ok := quote[base]; ok && rate > 0 {
					rates[symbol] = rate
				}
			}
		}

		if len(rates) > 0 {
			log.Printf("Exchange rates cache updated for base currency: %s", base)
			return rates, nil
		}

		lastErr = errors.New("no valid data to update cache")
		log.Println(lastErr)
		time.Sleep(2 * time.Second)
	}

	return nil, lastErr
}
