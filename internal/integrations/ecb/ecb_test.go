package ecb

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/mvalderrama/travel-service/internal/config"
)

const sampleFeed = `<?xml version="1.0" encoding="UTF-8"?>
<gesmes:Envelope xmlns:gesmes="http://www.gesmes.org/xml/2002-08-01" xmlns="http://www.ecb.int/vocabulary/2002-08-01/eurofxref">
	<gesmes:subject>Reference rates</gesmes:subject>
	<Cube>
		<Cube time="2025-08-29">
			<Cube currency="USD" rate="1.0812"/>
			<Cube currency="MXN" rate="20.1530"/>
			<Cube currency="ARS" rate="1456.77"/>
		</Cube>
	</Cube>
</gesmes:Envelope>`

func TestParseRates(t *testing.T) {
	rates, err := parseRates([]byte(sampleFeed))
	require.NoError(t, err)

	require.Equal(t, 1.0, rates["EUR"])
	require.Equal(t, 1.0812, rates["USD"])
	require.Equal(t, 20.1530, rates["MXN"])
	require.Equal(t, 1456.77, rates["ARS"])
}

func TestParseRatesEmptyFeed(t *testing.T) {
	_, err := parseRates([]byte(`<Envelope><Cube/></Envelope>`))
	require.Error(t, err)
}

func TestParseRatesMalformedXML(t *testing.T) {
	_, err := parseRates([]byte(`not xml`))
	require.Error(t, err)
}

func TestRatesFetchesAndCaches(t *testing.T) {
	var hits int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.Write([]byte(sampleFeed))
	}))
	defer server.Close()

	logger := logrus.New()
	client := NewClient(&config.Config{ECBURL: server.URL}, logger)

	rates, err := client.Rates()
	require.NoError(t, err)
	require.Equal(t, 1.0812, rates["USD"])

	// Second call hits the cache.
	_, err = client.Rates()
	require.NoError(t, err)
	require.Equal(t, 1, hits)
}

func TestRatesPropagatesHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(&config.Config{ECBURL: server.URL}, logrus.New())
	_, err := client.Rates()
	require.Error(t, err)
}
