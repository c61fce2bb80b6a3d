package gds

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDate(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

func newTestClient(handler http.HandlerFunc) (*Client, *httptest.Server) {
	server := httptest.NewServer(handler)
	return NewClient(Config{BaseURL: server.URL}), server
}

func TestRevalidateReturnsFreshQuote(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/revalidate", r.URL.Path)

		var req map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "stale-ref", req["result_reference"])
		assert.Equal(t, "tok-1", req["token_id"])
		assert.Equal(t, "trace-1", req["trace_id"])

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"result_reference":"fresh-ref","base_fare":4000,"tax":900,"surcharges":100}`))
	})
	defer server.Close()

	quote, err := client.Revalidate(context.Background(), Session{TokenID: "tok-1", TraceID: "trace-1"}, "stale-ref")

	require.NoError(t, err)
	assert.Equal(t, "fresh-ref", quote.ResultReference)
	assert.Equal(t, 4000.0, quote.Fare.BaseFare)
	assert.Equal(t, 900.0, quote.Fare.Tax)
	assert.Equal(t, 100.0, quote.Fare.Surcharges)
}

func TestRevalidateErrorEnvelope(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"error":{"code":"FARE_EXPIRED","message":"fare expired"}}`))
	})
	defer server.Close()

	_, err := client.Revalidate(context.Background(), Session{TokenID: "t", TraceID: "tr"}, "stale-ref")

	var quoteErr *QuoteError
	require.ErrorAs(t, err, &quoteErr)
	assert.Contains(t, quoteErr.Error(), "fare expired")
}

func TestRevalidateMissingReference(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"base_fare":4000}`))
	})
	defer server.Close()

	_, err := client.Revalidate(context.Background(), Session{TokenID: "t", TraceID: "tr"}, "stale-ref")

	var quoteErr *QuoteError
	require.ErrorAs(t, err, &quoteErr)
	assert.Contains(t, quoteErr.Reason, "no result")
}

func TestRevalidateEmptyReferenceNeverCallsProvider(t *testing.T) {
	called := false
	client, server := newTestClient(func(w http.ResponseWriter, _ *http.Request) {
		called = true
	})
	defer server.Close()

	_, err := client.Revalidate(context.Background(), Session{TokenID: "t", TraceID: "tr"}, "")

	var quoteErr *QuoteError
	require.ErrorAs(t, err, &quoteErr)
	assert.False(t, called)
}

func TestFetchCatalogLCC(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/ancillaries", r.URL.Path)
		w.Write([]byte(`{
			"baggage_options":[{"code":"XB10","description":"10kg extra","price":800}],
			"meal_options":[{"code":"VGML","description":"vegetarian meal","price":350}],
			"seat_map":[{"code":"12A","row":"12","seat":"A","price":500}]
		}`))
	})
	defer server.Close()

	catalog, err := client.FetchCatalog(context.Background(), Session{TokenID: "t", TraceID: "tr"}, "fresh-ref", true)

	require.NoError(t, err)
	assert.True(t, catalog.OnlineEligible)
	require.Len(t, catalog.Baggage, 1)
	assert.Equal(t, 800.0, catalog.Baggage[0].Price)
	require.Len(t, catalog.Meals, 1)
	require.Len(t, catalog.Seats, 1)
	assert.Equal(t, "12", catalog.Seats[0].Row)
}

func TestFetchCatalogAdvisory(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{
			"baggage_preferences":[{"code":"XB10","description":"10kg extra"}],
			"meal_preferences":[{"code":"VGML","description":"vegetarian meal"}]
		}`))
	})
	defer server.Close()

	catalog, err := client.FetchCatalog(context.Background(), Session{TokenID: "t", TraceID: "tr"}, "fresh-ref", false)

	require.NoError(t, err)
	assert.False(t, catalog.OnlineEligible)
	require.Len(t, catalog.Baggage, 1)
	assert.Equal(t, 0.0, catalog.Baggage[0].Price, "advisory options carry no price")
	require.Len(t, catalog.Meals, 1)
	assert.Equal(t, 0.0, catalog.Meals[0].Price)
	assert.Empty(t, catalog.Seats)
}

func TestFetchCatalogRetriesTransientFailure(t *testing.T) {
	attempts := 0
	client, server := newTestClient(func(w http.ResponseWriter, _ *http.Request) {
		attempts++
		if attempts == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Write([]byte(`{"baggage_options":[],"meal_options":[]}`))
	})
	defer server.Close()

	_, err := client.FetchCatalog(context.Background(), Session{TokenID: "t", TraceID: "tr"}, "fresh-ref", true)

	require.NoError(t, err)
	assert.Equal(t, 2, attempts)
}

func TestRefundLookup(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/refund-quote", r.URL.Path)

		var req map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "2026-09-20", req["trip_start"])

		w.Write([]byte(`{"price":399}`))
	})
	defer server.Close()

	price, err := client.Lookup(context.Background(), 5000, mustDate("2026-09-20"))

	require.NoError(t, err)
	assert.Equal(t, 399.0, price)
}
