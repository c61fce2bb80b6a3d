package gds

import (
	"context"
	"encoding/json"

	"aerobook/pkg/retry"
)

// AncillaryOption is one purchasable or advisory add-on
type AncillaryOption struct {
	Code        string  `json:"code"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

// SeatOption is one selectable seat with its coordinate
type SeatOption struct {
	Code  string  `json:"code"`
	Row   string  `json:"row"`
	Seat  string  `json:"seat"`
	Price float64 `json:"price"`
}

// AncillaryCatalog is the normalized ancillary offering for one leg. For
// legs that are not online-eligible the options are advisory only and every
// price is zero.
type AncillaryCatalog struct {
	OnlineEligible bool              `json:"online_eligible"`
	Baggage        []AncillaryOption `json:"baggage"`
	Meals          []AncillaryOption `json:"meals"`
	Seats          []SeatOption      `json:"seats,omitempty"`
}

// CatalogFetcher looks up the ancillary offering for a freshly quoted leg
type CatalogFetcher interface {
	FetchCatalog(ctx context.Context, session Session, freshReference string, onlineEligible bool) (*AncillaryCatalog, error)
}

// FetchCatalog loads the ancillary catalog against a just-quoted reference.
// The response shape differs by carrier type, so both variants are decoded
// here and never leak past this boundary. The call is an idempotent read
// and is retried with backoff.
func (c *Client) FetchCatalog(ctx context.Context, session Session, freshReference string, onlineEligible bool) (*AncillaryCatalog, error) {
	if freshReference == "" {
		return nil, &AncillaryError{Reason: "empty result reference"}
	}

	var raw []byte
	err := retry.Do(ctx, retry.DefaultConfig(), func() error {
		var callErr error
		raw, callErr = c.post(ctx, "/api/v1/ancillaries", ancillaryRequest{
			ResultReference: freshReference,
			TokenID:         session.TokenID,
			TraceID:         session.TraceID,
		})
		return callErr
	})
	if err != nil {
		return nil, &AncillaryError{Reason: err.Error(), Raw: raw}
	}

	if onlineEligible {
		return decodeLCCCatalog(raw)
	}
	return decodeAdvisoryCatalog(raw)
}

func decodeLCCCatalog(raw []byte) (*AncillaryCatalog, error) {
	var resp lccAncillaryResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, &AncillaryError{Reason: "malformed ancillary response", Raw: raw}
	}
	if resp.Error != nil {
		return nil, &AncillaryError{Reason: resp.Error.reason(), Raw: raw}
	}

	catalog := &AncillaryCatalog{OnlineEligible: true}
	for _, opt := range resp.Baggage {
		catalog.Baggage = append(catalog.Baggage, AncillaryOption(opt))
	}
	for _, opt := range resp.Meals {
		catalog.Meals = append(catalog.Meals, AncillaryOption(opt))
	}
	for _, seat := range resp.SeatMap {
		catalog.Seats = append(catalog.Seats, SeatOption(seat))
	}
	return catalog, nil
}

func decodeAdvisoryCatalog(raw []byte) (*AncillaryCatalog, error) {
	var resp advisoryAncillaryResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, &AncillaryError{Reason: "malformed ancillary response", Raw: raw}
	}
	if resp.Error != nil {
		return nil, &AncillaryError{Reason: resp.Error.reason(), Raw: raw}
	}

	// Advisory preferences never carry a purchasable price
	catalog := &AncillaryCatalog{OnlineEligible: false}
	for _, pref := range resp.BaggagePreferences {
		catalog.Baggage = append(catalog.Baggage, AncillaryOption{Code: pref.Code, Description: pref.Description})
	}
	for _, pref := range resp.MealPreferences {
		catalog.Meals = append(catalog.Meals, AncillaryOption{Code: pref.Code, Description: pref.Description})
	}
	return catalog, nil
}
