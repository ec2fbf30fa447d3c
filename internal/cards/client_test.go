package cards

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cardwise/card-assistant/internal/models"
	"github.com/rs/zerolog"
)

func newTestLogger() *zerolog.Logger {
	logger := zerolog.Nop()
	return &logger
}

func catalogFixture() []models.CardRecord {
	return []models.CardRecord{
		{
			CardName:    "Regalia Gold",
			BankName:    "HDFC Bank",
			AnnualFee:   2500,
			JoiningFee:  2500,
			KeyFeatures: []string{"lounge access", "reward points"},
			RewardRate:  "4 points per 150 spent",
			Eligibility: "income above 1L per month",
			Benefits:    "milestone vouchers and travel benefits",
		},
		{
			CardName:    "Amazon Pay",
			BankName:    "ICICI Bank",
			AnnualFee:   0,
			JoiningFee:  0,
			KeyFeatures: []string{"cashback", "no annual fee"},
			RewardRate:  "5% cashback on amazon",
			Eligibility: "income above 25k per month",
			Benefits:    "unlimited cashback",
		},
		{
			CardName:    "SimplyClick",
			BankName:    "SBI Card",
			AnnualFee:   499,
			JoiningFee:  499,
			KeyFeatures: []string{"online shopping rewards"},
			RewardRate:  "10x points on partner sites",
			Eligibility: "income above 20k per month",
			Benefits:    "e-voucher on milestone spends",
		},
	}
}

func TestClient_NewClient_RequiresBaseURL(t *testing.T) {
	if _, err := NewClient("", newTestLogger()); err == nil {
		t.Error("expected error for empty base URL")
	}
}

func TestClient_Search_RanksByTermHits(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path

		var payload map[string]any
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Errorf("request body not JSON: %v", err)
		}
		for _, field := range []string{"bank_ids", "card_networks", "eligibility", "payload"} {
			if _, ok := payload[field]; !ok {
				t.Errorf("payload missing field %q", field)
			}
		}

		_ = json.NewEncoder(w).Encode(map[string]any{"cards": catalogFixture()})
	}))
	defer server.Close()

	client, err := NewClient(server.URL, newTestLogger())
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}

	records, err := client.Search(context.Background(), "hdfc lounge access", []string{"hdfc", "lounge"})
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}

	if gotPath != "/cards/search" {
		t.Errorf("request path: got %q, want /cards/search", gotPath)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 matching card, got %d", len(records))
	}
	if records[0].CardName != "Regalia Gold" {
		t.Errorf("top card: got %q, want Regalia Gold", records[0].CardName)
	}
}

func TestClient_Search_EmptyResultIsNotError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"cards": []models.CardRecord{}})
	}))
	defer server.Close()

	client, err := NewClient(server.URL, newTestLogger())
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}

	records, err := client.Search(context.Background(), "anything", nil)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("expected empty result, got %d records", len(records))
	}
}

func TestClient_Search_ErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream down", http.StatusBadGateway)
	}))
	defer server.Close()

	client, err := NewClient(server.URL, newTestLogger())
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}

	if _, err := client.Search(context.Background(), "anything", nil); err == nil {
		t.Error("expected error for 502 response")
	}
}

func TestClient_Search_UnreachableService(t *testing.T) {
	client, err := NewClient("http://127.0.0.1:1", newTestLogger())
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}

	if _, err := client.Search(context.Background(), "anything", nil); err == nil {
		t.Error("expected error for unreachable service")
	}
}

func TestRankByTerms_FallsBackToQueryFields(t *testing.T) {
	records := catalogFixture()

	out := rankByTerms(records, "cashback amazon", nil, 12)
	if len(out) == 0 {
		t.Fatal("expected matches from query fields when terms are empty")
	}
	if out[0].CardName != "Amazon Pay" {
		t.Errorf("top card: got %q, want Amazon Pay", out[0].CardName)
	}
}

func TestRankByTerms_DropsZeroHitCards(t *testing.T) {
	records := catalogFixture()

	out := rankByTerms(records, "", []string{"platinum"}, 12)
	if len(out) != 0 {
		t.Errorf("expected no cards for unmatched term, got %d", len(out))
	}
}

func TestRankByTerms_CapsResults(t *testing.T) {
	records := catalogFixture()

	out := rankByTerms(records, "", []string{"income"}, 2)
	if len(out) != 2 {
		t.Errorf("expected cap of 2, got %d", len(out))
	}
}
