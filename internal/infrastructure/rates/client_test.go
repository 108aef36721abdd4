package rates

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/minipay/ledger-api/internal/core/domain"
)

func TestClient_Rate_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("base"); got != "INR" {
			t.Errorf("expected base=INR, got %q", got)
		}
		if got := r.URL.Query().Get("apikey"); got != "test-key" {
			t.Errorf("expected apikey=test-key, got %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":{"USD":{"value":0.012},"EUR":{"value":0.011}}}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "test-key", "INR", time.Second)

	rate, err := client.Rate(context.Background(), "USD")
	if err != nil {
		t.Fatalf("Rate returned error: %v", err)
	}
	if rate != 0.012 {
		t.Fatalf("expected 0.012, got %v", rate)
	}
}

func TestClient_Rate_UnknownCurrency(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":{"USD":{"value":0.012}}}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "k", "INR", time.Second)

	if _, err := client.Rate(context.Background(), "XYZ"); !errors.Is(err, domain.ErrRateUnavailable) {
		t.Fatalf("expected ErrRateUnavailable, got %v", err)
	}
}

func TestClient_Rate_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "k", "INR", time.Second)

	if _, err := client.Rate(context.Background(), "USD"); !errors.Is(err, domain.ErrRateUnavailable) {
		t.Fatalf("expected ErrRateUnavailable, got %v", err)
	}
}

func TestClient_Rate_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // shut down before calling

	client := NewClient(srv.URL, "k", "INR", time.Second)

	if _, err := client.Rate(context.Background(), "USD"); !errors.Is(err, domain.ErrRateUnavailable) {
		t.Fatalf("expected ErrRateUnavailable, got %v", err)
	}
}
