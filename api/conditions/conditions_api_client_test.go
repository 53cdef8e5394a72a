package conditions

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"surf-server/api"
	"surf-server/models"
)

func TestGetCurrentConditions(t *testing.T) {
	wantResp := models.SurfConditions{
		Location:      "Ocean Beach",
		WaveHeightFt:  3.5,
		WavePeriodSec: 11,
		TideState:     "Rising",
		Score:         72,
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "GET" {
			t.Errorf("expected GET; got %s", r.Method)
		}
		if r.URL.Path != "/conditions" {
			t.Errorf("expected path /conditions; got %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("spot"); got != "Ocean Beach" {
			t.Errorf("spot = %q; want Ocean Beach", got)
		}
		if got := r.Header.Get("X-Api-Key"); got != "condkey" {
			t.Errorf("X-Api-Key = %q; want condkey", got)
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(wantResp)
	}))
	defer srv.Close()

	client := NewConditionsApiClient(api.NewHTTPClient(srv.URL))
	client.SetAPIKey("condkey")

	got, err := client.GetCurrentConditions("Ocean Beach")
	if err != nil {
		t.Fatal(err)
	}
	if got.Location != wantResp.Location {
		t.Errorf("Location = %q; want %q", got.Location, wantResp.Location)
	}
	if got.WaveHeightFt != wantResp.WaveHeightFt {
		t.Errorf("WaveHeightFt = %v; want %v", got.WaveHeightFt, wantResp.WaveHeightFt)
	}
}

func TestGetCurrentConditions_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	defer srv.Close()

	client := NewConditionsApiClient(api.NewHTTPClient(srv.URL))
	if _, err := client.GetCurrentConditions("Anywhere"); err == nil {
		t.Fatal("expected error on 502")
	}
}
