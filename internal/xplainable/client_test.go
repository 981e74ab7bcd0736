package xplainable

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/xplainable-io/xplainable-mcp-go/internal/common"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := NewClient("test-key", srv.URL, "org-1", "team-1", common.NewSilentLogger())
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}
	return client, srv
}

func TestNewClientRequiresAPIKey(t *testing.T) {
	_, err := NewClient("", "", "", "", common.NewSilentLogger())
	if err == nil {
		t.Fatal("expected error for empty api key")
	}
}

func TestNewClientDefaultsHostname(t *testing.T) {
	client, err := NewClient("test-key", "", "", "", common.NewSilentLogger())
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}
	if client.Hostname() != common.DefaultHostname {
		t.Errorf("expected default hostname, got %s", client.Hostname())
	}
}

func TestClientSendsAuthHeaders(t *testing.T) {
	var gotKey, gotOrg, gotTeam string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("X-Api-Key")
		gotOrg = r.Header.Get("X-Org-Id")
		gotTeam = r.Header.Get("X-Team-Id")
		w.Write([]byte(`{}`))
	})

	if _, err := client.Misc.GetVersionInfo(context.Background()); err != nil {
		t.Fatalf("GetVersionInfo failed: %v", err)
	}
	if gotKey != "test-key" || gotOrg != "org-1" || gotTeam != "team-1" {
		t.Errorf("auth headers not sent: key=%q org=%q team=%q", gotKey, gotOrg, gotTeam)
	}
}

func TestConnectPopulatesSession(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/session" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		json.NewEncoder(w).Encode(map[string]string{
			"username":        "analyst",
			"api_key_expires": "2027-01-01",
		})
	})

	if err := client.Connect(context.Background()); err != nil {
		t.Fatalf("Connect failed: %v", err)
	}
	if client.Session.Username != "analyst" {
		t.Errorf("expected username analyst, got %s", client.Session.Username)
	}
	if client.Session.Hostname == "" {
		t.Error("expected hostname to fall back to configured value")
	}
}

func TestConnectionInfoExcludesAPIKey(t *testing.T) {
	client, err := NewClient("secret-key", "https://example.test", "", "", common.NewSilentLogger())
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}

	info := client.ConnectionInfo()
	raw, _ := json.Marshal(info)
	if string(raw) == "" {
		t.Fatal("empty connection info")
	}
	for _, v := range info {
		if s, ok := v.(string); ok && s == "secret-key" {
			t.Error("connection info leaked the api key")
		}
	}
	if info["client_version"] != Version {
		t.Errorf("expected client_version %s, got %v", Version, info["client_version"])
	}
}

func TestGetModelParsesResponse(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/models/m-1" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		json.NewEncoder(w).Encode(Model{ModelID: "m-1", ModelName: "churn", ModelType: "binary_classification"})
	})

	model, err := client.Models.GetModel(context.Background(), "m-1")
	if err != nil {
		t.Fatalf("GetModel failed: %v", err)
	}
	if model.ModelName != "churn" {
		t.Errorf("expected churn, got %s", model.ModelName)
	}
}

func TestListTeamModelsNullBodyReturnsErrNullResponse(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`null`))
	})

	_, err := client.Models.ListTeamModels(context.Background(), "")
	if !errors.Is(err, ErrNullResponse) {
		t.Fatalf("expected ErrNullResponse, got %v", err)
	}
}

func TestListTeamModelsAppendsTeamQuery(t *testing.T) {
	var gotQuery string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Write([]byte(`[]`))
	})

	if _, err := client.Models.ListTeamModels(context.Background(), "team-9"); err != nil {
		t.Fatalf("ListTeamModels failed: %v", err)
	}
	if gotQuery != "team_id=team-9" {
		t.Errorf("expected team_id query, got %q", gotQuery)
	}
}

func TestErrorEnvelopeBecomesAPIError(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error": "model not found"}`))
	})

	_, err := client.Models.GetModel(context.Background(), "missing")
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.StatusCode != http.StatusNotFound || apiErr.Message != "model not found" {
		t.Errorf("unexpected APIError: %+v", apiErr)
	}
}

func TestGenerateDeployKeyReturnsKey(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		json.NewDecoder(r.Body).Decode(&body)
		if body["days_until_expiry"] != float64(90) {
			t.Errorf("expected default expiry 90, got %v", body["days_until_expiry"])
		}
		json.NewEncoder(w).Encode(map[string]string{"deploy_key": "dk-123"})
	})

	key, err := client.Deployments.GenerateDeployKey(context.Background(), "d-1", "", 0)
	if err != nil {
		t.Fatalf("GenerateDeployKey failed: %v", err)
	}
	if key != "dk-123" {
		t.Errorf("expected dk-123, got %s", key)
	}
}

func TestPredictSendsDefaults(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		json.NewDecoder(r.Body).Decode(&body)
		if body["delimiter"] != ", " {
			t.Errorf("expected default delimiter, got %v", body["delimiter"])
		}
		json.NewEncoder(w).Encode(map[string]any{"predictions": []int{1, 0}})
	})

	result, err := client.Inference.Predict(context.Background(), "data.csv", "m-1", "v-1", 0.5, "")
	if err != nil {
		t.Fatalf("Predict failed: %v", err)
	}
	if result["predictions"] == nil {
		t.Error("expected predictions in result")
	}
}

func TestAutotrainBodyOmitsUnsetOptionals(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		json.NewDecoder(r.Body).Decode(&body)
		if _, ok := body["team_id"]; ok {
			t.Error("team_id should be omitted when empty")
		}
		if _, ok := body["textgen_config"]; ok {
			t.Error("textgen_config should be omitted when nil")
		}
		w.Write([]byte(`{"labels": []}`))
	})

	_, err := client.Autotrain.GenerateLabels(context.Background(), map[string]any{"cols": 3}, "", nil)
	if err != nil {
		t.Fatalf("GenerateLabels failed: %v", err)
	}
}

func TestGetActiveTeamDeployKeysCount(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"count": 4}`))
	})

	count, err := client.Deployments.GetActiveTeamDeployKeysCount(context.Background(), "")
	if err != nil {
		t.Fatalf("GetActiveTeamDeployKeysCount failed: %v", err)
	}
	if count != 4 {
		t.Errorf("expected 4, got %d", count)
	}
}
