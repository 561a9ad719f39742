package server

import (
	"encoding/json"
	"image/png"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/charmbracelet/log"
)

func newTestServer() *httptest.Server {
	return httptest.NewServer(NewServer(0, log.New(io.Discard)).Handler())
}

func TestServer_Health(t *testing.T) {
	ts := newTestServer()
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/api/health")
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	defer resp.Body.Close()

	var body map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("Invalid JSON: %v", err)
	}
	if resp.StatusCode != http.StatusOK || body["status"] != "ok" {
		t.Errorf("Unexpected health response %d %v", resp.StatusCode, body)
	}
}

func TestServer_Setups(t *testing.T) {
	ts := newTestServer()
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/api/setups")
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	defer resp.Body.Close()

	var body struct {
		Setups []struct {
			ID    string `json:"id"`
			Debug string `json:"debug"`
		} `json:"setups"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("Invalid JSON: %v", err)
	}

	found := false
	for _, s := range body.Setups {
		if s.ID == "normals" {
			found = true
			if s.Debug != "normals" {
				t.Errorf("normals setup should report its debug mode, got %q", s.Debug)
			}
		}
	}
	if !found {
		t.Errorf("Expected normals setup in %+v", body.Setups)
	}
}

func TestServer_Render(t *testing.T) {
	ts := newTestServer()
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/api/render?scene=spheres&width=20&height=10&samples=1&bounces=3")
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected 200, got %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "image/png" {
		t.Errorf("Expected image/png, got %q", ct)
	}
	if resp.Header.Get("X-Render-Rays") == "" {
		t.Error("Expected ray count header")
	}

	img, err := png.Decode(resp.Body)
	if err != nil {
		t.Fatalf("Response is not a PNG: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 20 || b.Dy() != 10 {
		t.Errorf("Expected 20x10 image, got %v", b)
	}
}

func TestServer_RenderErrors(t *testing.T) {
	ts := newTestServer()
	defer ts.Close()

	tests := []struct {
		name     string
		query    string
		expected int
	}{
		{"unknown scene", "?scene=cornell&width=4&height=4", http.StatusNotFound},
		{"width too large", "?width=100000", http.StatusBadRequest},
		{"bad samples", "?samples=abc", http.StatusBadRequest},
		{"unknown debug mode", "?debug=wireframe", http.StatusBadRequest},
		{"unknown format", "?format=gif", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := http.Get(ts.URL + "/api/render" + tt.query)
			if err != nil {
				t.Fatalf("Request failed: %v", err)
			}
			defer resp.Body.Close()

			if resp.StatusCode != tt.expected {
				t.Errorf("Expected %d, got %d", tt.expected, resp.StatusCode)
			}
			var body map[string]string
			if err := json.NewDecoder(resp.Body).Decode(&body); err != nil || body["error"] == "" {
				t.Errorf("Expected JSON error body, got %v (%v)", body, err)
			}
		})
	}
}

func TestServer_Inspect(t *testing.T) {
	ts := newTestServer()
	defer ts.Close()

	get := func(query string) (int, InspectResponse) {
		resp, err := http.Get(ts.URL + "/api/inspect" + query)
		if err != nil {
			t.Fatalf("Request failed: %v", err)
		}
		defer resp.Body.Close()
		var body InspectResponse
		json.NewDecoder(resp.Body).Decode(&body)
		return resp.StatusCode, body
	}

	// The center of the default setup looks straight at the red diffuse sphere
	status, body := get("?scene=default&width=40&height=20&x=20&y=10")
	if status != http.StatusOK {
		t.Fatalf("Expected 200, got %d", status)
	}
	if !body.Hit || body.MaterialType != "diffuse" || body.GeometryType != "sphere" || !body.FrontFace {
		t.Errorf("Unexpected inspection %+v", body)
	}

	// The top row of the default setup sees only sky
	status, body = get("?scene=default&width=40&height=20&x=0&y=0")
	if status != http.StatusOK || body.Hit {
		t.Errorf("Expected a miss at the top left, got %d %+v", status, body)
	}

	if status, _ := get("?scene=default&width=40&height=20&x=40&y=0"); status != http.StatusBadRequest {
		t.Errorf("Expected 400 for out-of-bounds pixel, got %d", status)
	}
	if status, _ := get("?scene=default&x=a&y=0"); status != http.StatusBadRequest {
		t.Errorf("Expected 400 for bad coordinate, got %d", status)
	}
}
