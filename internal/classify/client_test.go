package classify

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestParseEndpoint_AddsSchemeAndKeepsPath(t *testing.T) {
	u, err := parseEndpoint("  localhost:5001/predict  ")
	if err != nil {
		t.Fatalf("parseEndpoint returned error: %v", err)
	}
	if u.Scheme != "http" {
		t.Fatalf("scheme = %q, want http", u.Scheme)
	}
	if u.Path != "/predict" {
		t.Fatalf("path = %q, want /predict", u.Path)
	}

	u, err = parseEndpoint("https://api.example.com/v1/classify?key=abc")
	if err != nil {
		t.Fatalf("parseEndpoint returned error: %v", err)
	}
	if u.String() != "https://api.example.com/v1/classify?key=abc" {
		t.Fatalf("endpoint rewritten: %q", u.String())
	}
}

func TestParseEndpoint_EmptyIsErrNoEndpoint(t *testing.T) {
	if _, err := parseEndpoint("   "); !errors.Is(err, ErrNoEndpoint) {
		t.Fatalf("parseEndpoint error = %v, want ErrNoEndpoint", err)
	}
	if _, err := NewClient(""); !errors.Is(err, ErrNoEndpoint) {
		t.Fatalf("NewClient error = %v, want ErrNoEndpoint", err)
	}
}

func TestClient_PostsRawTextAndDecodesVerdict(t *testing.T) {
	t.Parallel()

	var gotBody Request
	var gotMethod, gotPath, gotType, gotAgent, gotID string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotType = r.Header.Get("Content-Type")
		gotAgent = r.Header.Get("User-Agent")
		gotID = r.Header.Get(RequestIDHeader)
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"isSpam": true, "confidence": 0.93}`))
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL + "/predict")
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	t.Cleanup(cancel)

	text := "  Congratulations! You won a free prize, click here \n"
	verdict, err := c.Classify(WithRequestID(ctx, "req-1"), text)
	if err != nil {
		t.Fatalf("Classify returned error: %v", err)
	}
	if !verdict.IsSpam {
		t.Fatalf("verdict = %#v, want spam", verdict)
	}
	if gotMethod != http.MethodPost || gotPath != "/predict" {
		t.Fatalf("request = %s %s, want POST /predict", gotMethod, gotPath)
	}
	if gotBody.Text != text {
		t.Fatalf("body text = %q, want untrimmed %q", gotBody.Text, text)
	}
	if gotType != "application/json" {
		t.Fatalf("Content-Type = %q, want application/json", gotType)
	}
	if !strings.HasPrefix(gotAgent, "smsshield/") {
		t.Fatalf("User-Agent = %q, want smsshield/*", gotAgent)
	}
	if gotID != "req-1" {
		t.Fatalf("%s = %q, want req-1", RequestIDHeader, gotID)
	}
}

func TestClient_DecodesLegitimateAndPrediction(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		body     string
		wantSpam bool
	}{
		{"isSpam false", `{"isSpam": false}`, false},
		{"prediction spam", `{"prediction": 1}`, true},
		{"prediction ham", `{"prediction": 0}`, false},
		{"isSpam wins", `{"isSpam": false, "prediction": 1}`, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(tc.body))
			}))
			defer server.Close()

			c, err := NewClient(server.URL)
			if err != nil {
				t.Fatalf("NewClient returned error: %v", err)
			}
			verdict, err := c.Classify(context.Background(), "Hey, are we still meeting at 5?")
			if err != nil {
				t.Fatalf("Classify returned error: %v", err)
			}
			if verdict.IsSpam != tc.wantSpam {
				t.Fatalf("IsSpam = %v, want %v", verdict.IsSpam, tc.wantSpam)
			}
		})
	}
}

func TestClient_FailureModes(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name      string
		handler   http.HandlerFunc
		wantErr   string
		malformed bool
	}{
		{
			name: "server error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "nope", http.StatusInternalServerError)
			},
			wantErr: "returned status 500",
		},
		{
			name: "not json",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte("{not-json"))
			},
			wantErr:   "decode response",
			malformed: true,
		},
		{
			name: "missing field",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"message": "The backend is working perfectly"}`))
			},
			wantErr:   "missing isSpam",
			malformed: true,
		},
		{
			name: "wrong type",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"isSpam": "yes"}`))
			},
			wantErr:   "decode response",
			malformed: true,
		},
		{
			name: "unknown prediction",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"prediction": 7}`))
			},
			wantErr:   "prediction 7",
			malformed: true,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			server := httptest.NewServer(tc.handler)
			defer server.Close()

			c, err := NewClient(server.URL)
			if err != nil {
				t.Fatalf("NewClient returned error: %v", err)
			}
			_, err = c.Classify(context.Background(), "test")
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("Classify error = %v, want it to contain %q", err, tc.wantErr)
			}
			if got := errors.Is(err, ErrMalformedResponse); got != tc.malformed {
				t.Fatalf("errors.Is(err, ErrMalformedResponse) = %v, want %v", got, tc.malformed)
			}
		})
	}
}

func TestClient_ConnectionFailure(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	addr := server.URL
	server.Close()

	c, err := NewClient(addr)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	_, err = c.Classify(context.Background(), "test")
	if err == nil || !strings.Contains(err.Error(), "execute request") {
		t.Fatalf("Classify error = %v, want execute request error", err)
	}
}

func TestClient_TimeoutFails(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	t.Cleanup(func() {
		close(release)
		server.Close()
	})

	c, err := NewClient(server.URL, WithTimeout(50*time.Millisecond))
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	if _, err := c.Classify(context.Background(), "test"); err == nil {
		t.Fatalf("Classify returned nil error, want timeout")
	}
}

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func TestClient_WithHTTPClientUsesTransport(t *testing.T) {
	t.Parallel()

	var gotURL string
	hc := &http.Client{Transport: roundTripFunc(func(r *http.Request) (*http.Response, error) {
		gotURL = r.URL.String()
		return &http.Response{
			StatusCode: http.StatusOK,
			Header:     http.Header{"Content-Type": []string{"application/json"}},
			Body:       io.NopCloser(strings.NewReader(`{"isSpam": true}`)),
			Request:    r,
		}, nil
	})}

	c, err := NewClient("http://classifier.invalid/predict", WithHTTPClient(hc))
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	v, err := c.Classify(context.Background(), "test")
	if err != nil {
		t.Fatalf("Classify returned error: %v", err)
	}
	if !v.IsSpam {
		t.Fatalf("verdict = %+v, want spam", v)
	}
	if gotURL != "http://classifier.invalid/predict" {
		t.Fatalf("transport saw %q", gotURL)
	}
}

func TestClient_PingHitsOrigin(t *testing.T) {
	t.Parallel()

	var gotPath, gotMethod string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotMethod = r.Method
		_, _ = w.Write([]byte(`{"message": "The backend is working perfectly"}`))
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL + "/predict")
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	if err := c.Ping(context.Background()); err != nil {
		t.Fatalf("Ping returned error: %v", err)
	}
	if gotMethod != http.MethodGet || gotPath != "/" {
		t.Fatalf("ping = %s %s, want GET /", gotMethod, gotPath)
	}
}

func TestVerdictLabel(t *testing.T) {
	if got := (Verdict{IsSpam: true}).Label(); got != "Spam Detected" {
		t.Fatalf("Label = %q, want Spam Detected", got)
	}
	if got := (Verdict{}).Label(); got != "Legitimate Message" {
		t.Fatalf("Label = %q, want Legitimate Message", got)
	}
}
