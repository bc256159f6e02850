package images

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

func searchPayload(urls ...string) string {
	out := `{"results":[`
	for i, u := range urls {
		if i > 0 {
			out += ","
		}
		out += fmt.Sprintf(`{"urls":{"regular":%q}}`, u)
	}
	return out + `]}`
}

func TestSearch_ReturnsURLs(t *testing.T) {
	var gotQuery, gotClientID, gotPerPage string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/search/photos" {
			t.Errorf("path = %s", r.URL.Path)
		}
		q := r.URL.Query()
		gotQuery = q.Get("query")
		gotClientID = q.Get("client_id")
		gotPerPage = q.Get("per_page")
		fmt.Fprint(w, searchPayload("https://img/1", "https://img/2", "https://img/3"))
	}))
	defer srv.Close()

	c := NewClientWithBaseURL("test-key", srv.URL)
	urls, err := c.Search(context.Background(), "Japan Food Luxury", 3)
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(urls) != 3 {
		t.Fatalf("len(urls) = %d, want 3", len(urls))
	}
	if urls[0] != "https://img/1" {
		t.Errorf("urls[0] = %s", urls[0])
	}
	if gotQuery != "Japan Food Luxury" {
		t.Errorf("query = %q", gotQuery)
	}
	if gotClientID != "test-key" {
		t.Errorf("client_id = %q", gotClientID)
	}
	if gotPerPage != "3" {
		t.Errorf("per_page = %q", gotPerPage)
	}
}

func TestSearch_SkipsEmptyURLs(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, searchPayload("https://img/1", "", "https://img/2"))
	}))
	defer srv.Close()

	c := NewClientWithBaseURL("test-key", srv.URL)
	urls, err := c.Search(context.Background(), "Japan", 3)
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(urls) != 2 {
		t.Fatalf("len(urls) = %d, want 2", len(urls))
	}
	for _, u := range urls {
		if u == "" {
			t.Error("empty URL survived filtering")
		}
	}
}

func TestSearch_RespectsLimit(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, searchPayload("https://img/1", "https://img/2", "https://img/3", "https://img/4", "https://img/5"))
	}))
	defer srv.Close()

	c := NewClientWithBaseURL("test-key", srv.URL)
	urls, err := c.Search(context.Background(), "Japan", 3)
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(urls) != 3 {
		t.Errorf("len(urls) = %d, want 3", len(urls))
	}
}

func TestSearch_NonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "rate limited", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := NewClientWithBaseURL("test-key", srv.URL)
	if _, err := c.Search(context.Background(), "Japan", 3); err == nil {
		t.Fatal("expected error for 503 response")
	}
}

func TestSearch_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, "not json at all")
	}))
	defer srv.Close()

	c := NewClientWithBaseURL("test-key", srv.URL)
	if _, err := c.Search(context.Background(), "Japan", 3); err == nil {
		t.Fatal("expected error for malformed body")
	}
}
