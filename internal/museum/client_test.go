package museum

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prasanthprabakaran/css-art-museum/internal/likes"
)

func TestClientListArtworks(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/artworks/all" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		json.NewEncoder(w).Encode([]likes.Record{{ID: "a.css", Likes: 4}})
	}))
	defer srv.Close()

	records, err := NewClient(srv.URL).ListArtworks(context.Background())
	if err != nil {
		t.Fatalf("ListArtworks() error = %v", err)
	}
	if len(records) != 1 || records[0].Likes != 4 {
		t.Errorf("ListArtworks() = %v", records)
	}
}

func TestClientGetArtworkNull(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("null"))
	}))
	defer srv.Close()

	record, err := NewClient(srv.URL).GetArtwork(context.Background(), "missing.css")
	if err != nil {
		t.Fatalf("GetArtwork() error = %v", err)
	}
	if record != nil {
		t.Errorf("GetArtwork() = %v, want nil for null body", record)
	}
}

func TestClientRegisterConflictIsSuccess(t *testing.T) {
	status := http.StatusCreated
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(likes.Record{ID: "a.css"})
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	if err := c.Register(context.Background(), "a.css"); err != nil {
		t.Errorf("Register() 201 error = %v", err)
	}

	status = http.StatusConflict
	if err := c.Register(context.Background(), "a.css"); err != nil {
		t.Errorf("Register() 409 should be benign, got %v", err)
	}

	status = http.StatusInternalServerError
	if err := c.Register(context.Background(), "a.css"); err == nil {
		t.Error("Register() 500 should fail")
	}
}

func TestClientLikeNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"message": "Artwork not found"})
	}))
	defer srv.Close()

	if _, err := NewClient(srv.URL).Like(context.Background(), "nope.css"); err == nil {
		t.Error("Like() on unknown id should fail")
	}
}

func TestClientEscapesID(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		json.NewEncoder(w).Encode(likes.Record{ID: "weird name.css", Likes: 1})
	}))
	defer srv.Close()

	if _, err := NewClient(srv.URL).Like(context.Background(), "weird name.css"); err != nil {
		t.Fatalf("Like() error = %v", err)
	}
	if gotPath != "/api/artworks/like/weird%20name.css" {
		t.Errorf("path = %s, want escaped id", gotPath)
	}
}
