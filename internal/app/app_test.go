package app

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prasanthprabakaran/css-art-museum/internal/config"
	"github.com/prasanthprabakaran/css-art-museum/internal/likes"
	"github.com/prasanthprabakaran/css-art-museum/internal/media"
)

func newTestApp(t *testing.T) (*App, *httptest.Server) {
	t.Helper()

	resolver, err := media.NewResolver("", "", "", "", "arts/")
	if err != nil {
		t.Fatal(err)
	}

	a := NewWithStore(config.Config{}, likes.NewFileStore(""), resolver)
	srv := httptest.NewServer(a.Router())
	t.Cleanup(srv.Close)
	return a, srv
}

func doRequest(t *testing.T, method, url string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(method, url, nil)
	if err != nil {
		t.Fatal(err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestHealth(t *testing.T) {
	_, srv := newTestApp(t)

	resp := doRequest(t, http.MethodGet, srv.URL+"/health")
	if resp.StatusCode != http.StatusOK {
		t.Errorf("health status = %d", resp.StatusCode)
	}
}

func TestRegisterTwice(t *testing.T) {
	_, srv := newTestApp(t)

	resp := doRequest(t, http.MethodPost, srv.URL+"/api/artworks/add/a.css")
	if resp.StatusCode != http.StatusCreated {
		t.Errorf("first register status = %d, want 201", resp.StatusCode)
	}

	var record likes.Record
	json.NewDecoder(resp.Body).Decode(&record)
	if record.ID != "a.css" || record.Likes != 0 {
		t.Errorf("register returned %+v", record)
	}

	resp = doRequest(t, http.MethodPost, srv.URL+"/api/artworks/add/a.css")
	if resp.StatusCode != http.StatusConflict {
		t.Errorf("second register status = %d, want 409", resp.StatusCode)
	}
}

func TestListAll(t *testing.T) {
	a, srv := newTestApp(t)
	a.Store().Create("a.css")
	a.Store().Create("b.css")
	a.Store().Increment("b.css")

	resp := doRequest(t, http.MethodGet, srv.URL+"/api/artworks/all")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("list status = %d", resp.StatusCode)
	}

	var records []likes.Record
	json.NewDecoder(resp.Body).Decode(&records)
	if len(records) != 2 {
		t.Fatalf("list returned %d records, want 2", len(records))
	}
	if records[1].ID != "b.css" || records[1].Likes != 1 {
		t.Errorf("records[1] = %+v", records[1])
	}
}

func TestGetOne(t *testing.T) {
	a, srv := newTestApp(t)
	a.Store().Create("a.css")

	resp := doRequest(t, http.MethodGet, srv.URL+"/api/artworks/one/a.css")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("get status = %d", resp.StatusCode)
	}

	var record *likes.Record
	json.NewDecoder(resp.Body).Decode(&record)
	if record == nil || record.ID != "a.css" {
		t.Errorf("get returned %+v", record)
	}

	// Unknown id answers 200 with a null body.
	resp = doRequest(t, http.MethodGet, srv.URL+"/api/artworks/one/missing.css")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("get unknown status = %d, want 200", resp.StatusCode)
	}
	var missing *likes.Record
	json.NewDecoder(resp.Body).Decode(&missing)
	if missing != nil {
		t.Errorf("unknown id returned %+v, want null", missing)
	}
}

func TestLikeUnlike(t *testing.T) {
	a, srv := newTestApp(t)
	a.Store().Create("a.css")

	resp := doRequest(t, http.MethodPut, srv.URL+"/api/artworks/like/a.css")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("like status = %d", resp.StatusCode)
	}
	var record likes.Record
	json.NewDecoder(resp.Body).Decode(&record)
	if record.Likes != 1 {
		t.Errorf("like count = %d, want 1", record.Likes)
	}

	resp = doRequest(t, http.MethodPut, srv.URL+"/api/artworks/unlike/a.css")
	json.NewDecoder(resp.Body).Decode(&record)
	if record.Likes != 0 {
		t.Errorf("unlike count = %d, want 0", record.Likes)
	}

	// Unlike at zero still succeeds with count 0.
	resp = doRequest(t, http.MethodPut, srv.URL+"/api/artworks/unlike/a.css")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unlike at zero status = %d, want 200", resp.StatusCode)
	}
	json.NewDecoder(resp.Body).Decode(&record)
	if record.Likes != 0 {
		t.Errorf("unlike at zero count = %d, want 0", record.Likes)
	}
}

func TestLikeUnknownArtwork(t *testing.T) {
	_, srv := newTestApp(t)

	for _, action := range []string{"like", "unlike"} {
		resp := doRequest(t, http.MethodPut, srv.URL+"/api/artworks/"+action+"/nope.css")
		if resp.StatusCode != http.StatusNotFound {
			t.Errorf("%s unknown status = %d, want 404", action, resp.StatusCode)
		}
	}
}

func TestMediaURL(t *testing.T) {
	_, srv := newTestApp(t)

	resp := doRequest(t, http.MethodGet, srv.URL+"/api/artworks/media/a.css")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("media status = %d", resp.StatusCode)
	}

	var payload map[string]string
	json.NewDecoder(resp.Body).Decode(&payload)
	if payload["url"] != "arts/a.css" {
		t.Errorf("media url = %q", payload["url"])
	}
}
