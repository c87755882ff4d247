package museum

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/prasanthprabakaran/css-art-museum/internal/likes"
)

// Client talks to the like service.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// ListArtworks fetches every like record from the service.
func (c *Client) ListArtworks(ctx context.Context) ([]likes.Record, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/api/artworks/all", c.baseURL), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("list artworks failed (%d): %s", resp.StatusCode, body)
	}

	var records []likes.Record
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, err
	}
	return records, nil
}

// GetArtwork fetches a single like record. A null body (unknown id on
// the /one endpoint) yields a nil record without error.
func (c *Client) GetArtwork(ctx context.Context, id string) (*likes.Record, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/api/artworks/one/%s", c.baseURL, url.PathEscape(id)), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("get artwork failed (%d): %s", resp.StatusCode, body)
	}

	var record *likes.Record
	if err := json.Unmarshal(body, &record); err != nil {
		return nil, err
	}
	return record, nil
}

// Register creates a zero-like record for the id. A 409 means the
// record already exists and is treated as success.
func (c *Client) Register(ctx context.Context, id string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, fmt.Sprintf("%s/api/artworks/add/%s", c.baseURL, url.PathEscape(id)), nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusCreated || resp.StatusCode == http.StatusConflict {
		return nil
	}

	body, _ := io.ReadAll(resp.Body)
	return fmt.Errorf("register artwork failed (%d): %s", resp.StatusCode, body)
}

// Like increments the artwork's counter and returns the new record.
func (c *Client) Like(ctx context.Context, id string) (*likes.Record, error) {
	return c.put(ctx, "like", id)
}

// Unlike decrements the artwork's counter, floored at zero server-side.
func (c *Client) Unlike(ctx context.Context, id string) (*likes.Record, error) {
	return c.put(ctx, "unlike", id)
}

func (c *Client) put(ctx context.Context, action, id string) (*likes.Record, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, fmt.Sprintf("%s/api/artworks/%s/%s", c.baseURL, action, url.PathEscape(id)), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%s artwork failed (%d): %s", action, resp.StatusCode, body)
	}

	var record likes.Record
	if err := json.Unmarshal(body, &record); err != nil {
		return nil, err
	}
	return &record, nil
}
