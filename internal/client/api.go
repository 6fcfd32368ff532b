package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"plantbuilder-server/internal/player"
	"plantbuilder-server/internal/session"
)

// DefaultTimeout bounds every API request.
const DefaultTimeout = 10 * time.Second

// TransportError marks a failure before any server response arrived. Only
// these failures route a submission into the fallback queue; an HTTP-level
// rejection is an answer, not an outage.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport failure: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// API is the HTTP client for the plant builder server.
type API struct {
	baseURL string
	http    *http.Client
}

func NewAPI(baseURL string) *API {
	return &API{
		baseURL: baseURL,
		http:    &http.Client{Timeout: DefaultTimeout},
	}
}

func (a *API) post(ctx context.Context, path string, payload, out interface{}) error {
	encoded, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.baseURL+path, bytes.NewReader(encoded))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.http.Do(req)
	if err != nil {
		return &TransportError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &TransportError{Err: err}
	}

	if resp.StatusCode >= 400 {
		return fmt.Errorf("API error (%d): %s", resp.StatusCode, string(body))
	}

	if out != nil {
		if err := json.Unmarshal(body, out); err != nil {
			return fmt.Errorf("parse response: %w", err)
		}
	}
	return nil
}

func (a *API) get(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.baseURL+path, nil)
	if err != nil {
		return err
	}

	resp, err := a.http.Do(req)
	if err != nil {
		return &TransportError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &TransportError{Err: err}
	}

	if resp.StatusCode >= 400 {
		return fmt.Errorf("API error (%d): %s", resp.StatusCode, string(body))
	}

	return json.Unmarshal(body, out)
}

// Register creates a player record on the server.
func (a *API) Register(ctx context.Context, phone, displayName string) (*player.Player, error) {
	payload := map[string]string{"phone": phone, "display_name": displayName}
	var created player.Player
	if err := a.post(ctx, "/api/players/register", payload, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// StartSession asks the server to stamp a new session for the user.
func (a *API) StartSession(ctx context.Context, phone string) (*session.StartResponse, error) {
	var resp session.StartResponse
	if err := a.post(ctx, "/api/session/start", session.StartRequest{Phone: phone}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// SubmitScore sends a finished round to the server.
func (a *API) SubmitScore(ctx context.Context, req session.SubmitRequest) (*session.SubmitResponse, error) {
	var resp session.SubmitResponse
	if err := a.post(ctx, "/api/session/submit", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Score fetches one player's score record.
func (a *API) Score(ctx context.Context, phone string) (*player.Player, error) {
	var p player.Player
	if err := a.get(ctx, "/api/players/"+phone+"/score", &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Leaderboard fetches the current top standings.
func (a *API) Leaderboard(ctx context.Context, limit int) ([]player.Standing, error) {
	path := "/api/leaderboard"
	if limit > 0 {
		path = fmt.Sprintf("%s?limit=%d", path, limit)
	}
	var standings []player.Standing
	if err := a.get(ctx, path, &standings); err != nil {
		return nil, err
	}
	return standings, nil
}

// Sectors lists the sector identifiers the server knows about.
func (a *API) Sectors(ctx context.Context) ([]string, error) {
	var sectors []string
	if err := a.get(ctx, "/api/catalog", &sectors); err != nil {
		return nil, err
	}
	return sectors, nil
}

// Sector fetches the catalog entry for one sector.
func (a *API) Sector(ctx context.Context, sector string) (map[string]interface{}, error) {
	var payload map[string]interface{}
	if err := a.get(ctx, "/api/catalog/"+sector, &payload); err != nil {
		return nil, err
	}
	return payload, nil
}
