package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/runanywhereai/runanywhere-agent/internal/log"
)

// verifyTimeout bounds the single allow-list lookup. There are no
// retries; a timeout denies access for this run.
const verifyTimeout = 10 * time.Second

// Failure categories for the allow-list lookup. All of them resolve to
// a denial; they exist so logs can tell an outage from a rejection.
var (
	errTimeout     = errors.New("allow-list service timeout")
	errConnection  = errors.New("could not connect to allow-list service")
	errBadStatus   = errors.New("allow-list service returned an error status")
	errBadResponse = errors.New("allow-list service returned a malformed response")
	errNotOnList   = errors.New("email is not on the allow-list")
)

// Verifier checks emails against the remote authorized_users table.
type Verifier struct {
	// HTTPClient is optional; a 10s-timeout client is used when nil.
	HTTPClient *http.Client

	// BaseURL is the Supabase project URL.
	BaseURL string
	// APIKey is the Supabase anon key, sent as both the apikey header
	// and a bearer token.
	APIKey string

	// DevMode short-circuits verification to always-authorized.
	DevMode bool
}

func (v *Verifier) httpClient() *http.Client {
	if v.HTTPClient != nil {
		return v.HTTPClient
	}
	return &http.Client{Timeout: verifyTimeout}
}

// Verify reports whether email is on the allow-list. The email is
// trimmed and lower-cased before the exact-match query. Any service
// failure returns false with a category error for logging; Verify
// never panics and never fails open.
func (v *Verifier) Verify(ctx context.Context, email string) (bool, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return false, errNotOnList
	}

	if v.DevMode {
		log.Warn("dev mode: skipping email verification", "email", email)
		return true, nil
	}

	u := fmt.Sprintf("%s/rest/v1/authorized_users?email=%s",
		strings.TrimRight(v.BaseURL, "/"), url.QueryEscape("eq."+email))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return false, fmt.Errorf("%w: %v", errConnection, err)
	}
	req.Header.Set("apikey", v.APIKey)
	req.Header.Set("Authorization", "Bearer "+v.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := v.httpClient().Do(req)
	if err != nil {
		var uerr *url.Error
		if errors.As(err, &uerr) && uerr.Timeout() {
			return false, fmt.Errorf("%w: %v", errTimeout, err)
		}
		return false, fmt.Errorf("%w: %v", errConnection, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		return false, fmt.Errorf("%w: status %d", errBadStatus, resp.StatusCode)
	}

	var users []json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&users); err != nil {
		return false, fmt.Errorf("%w: %v", errBadResponse, err)
	}

	if len(users) == 0 {
		return false, errNotOnList
	}
	return true, nil
}

// serviceFailure reports whether err is an outage rather than a
// rejection. The user-facing denial is identical either way; only the
// logged diagnostics differ.
func serviceFailure(err error) bool {
	return err != nil && !errors.Is(err, errNotOnList)
}
