// Package bcardapi implements the typed HTTP clients for the remote users
// and cards services. Both services authenticate requests with an
// x-auth-token header carrying the opaque bearer token.
package bcardapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	apperrors "github.com/jersab/Poject-BizCardHub/internal/errors"
)

const (
	authHeader     = "x-auth-token"
	maxErrorBody   = 32 << 10
	defaultTimeout = 10 * time.Second
)

// client is the shared request plumbing for both gateway clients.
type client struct {
	baseURL string
	http    *http.Client
}

func newClient(baseURL string, hc *http.Client) client {
	if hc == nil {
		hc = &http.Client{Timeout: defaultTimeout}
	}
	return client{
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		http:    hc,
	}
}

// doJSON issues a request with an optional JSON body and decodes a JSON
// response into out when out is non-nil.
func (c client) doJSON(ctx context.Context, method, path, token string, in, out any) error {
	body, err := c.doRaw(ctx, method, path, token, in)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeDecode, "decode response from "+path)
	}
	return nil
}

// doRaw issues a request and returns the success body verbatim.
func (c client) doRaw(ctx context.Context, method, path, token string, in any) ([]byte, error) {
	var reqBody io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "encode request for "+path)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "create request for "+path)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set(authHeader, token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeNetwork, "request "+path)
	}
	defer resp.Body.Close()

	// Error bodies are short plain-text messages; only those are capped.
	// Success bodies (card catalogs in particular) are read in full.
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		data, readErr := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		if readErr != nil {
			return nil, apperrors.Wrap(readErr, apperrors.ErrCodeNetwork, "read response from "+path)
		}
		return nil, mapStatusError(resp.StatusCode, data)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeNetwork, "read response from "+path)
	}
	return data, nil
}

// mapStatusError translates a non-2xx response into the error taxonomy.
// Remote error bodies are short plain-text messages, surfaced verbatim so
// the UI can show exactly what the service said.
func mapStatusError(status int, body []byte) error {
	message := strings.TrimSpace(string(body))
	if message == "" {
		message = http.StatusText(status)
	}

	switch {
	case status == http.StatusUnauthorized:
		return apperrors.Authentication(message)
	case status == http.StatusForbidden:
		return apperrors.Authorization(message)
	case status == http.StatusNotFound:
		return apperrors.NotFound(message)
	case status >= 400 && status < 500:
		return apperrors.Validation(message)
	default:
		return apperrors.Internal(fmt.Sprintf("remote service returned %d: %s", status, message))
	}
}
