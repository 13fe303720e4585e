package Identity

import (
	"Taller/Models"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Provider verifies and manages credentials. The application never stores
// passwords itself; it delegates to whichever implementation is configured.
type Provider interface {
	// SignIn checks email+password. Models.ErrInvalidCredentials on
	// rejection, any other error is an upstream failure.
	SignIn(email, password string) error
	// SignUp creates an identity for the email.
	SignUp(email, password string) error
	// DeleteIdentity removes an identity; used to compensate a failed
	// registration after the identity was already created.
	DeleteIdentity(email string) error
}

// HTTPProvider speaks the GoTrue-style REST contract of the hosted identity
// service (password grant, signup, admin delete).
type HTTPProvider struct {
	BaseURL string
	APIKey  string
	Client  *http.Client
}

func NewHTTPProvider(baseURL, apiKey string) *HTTPProvider {
	return &HTTPProvider{
		BaseURL: baseURL,
		APIKey:  apiKey,
		Client:  &http.Client{Timeout: 15 * time.Second},
	}
}

func (p *HTTPProvider) SignIn(email, password string) error {
	status, err := p.post("/token?grant_type=password", map[string]string{
		"email":    email,
		"password": password,
	})
	if err != nil {
		return &Models.UpstreamError{Service: "identidad", Err: err}
	}
	switch {
	case status == http.StatusOK:
		return nil
	case status == http.StatusBadRequest || status == http.StatusUnauthorized || status == http.StatusForbidden:
		return Models.ErrInvalidCredentials
	default:
		return &Models.UpstreamError{Service: "identidad", Err: fmt.Errorf("unexpected status %d", status)}
	}
}

func (p *HTTPProvider) SignUp(email, password string) error {
	status, err := p.post("/signup", map[string]string{
		"email":    email,
		"password": password,
	})
	if err != nil {
		return &Models.UpstreamError{Service: "identidad", Err: err}
	}
	if status != http.StatusOK {
		return &Models.UpstreamError{Service: "identidad", Err: fmt.Errorf("signup rejected with status %d", status)}
	}
	return nil
}

func (p *HTTPProvider) DeleteIdentity(email string) error {
	req, err := http.NewRequest(http.MethodDelete,
		p.BaseURL+"/admin/users/"+url.PathEscape(email), nil)
	if err != nil {
		return &Models.UpstreamError{Service: "identidad", Err: err}
	}
	p.authorize(req)
	resp, err := p.Client.Do(req)
	if err != nil {
		return &Models.UpstreamError{Service: "identidad", Err: err}
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		return &Models.UpstreamError{Service: "identidad", Err: fmt.Errorf("delete rejected with status %d", resp.StatusCode)}
	}
	return nil
}

func (p *HTTPProvider) post(path string, body map[string]string) (int, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return 0, err
	}
	req, err := http.NewRequest(http.MethodPost, p.BaseURL+path, bytes.NewReader(payload))
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/json")
	p.authorize(req)
	resp, err := p.Client.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)
	return resp.StatusCode, nil
}

func (p *HTTPProvider) authorize(req *http.Request) {
	req.Header.Set("apikey", p.APIKey)
	req.Header.Set("Authorization", "Bearer "+p.APIKey)
}
