package ndfc

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/martinsuchenak/ndfcctl/internal/config"
	"github.com/martinsuchenak/ndfcctl/internal/log"
	"github.com/martinsuchenak/ndfcctl/internal/model"
)

const topDownPath = "/appcenter/cisco/ndfc/api/v1/lan-fabric/rest/top-down"

// Client is an authenticated session against one NDFC controller. It is not
// safe for concurrent use; the tool runs one linear pipeline per invocation.
type Client struct {
	host     string
	fabric   string
	username string
	password string
	domain   string

	token string
	http  *http.Client
}

// New creates a client from the resolved configuration. No network traffic
// happens until Login.
func New(cfg *config.Config) *Client {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	if !cfg.SSLVerify {
		// NDFC installs commonly run on self-signed certificates
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true}
	}

	return &Client{
		host:     cfg.Host,
		fabric:   cfg.Fabric,
		username: cfg.Username,
		password: cfg.Password,
		domain:   cfg.Domain,
		http: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
	}
}

// Fabric returns the fabric this session is scoped to.
func (c *Client) Fabric() string { return c.fabric }

func (c *Client) newRequest(ctx context.Context, method, path string, body []byte) (*http.Request, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.host+path, reader)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	return req, nil
}

func (c *Client) do(req *http.Request) (*http.Response, error) {
	log.Debug("Controller request", "method", req.Method, "url", req.URL.String(),
		"request_id", req.Header.Get("X-Request-Id"))

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("connect to controller: %w", err)
	}
	return resp, nil
}

// readBody drains a response body, bounded so a misbehaving controller cannot
// blow up error messages.
func readBody(resp *http.Response) string {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	return strings.TrimSpace(string(body))
}

type loginRequest struct {
	UserName   string `json:"userName"`
	UserPasswd string `json:"userPasswd"`
	Domain     string `json:"domain"`
}

type loginResponse struct {
	Token    string `json:"token"`
	JWTToken string `json:"jwttoken"`
}

// Login performs the domain-based login and stores the session token for
// subsequent calls. A single failed attempt is terminal; there is no retry.
func (c *Client) Login(ctx context.Context) error {
	payload, err := json.Marshal(loginRequest{
		UserName:   c.username,
		UserPasswd: c.password,
		Domain:     c.domain,
	})
	if err != nil {
		return err
	}

	req, err := c.newRequest(ctx, http.MethodPost, "/login", payload)
	if err != nil {
		return err
	}

	log.Debug("Authenticating", "host", c.host, "domain", c.domain, "user", c.username)

	resp, err := c.do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &AuthError{Status: resp.StatusCode, Reason: readBody(resp)}
	}

	var lr loginResponse
	if err := json.NewDecoder(resp.Body).Decode(&lr); err != nil {
		return &ParseError{Op: "login", Err: err}
	}

	// NDFC releases differ on which field carries the token
	c.token = lr.Token
	if c.token == "" {
		c.token = lr.JWTToken
	}
	if c.token == "" {
		return &AuthError{Reason: "login response carried no token"}
	}

	log.Info("Authentication successful", "host", c.host, "domain", c.domain)
	return nil
}

// ListNetworks fetches every network record in the session's fabric.
func (c *Client) ListNetworks(ctx context.Context) ([]model.Network, error) {
	if c.token == "" {
		return nil, &AuthError{Reason: "not logged in"}
	}

	path := fmt.Sprintf("%s/fabrics/%s/networks", topDownPath, url.PathEscape(c.fabric))
	req, err := c.newRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &APIError{Op: "list networks", Status: resp.StatusCode, Body: readBody(resp)}
	}

	var networks []model.Network
	if err := json.NewDecoder(resp.Body).Decode(&networks); err != nil {
		return nil, &ParseError{Op: "list networks", Err: err}
	}

	log.Debug("Retrieved networks", "fabric", c.fabric, "count", len(networks))
	return networks, nil
}

// FindNetwork locates the first record whose display name is an exact,
// case-sensitive match. Zero matches yields a *NotFoundError carrying the
// names that were available.
func (c *Client) FindNetwork(ctx context.Context, displayName string) (model.Network, error) {
	networks, err := c.ListNetworks(ctx)
	if err != nil {
		return nil, err
	}

	for _, n := range networks {
		if n.DisplayName() == displayName {
			log.Debug("Found network", "display_name", displayName, "network_name", n.NetworkName())
			return n, nil
		}
	}

	return nil, &NotFoundError{DisplayName: displayName, Available: model.DisplayNames(networks)}
}

// UpdateDisplayName sends the rename PUT for a record previously fetched by
// FindNetwork. The request body is the fetched record with only the display
// name replaced (and the read-only networkStatus dropped); the endpoint is
// addressed by the record's original identifier, never the new name.
//
// The returned record is the controller's echo of the update, or nil when the
// controller answered with a non-JSON body (some releases do on accepted
// writes).
func (c *Client) UpdateDisplayName(ctx context.Context, network model.Network, newName string) (model.Network, error) {
	if c.token == "" {
		return nil, &AuthError{Reason: "not logged in"}
	}

	updateName := network.UpdateName()
	if updateName == "" {
		return nil, fmt.Errorf("record has no networkName or id to address the update")
	}

	payload, err := json.Marshal(network.WithDisplayName(newName))
	if err != nil {
		return nil, err
	}

	path := fmt.Sprintf("%s/fabrics/%s/networks/%s", topDownPath,
		url.PathEscape(c.fabric), url.PathEscape(updateName))
	req, err := c.newRequest(ctx, http.MethodPut, path, payload)
	if err != nil {
		return nil, err
	}

	log.Info("Updating display name", "network", updateName,
		"old", network.DisplayName(), "new", newName)

	resp, err := c.do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated, http.StatusAccepted:
	default:
		return nil, &APIError{Op: "update network", Status: resp.StatusCode, Body: readBody(resp)}
	}

	var updated model.Network
	if err := json.NewDecoder(resp.Body).Decode(&updated); err != nil {
		log.Debug("Update confirmed, response body not JSON", "network", updateName)
		return nil, nil
	}
	return updated, nil
}
