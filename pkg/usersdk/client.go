package usersdk

import (
	"net/http"
	"net/http/cookiejar"
	"strings"
	"time"
)

// Client talks to a userdesk service. It holds a cookie jar, so the session
// cookie set by Login is sent on every following request.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client

	// Prefix is prepended to API paths. Set it to "/api" to use the aliased
	// routes.
	Prefix string
}

// NewClient returns a Client for baseURL with a fresh cookie jar.
func NewClient(baseURL string) (*Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
			Jar:     jar,
			// Page routes redirect on auth failure; surface the 303 instead
			// of following it.
			CheckRedirect: func(*http.Request, []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
	}, nil
}
