package clients

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// Classification of the existence check. A missing user is a client-side
// condition; an upstream fault or an unreachable user service are
// server-side conditions and must never be reported as "not found".
var (
	ErrUserNotFound           = errors.New("user not found")
	ErrUserServiceFault       = errors.New("user service fault")
	ErrUserServiceUnreachable = errors.New("user service unreachable")
)

// UserChecker confirms that a user id currently resolves in the user service.
// On success the full remote representation is returned, decoded but
// otherwise unmodified.
type UserChecker interface {
	CheckUser(userID string) (map[string]interface{}, error)
}

// UserServiceClient is an HTTP implementation of UserChecker.
type UserServiceClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewUserServiceClient creates a client for the user service at baseURL.
// A single timeout on the transport is the only failure budget; there are no
// retries and a timeout classifies as unreachable.
func NewUserServiceClient(baseURL string) *UserServiceClient {
	return &UserServiceClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 5 * time.Second,
		},
	}
}

// CheckUser issues one GET {baseURL}/users/{userID} and classifies the
// outcome: 2xx returns the decoded body, 404 returns ErrUserNotFound, any
// other status returns ErrUserServiceFault, and transport failures return
// ErrUserServiceUnreachable.
func (c *UserServiceClient) CheckUser(userID string) (map[string]interface{}, error) {
	resp, err := c.httpClient.Get(fmt.Sprintf("%s/users/%s", c.baseURL, userID))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUserServiceUnreachable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		var user map[string]interface{}
		if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
			return nil, fmt.Errorf("failed to decode user %s: %w", userID, err)
		}
		return user, nil
	case resp.StatusCode == http.StatusNotFound:
		return nil, ErrUserNotFound
	default:
		return nil, fmt.Errorf("%w: status %d for user %s", ErrUserServiceFault, resp.StatusCode, userID)
	}
}
