// Package zoom fetches meeting participants from the Zoom metrics API using
// server-to-server OAuth. It handles token acquisition, pagination, and
// participant deduplication; everything downstream works from the returned
// slice and never touches the network.
package zoom

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/meetingworks/rollcall/pkg/constants"
	"github.com/meetingworks/rollcall/pkg/errors"
	"github.com/meetingworks/rollcall/pkg/logging"
)

// Default Zoom endpoints, overridable for tests.
const (
	DefaultTokenURL = "https://zoom.us/oauth/token"
	DefaultAPIURL   = "https://api.zoom.us/v2"
)

// Credentials holds the server-to-server OAuth app credentials.
type Credentials struct {
	ClientID     string
	ClientSecret string
	AccountID    string
}

// Validate reports a configuration error naming the first missing field.
func (c Credentials) Validate() error {
	switch {
	case c.ClientID == "":
		return errors.NewConfigError("zoom", "ZOOM_CLIENT_ID is not set", errors.ErrCredentialsRequired)
	case c.ClientSecret == "":
		return errors.NewConfigError("zoom", "ZOOM_CLIENT_SECRET is not set", errors.ErrCredentialsRequired)
	case c.AccountID == "":
		return errors.NewConfigError("zoom", "ZOOM_ACCOUNT_ID is not set", errors.ErrCredentialsRequired)
	}
	return nil
}

// Participant is one participant row from the metrics API. Field names
// follow the API's JSON payload.
type Participant struct {
	Status            string `json:"status"`
	JoinTime          string `json:"join_time"`
	LeaveTime         string `json:"leave_time"`
	UserName          string `json:"user_name"`
	Email             string `json:"email"`
	ParticipantUserID string `json:"participant_user_id"`
	PCName            string `json:"pc_name"`
	Client            string `json:"client"`
	BrowserName       string `json:"browser_name"`
	DeviceName        string `json:"device_name"`
}

// Client talks to the Zoom API.
type Client struct {
	http     *http.Client
	creds    Credentials
	tokenURL string
	apiURL   string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithTokenURL overrides the OAuth token endpoint.
func WithTokenURL(u string) Option {
	return func(c *Client) { c.tokenURL = u }
}

// WithAPIURL overrides the API base URL.
func WithAPIURL(u string) Option {
	return func(c *Client) { c.apiURL = u }
}

// New creates a Zoom client with the given credentials.
func New(creds Credentials, opts ...Option) *Client {
	c := &Client{
		http:     &http.Client{Timeout: constants.DefaultHTTPTimeout},
		creds:    creds,
		tokenURL: DefaultTokenURL,
		apiURL:   DefaultAPIURL,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// token obtains an access token using the account_credentials grant.
func (c *Client) token(ctx context.Context) (string, error) {
	form := url.Values{
		"grant_type": {"account_credentials"},
		"account_id": {c.creds.AccountID},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.tokenURL,
		strings.NewReader(form.Encode()))
	if err != nil {
		return "", errors.WrapIO("create", c.tokenURL, err)
	}
	basic := base64.StdEncoding.EncodeToString([]byte(c.creds.ClientID + ":" + c.creds.ClientSecret))
	req.Header.Set("Authorization", "Basic "+basic)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", &errors.AuthenticationError{Service: "zoom", Method: "oauth", Message: "token request failed", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", &errors.AuthenticationError{
			Service: "zoom",
			Method:  "oauth",
			Message: fmt.Sprintf("token endpoint returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body))),
			Err:     errors.ErrCredentialsInvalid,
		}
	}

	var payload struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", errors.WrapParse("json", c.tokenURL, err)
	}
	if payload.AccessToken == "" {
		return "", &errors.AuthenticationError{Service: "zoom", Method: "oauth", Message: "token response had no access_token", Err: errors.ErrCredentialsInvalid}
	}
	return payload.AccessToken, nil
}

// participantsPage is one page of the metrics participants endpoint.
type participantsPage struct {
	Participants  []Participant `json:"participants"`
	NextPageToken string        `json:"next_page_token"`
}

// Participants fetches every participant of a live meeting, following
// pagination until the API stops returning a next page token. Participants
// are deduplicated on (participant_user_id, email, user_name) since the
// metrics API reports a new row each time someone rejoins.
func (c *Client) Participants(ctx context.Context, meetingID string) ([]Participant, error) {
	if err := c.creds.Validate(); err != nil {
		return nil, err
	}
	token, err := c.token(ctx)
	if err != nil {
		return nil, err
	}

	log := logging.FromContext(ctx)
	endpoint := fmt.Sprintf("%s/metrics/meetings/%s/participants", c.apiURL, url.PathEscape(meetingID))

	var participants []Participant
	seen := make(map[[3]string]struct{})
	nextPageToken := ""
	pages := 0

	for {
		page, err := c.fetchPage(ctx, endpoint, token, nextPageToken)
		if err != nil {
			return nil, err
		}
		pages++

		for _, p := range page.Participants {
			key := [3]string{p.ParticipantUserID, p.Email, p.UserName}
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			participants = append(participants, p)
		}

		nextPageToken = page.NextPageToken
		if nextPageToken == "" {
			break
		}
	}

	log.Debug().
		Str("meeting_id", meetingID).
		Int("pages", pages).
		Int("participants", len(participants)).
		Msg("fetched meeting participants")
	return participants, nil
}

// fetchPage requests a single page of participants.
func (c *Client) fetchPage(ctx context.Context, endpoint, token, pageToken string) (*participantsPage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.WrapIO("create", endpoint, err)
	}

	q := req.URL.Query()
	q.Set("type", "live")
	q.Set("page_size", fmt.Sprint(constants.ZoomPageSize))
	if pageToken != "" {
		q.Set("next_page_token", pageToken)
	}
	req.URL.RawQuery = q.Encode()
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errors.WrapAPI("zoom", 0, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		apiErr := errors.NewAPIError("zoom", resp.StatusCode, strings.TrimSpace(string(body)))
		apiErr.Endpoint = endpoint
		return nil, apiErr
	}

	var page participantsPage
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return nil, errors.WrapParse("json", endpoint, err)
	}
	return &page, nil
}
