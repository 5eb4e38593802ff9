package sdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/oauth2"
)

// Client provides a high-level interface to the school administration API.
// Protected calls inject the bearer credential per request at the transport
// boundary; nothing mutates shared default headers.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     oauth2.TokenSource
	onRejected func(*APIError)
}

// ClientOptions configures client construction.
type ClientOptions struct {
	HTTPClient *http.Client
	Tokens     oauth2.TokenSource
	OnRejected func(*APIError)
}

// ClientOption mutates ClientOptions.
type ClientOption func(*ClientOptions)

// WithHTTPClient overrides the HTTP client used for API calls.
func WithHTTPClient(client *http.Client) ClientOption {
	return func(opts *ClientOptions) {
		opts.HTTPClient = client
	}
}

// WithTokenSource supplies the credential consulted on each protected call.
func WithTokenSource(source oauth2.TokenSource) ClientOption {
	return func(opts *ClientOptions) {
		opts.Tokens = source
	}
}

// WithAuthRejectionHook registers a callback invoked whenever a protected call
// is answered with an authentication rejection. The session manager uses this
// as its process-wide invalidation signal.
func WithAuthRejectionHook(hook func(*APIError)) ClientOption {
	return func(opts *ClientOptions) {
		opts.OnRejected = hook
	}
}

// NewClient creates a client for the school API server at baseURL.
// An http.Client with a conservative timeout is created when none is supplied.
func NewClient(baseURL string, optFns ...ClientOption) *Client {
	opts := ClientOptions{}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = &http.Client{Timeout: 15 * time.Second}
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: opts.HTTPClient,
		tokens:     opts.Tokens,
		onRejected: opts.OnRejected,
	}
}

// Login exchanges a username and password for a fresh credential and the
// resolved user in one atomic response. It is a public call: no stored
// credential is attached, and a rejection here never invalidates the session.
func (c *Client) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	body := map[string]string{"username": username, "password": password}
	var result LoginResult
	if err := c.do(ctx, http.MethodPost, "/auth/login", nil, body, &result, false); err != nil {
		return nil, err
	}
	return &result, nil
}

// Register creates a new account.
func (c *Client) Register(ctx context.Context, input RegisterInput) (*User, error) {
	var user User
	if err := c.do(ctx, http.MethodPost, "/auth/register", nil, input, &user, false); err != nil {
		return nil, err
	}
	return &user, nil
}

// Me resolves the user behind the current credential. This is the
// authoritative "who am I" call used to restore a session.
func (c *Client) Me(ctx context.Context) (*User, error) {
	var user User
	if err := c.do(ctx, http.MethodGet, "/auth/me", nil, nil, &user, true); err != nil {
		return nil, err
	}
	return &user, nil
}

// ListStudents returns all enrollment records.
func (c *Client) ListStudents(ctx context.Context) ([]Student, error) {
	var students []Student
	if err := c.do(ctx, http.MethodGet, "/students", nil, nil, &students, true); err != nil {
		return nil, err
	}
	return students, nil
}

// GetStudent returns one enrollment record by id.
func (c *Client) GetStudent(ctx context.Context, id string) (*Student, error) {
	var student Student
	if err := c.do(ctx, http.MethodGet, "/students/"+url.PathEscape(id), nil, nil, &student, true); err != nil {
		return nil, err
	}
	return &student, nil
}

// CreateStudent creates an enrollment record.
func (c *Client) CreateStudent(ctx context.Context, input StudentInput) (*Student, error) {
	var student Student
	if err := c.do(ctx, http.MethodPost, "/students", nil, input, &student, true); err != nil {
		return nil, err
	}
	return &student, nil
}

// UpdateStudent replaces an enrollment record.
func (c *Client) UpdateStudent(ctx context.Context, id string, input StudentInput) (*Student, error) {
	var student Student
	if err := c.do(ctx, http.MethodPut, "/students/"+url.PathEscape(id), nil, input, &student, true); err != nil {
		return nil, err
	}
	return &student, nil
}

// DeleteStudent removes an enrollment record.
func (c *Client) DeleteStudent(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/students/"+url.PathEscape(id), nil, nil, nil, true)
}

// ListAttendance returns attendance records matching the filter.
func (c *Client) ListAttendance(ctx context.Context, filter AttendanceFilter) ([]Attendance, error) {
	query := url.Values{}
	if filter.StudentID != "" {
		query.Set("student_id", filter.StudentID)
	}
	if filter.Date != "" {
		query.Set("date", filter.Date)
	}
	var records []Attendance
	if err := c.do(ctx, http.MethodGet, "/attendance", query, nil, &records, true); err != nil {
		return nil, err
	}
	return records, nil
}

// MarkAttendance records a student's presence for a date.
func (c *Client) MarkAttendance(ctx context.Context, input AttendanceInput) (*Attendance, error) {
	var record Attendance
	if err := c.do(ctx, http.MethodPost, "/attendance", nil, input, &record, true); err != nil {
		return nil, err
	}
	return &record, nil
}

// ListGrades returns grade records matching the filter.
func (c *Client) ListGrades(ctx context.Context, filter GradeFilter) ([]Grade, error) {
	query := url.Values{}
	if filter.StudentID != "" {
		query.Set("student_id", filter.StudentID)
	}
	var grades []Grade
	if err := c.do(ctx, http.MethodGet, "/grades", query, nil, &grades, true); err != nil {
		return nil, err
	}
	return grades, nil
}

// AddGrade records an exam result.
func (c *Client) AddGrade(ctx context.Context, input GradeInput) (*Grade, error) {
	var grade Grade
	if err := c.do(ctx, http.MethodPost, "/grades", nil, input, &grade, true); err != nil {
		return nil, err
	}
	return &grade, nil
}

// ListAnnouncements returns notices visible to the caller. The server filters
// role-targeted notices for non-admin roles.
func (c *Client) ListAnnouncements(ctx context.Context) ([]Announcement, error) {
	var announcements []Announcement
	if err := c.do(ctx, http.MethodGet, "/announcements", nil, nil, &announcements, true); err != nil {
		return nil, err
	}
	return announcements, nil
}

// CreateAnnouncement publishes a notice.
func (c *Client) CreateAnnouncement(ctx context.Context, input AnnouncementInput) (*Announcement, error) {
	var announcement Announcement
	if err := c.do(ctx, http.MethodPost, "/announcements", nil, input, &announcement, true); err != nil {
		return nil, err
	}
	return &announcement, nil
}

// DashboardStats returns the role-shaped overview counters for the caller.
func (c *Client) DashboardStats(ctx context.Context) (DashboardStats, error) {
	var stats DashboardStats
	if err := c.do(ctx, http.MethodGet, "/dashboard/stats", nil, nil, &stats, true); err != nil {
		return nil, err
	}
	return stats, nil
}

// do performs one API call. Protected calls ask the token source for the
// current credential and set the Authorization header on this request only.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any, authenticated bool) error {
	endpoint := c.baseURL + "/api" + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if authenticated {
		if c.tokens == nil {
			return ErrNoCredentials
		}
		token, err := c.tokens.Token()
		if err != nil {
			return fmt.Errorf("no usable credential: %w", err)
		}
		token.SetAuthHeader(req)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request to %s failed: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var envelope struct {
			Detail string `json:"detail"`
		}
		if decodeErr := json.NewDecoder(resp.Body).Decode(&envelope); decodeErr == nil {
			apiErr.Message = envelope.Detail
		}
		if authenticated && apiErr.AuthRejected() && c.onRejected != nil {
			c.onRejected(apiErr)
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response from %s: %w", path, err)
	}
	return nil
}
