package shiftbuildersdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Client is a minimal ShiftBuilder HTTP API client.
type Client struct {
	BaseURL    string
	BasePath   string
	HTTPClient *http.Client
	Timeout    time.Duration
}

// New creates a client with sane defaults.
func New(baseURL string) *Client {
	return &Client{
		BaseURL:  baseURL,
		BasePath: "v0",
		Timeout:  10 * time.Second,
	}
}

// Record represents one employee on the wire. Availability day keys are the
// strings "0".."6" (Monday first).
type Record struct {
	Name         string              `json:"name"`
	EmployeeID   string              `json:"employee_id,omitempty"`
	Departments  []string            `json:"departments"`
	Availability map[string][]string `json:"availability,omitempty"`
}

// ShiftRecord represents one shift of a built schedule.
type ShiftRecord struct {
	Department         string  `json:"department"`
	Day                int     `json:"day"`
	TimeSlot           string  `json:"time_slot"`
	AssignedEmployeeID *string `json:"assigned_employee_id"`
}

// BuildScheduleRequest is the input for one scheduling run.
type BuildScheduleRequest struct {
	Employees   []Record `json:"employees"`
	Departments []string `json:"departments"`
	Days        []int    `json:"days,omitempty"`
	TimeSlots   []string `json:"time_slots,omitempty"`
}

// ScheduleResponse is a built schedule.
type ScheduleResponse struct {
	Employees         []Record      `json:"employees"`
	Shifts            []ShiftRecord `json:"shifts"`
	UnassignedCount   int           `json:"unassigned_count"`
	SkippedDuplicates []string      `json:"skipped_duplicates,omitempty"`
}

// APIError wraps non-2xx responses.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error: status=%d body=%s", e.StatusCode, e.Body)
}

// Health checks the server is up.
func (c *Client) Health(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, c.apiPath("health"), nil, nil)
}

// BuildSchedule runs one scheduling pass server-side.
func (c *Client) BuildSchedule(ctx context.Context, req BuildScheduleRequest) (ScheduleResponse, error) {
	var resp ScheduleResponse
	err := c.do(ctx, http.MethodPost, c.apiPath("schedules"), req, &resp)
	return resp, err
}

// BuildReport returns the human-readable weekly report for a scheduling run.
func (c *Client) BuildReport(ctx context.Context, req BuildScheduleRequest) (string, error) {
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: c.Timeout}
	}
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(req); err != nil {
		return "", err
	}
	url := c.base() + "/" + c.apiPath("schedules/report")
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &buf)
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	resp, err := c.HTTPClient.Do(httpReq)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	b, _ := io.ReadAll(resp.Body)
	if resp.StatusCode >= 300 {
		return "", &APIError{StatusCode: resp.StatusCode, Body: string(b)}
	}
	return string(b), nil
}

func (c *Client) do(ctx context.Context, method, endpoint string, body any, out any) error {
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: c.Timeout}
	}
	url := c.base() + "/" + strings.TrimLeft(endpoint, "/")
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return err
		}
	}
	req, err := http.NewRequestWithContext(ctx, method, url, &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		b, _ := io.ReadAll(resp.Body)
		return &APIError{StatusCode: resp.StatusCode, Body: string(b)}
	}
	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}

func (c *Client) apiPath(p string) string {
	base := strings.Trim(c.BasePath, "/")
	if base == "" {
		base = "v0"
	}
	return base + "/" + strings.TrimLeft(p, "/")
}

func (c *Client) base() string {
	return strings.TrimRight(c.BaseURL, "/")
}
