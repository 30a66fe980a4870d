package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/EKINSOL-DEV/crewhub/internal/config"
	"github.com/EKINSOL-DEV/crewhub/internal/models"
)

// errShellNotRunning is reported when no live shell can be found.
var errShellNotRunning = errors.New("CrewHub shell is not running")

// client speaks to the shell's loopback control API. Discovery goes
// through ~/.crewhub/shell.yaml with a liveness probe; a stale file
// from a crashed shell is treated as not running.
type client struct {
	info *models.ShellInfo
	base string
	http *http.Client
}

// dialShell locates the running shell and returns a client for it.
func dialShell() (*client, error) {
	running, info, err := config.IsShellRunning()
	if err != nil {
		return nil, fmt.Errorf("failed to check shell status: %w", err)
	}
	if !running || info == nil {
		return nil, errShellNotRunning
	}

	return &client{
		info: info,
		base: fmt.Sprintf("http://%s:%d", info.Host, info.Port),
		http: &http.Client{Timeout: 5 * time.Second},
	}, nil
}

// get issues a GET and decodes the JSON response into out.
func (c *client) get(path string, out any) error {
	resp, err := c.http.Get(c.base + path)
	if err != nil {
		return fmt.Errorf("control API unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return apiError(resp)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// post issues a POST with an optional JSON body. Any 2xx status is
// success.
func (c *client) post(path string, body any) error {
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	resp, err := c.http.Post(c.base+path, "application/json", reader)
	if err != nil {
		return fmt.Errorf("control API unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return apiError(resp)
	}
	return nil
}

// apiError extracts the error message from a control API response.
func apiError(resp *http.Response) error {
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err == nil && payload.Error != "" {
		return fmt.Errorf("shell rejected the request: %s", payload.Error)
	}
	return fmt.Errorf("control API returned %d", resp.StatusCode)
}

// printNotRunningHint prints the standard guidance when no shell is up.
func printNotRunningHint() {
	fmt.Println(styleError.Render("CrewHub shell is not running."))
	fmt.Println(styleHint.Render("Start the CrewHub app first, then retry."))
}
