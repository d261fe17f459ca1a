package github

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	json "github.com/goccy/go-json"
)

// FileContent is the GitHub Contents API response for a file.
type FileContent struct {
	Name     string `json:"name"`
	Path     string `json:"path"`
	SHA      string `json:"sha"`
	Size     int    `json:"size"`
	Encoding string `json:"encoding"`
	Content  string `json:"content"`
}

type putContentsRequest struct {
	Message string `json:"message"`
	Content string `json:"content"`
	Branch  string `json:"branch,omitempty"`
	SHA     string `json:"sha,omitempty"`
}

type putContentsResponse struct {
	Content struct {
		SHA string `json:"sha"`
	} `json:"content"`
	Commit struct {
		SHA string `json:"sha"`
	} `json:"commit"`
}

// GetFileContent fetches a file's content via the Contents API.
// Returns (content, blobSHA, error). blobSHA is needed for PUT updates.
func (c *Client) GetFileContent(ctx context.Context, owner, repo, path, ref string) ([]byte, string, error) {
	u := c.url("repos", owner, repo, "contents", path)
	if ref != "" {
		u += "?ref=" + url.QueryEscape(ref)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, "", err
	}
	resp, err := c.do(req)
	if err != nil {
		return nil, "", err
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return nil, "", err
	}

	var fc FileContent
	if err := json.NewDecoder(resp.Body).Decode(&fc); err != nil {
		return nil, "", err
	}

	// Decode base64 (GitHub wraps lines at 60 chars with newlines).
	cleaned := strings.ReplaceAll(fc.Content, "\n", "")
	data, err := base64.StdEncoding.DecodeString(cleaned)
	if err != nil {
		return nil, "", fmt.Errorf("decoding contents: %w", err)
	}
	return data, fc.SHA, nil
}

// PutFile creates or updates a file via the Contents API. A non-empty sha
// updates the existing blob; an empty sha creates the file. GitHub rejects
// a stale sha with 409, surfaced as ErrConflict. Returns the new blob SHA.
func (c *Client) PutFile(ctx context.Context, owner, repo, path, branch string, content []byte, sha, message string) (string, error) {
	body := putContentsRequest{
		Message: message,
		Content: base64.StdEncoding.EncodeToString(content),
		Branch:  branch,
		SHA:     sha,
	}

	var out putContentsResponse
	u := c.url("repos", owner, repo, "contents", path)
	if err := c.doJSON(ctx, http.MethodPut, u, body, &out); err != nil {
		return "", err
	}
	return out.Content.SHA, nil
}
