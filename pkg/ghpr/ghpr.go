// Package ghpr finds the title of the pull request being validated, either
// from the GitHub Actions event payload or from the GitHub REST API.
package ghpr

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/cli/go-gh/v2/pkg/api"
	"github.com/cli/go-gh/v2/pkg/repository"
	"github.com/githubnext/gh-prtitle/pkg/logger"
	"github.com/githubnext/gh-prtitle/pkg/repoutil"
)

var ghprLog = logger.New("ghpr:ghpr")

// ErrNotPullRequest is returned for event payloads without a pull_request.
var ErrNotPullRequest = errors.New("event payload does not describe a pull request")

// PullRequest is the subset of the pull request object this tool reads.
type PullRequest struct {
	Number int    `json:"number"`
	Title  string `json:"title"`
}

type event struct {
	PullRequest *PullRequest `json:"pull_request"`
}

// ParseEvent extracts the pull request from a GitHub Actions event payload.
func ParseEvent(data []byte) (*PullRequest, error) {
	var ev event
	if err := json.Unmarshal(data, &ev); err != nil {
		return nil, fmt.Errorf("failed to parse event payload: %w", err)
	}
	if ev.PullRequest == nil {
		return nil, ErrNotPullRequest
	}
	return ev.PullRequest, nil
}

// TitleFromEventFile reads the payload at path, normally $GITHUB_EVENT_PATH.
func TitleFromEventFile(path string) (string, error) {
	ghprLog.Printf("Reading event payload: %s", path)
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read event payload: %w", err)
	}
	pr, err := ParseEvent(data)
	if err != nil {
		return "", fmt.Errorf("%s: %w", path, err)
	}
	ghprLog.Printf("Found pull request #%d in event payload", pr.Number)
	return pr.Title, nil
}

// RESTClient is the part of the go-gh REST client used here.
type RESTClient interface {
	Get(path string, response any) error
}

// NewRESTClient returns a client authenticated the same way gh is.
func NewRESTClient() (RESTClient, error) {
	client, err := api.DefaultRESTClient()
	if err != nil {
		return nil, fmt.Errorf("failed to create GitHub client: %w", err)
	}
	return client, nil
}

// FetchTitle loads pull request number from owner/repo.
func FetchTitle(client RESTClient, owner, repo string, number int) (string, error) {
	if number <= 0 {
		return "", fmt.Errorf("invalid pull request number: %d", number)
	}
	ghprLog.Printf("Fetching pull request: repo=%s/%s, number=%d", owner, repo, number)

	var pr PullRequest
	if err := client.Get(fmt.Sprintf("repos/%s/%s/pulls/%d", owner, repo, number), &pr); err != nil {
		return "", fmt.Errorf("failed to fetch pull request %s/%s#%d: %w", owner, repo, number, err)
	}
	return pr.Title, nil
}

// ResolveRepo parses ref, or falls back to the repository of the current
// directory's git remote when ref is empty.
func ResolveRepo(ref string) (owner, repo string, err error) {
	if ref != "" {
		return repoutil.ParseRepo(ref)
	}
	current, err := repository.Current()
	if err != nil {
		return "", "", fmt.Errorf("could not determine repository (use --repo owner/name): %w", err)
	}
	ghprLog.Printf("Using current repository: %s/%s", current.Owner, current.Name)
	return current.Owner, current.Name, nil
}
