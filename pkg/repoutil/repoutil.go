// Package repoutil parses GitHub repository references.
package repoutil

import (
	"fmt"
	"strings"

	"github.com/githubnext/gh-prtitle/pkg/logger"
)

var log = logger.New("repoutil:repoutil")

// SplitRepoSlug splits "owner/repo" into its parts.
func SplitRepoSlug(slug string) (owner, repo string, err error) {
	parts := strings.Split(slug, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		log.Printf("Invalid repo slug format: %s", slug)
		return "", "", fmt.Errorf("invalid repo format: %s (expected owner/repo)", slug)
	}
	return parts[0], parts[1], nil
}

// ParseGitHubURL extracts owner and repo from an SSH or HTTPS GitHub URL,
// optionally pointing below the repository (e.g. a pull request page).
func ParseGitHubURL(url string) (owner, repo string, err error) {
	var repoPath string
	if after, ok := strings.CutPrefix(url, "git@github.com:"); ok {
		repoPath = after
	} else if _, after, ok := strings.Cut(url, "github.com/"); ok {
		repoPath = after
	} else {
		return "", "", fmt.Errorf("URL does not appear to be a GitHub repository: %s", url)
	}

	repoPath = strings.TrimSuffix(repoPath, ".git")
	parts := strings.SplitN(repoPath, "/", 3)
	if len(parts) < 2 {
		return "", "", fmt.Errorf("invalid repo format: %s", url)
	}
	log.Printf("Parsed GitHub URL: owner=%s, repo=%s", parts[0], parts[1])
	return SplitRepoSlug(parts[0] + "/" + strings.TrimSuffix(parts[1], ".git"))
}

// ParseRepo accepts either "owner/repo" or a GitHub URL.
func ParseRepo(ref string) (owner, repo string, err error) {
	if strings.Contains(ref, "github.com") {
		return ParseGitHubURL(ref)
	}
	return SplitRepoSlug(ref)
}
