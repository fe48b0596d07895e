package prtitle

import "github.com/githubnext/gh-prtitle/pkg/logger"

var collectorLog = logger.New("prtitle:collector")

// issueCollector accumulates issues in check order. In fail-fast mode Add
// reports that the caller should stop after the first issue.
type issueCollector struct {
	issues   Issues
	failFast bool
}

func newIssueCollector(failFast bool) *issueCollector {
	return &issueCollector{failFast: failFast}
}

// Add records issue and returns true when validation should stop.
func (c *issueCollector) Add(issue Issue) bool {
	collectorLog.Printf("Adding issue: code=%s", issue.Code)
	c.issues = append(c.issues, issue)
	return c.failFast || issue.Code.Terminal()
}

func (c *issueCollector) HasIssues() bool {
	return len(c.issues) > 0
}

func (c *issueCollector) Count() int {
	return len(c.issues)
}

// Issues returns the collected issues. A collector with nothing in it
// returns an empty, non-nil slice so JSON output renders [].
func (c *issueCollector) Issues() Issues {
	if c.issues == nil {
		return Issues{}
	}
	return c.issues
}
