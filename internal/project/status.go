package project

import "os"

// Check is the result of a single read-only project health check.
type Check struct {
	Name string
	Path string
	OK   bool
}

// StatusChecks verifies the files a scaffolded project must have. It is
// read-only and never creates or modifies anything.
func StatusChecks(root string) []Check {
	checks := []Check{
		{Name: "development guide", Path: DevelopmentPath(root)},
		{Name: "copier answers", Path: AnswersPath(root)},
	}
	for i := range checks {
		_, err := os.Stat(checks[i].Path)
		checks[i].OK = err == nil
	}
	return checks
}
