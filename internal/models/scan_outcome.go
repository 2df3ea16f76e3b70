package models

// Process exit codes understood by the hook framework.
const (
	ExitSuccess = 0
	ExitBlocked = 1
)

// ScanOutcome summarises one guard run.
type ScanOutcome struct {
	StagedFiles   int
	FilesScanned  int
	TotalFindings int
	Suppressed    int
	Blocking      []SecretFinding
	Skipped       bool
	SkipReason    string
	Interrupted   bool
}

// BlockingCount is the number of findings that block the commit.
func (o ScanOutcome) BlockingCount() int {
	return len(o.Blocking)
}

// ExitCode maps the outcome to the hook exit status. Only blocking findings
// or an interrupted scan stop the commit.
func (o ScanOutcome) ExitCode() int {
	if o.Interrupted || len(o.Blocking) > 0 {
		return ExitBlocked
	}
	return ExitSuccess
}
