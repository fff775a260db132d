package engine

import "github.com/cpcf/scaffold/render"

// Outcome is what happened to a single template during a run.
type Outcome int

const (
	Generated Outcome = iota
	SkippedNoOutput
	SkippedTagMismatch
	SkippedExists
	SkippedError
)

func (o Outcome) String() string {
	switch o {
	case Generated:
		return "generated"
	case SkippedNoOutput:
		return "no output metadata"
	case SkippedTagMismatch:
		return "tags not requested"
	case SkippedExists:
		return "already exists"
	case SkippedError:
		return "error"
	default:
		return "unknown"
	}
}

func (o Outcome) Skipped() bool {
	return o != Generated
}

type FileResult struct {
	Template string
	// Output is the resolved destination; empty when the template was
	// skipped before its path was computed.
	Output  string
	Outcome Outcome
	Err     error
}

// Summary reports a completed run. Files is in processing order.
type Summary struct {
	Entity    string
	Variables render.VariableSet
	Files     []FileResult
	Errors    MultiError
}

func (s *Summary) Count(outcome Outcome) int {
	n := 0
	for _, f := range s.Files {
		if f.Outcome == outcome {
			n++
		}
	}
	return n
}

func (s *Summary) Generated() int {
	return s.Count(Generated)
}

func (s *Summary) Skipped() int {
	return len(s.Files) - s.Generated()
}

// GeneratedFiles lists the output paths written during the run.
func (s *Summary) GeneratedFiles() []string {
	var paths []string
	for _, f := range s.Files {
		if f.Outcome == Generated {
			paths = append(paths, f.Output)
		}
	}
	return paths
}
