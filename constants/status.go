package constants

// FileStatus is the terminal state of one file's pass through the pipeline.
type FileStatus string

// Stable values (these exact strings appear in logs and reports).
const (
	StatusSkipped          FileStatus = "skipped"           // unsupported extension
	StatusExtractionFailed FileStatus = "extraction_failed" // decode error
	StatusOrganized        FileStatus = "organized"         // moved into category dir
	StatusOrganizeFailed   FileStatus = "organization_failed"
)

// Priority levels attached to classifications.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// AllPriorities returns the priority enum as strings for schema building.
func AllPriorities() []string {
	return []string{string(PriorityHigh), string(PriorityMedium), string(PriorityLow)}
}
