package intent

// Source identifies which signal produced a resolution.
type Source string

const (
	SourceRemote  Source = "remote"
	SourceKeyword Source = "keyword"
)

// Resolution is the outcome of resolving a task description. Exactly one
// resolution is produced per request; it is either a known intent with its
// source, or unknown.
type Resolution struct {
	Intent  Intent
	Source  Source
	Unknown bool
}

// Unresolved is the resolution returned when neither signal produced a
// candidate. It is a normal outcome, not an error.
var Unresolved = Resolution{Unknown: true}
