package types

// SourceKind identifies which side of the comparison a document belongs to.
type SourceKind string

const (
	// SourceResume marks the candidate's resume.
	SourceResume SourceKind = "resume"
	// SourceJobDescription marks the job posting being matched against.
	SourceJobDescription SourceKind = "job_description"
)

// Document is a plain-text document handed to the engine by an upstream
// extraction layer. It is passed by value and never mutated.
type Document struct {
	RawText    string     `json:"raw_text"`
	SourceKind SourceKind `json:"source_kind"`
}
