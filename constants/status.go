package constants

// DocStatus is the canonical status for stored documents.
type DocStatus string

// Stable values (store these exact strings in the DB).
const (
	DocStatusQueued     DocStatus = "QUEUED"     // upload accepted, extraction pending
	DocStatusExtracting DocStatus = "EXTRACTING" // text extraction in progress
	DocStatusReady      DocStatus = "READY"      // text available for AI features
	DocStatusFailed     DocStatus = "FAILED"     // terminal extraction failure
)

// ArtifactKind classifies the AI outputs stored alongside a document.
type ArtifactKind string

const (
	ArtifactSummary ArtifactKind = "SUMMARY"
	ArtifactQuiz    ArtifactKind = "QUIZ"
	ArtifactAnswer  ArtifactKind = "ANSWER"
)
