package separationentity

type SourceKind string

const (
	AlreadyAudio           SourceKind = "already_audio"
	ExtractedFromVideo     SourceKind = "extracted_from_video"
	DownloadedAndExtracted SourceKind = "downloaded_and_extracted"
)

type ResolvedAudio struct {
	Path       string
	SourceKind SourceKind
}
