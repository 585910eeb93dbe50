package pipeline

// Stage is a point in the note pipeline. Stages only move forward.
type Stage int

// Pipeline stages in order.
const (
	StageStart Stage = iota
	StageContentObtained
	StageSequenceComputed
	StageHeaderRendered
	StageFileWritten
	StagePublished
	StageDone
)

var stageNames = [...]string{
	StageStart:            "start",
	StageContentObtained:  "content_obtained",
	StageSequenceComputed: "sequence_computed",
	StageHeaderRendered:   "header_rendered",
	StageFileWritten:      "file_written",
	StagePublished:        "published",
	StageDone:             "done",
}

func (s Stage) String() string {
	if s < 0 || int(s) >= len(stageNames) {
		return "unknown"
	}
	return stageNames[s]
}

// MarshalText renders the stage name in JSON output.
func (s Stage) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}
