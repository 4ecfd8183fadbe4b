package driver

// Stage identifies the step of the per-file pipeline an event refers to.
type Stage uint8

const (
	// StageDecode covers reading and deserializing the plan file.
	StageDecode Stage = iota
	// StageRender covers producing the formatted text.
	StageRender
	// StageWrite covers comparing against and updating the target file.
	StageWrite
)

func (s Stage) String() string {
	switch s {
	case StageDecode:
		return "decode"
	case StageRender:
		return "render"
	case StageWrite:
		return "write"
	default:
		return "unknown"
	}
}

// Event reports progress on one file. Done marks stage completion; Err is set
// when the stage failed and always implies Done.
type Event struct {
	Path  string
	Stage Stage
	Done  bool
	Err   error
}

// Observer receives progress events. Calls may come from multiple goroutines.
type Observer func(Event)

func (o Observer) emit(path string, stage Stage, done bool, err error) {
	if o == nil {
		return
	}
	o(Event{Path: path, Stage: stage, Done: done, Err: err})
}
