package engine

// Stage is a step in the life of one Generate call
type Stage int

const (
	StageIdle Stage = iota
	StageAssembling
	StageCalling
	StageFormatting
	StageFallback
	StageDone
)

func (s Stage) String() string {
	switch s {
	case StageIdle:
		return "Idle"
	case StageAssembling:
		return "Assembling"
	case StageCalling:
		return "Calling"
	case StageFormatting:
		return "Formatting"
	case StageFallback:
		return "FallbackBuilding"
	case StageDone:
		return "Done"
	default:
		return "Unknown"
	}
}

// Progress reports a stage transition
type Progress struct {
	Stage Stage
	// Attempt and MaxAttempts are set while calling the model
	Attempt     int
	MaxAttempts int
	Message     string
}
