package agenda

// Chime receives completion feedback signals. Playback is a presentation
// concern; the core only emits the events and callers decide whether the
// sound setting allows them through.
type Chime interface {
	ItemCompleted()
	AllCompleted()
}

type NoopChime struct{}

func (NoopChime) ItemCompleted() {}
func (NoopChime) AllCompleted()  {}
