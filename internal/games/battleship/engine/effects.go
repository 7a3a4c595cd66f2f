package engine

// Effect names a sound or visual cue the front end may play.
type Effect int

const (
	EffectMiss Effect = iota
	EffectHit
	EffectDestroy
	EffectSelect
	EffectPlace
)

func (e Effect) String() string {
	switch e {
	case EffectMiss:
		return "miss"
	case EffectHit:
		return "hit"
	case EffectDestroy:
		return "destroy"
	case EffectSelect:
		return "select"
	case EffectPlace:
		return "place"
	default:
		return "unknown"
	}
}

// EffectSink receives effects. Play must not block; its result is never consulted.
type EffectSink interface {
	Play(e Effect)
}

// EffectFunc adapts a function to EffectSink.
type EffectFunc func(e Effect)

// Play calls f(e).
func (f EffectFunc) Play(e Effect) {
	f(e)
}

type nopSink struct{}

func (nopSink) Play(Effect) {}
