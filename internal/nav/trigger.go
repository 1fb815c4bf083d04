package nav

// Trigger coalesces scroll events: at most one recomputation is pending no
// matter how often Fire is called.
type Trigger struct {
	ch chan struct{}
}

func NewTrigger() *Trigger {
	return &Trigger{ch: make(chan struct{}, 1)}
}

// Fire schedules a recomputation unless one is already pending.
func (t *Trigger) Fire() {
	select {
	case t.ch <- struct{}{}:
	default:
	}
}

func (t *Trigger) C() <-chan struct{} {
	return t.ch
}
