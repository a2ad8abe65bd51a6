package lsystem

// Evolution steps an LSystem one generation at a time.
//
// It consumes the engine it was created from: every call to Next advances
// that engine. An Evolution cannot be restarted, and two Evolutions over the
// same LSystem must not be consumed concurrently.
//
//	it := l.Evolve(3)
//	for it.Next() {
//		fmt.Println(it.State())
//	}
//
// Once the engine is stable, the remaining calls keep producing the stable
// state until n states have been produced.
type Evolution struct {
	lsystem   *LSystem
	remaining int
	produced  int
	state     string
}

func newEvolution(l *LSystem, n int) *Evolution {
	if n < 0 {
		n = 0
	}
	return &Evolution{lsystem: l, remaining: n}
}

// Next advances the engine by one generation. It returns false once n states
// have been produced.
func (e *Evolution) Next() bool {
	if e.remaining <= 0 {
		return false
	}
	e.remaining--
	e.produced++
	e.state = e.lsystem.Step(1)
	return true
}

// State returns the state produced by the last call to Next.
func (e *Evolution) State() string {
	return e.state
}

// Index returns how many states have been produced so far, starting at 1
// after the first call to Next.
func (e *Evolution) Index() int {
	return e.produced
}

func (e *Evolution) HasNext() bool {
	return e.remaining > 0
}
