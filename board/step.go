package board

import "github.com/muhzinmohammed/infinite-canvas-notes/physics"

// Step advances the board by one tick: every string whose two notes resolve
// is re-pinned to their current centers and relaxed. A connection with a
// missing note simply produces no geometry this tick; it resumes on its own
// once both notes resolve again. Nothing here can fail — a degenerate string
// degrades its own look, never the tick loop.
func Step(s *State) {
	s.Tick++

	for _, c := range s.Connections {
		from, ok := s.Notes[c.From]
		if !ok {
			continue
		}
		to, ok := s.Notes[c.To]
		if !ok {
			continue
		}

		start := from.Center()
		end := to.Center()
		if c.chain == nil {
			c.chain = physics.NewChain(start, end, physics.StringSegments)
		}
		physics.Step(c.chain, start, end)
	}
}
