package systems

import (
	"strings"

	"github.com/g4stlyx/pokedex/engine"
	"github.com/g4stlyx/pokedex/name"
)

// InputResult is returned by InputSystem.Apply
type InputResult struct {
	Changed      []*engine.Entity // Progress or caught status changed
	Caught       []*engine.Entity // Newly caught this call
	InputCleared bool             // Input line was cleared after a catch
}

// InputSystem matches the raw input line against uncaught entities
type InputSystem struct{}

// NewInputSystem creates a new input system
func NewInputSystem() *InputSystem {
	return &InputSystem{}
}

// Apply recomputes typed-progress for every uncaught entity from s.Input
// Catches clear s.Input and increment the level's caught count
func (is *InputSystem) Apply(s *engine.Session) InputResult {
	var result InputResult
	if s.Phase != engine.PhaseRunning {
		return result
	}

	typed := name.Normalize(s.Input)
	typedNoHyphen := name.StripHyphen(s.Input)

	for _, e := range s.Entities {
		if e.Caught() {
			continue
		}
		before := e.Typed()

		var progress int
		switch {
		case strings.HasPrefix(e.Target, typed):
			progress = Consumed(e.Display(), typed, false)
		case strings.HasPrefix(e.TargetNoHyphen, typedNoHyphen):
			progress = Consumed(e.Display(), typedNoHyphen, true)
		default:
			// Diverged: the player restarts this name from scratch
			e.SetTyped(0)
			if before != 0 {
				result.Changed = append(result.Changed, e)
			}
			continue
		}

		if progress > before {
			e.SetTyped(progress)
		}

		if typed != "" && (typed == e.Target || typedNoHyphen == e.TargetNoHyphen) {
			e.Catch()
			s.CaughtCount++
			result.Caught = append(result.Caught, e)
			result.InputCleared = true
		}

		if e.Typed() != before || e.Caught() {
			result.Changed = append(result.Changed, e)
		}
	}

	if result.InputCleared {
		s.Input = ""
	}
	return result
}

// Consumed counts the display characters covered by a matched normalized prefix
// Characters that normalize to nothing count as consumed without advancing the cursor
// With stripHyphen, hyphens are treated as such characters
func Consumed(display []rune, prefix string, stripHyphen bool) int {
	want := []rune(prefix)
	count, j := 0, 0

	for _, r := range display {
		if j >= len(want) {
			break
		}

		cn := name.Rune(r)
		if stripHyphen {
			cn = strings.ReplaceAll(cn, "-", "")
		}
		if cn == "" {
			count++
			continue
		}

		cr := []rune(cn)
		if hasRunePrefix(want[j:], cr) {
			count++
			j += len(cr)
		}
	}
	return count
}

func hasRunePrefix(s, prefix []rune) bool {
	if len(prefix) > len(s) {
		return false
	}
	for i, r := range prefix {
		if s[i] != r {
			return false
		}
	}
	return true
}
