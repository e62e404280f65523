package highlight

import (
	"sync"

	"go.abhg.dev/hlduel/internal/lang"
)

// Memoize wraps an engine so that each language is highlighted
// at most once per process.
//
// Sample inputs are compiled into the binary,
// so entries are keyed by language alone and never invalidated.
func Memoize(e Engine) Engine {
	return &memo{engine: e}
}

type memo struct {
	engine Engine
	cache  sync.Map // lang ID -> rendered fragment
}

var _ Engine = (*memo)(nil)

func (m *memo) Name() string { return m.engine.Name() }

func (m *memo) Label() string { return m.engine.Label() }

func (m *memo) Highlight(lg lang.Language, src string) (string, error) {
	if v, ok := m.cache.Load(lg.ID); ok {
		return v.(string), nil
	}

	out, err := m.engine.Highlight(lg, src)
	if err != nil {
		// Failures are not cached so the caller's fallback
		// stays in charge of degraded rendering.
		return "", err
	}

	m.cache.Store(lg.ID, out)
	return out, nil
}
