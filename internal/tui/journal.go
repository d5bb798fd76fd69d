package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/sadopc/keepsake/internal/clock"
	"github.com/sadopc/keepsake/internal/store"
)

const rateWindow = 10 // seconds shown in the tap-rate chart

// journal records session events. Failures are logged and otherwise
// ignored; the experience never stops because the journal did.
type journal struct {
	store  *store.Store
	clock  clock.Clock
	logger zerolog.Logger
}

func (j *journal) record(kind store.Kind, detail string) {
	if j.store == nil {
		return
	}
	if _, err := j.store.Record(kind, detail, j.clock.Now()); err != nil {
		j.logger.Error().Err(err).Str("kind", string(kind)).Msg("record event")
	}
}

func (j *journal) mark(key string) {
	if j.store == nil {
		return
	}
	if err := j.store.SetMark(key, j.clock.Now()); err != nil {
		j.logger.Error().Err(err).Str("mark", key).Msg("set mark")
	}
}

func (j *journal) load() tea.Cmd {
	if j.store == nil {
		return nil
	}
	return func() tea.Msg {
		var msg journalMsg
		var err error
		if msg.summary, err = j.store.Summary(); err != nil {
			j.logger.Error().Err(err).Msg("load summary")
		}
		if msg.recent, err = j.store.ListEvents(5); err != nil {
			j.logger.Error().Err(err).Msg("load recent events")
		}
		if msg.rate, err = j.store.TapRate(j.clock.Now(), rateWindow); err != nil {
			j.logger.Error().Err(err).Msg("load tap rate")
		}
		return msg
	}
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

const frameInterval = 50 * time.Millisecond

func frameCmd() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}
