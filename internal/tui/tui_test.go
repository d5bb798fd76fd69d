package tui

import (
	"fmt"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/sadopc/keepsake/internal/audio"
	"github.com/sadopc/keepsake/internal/clock"
	"github.com/sadopc/keepsake/internal/engine"
	"github.com/sadopc/keepsake/internal/store"
)

var testEpoch = time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.NewMemory()
	if err != nil {
		t.Fatalf("new memory store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

type fakeMusic struct {
	state   audio.State
	pending bool
}

func (m *fakeMusic) Toggle() audio.State {
	if m.state == audio.Playing {
		m.state = audio.Paused
	} else {
		m.state = audio.Playing
	}
	return m.state
}

func (m *fakeMusic) State() audio.State { return m.state }
func (m *fakeMusic) Pending() bool { return m.pending }

// flakyPlayer refuses the first `blocked` Play calls.
type flakyPlayer struct {
	blocked int
	playing bool
}

func (p *flakyPlayer) Play() error {
	if p.blocked > 0 {
		p.blocked--
		return audio.ErrBlocked
	}
	p.playing = true
	return nil
}

func (p *flakyPlayer) Pause() { p.playing = false }

type rig struct {
	clock   *clock.Fake
	session *engine.Session
	store   *store.Store
	music   *fakeMusic
	app     App
}

func newRig(t *testing.T, probability float64) *rig {
	t.Helper()
	c := clock.NewFake(testEpoch.Add(400 * 24 * time.Hour))
	s := engine.NewSession(c, engine.Options{
		Epoch:            testEpoch,
		TrailProbability: &probability,
		Seed:             7,
		Reveals:          DefaultReveals(),
	})
	t.Cleanup(s.Close)

	r := &rig{clock: c, session: s, store: newTestStore(t), music: &fakeMusic{}}
	r.app = NewApp(s, r.music, r.store, zerolog.Nop())
	t.Cleanup(r.app.Close)
	r.send(tea.WindowSizeMsg{Width: 120, Height: 40})
	return r
}

func (r *rig) send(msg tea.Msg) tea.Cmd {
	m, cmd := r.app.Update(msg)
	r.app = m.(App)
	return cmd
}

func (r *rig) unlock(t *testing.T) {
	t.Helper()
	r.app.gate, _ = r.app.gate.submit("10")
	r.send(frameMsg(r.clock.Now()))
	if r.app.activeView != viewDashboard {
		t.Fatalf("expected dashboard after unlock, got %d", r.app.activeView)
	}
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	enterKey = tea.KeyMsg{Type: tea.KeyEnter}
	spaceKey = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	tabKey   = tea.KeyMsg{Type: tea.KeyTab}
	escKey   = tea.KeyMsg{Type: tea.KeyEsc}
	rightKey = tea.KeyMsg{Type: tea.KeyRight}
	downKey  = tea.KeyMsg{Type: tea.KeyDown}
)

func summary(t *testing.T, s *store.Store) store.Summary {
	t.Helper()
	sum, err := s.Summary()
	if err != nil {
		t.Fatal(err)
	}
	return sum
}

// ============================================================
// App model
// ============================================================

func TestNewApp(t *testing.T) {
	r := newRig(t, 0)

	if r.app.activeView != viewGate {
		t.Fatal("default view should be the gate")
	}
	if r.app.phase != engine.PhaseLocked {
		t.Fatal("app should start locked")
	}
	if r.app.showHelp {
		t.Fatal("help should be hidden by default")
	}
}

func TestAppLoadingState(t *testing.T) {
	c := clock.NewFake(testEpoch)
	s := engine.NewSession(c, engine.Options{Epoch: testEpoch})
	defer s.Close()
	app := NewApp(s, nil, nil, zerolog.Nop())
	defer app.Close()

	if output := app.View(); output != "Loading..." {
		t.Fatalf("expected 'Loading...', got %q", output)
	}
}

func TestAppViewStates(t *testing.T) {
	r := newRig(t, 0)
	r.unlock(t)

	views := []viewState{viewGate, viewDashboard, viewBubbles, viewGarden, viewGame, viewFinale}
	for _, v := range views {
		r.app.activeView = v
		if output := r.app.View(); output == "" {
			t.Fatalf("view %d rendered empty", v)
		}
	}
}

func TestAppWithoutJournalOrMusic(t *testing.T) {
	c := clock.NewFake(testEpoch)
	s := engine.NewSession(c, engine.Options{Epoch: testEpoch, Reveals: DefaultReveals()})
	defer s.Close()
	app := NewApp(s, nil, nil, zerolog.Nop())
	defer app.Close()

	m, _ := app.Update(tea.WindowSizeMsg{Width: 80, Height: 30})
	app = m.(App)
	app.gate, _ = app.gate.submit("10")
	m, _ = app.Update(frameMsg(c.Now()))
	app = m.(App)
	m, _ = app.Update(runes("m"))
	app = m.(App)

	if app.status != "No music" {
		t.Fatalf("expected no-music status, got %q", app.status)
	}
	if app.View() == "" {
		t.Fatal("view rendered empty")
	}
}

// ============================================================
// Gate
// ============================================================

func TestGateWrongCode(t *testing.T) {
	r := newRig(t, 0)

	r.app.gate, _ = r.app.gate.submit("11")

	if r.session.Phases.Phase() != engine.PhaseLocked {
		t.Fatal("wrong code must not unlock")
	}
	if !r.session.Phases.Shaking() {
		t.Fatal("gate should shake after a wrong code")
	}
	if *r.app.gate.code != "" {
		t.Fatal("form should be reset after a wrong code")
	}
	sum := summary(t, r.store)
	if sum.Attempts != 1 || sum.WrongAttempts != 1 {
		t.Fatalf("expected one wrong attempt, got %+v", sum)
	}

	r.clock.Advance(500 * time.Millisecond)
	if r.session.Phases.Shaking() {
		t.Fatal("shake should clear after 500ms")
	}
}

func TestGateUnlock(t *testing.T) {
	r := newRig(t, 0)
	r.unlock(t)

	if r.app.phase != engine.PhaseUnlocked {
		t.Fatal("app should follow the phase")
	}
	sum := summary(t, r.store)
	if sum.Attempts != 1 || sum.WrongAttempts != 0 {
		t.Fatalf("unexpected attempts %+v", sum)
	}
	if sum.UnlockedAt == nil || !sum.UnlockedAt.Equal(r.clock.Now()) {
		t.Fatalf("unlock time not journaled: %v", sum.UnlockedAt)
	}
	if r.session.Registry.Len() == 0 {
		t.Fatal("unlock should spawn confetti")
	}
}

func TestGateCapturesTabKeys(t *testing.T) {
	r := newRig(t, 0)

	r.send(runes("2"))
	r.send(runes("q"))

	if r.app.activeView != viewGate {
		t.Fatal("tabs must not open while locked")
	}
}

func TestCtrlCQuitsFromGate(t *testing.T) {
	r := newRig(t, 0)

	cmd := r.send(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("ctrl+c should quit")
	}
}

// ============================================================
// Navigation
// ============================================================

func TestTabNavigation(t *testing.T) {
	r := newRig(t, 0)
	r.unlock(t)

	tests := []struct {
		key  tea.KeyMsg
		want viewState
	}{
		{runes("2"), viewBubbles},
		{runes("3"), viewGarden},
		{runes("4"), viewGame},
		{runes("1"), viewDashboard},
		{tabKey, viewBubbles},
		{tabKey, viewGarden},
		{tabKey, viewGame},
		{tabKey, viewDashboard},
	}
	for _, tt := range tests {
		r.send(tt.key)
		if r.app.activeView != tt.want {
			t.Fatalf("after %q expected view %d, got %d", tt.key.String(), tt.want, r.app.activeView)
		}
	}
}

func TestBackReturnsToDashboard(t *testing.T) {
	r := newRig(t, 0)
	r.unlock(t)

	for _, k := range []string{"2", "3", "4"} {
		r.send(runes(k))
		r.send(escKey)
		if r.app.activeView != viewDashboard {
			t.Fatalf("esc from view %s should return to the dashboard, got %d", k, r.app.activeView)
		}
	}

	r.send(escKey)
	if r.app.activeView != viewDashboard {
		t.Fatal("esc on the dashboard should stay there")
	}
}

func TestBackIgnoredInFinale(t *testing.T) {
	r := newRig(t, 0)
	r.unlock(t)
	if err := r.session.Phases.RequestEnding(); err != nil {
		t.Fatal(err)
	}
	r.send(frameMsg(r.clock.Now()))

	r.send(escKey)
	if r.app.activeView != viewFinale {
		t.Fatalf("finale is final, got view %d", r.app.activeView)
	}
}

func TestHelpToggle(t *testing.T) {
	r := newRig(t, 0)
	r.unlock(t)

	r.send(runes("?"))
	if !r.app.showHelp || !r.app.help.ShowAll {
		t.Fatal("help should be shown")
	}
	r.send(runes("?"))
	if r.app.showHelp {
		t.Fatal("help should be hidden")
	}
}

// ============================================================
// Reveal boards
// ============================================================

func TestBubblePopByKey(t *testing.T) {
	r := newRig(t, 0)
	r.unlock(t)
	r.send(runes("2"))
	before := r.session.Registry.Len()

	cmd := r.send(enterKey)
	if cmd == nil {
		t.Fatal("expected revealed command")
	}
	if msg, ok := cmd().(revealedMsg); !ok || msg.id != "bubble-0" {
		t.Fatalf("expected bubble-0 revealed, got %#v", msg)
	}

	first, _ := r.session.Board.Get("bubble-0")
	if !first.Revealed() {
		t.Fatal("bubble should be revealed")
	}
	if r.session.Registry.Len() <= before {
		t.Fatal("pop should burst confetti")
	}

	// Second activation is a no-op.
	if cmd := r.send(enterKey); cmd != nil {
		t.Fatal("already revealed bubble should not emit")
	}
	if n := summary(t, r.store).Reveals; n != 1 {
		t.Fatalf("expected one reveal journaled, got %d", n)
	}
}

func TestBoardCursor(t *testing.T) {
	r := newRig(t, 0)
	r.unlock(t)
	r.send(runes("2"))

	cols := r.app.bubbles.columns()
	r.send(rightKey)
	if r.app.bubbles.cursor != 1 {
		t.Fatalf("expected cursor 1, got %d", r.app.bubbles.cursor)
	}
	r.send(downKey)
	if r.app.bubbles.cursor != 1+cols {
		t.Fatalf("expected cursor %d, got %d", 1+cols, r.app.bubbles.cursor)
	}

	r.send(spaceKey)
	second, _ := r.session.Board.Get(fmt.Sprintf("bubble-%d", 1+cols))
	if !second.Revealed() {
		t.Fatal("space should reveal the focused bubble")
	}
}

func TestFlowerBloom(t *testing.T) {
	r := newRig(t, 0)
	r.unlock(t)
	r.send(runes("3"))

	r.send(enterKey)

	f, _ := r.session.Board.Get("flower-0")
	if !f.Revealed() {
		t.Fatal("flower should bloom")
	}
	if !strings.Contains(r.app.garden.view(), "favorite song") {
		t.Fatal("bloomed flower should show its message")
	}
	if r.session.Board.Revealed(engine.RevealBubble) != 0 {
		t.Fatal("garden must not touch bubbles")
	}
}

func TestBoardStateSurvivesViewSwitch(t *testing.T) {
	r := newRig(t, 0)
	r.unlock(t)
	r.send(runes("2"))
	r.send(enterKey)

	r.send(runes("1"))
	r.send(runes("2"))
	r.app.View()

	b, _ := r.session.Board.Get("bubble-0")
	if !b.Revealed() {
		t.Fatal("switching views must not reset widgets")
	}
}

// ============================================================
// Game
// ============================================================

func TestGameToFinale(t *testing.T) {
	r := newRig(t, 0)
	r.unlock(t)
	r.send(runes("4"))

	for range 25 {
		r.send(spaceKey)
	}
	if r.session.Game.Progress() != engine.GameMax {
		t.Fatalf("expected full progress, got %d", r.session.Game.Progress())
	}

	// Extra taps are ignored and not journaled.
	r.send(spaceKey)
	if n := summary(t, r.store).Taps; n != 25 {
		t.Fatalf("expected 25 taps journaled, got %d", n)
	}

	r.clock.Advance(engine.EndingDelay - time.Millisecond)
	r.send(frameMsg(r.clock.Now()))
	if r.app.activeView == viewFinale {
		t.Fatal("finale shown too early")
	}

	r.clock.Advance(time.Millisecond)
	r.send(frameMsg(r.clock.Now()))
	if r.app.activeView != viewFinale {
		t.Fatal("finale should be shown after the ending delay")
	}
	if !strings.Contains(r.app.finale.view(), letterGreeting) {
		t.Fatal("finale should show the letter")
	}

	// Tabs are gone once the finale is up.
	r.send(runes("2"))
	if r.app.activeView != viewFinale {
		t.Fatal("finale must stay on screen")
	}
	mark, err := r.store.Mark(store.MarkFinale)
	if err != nil || mark == nil {
		t.Fatalf("finale should be journaled, got %v %v", mark, err)
	}
}

func TestGameFeedbackRendered(t *testing.T) {
	r := newRig(t, 0)
	r.unlock(t)
	r.send(runes("4"))

	if !strings.Contains(r.app.game.view(0), engine.IdleFeedback) {
		t.Fatal("idle game should show the call to action")
	}
	r.send(spaceKey)
	if !strings.Contains(r.app.game.view(0), engine.TierEncourage.String()) {
		t.Fatal("first tap should encourage")
	}
}

func TestGameChartFromJournal(t *testing.T) {
	r := newRig(t, 0)
	r.unlock(t)
	r.send(runes("4"))
	r.send(spaceKey)
	r.send(spaceKey)

	msg := r.app.journal.load()()
	r.send(msg)

	jm := msg.(journalMsg)
	if len(jm.rate) != rateWindow {
		t.Fatalf("expected %d buckets, got %d", rateWindow, len(jm.rate))
	}
	if jm.rate[rateWindow-1] != 2 {
		t.Fatalf("expected 2 taps in the last second, got %v", jm.rate)
	}
	if len(r.app.game.rate) != rateWindow {
		t.Fatal("game view should keep the rate")
	}
}

func TestRenderHeart(t *testing.T) {
	if strings.Contains(renderHeart(0), "█") {
		t.Fatal("empty heart should have no fill")
	}
	if strings.Contains(renderHeart(100), "░") {
		t.Fatal("full heart should be completely filled")
	}
}

// ============================================================
// Interaction, pointer and music
// ============================================================

func TestInputPublishesInteraction(t *testing.T) {
	r := newRig(t, 0)
	count := 0
	sub := r.session.Hub.Subscribe(func() { count++ })
	defer sub.Cancel()

	r.send(runes("x"))
	r.send(tea.MouseMsg{X: 3, Y: 3, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	r.send(tea.MouseMsg{X: 4, Y: 3, Action: tea.MouseActionMotion})

	if count != 2 {
		t.Fatalf("expected 2 interactions, got %d", count)
	}
}

func TestPointerTrail(t *testing.T) {
	r := newRig(t, 1)

	r.send(tea.MouseMsg{X: 60, Y: 20, Action: tea.MouseActionMotion})

	p := r.session.Trail.Pointer()
	if p.X != 0.5 || p.Y != 0.5 {
		t.Fatalf("expected pointer at centre, got %+v", p)
	}
	if r.session.Registry.Len() != 1 {
		t.Fatalf("expected one sparkle, got %d", r.session.Registry.Len())
	}

	r.clock.Advance(engine.DefaultSparkleTTL)
	if r.session.Registry.Len() != 0 {
		t.Fatal("sparkle should expire")
	}
}

func TestPointerTrailDisabled(t *testing.T) {
	r := newRig(t, -1)

	for i := range 50 {
		r.send(tea.MouseMsg{X: i, Y: 5, Action: tea.MouseActionMotion})
	}
	if r.session.Registry.Len() != 0 {
		t.Fatal("negative probability disables the trail")
	}
}

func TestMusicToggle(t *testing.T) {
	r := newRig(t, 0)
	r.unlock(t)

	r.send(runes("m"))
	if r.music.State() != audio.Playing || r.app.status != "Music playing" {
		t.Fatalf("expected playing, got %s %q", r.music.State(), r.app.status)
	}
	r.send(runes("m"))
	if r.music.State() != audio.Paused {
		t.Fatal("expected paused")
	}

	counts, err := r.store.CountByKind()
	if err != nil {
		t.Fatal(err)
	}
	if counts[store.KindAudio] != 2 {
		t.Fatalf("expected 2 audio events, got %d", counts[store.KindAudio])
	}
}

// ============================================================
// Overlay
// ============================================================

func TestMusicKeyWinsOverAutoplayRetry(t *testing.T) {
	c := clock.NewFake(testEpoch.Add(400 * 24 * time.Hour))
	s := engine.NewSession(c, engine.Options{Epoch: testEpoch, Reveals: DefaultReveals()})
	t.Cleanup(s.Close)

	player := &flakyPlayer{blocked: 1}
	music := audio.NewCoordinator(player, s.Hub, zerolog.Nop())
	music.Start()
	t.Cleanup(music.Close)
	if !music.Pending() {
		t.Fatal("blocked autoplay should wait for an interaction")
	}

	app := NewApp(s, music, nil, zerolog.Nop())
	t.Cleanup(app.Close)
	send := func(msg tea.Msg) {
		m, _ := app.Update(msg)
		app = m.(App)
	}
	send(tea.WindowSizeMsg{Width: 120, Height: 40})
	if err := s.Phases.SubmitCode("10"); err != nil {
		t.Fatal(err)
	}
	send(frameMsg(c.Now()))

	send(runes("m"))

	if music.State() != audio.Playing || !player.playing {
		t.Fatalf("music key should start playback, got %s", music.State())
	}
	if music.Pending() || s.Hub.Len() != 0 {
		t.Fatal("music key should leave no fallback behind")
	}
	if music.Attempts() != 2 {
		t.Fatalf("expected the key press to be the only retry, attempts=%d", music.Attempts())
	}

	send(runes("m"))
	send(runes("2"))
	if music.State() != audio.Paused {
		t.Fatal("later interactions must not restart paused music")
	}
}

func TestMusicPendingIndicator(t *testing.T) {
	r := newRig(t, 0)
	r.unlock(t)

	r.music.pending = true
	if got := r.app.renderMusic(); !strings.Contains(got, "…") {
		t.Fatalf("expected waiting indicator, got %q", got)
	}
	r.music.pending = false
	if got := r.app.renderMusic(); !strings.Contains(got, "‖") {
		t.Fatalf("expected paused indicator, got %q", got)
	}
}

func TestSplice(t *testing.T) {
	tests := []struct {
		line  string
		col   int
		glyph string
		want  string
	}{
		{"hello", 0, "X", "Xello"},
		{"hello", 4, "X", "hellX"},
		{"hi", 4, "X", "hi  X"},
		{"", 0, "X", "X"},
	}
	for _, tt := range tests {
		if got := splice(tt.line, tt.col, tt.glyph, 1); got != tt.want {
			t.Fatalf("splice(%q, %d) = %q, want %q", tt.line, tt.col, got, tt.want)
		}
	}
}

func TestOverlayPlacesEntities(t *testing.T) {
	now := testEpoch
	frame := strings.Repeat(".", 10) + "\n" + strings.Repeat(".", 10)
	entities := []engine.Entity{
		{Kind: engine.KindSparkle, SpawnedAt: now, TTL: time.Second, Payload: engine.Payload{X: 0.5, Y: 0.5, Glyph: "*"}},
		// Off screen.
		{Kind: engine.KindSparkle, SpawnedAt: now, TTL: time.Second, Payload: engine.Payload{X: 2, Y: 0, Glyph: "*"}},
	}

	out := overlay(frame, entities, engine.Point{X: -1, Y: -1}, now, 10, 2)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if !strings.Contains(lines[1], "*") || strings.Contains(lines[0], "*") {
		t.Fatalf("sparkle should be on the second line: %q", out)
	}
}

func TestOverlayMovesWithAge(t *testing.T) {
	now := testEpoch
	frame := strings.Repeat(" ", 10) + "\n" + strings.Repeat(" ", 10)
	heart := engine.Entity{
		Kind: engine.KindHeart, SpawnedAt: now, TTL: time.Second,
		Payload: engine.Payload{X: 0, Y: 0.99, DY: -1, Glyph: "♥"},
	}

	start := strings.Split(overlay(frame, []engine.Entity{heart}, engine.Point{X: -1, Y: -1}, now, 10, 2), "\n")
	if !strings.Contains(start[1], "♥") {
		t.Fatal("heart should start at the bottom")
	}
	later := strings.Split(overlay(frame, []engine.Entity{heart}, engine.Point{X: -1, Y: -1}, now.Add(900*time.Millisecond), 10, 2), "\n")
	if !strings.Contains(later[0], "♥") {
		t.Fatal("heart should rise to the top")
	}
}

// ============================================================
// Content and helpers
// ============================================================

func TestDefaultReveals(t *testing.T) {
	specs := DefaultReveals()
	seen := make(map[string]bool)
	var bubbles, flowers int
	for _, s := range specs {
		if seen[s.ID] {
			t.Fatalf("duplicate id %q", s.ID)
		}
		seen[s.ID] = true
		switch s.Kind {
		case engine.RevealBubble:
			bubbles++
		case engine.RevealFlower:
			flowers++
		}
	}
	if bubbles != 19 || flowers != 5 {
		t.Fatalf("expected 19 bubbles and 5 flowers, got %d and %d", bubbles, flowers)
	}
}

func TestFormatSnapshot(t *testing.T) {
	years, clock := formatSnapshot(engine.Snapshot{Years: 2, Days: 3, Hours: 4, Minutes: 5, Seconds: 6})
	if years != "2 Years" {
		t.Fatalf("unexpected years %q", years)
	}
	if clock != "3d : 4h : 5m : 6s" {
		t.Fatalf("unexpected clock %q", clock)
	}
}

func TestNormalize(t *testing.T) {
	p := normalize(30, 10, 120, 40)
	if p.X != 0.25 || p.Y != 0.25 {
		t.Fatalf("unexpected point %+v", p)
	}
	if normalize(1, 1, 0, 0) != engine.DefaultOrigin {
		t.Fatal("unsized screen should fall back to the default origin")
	}
	if x, y := cell(p, 120, 40); x != 30 || y != 10 {
		t.Fatalf("round trip gave %d,%d", x, y)
	}
}

func TestDescribeEvent(t *testing.T) {
	tests := []struct {
		event store.Event
		want  string
	}{
		{store.Event{Kind: store.KindPhase, Detail: "UNLOCKED"}, "now unlocked"},
		{store.Event{Kind: store.KindReveal, Detail: "bubble-1"}, "revealed bubble-1"},
		{store.Event{Kind: store.KindTap, Detail: "40"}, "heart at 40%"},
		{store.Event{Kind: store.KindAudio, Detail: "paused"}, "music paused"},
	}
	for _, tt := range tests {
		if got := describeEvent(tt.event); got != tt.want {
			t.Fatalf("describeEvent(%v) = %q, want %q", tt.event, got, tt.want)
		}
	}
}

// ============================================================
// Key bindings
// ============================================================

func TestKeyMapShortHelp(t *testing.T) {
	if len(keys.ShortHelp()) == 0 {
		t.Fatal("short help should have bindings")
	}
}

func TestKeyMapFullHelp(t *testing.T) {
	groups := keys.FullHelp()
	if len(groups) == 0 {
		t.Fatal("full help should have groups")
	}
	for i, g := range groups {
		if len(g) == 0 {
			t.Fatalf("full help group %d is empty", i)
		}
	}
}

// ============================================================
// Styles (smoke test: just verify they don't panic)
// ============================================================

func TestStylesRender(t *testing.T) {
	styles := []struct {
		name string
		fn   func() string
	}{
		{"activeTab", func() string { return activeTabStyle.Render("test") }},
		{"inactiveTab", func() string { return inactiveTabStyle.Render("test") }},
		{"panel", func() string { return panelStyle.Render("test") }},
		{"activePanel", func() string { return activePanelStyle.Render("test") }},
		{"gate", func() string { return gateStyle.Render("test") }},
		{"gateError", func() string { return gateErrorStyle.Render("test") }},
		{"counter", func() string { return counterStyle.Render("test") }},
		{"cell", func() string { return cellStyle.Render("test") }},
		{"focusedCell", func() string { return focusedCellStyle.Render("test") }},
		{"nukeButton", func() string { return nukeButtonStyle.Render("test") }},
		{"letter", func() string { return letterStyle.Render("test") }},
		{"title", func() string { return titleStyle.Render("test") }},
		{"subtitle", func() string { return subtitleStyle.Render("test") }},
		{"accent", func() string { return accentStyle.Render("test") }},
		{"success", func() string { return successStyle.Render("test") }},
		{"warning", func() string { return warningStyle.Render("test") }},
		{"error", func() string { return errorStyle.Render("test") }},
		{"muted", func() string { return mutedStyle.Render("test") }},
		{"highlight", func() string { return highlightStyle.Render("test") }},
		{"header", func() string { return headerStyle.Render("test") }},
		{"footer", func() string { return footerStyle.Render("test") }},
	}

	for _, s := range styles {
		if result := s.fn(); result == "" {
			t.Fatalf("style %q rendered empty", s.name)
		}
	}
}
