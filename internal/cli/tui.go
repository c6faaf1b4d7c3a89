package cli

import (
	"context"
	"fmt"
	"strings"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/algoviz/pkg/errors"
	"github.com/matzehuels/algoviz/pkg/graph"
	"github.com/matzehuels/algoviz/pkg/playback"
	"github.com/matzehuels/algoviz/pkg/render/text"
	"github.com/matzehuels/algoviz/pkg/step"
	"github.com/matzehuels/algoviz/pkg/trail"
)

// transcriptSize is the number of narration lines the player keeps.
const transcriptSize = 200

// transcriptRows is the number of narration lines the player shows.
const transcriptRows = 6

// Pane styles
var (
	paneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorDim).
			Padding(0, 1)
	listingLineStyle = lipgloss.NewStyle().Bold(true).Foreground(colorYellow)
	helpStyle        = lipgloss.NewStyle().Foreground(colorDim)
)

// playerOptions configures the interactive player.
type playerOptions struct {
	target playback.Target
	play   playFlags

	// Tree player.
	initial  []int
	queue    []treeOp
	seed     uint64
	treeSize int

	// Graph player.
	graph    graph.Graph
	mode     trail.Mode
	kind     trail.Kind
	directed bool
}

// Messages posted to the player while an engine runs.
type (
	frameMsg  string
	lineMsg   string
	traceMsg  struct{}
	clearMsg  struct{}
	statusMsg struct {
		text   string
		err    error
		loaded *graph.Graph
	}
	runDoneMsg struct {
		run    playback.Run
		result *trail.Result
		err    error
	}
)

// bridge forwards engine callbacks to the running program. Messages sent
// before the program is attached are dropped.
type bridge struct {
	mu sync.Mutex
	p  *tea.Program
}

func (b *bridge) attach(p *tea.Program) {
	b.mu.Lock()
	b.p = p
	b.mu.Unlock()
}

func (b *bridge) send(msg tea.Msg) {
	b.mu.Lock()
	p := b.p
	b.mu.Unlock()
	if p != nil {
		p.Send(msg)
	}
}

// =============================================================================
// Player model
// =============================================================================

// player is the bubbletea model of the interactive player. Engines run in
// tea.Cmd goroutines and report back through the bridge; only one run is
// active at a time.
type player struct {
	ctx      context.Context
	runner   *playback.Runner
	renderer *text.Renderer
	tracer   *step.ListingTracer
	clock    *step.Clock
	opts     playerOptions
	tree     *treeSession

	frame      string
	transcript []string
	input      string
	status     string
	running    bool
	presetIdx  int
}

func newPlayer(ctx context.Context, runner *playback.Runner, renderer *text.Renderer, tracer *step.ListingTracer, clock *step.Clock, opts playerOptions) (*player, error) {
	m := &player{
		ctx:      ctx,
		runner:   runner,
		renderer: renderer,
		tracer:   tracer,
		clock:    clock,
		opts:     opts,
		tree:     &treeSession{runner: runner, seed: opts.seed, treeSize: opts.treeSize},
	}
	switch opts.target {
	case playback.TargetTree:
		preload(runner, opts.initial)
		if len(opts.queue) > 0 {
			m.status = fmt.Sprintf("%d operations queued, enter runs the next", len(opts.queue))
		}
	case playback.TargetGraph:
		if err := runner.LoadGraph(opts.graph); err != nil {
			return nil, err
		}
		m.status = m.graphStatus()
	}
	m.frame = renderer.Render(runner.Scene(opts.target))
	return m, nil
}

func (m *player) Init() tea.Cmd { return nil }

func (m *player) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case frameMsg:
		m.frame = string(msg)
	case lineMsg:
		m.transcript = append(m.transcript, string(msg))
		if len(m.transcript) > transcriptSize {
			m.transcript = m.transcript[len(m.transcript)-transcriptSize:]
		}
	case traceMsg:
		// The listing pane reads the tracer on every View.
	case clearMsg:
		m.transcript = nil
	case statusMsg:
		m.status = msg.text
		switch {
		case msg.err != nil:
			m.status = StyleWarning.Render(errors.UserMessage(msg.err))
		case msg.loaded != nil:
			m.opts.graph = *msg.loaded
			m.status = m.graphStatus()
		}
	case runDoneMsg:
		m.running = false
		m.status = runStatus(msg)
	case tea.KeyMsg:
		return m, m.key(msg.String())
	}
	return m, nil
}

// key handles a key press and returns the command to start, if any.
func (m *player) key(k string) tea.Cmd {
	switch k {
	case "ctrl+c", "q", "esc":
		return tea.Quit
	case "+", "=":
		m.status = fmt.Sprintf("speed ×%g", m.clock.Faster())
		return nil
	case "-":
		m.status = fmt.Sprintf("speed ×%g", m.clock.Slower())
		return nil
	case "c":
		return m.housekeeping("cleared", func() error { return m.runner.Reset(m.opts.target) })
	}
	if m.opts.target == playback.TargetGraph {
		return m.graphKey(k)
	}
	return m.treeKey(k)
}

func (m *player) treeKey(k string) tea.Cmd {
	switch k {
	case "backspace":
		if m.input != "" {
			m.input = m.input[:len(m.input)-1]
		}
		return nil
	case "i", "d", "f":
		v, err := errors.ParseValue(m.input)
		if err != nil {
			m.status = StyleWarning.Render(errors.UserMessage(err))
			return nil
		}
		name := map[string]string{"i": "insert", "d": "delete", "f": "find"}[k]
		return m.treeOp(treeOp{name: name, values: []int{v}})
	case "b":
		values, err := errors.ParseValues(m.input)
		if err != nil {
			m.status = StyleWarning.Render(errors.UserMessage(err))
			return nil
		}
		return m.treeOp(treeOp{name: "balanced", values: values})
	case "n":
		return m.treeOp(treeOp{name: "random"})
	case "enter":
		if len(m.opts.queue) > 0 {
			if m.busy() {
				return nil
			}
			op := m.opts.queue[0]
			m.opts.queue = m.opts.queue[1:]
			return m.treeOp(op)
		}
		if m.input != "" {
			return m.treeKey("i")
		}
		return nil
	}
	if len(k) == 1 && (k[0] >= '0' && k[0] <= '9' || k[0] == ',') {
		m.input += k
	}
	return nil
}

func (m *player) treeOp(op treeOp) tea.Cmd {
	if m.busy() {
		return nil
	}
	m.input = ""
	return m.start(op.String(), func() (playback.Run, *trail.Result, error) {
		run, err := m.tree.apply(m.ctx, op)
		return run, nil, err
	})
}

func (m *player) graphKey(k string) tea.Cmd {
	switch k {
	case "enter", "r":
		if m.busy() {
			return nil
		}
		mode, kind := m.opts.mode, m.opts.kind
		return m.start(mode.String()+" "+kind.String(), func() (playback.Run, *trail.Result, error) {
			res, run, err := m.runner.Search(m.ctx, mode, kind)
			if err != nil || !run.OK() {
				return run, nil, err
			}
			return run, &res, nil
		})
	case "m":
		if !m.busy() {
			m.opts.mode = 1 - m.opts.mode
			m.status = m.graphStatus()
		}
	case "k":
		if !m.busy() {
			m.opts.kind = 1 - m.opts.kind
			m.status = m.graphStatus()
		}
	case "p":
		if m.busy() {
			return nil
		}
		keys := graph.PresetKeys()
		m.presetIdx = (m.presetIdx + 1) % len(keys)
		g, _ := graph.Preset(keys[m.presetIdx])
		return m.loadGraph(g)
	case "g":
		if m.busy() {
			return nil
		}
		opts := graph.DefaultRandomOptions()
		opts.Directed = m.opts.directed
		g, err := graph.Random(opts, graph.NewRand(m.opts.seed))
		if err != nil {
			m.status = StyleWarning.Render(errors.UserMessage(err))
			return nil
		}
		m.opts.seed++
		return m.loadGraph(g)
	}
	return nil
}

func (m *player) loadGraph(g graph.Graph) tea.Cmd {
	return func() tea.Msg {
		if err := m.runner.LoadGraph(g); err != nil {
			return statusMsg{err: err}
		}
		return statusMsg{loaded: &g}
	}
}

func (m *player) graphStatus() string {
	return fmt.Sprintf("%s · %s %s", m.opts.graph.Name, m.opts.mode, m.opts.kind)
}

// busy reports whether a run is active and says so in the status line.
func (m *player) busy() bool {
	if m.running || m.runner.Busy() {
		m.status = StyleWarning.Render("an animation is running")
		return true
	}
	return false
}

// start launches an engine run on a command goroutine.
func (m *player) start(label string, fn func() (playback.Run, *trail.Result, error)) tea.Cmd {
	m.running = true
	m.status = StyleHighlight.Render("▶ " + label)
	return func() tea.Msg {
		run, res, err := fn()
		return runDoneMsg{run: run, result: res, err: err}
	}
}

// housekeeping runs fn off the update loop, since it redraws through the
// bridge, and reports done or the error.
func (m *player) housekeeping(done string, fn func() error) tea.Cmd {
	return func() tea.Msg {
		if err := fn(); err != nil {
			return statusMsg{err: err}
		}
		return statusMsg{text: done}
	}
}

func runStatus(msg runDoneMsg) string {
	switch {
	case msg.err != nil:
		return StyleWarning.Render(errors.UserMessage(msg.err))
	case msg.run.ID == "":
		return "cleared"
	case !msg.run.OK():
		return StyleWarning.Render(fmt.Sprintf("%s: %s", msg.run.Outcome, msg.run.Message))
	}
	s := StyleSuccess.Render(iconSuccess) + " " + msg.run.Algorithm
	if msg.result != nil {
		s += ": " + msg.result.String()
	}
	return s
}

// =============================================================================
// View
// =============================================================================

func (m *player) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("algoviz · " + m.opts.target.String()))
	b.WriteString(StyleDim.Render(fmt.Sprintf("   speed ×%g", m.clock.Speed())))
	b.WriteString("\n")

	listing := m.tracer.Render()
	if listing == "" {
		listing = StyleDim.Render("no algorithm has run yet")
	} else {
		listing = highlightListing(listing)
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		paneStyle.Render(m.frame),
		paneStyle.Render(strings.TrimRight(listing, "\n")),
	))
	b.WriteString("\n")

	lines := m.transcript
	if len(lines) > transcriptRows {
		lines = lines[len(lines)-transcriptRows:]
	}
	for i := len(lines); i < transcriptRows; i++ {
		b.WriteString("\n")
	}
	for _, l := range lines {
		b.WriteString(StyleDim.Render(iconInfo) + " " + l + "\n")
	}
	b.WriteString("\n")

	b.WriteString(m.status)
	b.WriteString("\n")
	if m.opts.target == playback.TargetTree {
		b.WriteString(StyleDim.Render("value: ") + StyleValue.Render(m.input) + "\n")
	}
	b.WriteString(helpStyle.Render(m.help()))
	return b.String()
}

func (m *player) help() string {
	if m.opts.target == playback.TargetGraph {
		return "enter run  m mode  k kind  p next preset  g random graph  c clear  +/- speed  q quit"
	}
	return "0-9, type value  i insert  d delete  f find  b balanced  n random  enter next  c clear  +/- speed  q quit"
}

// highlightListing styles the line the tracer marked with ▸.
func highlightListing(listing string) string {
	lines := strings.Split(listing, "\n")
	for i, l := range lines {
		if strings.HasPrefix(l, "▸") {
			lines[i] = listingLineStyle.Render(l)
		}
	}
	return strings.Join(lines, "\n")
}

// =============================================================================
// Program
// =============================================================================

// runPlayer opens the interactive player and blocks until the user quits.
// Run logs are discarded because the player owns the terminal.
func (c *CLI) runPlayer(ctx context.Context, opts playerOptions) error {
	clock, err := c.clock(opts.play)
	if err != nil {
		return err
	}

	b := &bridge{}
	emitter, done, err := opts.play.narration(step.EmitterFunc(func(line string) { b.send(lineMsg(line)) }))
	if err != nil {
		return err
	}
	defer done()

	renderer := c.textRenderer(func(frame string) { b.send(frameMsg(frame)) })
	tracer := &step.ListingTracer{OnChange: func(string, int) { b.send(traceMsg{}) }}
	sink := &step.Sink{
		Emitter:  emitter,
		Tracer:   tracer,
		Pacer:    clock,
		Renderer: renderer,
		Unit:     c.Config.Playback.Unit.Std(),
		Quiet:    opts.play.fast,
	}
	runner := playback.NewRunner(sink, nil)
	runner.OnClear = func() { b.send(clearMsg{}) }

	m, err := newPlayer(ctx, runner, renderer, tracer, clock, opts)
	if err != nil {
		return err
	}
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	b.attach(p)
	_, err = p.Run()
	return err
}
