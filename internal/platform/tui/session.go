package tui

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-slide/internal/config"
	"github.com/vovakirdan/tui-slide/internal/controller"
	"github.com/vovakirdan/tui-slide/internal/core"
	"github.com/vovakirdan/tui-slide/internal/registry"
	"github.com/vovakirdan/tui-slide/internal/resource"
	"github.com/vovakirdan/tui-slide/internal/storage"
)

// Options configures a puzzle session.
type Options struct {
	Config  config.PuzzleConfig
	Runtime core.RuntimeConfig
	Store   *storage.Store    // nil plays without records
	Library *resource.Library // nil plays without pictures
	Logger  *log.Logger       // nil discards
	Player  string            // Name stored with records
	Bell    bool              // Ring the terminal bell on solve
	Check   bool              // Validate grid invariants every tick
}

// Session is one player's puzzle: the controller and the collaborators it
// needs. It is shared by pointer between Bubble Tea model copies.
type Session struct {
	ctrl    *controller.Controller
	lib     *resource.Library
	theme   *resource.Async[config.Theme]
	font    *resource.Async[*resource.Font]
	store   *storage.Store
	logger  *log.Logger
	player  string
	bell    bool
	check   bool
	runtime core.RuntimeConfig

	last    *controller.Round // Most recently solved round
	records int               // Rounds saved this session
	ringing bool              // Bell requested, not yet taken by the view
}

// NewSession builds the controller and starts loading resources.
func NewSession(ctx context.Context, opts Options) (*Session, error) {
	if err := opts.Config.Validate(); err != nil {
		return nil, err
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	runtime := opts.Runtime
	if runtime.Seed == 0 {
		runtime.Seed = time.Now().UnixNano()
	}

	s := &Session{
		lib:     opts.Library,
		store:   opts.Store,
		logger:  logger,
		player:  opts.Player,
		bell:    opts.Bell,
		check:   opts.Check,
		runtime: runtime,
	}

	themeCfg := opts.Config.Theme
	s.theme = resource.Load(ctx, "theme", logger, func(context.Context) (config.Theme, error) {
		return themeCfg.Resolve()
	})
	s.font = resource.Load(ctx, "digits", logger, func(context.Context) (*resource.Font, error) {
		return resource.DefaultFont()
	})

	res := controller.Resources{
		Static: []controller.Readiness{s.theme},
		Grid:   []controller.Readiness{s.font},
	}
	if s.lib != nil {
		res.Content = s.lib
	}

	board := opts.Config.Board
	anim := opts.Config.Animation
	s.ctrl = controller.New(res, controller.Options{
		Size: board.Size,
		Sizes: controller.SizeRange{
			Min:  board.SizeMin,
			Max:  board.SizeMax,
			Step: board.SizeStep,
		},
		ShuffleIterations: board.ShuffleIterations,
		AnimationDuration: anim.Duration(),
		Animation:         anim.Enabled,
		Rand:              rand.New(rand.NewSource(runtime.Seed)),
		Logger:            logger,
		OnSolved:          s.solved,
	})

	return s, nil
}

// Controller returns the session's state machine.
func (s *Session) Controller() *controller.Controller {
	return s.ctrl
}

// LastSolved returns the most recently solved round, if any.
func (s *Session) LastSolved() (controller.Round, bool) {
	if s.last == nil {
		return controller.Round{}, false
	}
	return *s.last, true
}

// solved is the controller's OnSolved callback.
func (s *Session) solved(r controller.Round) {
	s.last = &r
	s.ringing = s.bell
	if s.store == nil {
		return
	}

	_, err := s.store.SaveRound(storage.RoundRecord{
		RoundID:  r.ID,
		Size:     r.Size,
		Moves:    r.Moves,
		Duration: r.PlayTime,
		Content:  s.contentName(r.Content),
		Player:   s.player,
	})
	if err != nil {
		s.logger.Warn("could not save round", "round", r.ID, "error", err)
		return
	}
	s.records++
}

// takeBell reports whether a bell is due and clears the request.
func (s *Session) takeBell() bool {
	ring := s.ringing
	s.ringing = false
	return ring
}

// contentName returns the ID of the picture at index, or "" without pictures.
func (s *Session) contentName(index int) string {
	if s.lib == nil {
		return ""
	}
	e, ok := s.lib.Entry(index)
	if !ok {
		return ""
	}
	return e.ID
}

// picture returns the loaded picture for the current round, or nil.
func (s *Session) picture() registry.Picture {
	if s.lib == nil {
		return nil
	}
	return s.lib.Picture(s.ctrl.SelectedContent())
}

// step advances the controller by one tick with the frame's input.
func (s *Session) step(in core.InputFrame, dt time.Duration) {
	s.ctrl.Step(in, dt)
	if !s.check {
		return
	}
	if g, ok := s.ctrl.Grid().(interface{ Validate() error }); ok {
		if err := g.Validate(); err != nil {
			s.logger.Error("grid invariant broken", "state", s.ctrl.State(), "error", err)
		}
	}
}

// painter collects what the board needs for one frame.
func (s *Session) painter() (boardPainter, bool) {
	theme, err := s.theme.Value()
	if err != nil || !s.theme.Loaded() {
		return boardPainter{}, false
	}
	font, _ := s.font.Value()
	return boardPainter{
		theme:   theme,
		font:    font,
		picture: s.picture(),
		side:    s.ctrl.Side(),
		solved:  s.ctrl.State() == controller.StateSolved,
	}, true
}

// header returns the top line: size, moves, time and picture.
func (s *Session) header() string {
	r := s.ctrl.Round()
	size := r.Size
	if size == 0 {
		size = s.ctrl.Size()
	}
	line := fmt.Sprintf(" SLIDE  %dx%d  moves %d  %s", size, size, r.Moves, formatClock(r.PlayTime))
	if name := s.contentName(s.ctrl.SelectedContent()); name != "" {
		line += "  " + name
	}
	return line
}

// status returns the bottom line for the current state.
func (s *Session) status() string {
	c := s.ctrl
	var msg string
	switch c.State() {
	case controller.StateLoadingStatic, controller.StateSelectContent, controller.StateWaitContent:
		msg = "loading..."
	case controller.StateEnterAnimating:
		msg = "shuffling..."
	case controller.StateSolved:
		if r, ok := s.LastSolved(); ok {
			msg = fmt.Sprintf("solved in %d moves, %s! shuffle for a new puzzle", r.Moves, formatClock(r.PlayTime))
		}
	case controller.StateExitAnimating:
		msg = "clearing..."
	}

	var extras []string
	if c.Grid() != nil && c.Size() != c.Grid().Size() {
		extras = append(extras, fmt.Sprintf("next %dx%d", c.Size(), c.Size()))
	}
	if !c.AnimationEnabled() {
		extras = append(extras, "animation off")
	}
	if c.Side() == controller.SideBack {
		extras = append(extras, "picture side")
	}
	for _, e := range extras {
		if msg != "" {
			msg += "  "
		}
		msg += "[" + e + "]"
	}
	return " " + msg
}

func formatClock(d time.Duration) string {
	d = d.Truncate(time.Second)
	return fmt.Sprintf("%d:%02d", int(d.Minutes()), int(d.Seconds())%60)
}
