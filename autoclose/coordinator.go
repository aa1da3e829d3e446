package autoclose

import (
	"log/slog"
	"sync"
	"time"
)

// TouchReleaseDelay is the grace period before a touch release is evaluated,
// so the click synthesized from the same touch does not reopen the overlay
// through its toggle.
const TouchReleaseDelay = 16 * time.Millisecond

// Reason tells why a Subscription was detached.
type Reason string

const (
	ReasonEscape   Reason = "escape"
	ReasonClick    Reason = "click"
	ReasonExternal Reason = "external"
	ReasonCancel   Reason = "cancel"
)

type state int

const (
	stateArmed state = iota
	stateClosing
	stateDetached
)

// Option configures a Subscription.
type Option func(*Subscription)

// WithLogger sets the logger used for debug output.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Subscription) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithMetrics reports armed coordinators and close decisions to m.
func WithMetrics(m *Metrics) Option {
	return func(s *Subscription) {
		s.metrics = m
	}
}

// WithReleaseDelay overrides the delay before a release is evaluated.
// Defaults to TouchReleaseDelay on touch-primary platforms and 0 otherwise.
func WithReleaseDelay(d time.Duration) Option {
	return func(s *Subscription) {
		s.releaseDelay = max(d, 0)
	}
}

// Subscription is a running auto-close coordinator for one overlay.
//
// It is Armed while listening and becomes Detached exactly once: when closed
// fires, when Cancel is called, or right after it invoked the close callback
// itself.
type Subscription struct {
	cfg     Config
	closeFn func()
	closed  <-chan struct{}

	releaseDelay time.Duration
	logger       *slog.Logger
	metrics      *Metrics

	mu    sync.Mutex
	state state
	// Decision taken on the last press, consumed by the next release.
	pending     bool
	shouldClose bool
	unsubscribe []func()
	reason      Reason
	done        chan struct{}
}

// Start arms a coordinator for an open overlay. closeFn is invoked at most
// once, when a gesture or Escape decides the overlay must close. closed
// signals that the overlay was closed by other means; it may be nil.
//
// With ModeOff no listeners are attached and the returned Subscription is
// already detached. A Subscription must not be started twice for the same
// overlay without detaching the first one.
func Start(src EventSource, cfg Config, closeFn func(), closed <-chan struct{}, opts ...Option) *Subscription {
	s := &Subscription{
		cfg:          cfg,
		closeFn:      closeFn,
		closed:       closed,
		releaseDelay: 0,
		logger:       slog.New(slog.DiscardHandler),
		done:         make(chan struct{}),
	}
	if cfg.Platform.TouchPrimary {
		s.releaseDelay = TouchReleaseDelay
	}
	for _, opt := range opts {
		opt(s)
	}

	if cfg.Mode == ModeOff {
		s.state = stateDetached
		close(s.done)
		return s
	}

	s.mu.Lock()
	s.unsubscribe = []func(){
		src.Subscribe(KindKeyDown, s.onKeyDown),
		src.Subscribe(cfg.Platform.PressKind(), s.onPress),
		src.Subscribe(cfg.Platform.ReleaseKind(), s.onRelease),
	}
	s.mu.Unlock()

	s.metrics.armed()
	s.logger.Debug("auto close armed",
		slog.String("mode", cfg.Mode.String()),
		slog.Bool("touch", cfg.Platform.TouchPrimary),
	)

	if closed != nil {
		go s.watch()
	}

	return s
}

// Cancel detaches the coordinator without invoking the close callback.
func (s *Subscription) Cancel() {
	s.detach(ReasonCancel)
}

// Armed reports whether the coordinator is still listening.
func (s *Subscription) Armed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state == stateArmed
}

// Done is closed once the coordinator is detached.
func (s *Subscription) Done() <-chan struct{} {
	return s.done
}

// Reason returns why the coordinator was detached, empty while armed and
// for ModeOff.
func (s *Subscription) Reason() Reason {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.reason
}

func (s *Subscription) watch() {
	select {
	case <-s.closed:
		s.detach(ReasonExternal)
	case <-s.done:
	}
}

func (s *Subscription) onKeyDown(e Event) {
	if e.IsEscape() {
		s.fire(ReasonEscape)
	}
}

func (s *Subscription) onPress(e Event) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.armedLocked() {
		return
	}

	s.pending = true
	s.shouldClose = s.cfg.ShouldClose(e)
}

func (s *Subscription) onRelease(_ Event) {
	s.mu.Lock()
	if !s.armedLocked() || !s.pending {
		s.mu.Unlock()
		return
	}
	shouldClose := s.shouldClose
	s.pending, s.shouldClose = false, false
	s.mu.Unlock()

	if !shouldClose {
		return
	}

	if s.releaseDelay > 0 {
		time.AfterFunc(s.releaseDelay, func() { s.fire(ReasonClick) })
		return
	}

	s.fire(ReasonClick)
}

// fire invokes the close callback and detaches. Only the first call while
// armed has an effect.
func (s *Subscription) fire(reason Reason) {
	s.mu.Lock()
	if !s.armedLocked() {
		s.mu.Unlock()
		return
	}
	s.state = stateClosing
	s.reason = reason
	s.mu.Unlock()

	s.logger.Debug("auto close fired", slog.String("reason", string(reason)))
	s.metrics.closed(reason)

	if s.closeFn != nil {
		s.closeFn()
	}

	s.detach(reason)
}

// armedLocked reports whether events may still produce decisions. An
// external close observed here detaches immediately, so events queued behind
// it are dropped.
func (s *Subscription) armedLocked() bool {
	if s.state != stateArmed {
		return false
	}

	select {
	case <-s.closed:
		s.detachLocked(ReasonExternal)
		return false
	default:
		return true
	}
}

func (s *Subscription) detach(reason Reason) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.detachLocked(reason)
}

func (s *Subscription) detachLocked(reason Reason) {
	if s.state == stateDetached {
		return
	}

	// While closing, fire has already recorded its reason.
	if s.state == stateArmed {
		s.reason = reason
		s.metrics.closed(reason)
	}

	s.state = stateDetached
	s.pending, s.shouldClose = false, false
	for _, unsubscribe := range s.unsubscribe {
		unsubscribe()
	}
	s.unsubscribe = nil
	close(s.done)

	s.metrics.disarmed()
	s.logger.Debug("auto close detached", slog.String("reason", string(reason)))
}
