// Package closing drives the submission lifecycle of the closing form:
// validate, build the ledger batch, post it, and settle the status.
package closing

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/CuelloDiego/Cierre-de-caja/internal/core"
	"github.com/CuelloDiego/Cierre-de-caja/internal/form"
	"github.com/CuelloDiego/Cierre-de-caja/internal/ledger"
	"github.com/CuelloDiego/Cierre-de-caja/internal/log"
)

// Status of the current or last submission attempt. From success the
// service returns to idle on its own after the idle delay; from error
// it stays put until the next attempt.
type Status string

const (
	StatusIdle    Status = "idle"
	StatusSending Status = "sending"
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

// User-facing messages, in the closer's language.
const (
	MsgIncomplete      = "Completá tu nombre y turno antes de enviar"
	MsgNothingToSubmit = "No hay nada para enviar"
	MsgNetworkFailure  = "No se pudo conectar con el servidor. Revisá tu conexión."
	msgServerFormat    = "El servidor respondió con error (código %d)"
)

const defaultIdleDelay = 5000 * time.Millisecond

// EventPublisher announces accepted closings to interested consumers.
// Publish failures never fail the submission.
type EventPublisher interface {
	PublishClosingRecorded(ctx context.Context, batch []core.LogEntry) error
}

// Service owns the status machine. All transitions happen under its
// mutex; the network call itself runs outside it so readers can
// observe the sending state.
type Service struct {
	state   *form.State
	poster  ledger.Poster
	history *ledger.History
	events  EventPublisher
	logger  *log.Logger

	now       func() time.Time
	idleDelay time.Duration

	mu        sync.Mutex
	status    Status
	errMsg    string
	idleTimer *time.Timer
}

type Option func(*Service)

// WithIdleDelay overrides the delay before success returns to idle.
func WithIdleDelay(d time.Duration) Option {
	return func(s *Service) { s.idleDelay = d }
}

// WithClock overrides the batch timestamp source.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithEvents attaches an event publisher for accepted closings.
func WithEvents(p EventPublisher) Option {
	return func(s *Service) { s.events = p }
}

func New(state *form.State, poster ledger.Poster, history *ledger.History, logger *log.Logger, opts ...Option) *Service {
	if logger == nil {
		logger = log.New(log.DefaultConfig())
	}
	s := &Service{
		state:     state,
		poster:    poster,
		history:   history,
		logger:    logger.WithComponent(log.ComponentClosing),
		now:       time.Now,
		idleDelay: defaultIdleDelay,
		status:    StatusIdle,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// LastError returns the message of the last failed attempt, empty
// otherwise.
func (s *Service) LastError() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.errMsg
}

// Submit runs one submission attempt to completion. A second call
// while one is in flight returns core.ErrSubmissionInFlight without
// touching anything. The form is reset only on confirmed acceptance;
// any failure leaves it exactly as entered so the closer can resubmit.
func (s *Service) Submit(ctx context.Context) error {
	s.mu.Lock()
	if s.status == StatusSending {
		s.mu.Unlock()
		return core.ErrSubmissionInFlight
	}
	// A fresh attempt cancels a pending return-to-idle.
	if s.idleTimer != nil {
		s.idleTimer.Stop()
		s.idleTimer = nil
	}
	s.errMsg = ""

	snap := s.state.Snapshot()
	if strings.TrimSpace(snap.CloserName) == "" || !snap.Shift.Valid() {
		s.status = StatusError
		s.errMsg = MsgIncomplete
		s.mu.Unlock()
		return core.ErrNameRequired
	}

	batch := ledger.BuildBatch(snap, s.now())
	if len(batch) == 0 {
		s.status = StatusError
		s.errMsg = MsgNothingToSubmit
		s.mu.Unlock()
		s.logger.Warn("Nothing to submit", log.FieldCloser, snap.CloserName)
		return core.ErrEmptyBatch
	}

	s.status = StatusSending
	s.mu.Unlock()

	err := s.poster.Post(ctx, batch)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.status = StatusError
		var statusErr *ledger.StatusError
		if errors.As(err, &statusErr) {
			s.errMsg = fmt.Sprintf(msgServerFormat, statusErr.Code)
		} else {
			s.errMsg = MsgNetworkFailure
		}
		s.logger.ErrorContext(ctx, "Ledger submission failed",
			log.FieldError, err, log.FieldEntries, len(batch))
		return fmt.Errorf("submit closing: %w", err)
	}

	s.history.Prepend(batch)
	s.state.Reset()
	s.status = StatusSuccess
	s.idleTimer = time.AfterFunc(s.idleDelay, s.returnToIdle)

	s.logger.InfoContext(ctx, "Closing submitted",
		log.FieldCloser, snap.CloserName,
		log.FieldShift, string(snap.Shift),
		log.FieldEntries, len(batch))

	if s.events != nil {
		if perr := s.events.PublishClosingRecorded(ctx, batch); perr != nil {
			s.logger.WarnContext(ctx, "Closing event publish failed", log.FieldError, perr)
		}
	}
	return nil
}

func (s *Service) returnToIdle() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.status == StatusSuccess {
		s.status = StatusIdle
		s.idleTimer = nil
	}
}
