package state

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/five82/smsshield/internal/classify"
)

var (
	// ErrEmptyInput is returned when the submitted text is blank after trimming.
	ErrEmptyInput = errors.New("please enter an SMS message")
	// ErrInFlight is returned when a submission is attempted while another
	// request is outstanding.
	ErrInFlight = errors.New("a classification request is already in flight")

	errNoClassifier = errors.New("no classifier configured")
)

// Controller owns the input buffer, the request status and the last outcome.
// All transitions go through Begin and Complete; readers use Snapshot.
type Controller struct {
	classifier classify.Classifier
	logger     *slog.Logger

	mu       sync.RWMutex
	input    string
	status   Status
	outcome  Outcome
	ticket   Ticket // valid while status is StatusInFlight
	lastID   string
	resolved time.Time
}

// NewController builds an idle controller with no outcome.
func NewController(classifier classify.Classifier, logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Controller{
		classifier: classifier,
		logger:     logger.With("component", "controller"),
	}
}

// SetInput replaces the input buffer. Editing is allowed in any status.
func (c *Controller) SetInput(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.input = text
}

// Begin validates input and moves the controller to StatusInFlight.
// Blank input returns ErrEmptyInput and leaves status and outcome untouched.
func (c *Controller) Begin(input string) (Ticket, error) {
	if strings.TrimSpace(input) == "" {
		return Ticket{}, ErrEmptyInput
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.status == StatusInFlight {
		return Ticket{}, ErrInFlight
	}
	t := Ticket{
		ID:       uuid.NewString(),
		Text:     input,
		IssuedAt: time.Now(),
	}
	c.input = input
	c.status = StatusInFlight
	c.ticket = t
	c.lastID = t.ID
	return t, nil
}

// Complete issues the classification call for t and records its outcome.
// The outcome write and the return to StatusIdle happen together, on every
// path. A panic in the classifier is recovered and recorded as a failure.
// A ticket that is not the outstanding one is ignored.
func (c *Controller) Complete(ctx context.Context, t Ticket) (outcome Outcome) {
	if !c.owns(t) {
		return c.Snapshot().Outcome
	}

	defer func() {
		if r := recover(); r != nil {
			outcome = Failed(fmt.Errorf("classifier panicked: %v", r))
		}
		c.resolve(t, outcome)
	}()

	if c.classifier == nil {
		return Failed(errNoClassifier)
	}
	verdict, err := c.classifier.Classify(classify.WithRequestID(ctx, t.ID), t.Text)
	if err != nil {
		return Failed(err)
	}
	return Classified(verdict.IsSpam)
}

// Submit runs Begin and Complete back to back.
func (c *Controller) Submit(ctx context.Context, input string) (Outcome, error) {
	t, err := c.Begin(input)
	if err != nil {
		return c.Snapshot().Outcome, err
	}
	return c.Complete(ctx, t), nil
}

// Snapshot returns a consistent copy of the controller state.
func (c *Controller) Snapshot() Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return Snapshot{
		Input:         c.input,
		Status:        c.status,
		Outcome:       c.outcome,
		LastRequestID: c.lastID,
		ResolvedAt:    c.resolved,
	}
}

func (c *Controller) owns(t Ticket) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.status == StatusInFlight && t.ID != "" && c.ticket.ID == t.ID
}

func (c *Controller) resolve(t Ticket, outcome Outcome) {
	c.mu.Lock()
	if c.status != StatusInFlight || c.ticket.ID != t.ID {
		c.mu.Unlock()
		return
	}
	c.outcome = outcome
	c.status = StatusIdle
	c.ticket = Ticket{}
	c.resolved = time.Now()
	c.mu.Unlock()

	elapsed := time.Since(t.IssuedAt)
	if outcome.Kind == OutcomeFailed {
		c.logger.Warn("classification failed",
			"request_id", t.ID,
			"elapsed", elapsed,
			"error", outcome.Err)
		return
	}
	c.logger.Debug("classification resolved",
		"request_id", t.ID,
		"elapsed", elapsed,
		"is_spam", outcome.IsSpam)
}
