// internal/app/poller.go
package app

import (
	"context"
	"fmt"
	"slices"
	"time"

	"homework_status_bot/internal/domain/homework"

	"github.com/hako/durafmt"
	"github.com/sirupsen/logrus"
)

// APIClient fetches the raw homework statuses changed since from.
type APIClient interface {
	GetAPIAnswer(ctx context.Context, from int64) (any, error)
}

// Sender delivers a message and handles its own failures.
type Sender interface {
	Send(text string)
}

// Waiter blocks between two poll cycles.
type Waiter interface {
	Wait(ctx context.Context) error
	Period() time.Duration
}

// PollerConfig wires a Poller to its collaborators.
type PollerConfig struct {
	API      APIClient
	Notifier Sender
	Waiter   Waiter
	Logger   *logrus.Entry
	Now      func() time.Time // defaults to time.Now
}

// State is what the loop remembers between cycles. It lives only in memory.
type State struct {
	Cursor    int64
	LastSeen  []homework.Record
	LastError string
}

// NewState starts the cursor at start, so only later changes are reported.
func NewState(start time.Time) *State {
	return &State{Cursor: start.Unix()}
}

type Poller struct {
	api      APIClient
	notifier Sender
	waiter   Waiter
	log      *logrus.Entry
	now      func() time.Time
}

func NewPoller(cfg PollerConfig) *Poller {
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	return &Poller{
		api:      cfg.API,
		notifier: cfg.Notifier,
		waiter:   cfg.Waiter,
		log:      cfg.Logger,
		now:      now,
	}
}

// Run polls until ctx is cancelled, waiting one period after every cycle.
func (p *Poller) Run(ctx context.Context) error {
	st := NewState(p.now())
	period := durafmt.Parse(p.waiter.Period()).String()
	p.log.Infof("Polling homework statuses every %s, starting from %d", period, st.Cursor)

	for {
		p.RunCycle(ctx, st)
		p.log.Debugf("Next poll in %s", period)
		if err := p.waiter.Wait(ctx); err != nil {
			p.log.Info("Polling stopped")
			return err
		}
	}
}

// RunCycle performs one fetch, validate, compare and notify pass. Failures are
// reported to the chat unless the same message was the last one reported.
func (p *Poller) RunCycle(ctx context.Context, st *State) {
	started := p.now()
	err := p.checkUpdates(ctx, st, started)
	if err == nil {
		return
	}
	if ctx.Err() != nil {
		p.log.WithError(err).Debug("Cycle interrupted by shutdown")
		return
	}
	p.reportError(st, err)
}

func (p *Poller) checkUpdates(ctx context.Context, st *State, started time.Time) error {
	raw, err := p.api.GetAPIAnswer(ctx, st.Cursor)
	if err != nil {
		return err
	}
	records, err := CheckResponse(raw)
	if err != nil {
		return err
	}

	switch {
	case len(records) == 0:
		p.log.Debug("No homework updates in the polled window")
	case slices.Equal(records, st.LastSeen):
		p.log.Debug("Homework status unchanged")
	default:
		message, err := ParseStatus(records[0])
		if err != nil {
			return err
		}
		p.log.WithField("homework", records[0].Name).Infof("Status changed to %s", records[0].Status)
		p.notifier.Send(message)
		st.LastSeen = records
	}

	p.advanceCursor(st, raw, started)
	return nil
}

// advanceCursor moves the window forward after a cycle that fully succeeded.
// The server's current_date is preferred over the local clock.
func (p *Poller) advanceCursor(st *State, raw any, started time.Time) {
	next, ok := CurrentDate(raw)
	if !ok {
		next = started.Unix()
	}
	if next > st.Cursor {
		st.Cursor = next
	}
}

func (p *Poller) reportError(st *State, err error) {
	message := fmt.Sprintf("Сбой в работе программы: %v", err)
	entry := p.log.WithField("kind", homework.KindOf(err))
	entry.Error(message)
	if homework.NeedsCatalogUpdate(err) {
		entry.Warn("The API returned data the status catalog does not cover")
	}

	if message == st.LastError {
		entry.Debug("Same error already reported, not notifying again")
		return
	}
	p.notifier.Send(message)
	st.LastError = message
}
