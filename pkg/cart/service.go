package cart

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"
)

// queueTimeout bounds how long a caller waits for the cart goroutine at each step.
const queueTimeout = 2 * time.Second

// command defines a mutation or read so the goroutine can serialize access through a channel.
type command struct {
	action    string
	candidate Candidate
	name      string
	reply     chan commandResult
}

// commandResult carries the cart state right after the command ran.
type commandResult struct {
	snapshot Snapshot
	changed  bool
	err      error
}

// Service owns the session cart in a single goroutine.
type Service struct {
	commands chan command
	quit     chan struct{}
	done     chan struct{}
	stop     sync.Once
	logger   *zap.Logger
}

// NewService starts the cart goroutine with an empty cart.
func NewService(logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	svc := &Service{
		commands: make(chan command),
		quit:     make(chan struct{}),
		done:     make(chan struct{}),
		logger:   logger,
	}
	go svc.loop()
	return svc
}

// loop is the only code that touches the cart.
func (s *Service) loop() {
	defer close(s.done)
	var c Cart
	for {
		select {
		case cmd := <-s.commands:
			var res commandResult
			switch cmd.action {
			case "add":
				item := c.Add(cmd.candidate)
				res.changed = true
				s.logger.Debug("cart item added", zap.String("name", item.Name), zap.Int("quantity", item.Quantity))
			case "remove":
				res.changed = c.Remove(cmd.name)
			case "decrement":
				res.changed = c.Decrement(cmd.name)
			case "clear":
				res.changed = len(c.items) > 0
				c.Clear()
			case "snapshot":
			default:
				res.err = errors.New("unknown cart action")
			}
			res.snapshot = c.Snapshot()
			cmd.reply <- res
		case <-s.quit:
			return
		}
	}
}

// do hands a command to the loop and waits for its reply.
func (s *Service) do(ctx context.Context, cmd command) (commandResult, error) {
	cmd.reply = make(chan commandResult, 1)

	select {
	case s.commands <- cmd:
	case <-s.done:
		return commandResult{}, ErrClosed
	case <-ctx.Done():
		return commandResult{}, ctx.Err()
	case <-time.After(queueTimeout):
		return commandResult{}, errors.New("cart queue is busy")
	}

	select {
	case res := <-cmd.reply:
		return res, res.err
	case <-ctx.Done():
		return commandResult{}, ctx.Err()
	case <-time.After(queueTimeout):
		return commandResult{}, errors.New("cart " + cmd.action + " timed out")
	}
}

// Add puts one unit of the candidate in the cart.
func (s *Service) Add(ctx context.Context, cand Candidate) (Snapshot, error) {
	res, err := s.do(ctx, command{action: "add", candidate: cand})
	return res.snapshot, err
}

// Remove drops the line item for name; the bool reports whether it was present.
func (s *Service) Remove(ctx context.Context, name string) (Snapshot, bool, error) {
	res, err := s.do(ctx, command{action: "remove", name: name})
	return res.snapshot, res.changed, err
}

// Decrement lowers the quantity for name, removing the line item at zero.
func (s *Service) Decrement(ctx context.Context, name string) (Snapshot, bool, error) {
	res, err := s.do(ctx, command{action: "decrement", name: name})
	return res.snapshot, res.changed, err
}

// Clear empties the cart.
func (s *Service) Clear(ctx context.Context) (Snapshot, error) {
	res, err := s.do(ctx, command{action: "clear"})
	return res.snapshot, err
}

// Snapshot returns the current items and total.
func (s *Service) Snapshot(ctx context.Context) (Snapshot, error) {
	res, err := s.do(ctx, command{action: "snapshot"})
	return res.snapshot, err
}

// Close stops the goroutine and waits for it to exit. It is safe to call more than once.
func (s *Service) Close() {
	s.stop.Do(func() { close(s.quit) })
	<-s.done
}
