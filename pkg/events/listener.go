package events

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/jackc/pgx/v5"
)

// cmdPollInterval is how often the receive loop interrupts
// WaitForNotification to drain pending LISTEN/UNLISTEN commands.
const cmdPollInterval = 100 * time.Millisecond

// maxReconnectBackoff caps the exponential backoff between reconnect
// attempts after the LISTEN connection drops.
const maxReconnectBackoff = 30 * time.Second

// channelCmd is a LISTEN or UNLISTEN statement queued for the receive
// loop. A pgx connection cannot run Exec while WaitForNotification is
// blocked on it, so all statements funnel through the loop goroutine.
type channelCmd struct {
	stmt string
	done chan error
}

// NotifyListener holds the process's dedicated LISTEN connection and
// feeds received NOTIFY payloads into the Broker. Report progress
// published on any pod reaches local subscribers through it.
type NotifyListener struct {
	dsn    string
	broker *Broker

	mu   sync.Mutex
	conn *pgx.Conn

	activeMu sync.RWMutex
	active   map[string]bool // channels currently under LISTEN

	cmds    chan channelCmd
	started atomic.Bool

	stopLoop context.CancelFunc
	loopDone chan struct{}
}

// NewNotifyListener creates a listener that will dispatch into broker.
func NewNotifyListener(dsn string, broker *Broker) *NotifyListener {
	return &NotifyListener{
		dsn:    dsn,
		broker: broker,
		active: make(map[string]bool),
		cmds:   make(chan channelCmd, 16),
	}
}

// Start opens the dedicated connection and launches the receive loop.
func (l *NotifyListener) Start(ctx context.Context) error {
	conn, err := pgx.Connect(ctx, l.dsn)
	if err != nil {
		return fmt.Errorf("failed to open LISTEN connection: %w", err)
	}

	l.mu.Lock()
	l.conn = conn
	l.mu.Unlock()
	l.started.Store(true)

	loopCtx, cancel := context.WithCancel(ctx)
	l.stopLoop = cancel
	l.loopDone = make(chan struct{})
	go func() {
		defer close(l.loopDone)
		l.receiveLoop(loopCtx)
	}()

	slog.Info("NotifyListener started")
	return nil
}

// Subscribe issues LISTEN for a channel. Idempotent per channel; the
// statement runs on the receive loop and this call waits for its result.
func (l *NotifyListener) Subscribe(ctx context.Context, channel string) error {
	l.activeMu.RLock()
	listening := l.active[channel]
	l.activeMu.RUnlock()
	if listening {
		return nil
	}
	if !l.started.Load() {
		return fmt.Errorf("LISTEN connection not established")
	}

	if err := l.run(ctx, "LISTEN "+pgx.Identifier{channel}.Sanitize()); err != nil {
		return fmt.Errorf("LISTEN %s failed: %w", channel, err)
	}

	l.activeMu.Lock()
	l.active[channel] = true
	l.activeMu.Unlock()
	slog.Debug("Subscribed to NOTIFY channel", "channel", channel)
	return nil
}

// Unsubscribe issues UNLISTEN for a channel the listener no longer needs.
func (l *NotifyListener) Unsubscribe(ctx context.Context, channel string) error {
	l.activeMu.RLock()
	listening := l.active[channel]
	l.activeMu.RUnlock()
	if !listening || !l.started.Load() {
		return nil
	}

	if err := l.run(ctx, "UNLISTEN "+pgx.Identifier{channel}.Sanitize()); err != nil {
		return fmt.Errorf("UNLISTEN %s failed: %w", channel, err)
	}

	l.activeMu.Lock()
	delete(l.active, channel)
	l.activeMu.Unlock()
	return nil
}

// run queues one statement for the receive loop and waits for the
// outcome, honoring the caller's context on both sides.
func (l *NotifyListener) run(ctx context.Context, stmt string) error {
	cmd := channelCmd{stmt: stmt, done: make(chan error, 1)}
	select {
	case l.cmds <- cmd:
	case <-ctx.Done():
		return ctx.Err()
	}
	select {
	case err := <-cmd.done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// receiveLoop is the only goroutine that touches the pgx connection. It
// alternates between draining queued channel commands and waiting for
// notifications, reconnecting when the connection drops.
func (l *NotifyListener) receiveLoop(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		l.drainCmds(ctx)

		l.mu.Lock()
		conn := l.conn
		l.mu.Unlock()
		if conn == nil {
			l.reconnect(ctx)
			continue
		}

		// Short wait so queued commands are picked up promptly.
		waitCtx, cancel := context.WithTimeout(ctx, cmdPollInterval)
		notification, err := conn.WaitForNotification(waitCtx)
		cancel()
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			if waitCtx.Err() != nil {
				continue
			}
			slog.Error("NOTIFY receive error", "error", err)
			l.reconnect(ctx)
			continue
		}

		l.broker.Broadcast(notification.Channel, []byte(notification.Payload))
	}
}

// drainCmds executes every queued LISTEN/UNLISTEN statement.
func (l *NotifyListener) drainCmds(ctx context.Context) {
	for {
		select {
		case cmd := <-l.cmds:
			l.mu.Lock()
			conn := l.conn
			l.mu.Unlock()
			if conn == nil {
				cmd.done <- fmt.Errorf("LISTEN connection not established")
				continue
			}
			_, err := conn.Exec(ctx, cmd.stmt)
			cmd.done <- err
		default:
			return
		}
	}
}

// reconnect replaces the dropped connection with exponential backoff and
// re-issues LISTEN for every channel that was active before the drop.
func (l *NotifyListener) reconnect(ctx context.Context) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.conn != nil {
		_ = l.conn.Close(ctx)
		l.conn = nil
	}

	backoff := time.Second
	for {
		select {
		case <-ctx.Done():
			return
		case <-time.After(backoff):
		}

		conn, err := pgx.Connect(ctx, l.dsn)
		if err != nil {
			slog.Error("LISTEN reconnect failed", "error", err, "backoff", backoff)
			backoff = min(backoff*2, maxReconnectBackoff)
			continue
		}
		l.conn = conn

		l.activeMu.RLock()
		for channel := range l.active {
			if _, err := conn.Exec(ctx, "LISTEN "+pgx.Identifier{channel}.Sanitize()); err != nil {
				slog.Error("Re-LISTEN after reconnect failed", "channel", channel, "error", err)
			}
		}
		l.activeMu.RUnlock()

		slog.Info("NotifyListener reconnected")
		return
	}
}

// Stop shuts the receive loop down, then closes the connection. The
// order matters: closing while WaitForNotification is blocked races.
func (l *NotifyListener) Stop(ctx context.Context) {
	l.started.Store(false)

	if l.stopLoop != nil {
		l.stopLoop()
	}
	if l.loopDone != nil {
		<-l.loopDone
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if l.conn != nil {
		_ = l.conn.Close(ctx)
		l.conn = nil
	}
}
