package loginlimit

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
)

type resetTask struct {
	keyspace Keyspace
	interval time.Duration
	store    *Store
}

func (rt resetTask) reset() {
	tracked := rt.store.Len(rt.keyspace)
	rt.store.ClearAll(rt.keyspace)
	log.Debug().Str("keyspace", rt.keyspace.String()).Int("keys_cleared", tracked).Msg("reset login attempt counters")
}

func (rt resetTask) run(ctx context.Context) {
	log.Debug().Str("keyspace", rt.keyspace.String()).Dur("interval", rt.interval).Msg("starting login attempt reset task")

	rt.reset()

	ticker := time.NewTicker(rt.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Debug().Str("keyspace", rt.keyspace.String()).Msg("stopping login attempt reset task")
			return
		case <-ticker.C:
			rt.reset()
		}
	}
}

func (m *Manager) resetTasks() []resetTask {
	return []resetTask{
		{keyspace: KeyspaceAddress, interval: m.addressResetInterval, store: m.store},
		{keyspace: KeyspaceUsername, interval: m.usernameResetInterval, store: m.store},
	}
}

// Start launches the periodic wipes of both keyspaces. Each keyspace is wiped straight away and then once per its
// reset interval until ctx is done or Stop is called. Calling Start on a running Manager does nothing; calling it
// after a previous ctx has ended launches a fresh set of tasks.
func (m *Manager) Start(ctx context.Context) {
	m.lifecycleLock.Lock()
	defer m.lifecycleLock.Unlock()

	if m.cancel != nil {
		if m.runCtx.Err() == nil {
			log.Warn().Msg("login limiter reset tasks already running")
			return
		}

		// the previous run ended with its parent context, reap it before starting over
		m.stopLocked()
	}

	ctx, cancel := context.WithCancel(ctx)
	m.runCtx = ctx
	m.cancel = cancel

	for _, task := range m.resetTasks() {
		m.wg.Add(1)
		go func() {
			defer m.wg.Done()
			task.run(ctx)
		}()
	}
}

// Stop cancels the reset tasks and waits for them to exit.
func (m *Manager) Stop() {
	m.lifecycleLock.Lock()
	defer m.lifecycleLock.Unlock()

	if m.cancel == nil {
		return
	}

	m.stopLocked()
	log.Info().Msg("login limiter reset tasks stopped")
}

func (m *Manager) stopLocked() {
	m.cancel()
	m.wg.Wait()
	m.cancel = nil
	m.runCtx = nil
}

// ResetKeyspace wipes every counter in ks, the same thing a reset task does on each tick.
func (m *Manager) ResetKeyspace(ks Keyspace) {
	resetTask{keyspace: ks, store: m.store}.reset()
}
