package generator

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"algovanity/internal/account"
	"algovanity/internal/prefix"
	"algovanity/internal/store"
	"algovanity/pkg/logx"
)

// counterBatch is how many trials a worker tallies locally before
// touching the shared counter. The displayed total lags by up to this
// much per worker.
const counterBatch = 1000

// joinTimeout bounds how long shutdown waits for workers to observe
// cancellation before the run is abandoned to process exit.
const joinTimeout = 5 * time.Second

// Run searches for matching addresses until the target count is
// reached or ctx is cancelled. Cancellation is a normal exit: Run
// returns nil for it.
func Run(ctx context.Context, opt Options) error {
	m, err := prefix.New(opt.Prefix)
	if err != nil {
		return err
	}
	workers, err := ResolveWorkers(opt.Workers, runtime.NumCPU())
	if err != nil {
		return err
	}

	trial := opt.Trial
	if trial == nil {
		trial = account.Generate
	}
	every := opt.StatusEvery
	if every <= 0 {
		every = 2 * time.Second
	}

	app := logx.S()
	app.Infow("search started",
		"prefix", m.Prefix(),
		"workers", workers,
		"target", opt.Number,
		"output", opt.Output,
	)

	start := time.Now()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	results := make(chan store.Result, workers*4)
	var attempts uint64

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			mine(ctx, m, trial, &attempts, results)
		}()
	}

	st := newStatus(os.Stdout)
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	var found uint64
	var runErr error
loop:
	for {
		select {
		case <-ctx.Done():
			break loop
		case r := <-results:
			if err := store.Append(opt.Output, r); err != nil {
				runErr = err
				break loop
			}
			st.found(r.Address)
			app.Infow("found", "address", r.Address, "mnemonic", r.Mnemonic)
			found++
			if opt.Number > 0 && found == opt.Number {
				break loop
			}
		case now := <-ticker.C:
			st.render(now, atomic.LoadUint64(&attempts))
		}
	}

	cancel()
	if !waitTimeout(&wg, joinTimeout) {
		app.Warnw("workers did not stop in time, abandoning", "timeout", joinTimeout)
	}
	st.clear()

	app.Infow("search stopped",
		"attempts", atomic.LoadUint64(&attempts),
		"found", found,
		"elapsed", humanDuration(time.Since(start)),
	)
	return runErr
}

// mine is one worker: generate, test, emit, repeat. A failing trial
// stops this worker only.
func mine(ctx context.Context, m prefix.Matcher, trial func() (account.Account, error), attempts *uint64, out chan<- store.Result) {
	var local uint64
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		acct, err := trial()
		if err != nil {
			logx.S().Errorw("keypair generation failed, worker stopping", "err", err)
			return
		}

		if m.Matches(acct.Address) {
			phrase, err := account.Phrase(acct.PrivateKey)
			if err != nil {
				logx.S().Errorw("phrase derivation failed, worker stopping", "err", err)
				return
			}
			select {
			case out <- store.Result{Address: acct.Address, Mnemonic: phrase}:
			case <-ctx.Done():
				return
			}
		}

		// batched to keep atomics off the hot loop
		local++
		if local%counterBatch == 0 {
			atomic.AddUint64(attempts, counterBatch)
		}
	}
}

func waitTimeout(wg *sync.WaitGroup, d time.Duration) bool {
	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return true
	case <-time.After(d):
		return false
	}
}

func humanDuration(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%ds", int(d.Seconds()))
	}
	if d < time.Hour {
		m := int(d.Minutes())
		s := int(d.Seconds()) % 60
		return fmt.Sprintf("%dm%02ds", m, s)
	}
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	s := int(d.Seconds()) % 60
	return fmt.Sprintf("%dh%02dm%02ds", h, m, s)
}
