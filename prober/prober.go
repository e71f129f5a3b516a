// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package prober

import (
	"context"
	"sync"

	"github.com/siemens/remoteping/ping"
	"github.com/siemens/remoteping/types"

	"github.com/gammazero/workerpool"
)

// Prober pings targets using a goroutine-limited worker pool and then streams
// the reports to a news channel.
type Prober struct {
	opts     []ping.Option
	workers  *workerpool.WorkerPool
	news     chan types.Report
	mu       sync.Mutex
	seen     map[string]struct{} // addresses and networks already submitted.
	stopOnce sync.Once
}

// New returns a new [Prober] with a maximum worker pool of the specified size
// as well as a “news stream”. The news channel will not only send the final
// reports, but also the initial reports as targets get submitted.
//
// The options are passed on to each [ping.Target] and [ping.Network] created;
// they typically specify the ping server to use.
func New(size int, options ...ping.Option) (*Prober, <-chan types.Report) {
	return newProber(size, size, options...)
}

// newProber returns a new [Prober] with a maximum worker pool of the specified
// size and a news stream with the specified buffer size.
func newProber(workersize int, chansize int, options ...ping.Option) (*Prober, <-chan types.Report) {
	news := make(chan types.Report, chansize)
	return &Prober{
		opts:    options,
		workers: workerpool.New(workersize),
		news:    news,
		seen:    map[string]struct{}{},
	}, news
}

// firstSeen returns true if the specified key hasn't been submitted before.
func (p *Prober) firstSeen(key string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if _, ok := p.seen[key]; ok {
		return false
	}
	p.seen[key] = struct{}{}
	return true
}

// send a report to the news stream, unless the context is done before the
// report can be sent.
func (p *Prober) send(ctx context.Context, r types.Report) bool {
	select {
	case p.news <- r:
		return true
	case <-ctx.Done():
		return false
	}
}

// Probe the specified address. Probe first sends an initial report with quality
// Pinging and then submits the ping to the worker pool. It returns false if the
// address has already been submitted before, without sending any report.
//
// If the specified context gets cancelled the pending probes won't be echoed to
// the news stream at all. However, spurious reports might still appear on the
// news stream due to the uncontrollable order of report sending and context
// cancellation detection.
func (p *Prober) Probe(ctx context.Context, address string) bool {
	if !p.firstSeen(address) {
		return false
	}
	report := types.Report{Address: address, Quality: types.Pinging}
	if !p.send(ctx, report) {
		return true
	}
	p.workers.Submit(func() {
		if ctx.Err() != nil {
			return
		}
		t, err := ping.New(address, p.opts...)
		if err != nil {
			p.send(ctx, report.WithErr(err))
			return
		}
		answer, err := t.Answer(ctx)
		if err != nil {
			p.send(ctx, report.WithErr(err))
			return
		}
		p.send(ctx, report.WithAnswer(answer))
	})
	return true
}

// ProbeStream reads addresses to be probed from a channel until the channel is
// closed or the context done. It does not return until then, so callers
// typically run ProbeStream in a separate goroutine.
func (p *Prober) ProbeStream(ctx context.Context, ch <-chan string) {
	for {
		select {
		case addr, ok := <-ch:
			if !ok {
				return
			}
			p.Probe(ctx, addr)
		case <-ctx.Done():
			return
		}
	}
}

// ProbeNetwork probes all hosts of the specified network using a single bulk
// request. The network itself is reported using an empty Address and the
// network in CIDR notation: first as Pinging, and finally as either Alive (if
// any host is alive), Dead, or Failed. Final reports for the individual hosts
// precede the network's final report, tagged with the network in CIDR
// notation.
//
// If the network specification is invalid, a Failed report with both Address
// and Network set to the specification as given is sent immediately.
//
// ProbeNetwork returns false if the network has already been submitted before.
func (p *Prober) ProbeNetwork(ctx context.Context, network string) bool {
	prefix, err := ping.ParseNetwork(network)
	if err != nil {
		if p.firstSeen("network " + network) {
			p.send(ctx, types.Report{Address: network, Network: network}.WithErr(err))
			return true
		}
		return false
	}
	cidr := prefix.String()
	if !p.firstSeen("network " + cidr) {
		return false
	}
	report := types.Report{Network: cidr, Quality: types.Pinging}
	if !p.send(ctx, report) {
		return true
	}
	p.workers.Submit(func() {
		if ctx.Err() != nil {
			return
		}
		n, err := ping.NewNetworkFromPrefix(ctx, prefix, p.opts...)
		if err != nil {
			p.send(ctx, report.WithErr(err))
			return
		}
		verdict := types.Dead
		for _, t := range n.All() {
			answer, _ := t.Cached()
			if answer.Alive {
				verdict = types.Alive
			}
			if !p.send(ctx, types.Report{Address: t.Address(), Network: cidr}.WithAnswer(answer)) {
				return
			}
		}
		p.send(ctx, report.WithQuality(verdict))
	})
	return true
}

// StopWait waits for all queued probes to get processed and then finally
// closes the news channel. StopWait can be called multiple times.
func (p *Prober) StopWait() {
	p.stopOnce.Do(func() {
		p.workers.StopWait()
		close(p.news)
	})
}
