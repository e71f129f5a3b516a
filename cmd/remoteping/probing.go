// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"time"

	"github.com/siemens/remoteping/ping"
	"github.com/siemens/remoteping/prober"
	"github.com/siemens/remoteping/types"

	"github.com/gosuri/uilive"
)

// ProbeAndReport asks the ping server about the specified hosts and networks,
// rendering the reports live as they come in. It returns an error if any host
// or network couldn't be pinged at all; dead hosts are not an error.
func ProbeAndReport(ctx context.Context, hosts []string, networks []string) error {
	var opts []ping.Option
	if *serverURL != "" {
		opts = append(opts, ping.WithServerURL(*serverURL))
	}

	// Create an empty (concurrency-safe) report map and immediately fire off
	// the rendering goroutine. The rendering will only stop after tracking has
	// finished because the news stream channel has been closed. We then render
	// a final update and end rendering, signalling the end of our activities
	// via renderingDone.
	reports := prober.NewReportMap()
	trackingDone := make(chan struct{})
	renderingDone := make(chan struct{})

	go func() {
		// Dunno what uilive's background updating mode using Start() is good
		// for? It may trigger anytime with the rendering into the buffer not
		// yet complete, thus making the terminal output very flickery. So we
		// avoid Start() and instead trigger an explicit flush to the terminal
		// after having completed the rendering.
		term := uilive.New()
		renderer := newRenderer(term)
		renderer.Indentation = int(*indentation)
		defer func() {
			renderData(term, renderer, reports)
			renderer.Stop()
			close(renderingDone)
		}()
		renderData(term, renderer, reports)
		ticker := time.NewTicker(20 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				renderData(term, renderer, reports)
			case <-trackingDone:
				return
			}
		}
	}()

	p, news := prober.New(int(*workerNumber), opts...)
	go func() {
		_ = reports.Track(ctx, news)
		close(trackingDone)
	}()

	// Finally feed the hosts and networks into the prober, then wait for all
	// the reports to come in and finally get rendered a last time.
	for _, network := range networks {
		p.ProbeNetwork(ctx, network)
	}
	for _, host := range hosts {
		p.Probe(ctx, host)
	}
	p.StopWait()
	<-renderingDone

	if failed := failures(reports.Get()); failed > 0 {
		return fmt.Errorf("%d ping(s) failed", failed)
	}
	return nil
}

// failures returns the number of failed reports.
func failures(reports []types.Report) int {
	failed := 0
	for _, r := range reports {
		if r.Quality == types.Failed {
			failed++
		}
	}
	return failed
}

// renderData gets the current reports and then renders (and flushes) them to
// the terminal.
func renderData(term *uilive.Writer, r *renderer, data *prober.ReportMap) {
	r.Render(data.Get())
	term.Flush()
}
