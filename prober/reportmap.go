// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package prober

import (
	"context"
	"sync"

	"github.com/siemens/remoteping/types"
)

// reportKey identifies a report by its network and address, as the same
// address might be reported both individually and as part of a network.
type reportKey struct {
	network string
	address string
}

// ReportMap keeps the most recent report for each address (and network). A
// typical use case for a ReportMap is to consume reports from a [Prober]'s news
// stream, and then to render the current state.
type ReportMap struct {
	m  map[reportKey]types.Report
	mu sync.Mutex
}

// NewReportMap returns a new and properly initialized ReportMap.
func NewReportMap() *ReportMap {
	return &ReportMap{
		m: map[reportKey]types.Report{},
	}
}

// Get returns all reports from the map, in no particular order.
func (m *ReportMap) Get() []types.Report {
	m.mu.Lock()
	defer m.mu.Unlock()
	reports := make([]types.Report, 0, len(m.m))
	for _, r := range m.m {
		reports = append(reports, r)
	}
	return reports
}

// Update the map with a report. Known reports are only updated in case their
// quality changes from pending to pinging, or from pending/pinging to a final
// verdict.
func (m *ReportMap) Update(r types.Report) {
	if r.Address == "" && r.Network == "" {
		return
	}
	key := reportKey{network: r.Network, address: r.Address}
	m.mu.Lock()
	defer m.mu.Unlock()
	if known, ok := m.m[key]; ok {
		if !known.Quality.IsPending() || r.Quality <= known.Quality {
			return
		}
	}
	m.m[key] = r
}

// Track report updates received from the specified news channel until the
// channel is closed or the context done. Track only returns after processing
// all updates or when the context is done.
func (m *ReportMap) Track(ctx context.Context, news <-chan types.Report) error {
	for {
		select {
		case r, ok := <-news:
			if !ok {
				return nil
			}
			m.Update(r)
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
