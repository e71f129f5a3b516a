// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"net/netip"
	"sort"

	"github.com/siemens/remoteping/types"
)

// renderer renders the terminal display, based on the reports passed to its
// Render method.
type renderer struct {
	Indentation int
	w           io.Writer
	spinner     *spinner
}

// newRenderer returns a renderer object rendering to the specified io.Writer.
func newRenderer(w io.Writer) *renderer {
	sp := newSpinner()
	sp.Start(*spinnerInterval)
	return &renderer{
		w:       w,
		spinner: sp,
	}
}

// Stop the renderer's background ticker.
func (r *renderer) Stop() {
	r.spinner.Stop()
}

// reportGroup is a network (or no network) with its host reports.
type reportGroup struct {
	network *types.Report // network report, if any.
	name    string        // network in CIDR notation, or "" for individual hosts.
	hosts   []types.Report
}

// Render the given reports.
func (r *renderer) Render(reports []types.Report) {
	groups := groupReports(reports)
	// If we don't have any reports yet, show a proxy message.
	if len(groups) == 0 {
		fmt.Fprintln(r.w, "asking the ping server...")
		return
	}
	// For neat display, determine the length of the longest address in the
	// data to display, so that the verdict column doesn't zig-zag around across
	// different groups.
	maxlen := 0
	for _, group := range groups {
		for _, host := range group.hosts {
			if l := len(host.Address); l > maxlen {
				maxlen = l
			}
		}
	}
	for _, group := range groups {
		if group.name == "" {
			fmt.Fprint(r.w, "hosts\n")
		} else {
			fmt.Fprintf(r.w, "network %s%s\n",
				networkNameStyle.Styled(group.name), r.networkVerdict(group))
		}
		for _, host := range group.hosts {
			fmt.Fprintf(r.w, "%-*s%-*s %s\n",
				r.Indentation, "", maxlen, host.Address, r.verdict(host))
		}
	}
}

// networkVerdict renders the state of a network as a whole.
func (r *renderer) networkVerdict(group reportGroup) string {
	if group.network == nil {
		return ""
	}
	switch group.network.Quality {
	case types.Pending, types.Pinging:
		return pingingStyle.Styled(" " + r.spinner.Spinner())
	case types.Failed:
		return failedStyle.Styled(fmt.Sprintf(" ! %s", group.network.Err()))
	}
	alive := 0
	for _, host := range group.hosts {
		if host.Quality == types.Alive {
			alive++
		}
	}
	return fmt.Sprintf(": %d of %d hosts alive", alive, len(group.hosts))
}

// verdict renders the state of a single host.
func (r *renderer) verdict(host types.Report) string {
	switch host.Quality {
	case types.Pending:
		return "?"
	case types.Pinging:
		return pingingStyle.Styled(r.spinner.Spinner())
	case types.Alive:
		s := "✔ " + host.Answer.RTT.String()
		if host.Answer.IP != "" && host.Answer.IP != host.Address {
			s += " (" + host.Answer.IP + ")"
		}
		return aliveStyle.Styled(s)
	case types.Dead:
		return deadStyle.Styled("× -")
	case types.Failed:
		return failedStyle.Styled(fmt.Sprintf("! %s", host.Err()))
	}
	return ""
}

// groupReports groups reports by their networks, with the individual hosts
// first, and then the networks sorted by their address. Hosts within a group
// are sorted by address, IP addresses first, IPv4 first, and names last.
func groupReports(reports []types.Report) []reportGroup {
	byNetwork := map[string]*reportGroup{}
	for _, report := range reports {
		group, ok := byNetwork[report.Network]
		if !ok {
			group = &reportGroup{name: report.Network}
			byNetwork[report.Network] = group
		}
		if report.Address == "" || (report.Network != "" && report.Address == report.Network) {
			report := report
			group.network = &report
			continue
		}
		group.hosts = append(group.hosts, report)
	}
	groups := make([]reportGroup, 0, len(byNetwork))
	for _, group := range byNetwork {
		sortReports(group.hosts)
		groups = append(groups, *group)
	}
	sort.Slice(groups, func(a, b int) bool {
		return lessNetwork(groups[a].name, groups[b].name)
	})
	return groups
}

// lessNetwork orders the unnamed group first, then valid networks by address,
// then any invalid network specifications lexicographically.
func lessNetwork(a, b string) bool {
	if a == "" || b == "" {
		return a == "" && b != ""
	}
	pA, errA := netip.ParsePrefix(a)
	pB, errB := netip.ParsePrefix(b)
	switch {
	case errA == nil && errB == nil:
		if c := pA.Addr().Compare(pB.Addr()); c != 0 {
			return c < 0
		}
		return pA.Bits() < pB.Bits()
	case errA == nil:
		return true
	case errB == nil:
		return false
	}
	return a < b
}

// sortReports sorts a slice of host reports in place: IP addresses first
// (IPv4 before IPv6), sorted by address value, and then names sorted
// lexicographically.
func sortReports(reports []types.Report) {
	sort.Slice(reports, func(a, b int) bool {
		ipA, errA := netip.ParseAddr(reports[a].Address)
		ipB, errB := netip.ParseAddr(reports[b].Address)
		switch {
		case errA == nil && errB == nil:
			return ipA.Less(ipB)
		case errA == nil:
			return true
		case errB == nil:
			return false
		}
		return reports[a].Address < reports[b].Address
	})
}
