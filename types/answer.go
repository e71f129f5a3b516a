// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package types

import "strconv"

// RTT is a nullable round-trip time as reported by the ping server. Hosts that
// are not alive have no round-trip time, so Valid is false for them.
type RTT struct {
	Value float64 // round-trip time in the server's unit.
	Valid bool    // false if the server reported no RTT.
}

// SomeRTT returns a valid RTT of the specified value.
func SomeRTT(v float64) RTT {
	return RTT{Value: v, Valid: true}
}

// String returns the RTT value, or "-" if there is none.
func (r RTT) String() string {
	if !r.Valid {
		return "-"
	}
	return strconv.FormatFloat(r.Value, 'f', -1, 64)
}

// Answer is the answered state of a ping target. An Answer is always set as a
// whole, so the resolved IP, liveness and RTT of a target never get out of
// sync.
type Answer struct {
	IP    string `json:"ip"`    // resolved IP address of the target.
	Alive bool   `json:"alive"` // liveness verdict.
	RTT   RTT    `json:"rtt"`   // round-trip time; only valid if alive.
}

// Quality returns either Alive or Dead.
func (a Answer) Quality() Quality {
	if a.Alive {
		return Alive
	}
	return Dead
}
