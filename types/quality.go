// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package types

import "fmt"

// Quality indicates the state of a ping target, such as pending, alive, dead,
// et cetera. Qualities are ordered: later values are more final than earlier
// ones.
type Quality int

// The qualities of a ping target.
const (
	Pending Quality = iota // no answer cached and no ping in flight.
	Pinging                // ping request in flight.
	Failed                 // the ping request failed, see the error.
	Dead                   // the server answered: host not alive.
	Alive                  // the server answered: host alive.
)

// String returns the clear-text representation of a Quality value.
func (q Quality) String() string {
	switch q {
	case Pending:
		return "pending"
	case Pinging:
		return "pinging"
	case Failed:
		return "failed"
	case Dead:
		return "dead"
	case Alive:
		return "alive"
	}
	return fmt.Sprintf("Quality(%d)", q)
}

// IsPending returns true as long as a target hasn't been answered, either
// successfully or unsuccessfully.
func (q Quality) IsPending() bool {
	switch q {
	case Pending, Pinging:
		return true
	default:
		return false
	}
}
