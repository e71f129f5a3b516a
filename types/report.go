// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package types

// Report is a ping target address together with its probing Quality and, once
// answered, the Answer from the ping server.
//
// Reports have value semantics: the With... methods return updated copies and
// never modify the original Report. This allows passing Reports around through
// channels without any locking.
type Report struct {
	Address string  `json:"address"`           // the target address (IP literal or host name)
	Network string  `json:"network,omitempty"` // CIDR of the network the address was reported under, if any.
	Quality Quality `json:"quality"`           // probing state
	Answer  Answer  `json:"answer"`            // only meaningful if Quality is Alive or Dead.
	err     error   // optional error details for failed pings
}

// Err returns an optional error that occurred while trying to ping the
// address.
func (r Report) Err() error { return r.err }

// WithQuality returns a copy of this Report with a new quality.
func (r Report) WithQuality(q Quality) Report {
	r.Quality = q
	return r
}

// WithAnswer returns a copy of this Report with the specified Answer and the
// quality derived from it.
func (r Report) WithAnswer(a Answer) Report {
	r.Answer = a
	r.Quality = a.Quality()
	r.err = nil
	return r
}

// WithErr returns a copy of this Report with quality Failed and the specified
// error.
func (r Report) WithErr(err error) Report {
	r.Quality = Failed
	r.err = err
	return r
}
