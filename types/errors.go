// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package types

import "fmt"

// ConfigError signals that the ping server configuration is missing or
// unusable.
type ConfigError struct {
	Variable string // name of the environment variable consulted.
	Reason   string // optional, why a set value is unusable.
}

func (e *ConfigError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("the %s environment variable must be set", e.Variable)
	}
	return fmt.Sprintf("invalid %s environment variable: %s", e.Variable, e.Reason)
}

// PingError signals that a ping target could not be pinged: either the target
// specification itself is invalid, or the ping server refused to give a
// verdict (for instance, when a host name cannot be resolved).
type PingError struct {
	Target string // address or network specification.
	Detail string // error detail, such as reported by the ping server.
	Err    error  // optional underlying error.
}

func (e *PingError) Error() string {
	detail := e.Detail
	if detail == "" && e.Err != nil {
		detail = e.Err.Error()
	}
	if detail == "" {
		detail = "unknown error"
	}
	if e.Target == "" {
		return "ping failed: " + detail
	}
	return fmt.Sprintf("cannot ping %s: %s", e.Target, detail)
}

// Unwrap returns the underlying error, if any.
func (e *PingError) Unwrap() error { return e.Err }
