// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package ping

import (
	"context"

	"github.com/siemens/remoteping/pingapi"
	"github.com/siemens/remoteping/types"

	"github.com/thediveo/lxkns/log"
)

// Target is a single address (IP literal or host name) to be pinged by the
// ping server, together with the server's cached answer, if any.
type Target struct {
	address string
	client  *pingapi.Client
	answer  *types.Answer // nil while pending.
}

// New returns a new pending Target for the specified address, which can be an
// IPv4 or IPv6 address literal, or a host name. New doesn't contact the ping
// server yet; this happens only when accessing the target's answer details for
// the first time.
//
// New returns a [types.ConfigError] if the ping server URL cannot be resolved
// from the environment (and wasn't set using an option either).
func New(address string, opts ...Option) (*Target, error) {
	client, err := newClient(opts)
	if err != nil {
		return nil, err
	}
	return &Target{
		address: address,
		client:  client,
	}, nil
}

// NewAnswered returns a new Target for the specified address that is already
// answered. Accessing the answer details of such a Target doesn't contact the
// ping server, unless explicitly refreshed.
func NewAnswered(address string, answer types.Answer, opts ...Option) (*Target, error) {
	t, err := New(address, opts...)
	if err != nil {
		return nil, err
	}
	t.answer = &answer
	return t, nil
}

// Address returns the target's address as originally specified.
func (t *Target) Address() string { return t.address }

// IsPending returns true if the ping server hasn't answered yet.
func (t *Target) IsPending() bool { return t.answer == nil }

// Cached returns the cached answer, if any, without contacting the ping server.
func (t *Target) Cached() (types.Answer, bool) {
	if t.answer == nil {
		return types.Answer{}, false
	}
	return *t.answer, true
}

// Refresh asks the ping server to (re)ping the target, overwriting any cached
// answer. In case of failure, the previous state is kept.
func (t *Target) Refresh(ctx context.Context) error {
	answer, err := t.client.Host(ctx, t.address)
	if err != nil {
		log.Debugf("pinging %s failed: %s", t.address, err.Error())
		return err
	}
	t.answer = &answer
	return nil
}

// Answer returns the target's answer, pinging the target first if there isn't
// any cached answer yet.
func (t *Target) Answer(ctx context.Context) (types.Answer, error) {
	if t.answer == nil {
		if err := t.Refresh(ctx); err != nil {
			return types.Answer{}, err
		}
	}
	return *t.answer, nil
}

// IP returns the target's IP address as resolved by the ping server, pinging
// the target first if necessary.
func (t *Target) IP(ctx context.Context) (string, error) {
	answer, err := t.Answer(ctx)
	return answer.IP, err
}

// Alive returns whether the target is alive, pinging the target first if
// necessary.
func (t *Target) Alive(ctx context.Context) (bool, error) {
	answer, err := t.Answer(ctx)
	return answer.Alive, err
}

// RoundTripTime returns the target's round-trip time, pinging the target first
// if necessary. Targets that aren't alive have no (valid) round-trip time.
func (t *Target) RoundTripTime(ctx context.Context) (types.RTT, error) {
	answer, err := t.Answer(ctx)
	return answer.RTT, err
}

// String returns the target's address and its state: either "pending", the
// round-trip time if alive, or "-" if dead. String never contacts the ping
// server.
func (t *Target) String() string {
	switch {
	case t.answer == nil:
		return t.address + ": pending"
	case t.answer.Alive:
		return t.address + ": " + t.answer.RTT.String()
	default:
		return t.address + ": -"
	}
}
