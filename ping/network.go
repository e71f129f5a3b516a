// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package ping

import (
	"context"
	"fmt"
	"iter"
	"net/netip"
	"strings"

	"github.com/siemens/remoteping/pingapi"
	"github.com/siemens/remoteping/types"

	"github.com/thediveo/lxkns/log"
)

// Network is an IPv4 network whose hosts have been pinged by the ping server
// using a single bulk request. A Network contains an already answered [Target]
// for each host, in the order reported by the server.
type Network struct {
	prefix  netip.Prefix
	client  *pingapi.Client
	targets []*Target
}

// NewNetwork returns a new Network for the specified IPv4 network in CIDR
// notation, such as "1.2.3.0/30", after asking the ping server to ping all of
// the network's hosts. A bare IPv4 address is taken as a /32 network.
//
// NewNetwork returns a [types.ConfigError] if the ping server URL cannot be
// resolved, and a [types.PingError] if the network cannot be parsed. Any host
// bits are masked off.
func NewNetwork(ctx context.Context, network string, opts ...Option) (*Network, error) {
	client, err := newClient(opts)
	if err != nil {
		return nil, err
	}
	prefix, err := ParseNetwork(network)
	if err != nil {
		return nil, err
	}
	return newNetwork(ctx, prefix, client)
}

// NewNetworkFromAddr returns a new /32 Network for the specified IPv4 address,
// otherwise working like [NewNetwork].
func NewNetworkFromAddr(ctx context.Context, addr netip.Addr, opts ...Option) (*Network, error) {
	client, err := newClient(opts)
	if err != nil {
		return nil, err
	}
	prefix, err := checkPrefix(addr.String(), netip.PrefixFrom(addr.Unmap(), 32))
	if err != nil {
		return nil, err
	}
	return newNetwork(ctx, prefix, client)
}

// NewNetworkFromPrefix returns a new Network for the specified IPv4 network,
// otherwise working like [NewNetwork].
func NewNetworkFromPrefix(ctx context.Context, prefix netip.Prefix, opts ...Option) (*Network, error) {
	client, err := newClient(opts)
	if err != nil {
		return nil, err
	}
	prefix, err = checkPrefix(prefix.String(), prefix)
	if err != nil {
		return nil, err
	}
	return newNetwork(ctx, prefix, client)
}

func newNetwork(ctx context.Context, prefix netip.Prefix, client *pingapi.Client) (*Network, error) {
	n := &Network{
		prefix: prefix,
		client: client,
	}
	if err := n.Refresh(ctx); err != nil {
		return nil, err
	}
	return n, nil
}

// ParseNetwork parses an IPv4 network in CIDR notation, or a bare IPv4
// address which is then taken as a /32 network. Host bits are masked off. It
// returns a [types.PingError] when the network specification is invalid.
func ParseNetwork(network string) (netip.Prefix, error) {
	spec := strings.TrimSpace(network)
	if !strings.Contains(spec, "/") {
		addr, err := netip.ParseAddr(spec)
		if err != nil {
			return netip.Prefix{}, &types.PingError{Target: network, Err: err}
		}
		return checkPrefix(network, netip.PrefixFrom(addr.Unmap(), 32))
	}
	prefix, err := netip.ParsePrefix(spec)
	if err != nil {
		return netip.Prefix{}, &types.PingError{Target: network, Err: err}
	}
	return checkPrefix(network, prefix)
}

// checkPrefix ensures that the specified prefix is a valid IPv4 network,
// returning it with its host bits masked off.
func checkPrefix(spec string, prefix netip.Prefix) (netip.Prefix, error) {
	if !prefix.IsValid() {
		return netip.Prefix{}, &types.PingError{
			Target: spec,
			Err:    fmt.Errorf("invalid network %q", spec),
		}
	}
	if !prefix.Addr().Is4() {
		return netip.Prefix{}, &types.PingError{
			Target: spec,
			Err:    fmt.Errorf("not an IPv4 network: %s", prefix),
		}
	}
	return prefix.Masked(), nil
}

// Refresh asks the ping server to (re)ping all hosts of the network, replacing
// all targets. In case of failure, the previous targets are kept.
func (n *Network) Refresh(ctx context.Context) error {
	answers, err := n.client.Network(ctx, n.prefix)
	if err != nil {
		log.Debugf("pinging network %s failed: %s", n.prefix, err.Error())
		return err
	}
	targets := make([]*Target, 0, len(answers))
	for _, host := range answers {
		answer := host.Answer
		targets = append(targets, &Target{
			address: host.Address,
			client:  n.client,
			answer:  &answer,
		})
	}
	n.targets = targets
	log.Debugf("network %s: %d hosts", n.prefix, len(targets))
	return nil
}

// Prefix returns the network.
func (n *Network) Prefix() netip.Prefix { return n.prefix }

// String returns the network in CIDR notation.
func (n *Network) String() string { return n.prefix.String() }

// Len returns the number of hosts reported by the ping server.
func (n *Network) Len() int { return len(n.targets) }

// At returns the target for the idx-th host; it panics if idx is out of range.
func (n *Network) At(idx int) *Target { return n.targets[idx] }

// Targets returns (a copy of) the list of targets, one for each host.
func (n *Network) Targets() []*Target {
	return append([]*Target(nil), n.targets...)
}

// All returns an iterator over the index and target of each host, in the order
// reported by the ping server.
func (n *Network) All() iter.Seq2[int, *Target] {
	targets := n.targets
	return func(yield func(int, *Target) bool) {
		for idx, t := range targets {
			if !yield(idx, t) {
				return
			}
		}
	}
}
