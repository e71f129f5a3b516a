/*
Package ping gives access to liveness and latency of hosts and networks, as
determined by a remote ping server.

A [Target] represents a single address (IP literal or host name). Its answer is
fetched lazily: the first call to any of [Target.IP], [Target.Alive],
[Target.RoundTripTime], or [Target.Answer] asks the ping server, and all later
calls are served from the cached answer until [Target.Refresh] is called
explicitly.

	t, err := ping.New("example.com")
	alive, err := t.Alive(ctx) // pings now...
	rtt, err := t.RoundTripTime(ctx) // ...but not again here.

A [Network] represents an IPv4 network in CIDR notation. In contrast to a
Target, a Network asks the ping server right when it gets created, using a
single bulk request for all hosts of the network. The Network then contains a
pre-answered Target for each host reported by the server.

	                 +---------+
	"1.2.3.0/30" --> | Network | --> Target 1.2.3.0 (answered)
	                 |         | --> Target 1.2.3.1 (answered)
	                 +---------+ --> ...

The ping server's base URL is taken from the environment (see
[github.com/siemens/remoteping/config]), unless explicitly specified using
[WithServerURL] or [WithClient].

Targets and Networks are not safe for concurrent use; callers must serialize
access to the same object. Different objects never share any mutable state.
*/
package ping
