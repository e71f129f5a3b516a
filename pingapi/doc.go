/*
Package pingapi talks HTTP+JSON with a remote ping server. The ping server does
the actual ICMP pinging; this package only issues the requests and decodes the
server's verdicts into [types.Answer] values.

The ping server offers two endpoints:

	GET {base}/{address}       -> {"address": ip, "alive": bool, "rtt": float|null}
	GET {base}/network/{cidr}  -> {"hosts": [{"address", "alive", "rtt"}, ...]}

A response to a single-address ping that lacks the “alive” field is the
server's way of saying that it cannot ping the address, such as when a host name
cannot be resolved; the server then usually explains why in a “detail” field.
Such responses result in a [types.PingError]. Transport failures are passed on
as is (but wrapped), and are never retried.

Each request carries a unique “X-Request-Id” header so that client-side debug
logs can be correlated with the ping server's logs.
*/
package pingapi
