/*
Package prober probes many ping targets concurrently, streaming [types.Report]s
about the targets as they get submitted and as they get answered.

	         +--------+
	string-->| Prober +-->ch Report
	         +--------+

⚠ Please note that a [Prober] initially emits any newly submitted address
before it gets pinged (with its quality set to “pinging”), as well as later the
final verdict. The rationale is that especially interactive clients can more
easily manage their display so that all enqueued targets are early visible.

Probers de-duplicate addresses: an address submitted a second time is silently
ignored. Each address gets its own [ping.Target], so no target is ever accessed
concurrently.

Networks are probed using a single bulk request per network; a final report is
then emitted for each host of the network, with the report's Network field set
to the network in CIDR notation.

A [ReportMap] consumes a stream of reports, keeping the most recent state of
each address, such as for rendering.

# Acknowledgements

Under its hood, [Prober] leverages [gammazero/workerpool] as the limiting
goroutine pool.

[gammazero/workerpool]: https://github.com/gammazero/workerpool
*/
package prober
