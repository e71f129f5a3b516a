/*
Package types defines remoteping's information model. Which is rather simple
and mainly revolves around the [Answer] of a ping server about a target address,
the [Quality] of a target while it gets probed, and the [Report] combining an
address with its quality and answer.

# Pending or Answered

A ping target is either pending or answered. Instead of three independently
nullable fields (IP, alive, RTT) an answered target carries exactly one
[Answer] value, so these fields always get set together. The only "nullable"
part is the [RTT]: hosts that are not alive have no round-trip time, and that is
not an error.

# Errors

There are two distinct error types so that callers can tell configuration
problems apart from request problems using [errors.As]:

  - [ConfigError]: the ping server URL isn't configured (or is unusable).
  - [PingError]: a target specification is invalid, or the ping server
    signalled that it cannot ping a target.

Transport-level failures are neither; they are passed on wrapped.
*/
package types
