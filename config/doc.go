/*
Package config resolves the ping server configuration from the process
environment.

The ping server's base URL is taken from the PING_SERVER_URL environment
variable ([ServerURLEnv]). [Resolve] reads it anew on each call, so changes to
the environment take effect for all targets constructed afterwards.

Applications may additionally call [LoadDotEnv] early on in order to pick up
variables from a “.env” file; variables already set in the environment always
take precedence.
*/
package config
