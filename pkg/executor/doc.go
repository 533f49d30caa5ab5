/*
Package executor provides the remote command execution capability.

The resolution engine treats command execution as an injected
collaborator: anything that can run one command against one credential
and report stdout, stderr and an exit code. The contract matters more
than the transport:

  - ordinary remote failures (connection refused, auth rejected,
    non-zero exit) are values, never panics
  - one connection per Run call, closed before returning; no pooling
  - context cancellation aborts the in-flight command

SSH is the production implementation, built on golang.org/x/crypto/ssh
with private-key auth (plus password when present) and host-key checking
disabled to match the original deployment tooling. The Func adapter turns
any closure into an Executor, which is how the probe and failover tests
inject scripted remote behavior.
*/
package executor
