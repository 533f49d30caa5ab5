/*
Package failover selects the active manager for a deployment.

When an environment declares more than one manager, the selector probes
them one at a time, in declaration order, and returns the best target:

	for each declared manager:
	    assemble credential  → failed: "{name} (no SSH key)"
	    probe                → unreachable: "{name} (unreachable)"
	    leader + PreferLeader → return immediately
	    leader               → becomes best candidate
	    reachable            → best candidate only if none yet

	best candidate, or nil when nothing was ever reachable

The scan is deliberately sequential with no parallel fan-out: declaration
order then deterministically decides ties (an earlier-declared leader
always wins under PreferLeader), and the failure diagnostics come back in
a reproducible order. Each probe opens and closes its own connection.

The selector never retries and applies no timeouts of its own; a caller
wanting either wraps SelectActive — cancellation through the context
aborts the in-flight probe, and a timed-out probe counts as unreachable.

Diagnostics accumulate only for managers that could not be used. A
reachable manager passed over in favor of a later leader is not a
failure, just not selected.
*/
package failover
