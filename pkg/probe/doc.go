/*
Package probe classifies the live status of one Swarm manager.

A probe issues up to two remote commands through the injected executor:

 1. docker info --format '{{.Swarm.ControlAvailable}}'
 2. docker node inspect self --format '{{.ManagerStatus.Leader}}'

If the first command cannot run, exits non-zero, or prints anything but
"true", the manager is unreachable — the fail-safe default, so a flaky
host can never be selected by mistake. Only when control is available is
the leadership flag checked: true means leader, anything else means
reachable (a functional manager that merely isn't the current leader).

The probe never returns an error and never retries; retry policy, if
wanted, belongs to the caller. Timeouts are the executor's concern and a
timed-out command classifies like any other failure.
*/
package probe
