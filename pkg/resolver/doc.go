/*
Package resolver turns inventory declarations into deployment targets.

This is the heart of the engine: it combines the declarative inventory
(pkg/inventory), the layered secret lookup (pkg/secrets) and the
connection bundle codec (pkg/bundle) into fully resolved, per-environment
server records, and partitions those by role into a deployable topology.

# Resolution Pipeline

For each declaration carrying the requested environment tag:

	┌────────────────────────────────────────────────────┐
	│ 1. CONNECTION bundle secret                         │
	│    decodable → host/port/user in one shot           │
	├────────────────────────────────────────────────────┤
	│ 2. HOST secret → declaration host                   │
	│    neither → drop server, warn, keep going          │
	├────────────────────────────────────────────────────┤
	│ 3. USER/PORT secret → declaration → defaults        │
	│    → root / 22                                      │
	├────────────────────────────────────────────────────┤
	│ 4. Environment merge: all tier → tag tier →         │
	│    declaration env → override scans                 │
	└────────────────────────────────────────────────────┘

A server that cannot resolve a host is excluded with a warning rather
than failing the call: other servers in the same environment may still
resolve, and callers are expected to tolerate partial inventories. Only
the total absence of managers is surfaced, as a false return from
ResolveDeployment, and it is the caller's job to make that fatal.

# Environment Merging

MergeEnv applies four tiers in increasing priority (all tier, tag tier,
declaration env, override source) and then scans the override store for
the {ENV}_{NAME} and {ENV}_{SERVER}_{NAME} patterns, server-specific
winning. The six reserved connection names never enter the merged map.
Override-derived names are lower-cased; see DESIGN.md for the canonical
case decision.

# Freshness

Nothing is cached. Secrets rotate between invocations, so every call
re-reads the override store and rebuilds every record from scratch.
*/
package resolver
