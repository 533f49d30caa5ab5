/*
Package types defines the core data structures used throughout Dockflow.

This package contains the domain model for deployment target resolution:
authored inventory shapes, resolved runtime records, SSH credentials, and
the transient probe/failover results. All other packages depend on it; it
depends on nothing but the standard library.

# Core Types

Authored (loaded from the inventory file, immutable per run):

  - ServerDeclaration: one server entry with role, environment tags, and
    optional connection fields and env block
  - InventoryDefaults: global user/port fallbacks
  - EnvironmentTierMap: the "all" tier plus per-environment variable tiers

Derived (rebuilt on every resolution call, never cached):

  - ResolvedServer: a declaration after secret lookup and env merging
  - ConnectionCredential: full SSH connection material for one server
  - ResolvedDeployment: managers and workers for one environment tag

Transient (probe results, never persisted):

  - ManagerStatus: unreachable, reachable, or leader
  - ActiveManagerResult: the selected manager plus failure diagnostics

# Design Invariants

  - A ResolvedDeployment exists only when at least one manager resolved
    for its environment tag; Manager is always the first declared manager.
  - Managers preserves declaration order, which fixes both failover probe
    order and the ordering of failure diagnostics.
  - ResolvedServer records are never mutated after construction. Secrets
    may rotate between invocations, so nothing derived is reused across
    calls.
*/
package types
