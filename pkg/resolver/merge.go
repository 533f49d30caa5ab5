package resolver

import (
	"strings"

	"github.com/dockflow/dockflow/pkg/secrets"
	"github.com/dockflow/dockflow/pkg/types"
)

// MergeEnv builds the flat variable mapping for one server in one
// environment. File-based tiers apply first in increasing priority (all,
// then the tag's tier, then the declaration's own env block), then the
// override store is scanned for the two free-form patterns:
//
//	{ENV}_{NAME}          global override for the environment
//	{ENV}_{SERVER}_{NAME} override for this server only (wins)
//
// Both scans skip the reserved connection names; the global scan also
// skips keys carrying this server's own prefix, which belong to the
// server-specific pass. Override-derived names are canonicalized to
// lower case, but an override whose name matches an existing key
// case-insensitively overwrites that key in place.
func MergeEnv(store secrets.Store, tiers *types.EnvironmentTierMap, tag, serverName string, serverEnv map[string]string) map[string]string {
	merged := make(map[string]string)

	if tiers != nil {
		for k, v := range tiers.All {
			merged[k] = v
		}
		for k, v := range tiers.TierFor(tag) {
			merged[k] = v
		}
	}
	for k, v := range serverEnv {
		merged[k] = v
	}

	envPrefix := strings.ToUpper(tag) + "_"
	serverPrefix := envPrefix + strings.ToUpper(serverName) + "_"

	for key, value := range store {
		if !strings.HasPrefix(key, envPrefix) || strings.HasPrefix(key, serverPrefix) {
			continue
		}
		name := strings.TrimPrefix(key, envPrefix)
		if name == "" || secrets.IsReserved(name) {
			continue
		}
		applyOverride(merged, name, value)
	}

	for key, value := range store {
		if !strings.HasPrefix(key, serverPrefix) {
			continue
		}
		name := strings.TrimPrefix(key, serverPrefix)
		if name == "" || secrets.IsReserved(name) {
			continue
		}
		applyOverride(merged, name, value)
	}

	return merged
}

// applyOverride overwrites a case-insensitive match in place so the
// authored spelling survives, and inserts new names lower-cased
func applyOverride(merged map[string]string, name, value string) {
	for k := range merged {
		if strings.EqualFold(k, name) {
			merged[k] = value
			return
		}
	}
	merged[strings.ToLower(name)] = value
}
