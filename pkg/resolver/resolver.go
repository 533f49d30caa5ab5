package resolver

import (
	"sort"
	"strconv"

	"github.com/dockflow/dockflow/pkg/bundle"
	"github.com/dockflow/dockflow/pkg/inventory"
	"github.com/dockflow/dockflow/pkg/log"
	"github.com/dockflow/dockflow/pkg/metrics"
	"github.com/dockflow/dockflow/pkg/secrets"
	"github.com/dockflow/dockflow/pkg/types"
	"github.com/rs/zerolog"
)

// Fallbacks of last resort when neither declaration, override source nor
// inventory defaults supply a value. They match what the remote side
// assumes for a bare connection.
const (
	fallbackUser = "root"
	fallbackPort = 22
)

// Resolver turns inventory declarations plus the override source into
// fully resolved runtime server records. It holds only read-only inputs;
// every Resolve* call re-derives its results so rotated secrets take
// effect immediately.
type Resolver struct {
	inv     *inventory.Inventory
	secrets *secrets.Resolver
	logger  zerolog.Logger
}

// New creates a resolver over a loaded inventory and an override store
func New(inv *inventory.Inventory, store secrets.Store) *Resolver {
	return &Resolver{
		inv:     inv,
		secrets: secrets.NewResolver(store),
		logger:  log.WithComponent("resolver"),
	}
}

// Secrets exposes the credential resolver sharing this resolver's store
func (r *Resolver) Secrets() *secrets.Resolver {
	return r.secrets
}

// EnvironmentNames returns the distinct environment tags across all
// declarations, sorted
func (r *Resolver) EnvironmentNames() []string {
	seen := make(map[string]bool)
	var names []string
	for _, decl := range r.inv.Servers {
		for _, tag := range decl.Tags {
			if !seen[tag] {
				seen[tag] = true
				names = append(names, tag)
			}
		}
	}
	sort.Strings(names)
	return names
}

// ServerNamesForEnvironment returns the declared server names carrying
// the tag, in declaration order
func (r *Resolver) ServerNamesForEnvironment(tag string) []string {
	var names []string
	for _, decl := range r.inv.Servers {
		if decl.HasTag(tag) {
			names = append(names, decl.Name)
		}
	}
	return names
}

// ResolveForEnvironment resolves every declaration carrying the tag. A
// declaration whose host cannot be determined is dropped with a warning;
// the remaining servers still resolve. Callers must tolerate partial
// inventories.
func (r *Resolver) ResolveForEnvironment(tag string) []*types.ResolvedServer {
	var out []*types.ResolvedServer
	for _, decl := range r.inv.Servers {
		if !decl.HasTag(tag) {
			continue
		}
		server, ok := r.resolveDeclaration(tag, decl)
		if !ok {
			metrics.ServersSkipped.WithLabelValues(tag).Inc()
			continue
		}
		metrics.ServersResolved.WithLabelValues(tag).Inc()
		out = append(out, server)
	}
	return out
}

// ResolveByName resolves a single declaration by name for the tag
func (r *Resolver) ResolveByName(name, tag string) (*types.ResolvedServer, bool) {
	for _, decl := range r.inv.Servers {
		if decl.Name != name || !decl.HasTag(tag) {
			continue
		}
		return r.resolveDeclaration(tag, decl)
	}
	return nil, false
}

func (r *Resolver) resolveDeclaration(tag string, decl *types.ServerDeclaration) (*types.ResolvedServer, bool) {
	logger := r.logger.With().Str("environment", tag).Str("server", decl.Name).Logger()

	host := ""
	port := 0
	user := ""

	// A full connection bundle, when present and decodable, supplies
	// host, port and user in one shot. A bundle that fails to decode is
	// only a diagnostic: the individual secrets may still resolve.
	if raw, ok := r.secrets.Get(tag, decl.Name, secrets.VarConnection); ok {
		cred, err := bundle.Decode(raw)
		if err != nil {
			logger.Warn().Err(err).Msg("connection bundle did not decode, trying individual secrets")
		} else {
			host, port, user = cred.Host, cred.Port, cred.User
		}
	}

	if host == "" {
		if v, ok := r.secrets.Get(tag, decl.Name, secrets.VarHost); ok {
			host = v
		} else {
			host = decl.Host
		}
	}
	if host == "" {
		logger.Warn().Msg("no resolvable host, excluding server from this resolution")
		return nil, false
	}

	if user == "" {
		user = r.resolveUser(tag, decl)
	}
	if port == 0 {
		port = r.resolvePort(tag, decl, logger)
	}

	return &types.ResolvedServer{
		Name: decl.Name,
		Role: decl.Role,
		Host: host,
		Port: port,
		User: user,
		Tags: decl.Tags,
		Env:  MergeEnv(r.secrets.Store(), r.inv.Tiers, tag, decl.Name, decl.Env),
	}, true
}

func (r *Resolver) resolveUser(tag string, decl *types.ServerDeclaration) string {
	if v, ok := r.secrets.Get(tag, decl.Name, secrets.VarUser); ok {
		return v
	}
	if decl.User != "" {
		return decl.User
	}
	if r.inv.Defaults.User != "" {
		return r.inv.Defaults.User
	}
	return fallbackUser
}

func (r *Resolver) resolvePort(tag string, decl *types.ServerDeclaration, logger zerolog.Logger) int {
	if v, ok := r.secrets.Get(tag, decl.Name, secrets.VarPort); ok {
		if port, err := strconv.Atoi(v); err == nil && port >= 1 && port <= 65535 {
			return port
		}
		logger.Warn().Str("value", v).Msg("ignoring unparseable PORT override")
	}
	if decl.Port != 0 {
		return decl.Port
	}
	if r.inv.Defaults.Port != 0 {
		return r.inv.Defaults.Port
	}
	return fallbackPort
}
