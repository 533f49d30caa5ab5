package secrets

import "strings"

// Reserved variable names carry connection material rather than
// deployment environment variables. The merger excludes them from its
// override scans; the resolver and server resolution read them by name.
const (
	VarConnection    = "CONNECTION"
	VarHost          = "HOST"
	VarUser          = "USER"
	VarPort          = "PORT"
	VarSSHPrivateKey = "SSH_PRIVATE_KEY"
	VarPassword      = "PASSWORD"
)

// ReservedNames lists the variable names excluded from override scans
var ReservedNames = []string{
	VarConnection, VarHost, VarUser, VarPort, VarSSHPrivateKey, VarPassword,
}

// IsReserved reports whether name is one of the reserved connection
// variable names
func IsReserved(name string) bool {
	for _, r := range ReservedNames {
		if name == r {
			return true
		}
	}
	return false
}

// Resolver resolves a single secret value for an (environment, server,
// variable) triple against a Store. This is the one junction point every
// override passes through; its precedence order is authoritative.
type Resolver struct {
	store Store
}

// NewResolver creates a resolver over the given store
func NewResolver(store Store) *Resolver {
	return &Resolver{store: store}
}

// Store exposes the underlying override store for pattern scans
func (r *Resolver) Store() Store {
	return r.store
}

// Get looks up a secret value. Precedence: the server-scoped key
// {ENV}_{SERVER}_{VAR} wins when serverName is given and the value is
// non-empty, then the environment-scoped key {ENV}_{VAR}. Absence at both
// levels returns false, never an error.
func (r *Resolver) Get(environment, serverName, variable string) (string, bool) {
	if serverName != "" {
		key := ServerKey(environment, serverName, variable)
		if v, ok := r.store.Get(key); ok && v != "" {
			return v, true
		}
	}

	key := EnvironmentKey(environment, variable)
	if v, ok := r.store.Get(key); ok && v != "" {
		return v, true
	}
	return "", false
}

// EnvironmentKey derives the environment-scoped override key
func EnvironmentKey(environment, variable string) string {
	return strings.ToUpper(environment) + "_" + variable
}

// ServerKey derives the server-scoped override key. The server name is
// upper-cased verbatim, not slugified.
func ServerKey(environment, serverName, variable string) string {
	return strings.ToUpper(environment) + "_" + strings.ToUpper(serverName) + "_" + variable
}
