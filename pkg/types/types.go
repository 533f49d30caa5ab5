package types

// ServerRole defines the Swarm role of a declared server
type ServerRole string

const (
	ServerRoleManager ServerRole = "manager"
	ServerRoleWorker  ServerRole = "worker"
)

// Valid reports whether the role is one of the known Swarm roles
func (r ServerRole) Valid() bool {
	return r == ServerRoleManager || r == ServerRoleWorker
}

// ServerDeclaration is an authored inventory entry. Declarations are
// immutable once loaded for a run; resolution never writes back to them.
type ServerDeclaration struct {
	Name string     `yaml:"name"`
	Role ServerRole `yaml:"role,omitempty"`
	Tags []string   `yaml:"tags"`

	// Optional connection fields. Any of these may instead come from the
	// override source at resolution time.
	Host string `yaml:"host,omitempty"`
	Port int    `yaml:"port,omitempty"`
	User string `yaml:"user,omitempty"`

	// Env is the declaration's own variable block, the highest file-based
	// tier during environment merging.
	Env map[string]string `yaml:"env,omitempty"`
}

// HasTag reports whether the declaration carries the given environment tag
func (d *ServerDeclaration) HasTag(tag string) bool {
	for _, t := range d.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// InventoryDefaults holds global fallback connection values used when
// neither a declaration nor any override source supplies them.
type InventoryDefaults struct {
	User string `yaml:"user,omitempty"`
	Port int    `yaml:"port,omitempty"`
}

// EnvironmentTierMap holds the file-based variable tiers: All applies to
// every environment, Tiers is keyed by environment tag.
type EnvironmentTierMap struct {
	All   map[string]string
	Tiers map[string]map[string]string
}

// TierFor returns the named tier for an environment tag, or nil
func (m *EnvironmentTierMap) TierFor(tag string) map[string]string {
	if m == nil || m.Tiers == nil {
		return nil
	}
	return m.Tiers[tag]
}

// ResolvedServer is a fully resolved runtime server record for one
// environment tag. Built fresh on every resolution call and never cached:
// secrets may rotate between invocations.
type ResolvedServer struct {
	Name string
	Role ServerRole
	Host string
	Port int
	User string
	Tags []string
	Env  map[string]string
}

// ConnectionCredential carries everything needed to open an SSH session
// to one server. PrivateKey is normalized multi-line PEM text; Password
// is optional and only used for sudo escalation on the remote side.
type ConnectionCredential struct {
	Host       string
	Port       int
	User       string
	PrivateKey string
	Password   string
}

// Address returns the host:port dial target for the credential
func (c *ConnectionCredential) Address() string {
	return joinHostPort(c.Host, c.Port)
}

// ResolvedDeployment aggregates the resolved servers of one environment
// tag, partitioned by role. Manager is the first declared manager and the
// default deployment target; Managers preserves declaration order for the
// failover scan.
type ResolvedDeployment struct {
	Environment string
	Manager     *ResolvedServer
	Managers    []*ResolvedServer
	Workers     []*ResolvedServer
}

// HasPeers reports whether failover is meaningful for this deployment
func (d *ResolvedDeployment) HasPeers() bool {
	return len(d.Managers) > 1
}

// ManagerStatus is the outcome of a live probe against one manager.
// Transient, never persisted.
type ManagerStatus string

const (
	ManagerStatusUnreachable ManagerStatus = "unreachable"
	ManagerStatusReachable   ManagerStatus = "reachable"
	ManagerStatusLeader      ManagerStatus = "leader"
)

// ActiveManagerResult is the failover selector's answer: the manager to
// deploy through, its probed status (reachable or leader), and one
// human-readable diagnostic per manager that could not be used, in probe
// order.
type ActiveManagerResult struct {
	Manager        *ResolvedServer
	Status         ManagerStatus
	FailedManagers []string
}
