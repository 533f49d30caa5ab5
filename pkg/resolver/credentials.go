package resolver

import (
	"github.com/dockflow/dockflow/pkg/bundle"
	"github.com/dockflow/dockflow/pkg/secrets"
	"github.com/dockflow/dockflow/pkg/types"
)

// CredentialFor assembles the full SSH credential for a resolved server.
// A decodable CONNECTION bundle is authoritative for host, port, user and
// key; otherwise the key comes from the SSH_PRIVATE_KEY secret and the
// connection fields from the resolved server. Returns false when no key
// material can be found, which the failover selector reports as
// "{name} (no SSH key)".
func (r *Resolver) CredentialFor(tag string, server *types.ResolvedServer) (*types.ConnectionCredential, bool) {
	if raw, ok := r.secrets.Get(tag, server.Name, secrets.VarConnection); ok {
		if cred, err := bundle.Decode(raw); err == nil {
			if cred.Password == "" {
				cred.Password, _ = r.secrets.Get(tag, server.Name, secrets.VarPassword)
			}
			return cred, true
		}
	}

	key, ok := r.secrets.Get(tag, server.Name, secrets.VarSSHPrivateKey)
	if !ok {
		return nil, false
	}

	password, _ := r.secrets.Get(tag, server.Name, secrets.VarPassword)

	return &types.ConnectionCredential{
		Host:       server.Host,
		Port:       server.Port,
		User:       server.User,
		PrivateKey: bundle.NormalizePrivateKey(key),
		Password:   password,
	}, true
}
