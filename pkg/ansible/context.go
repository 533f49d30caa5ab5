package ansible

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dockflow/dockflow/pkg/bundle"
	"github.com/dockflow/dockflow/pkg/types"
)

// Paths the dynamic inventory script reads. The playbook runner mounts
// them into its container, so they are fixed.
const (
	DefaultContextPath = "/tmp/dockflow_context.json"
	DefaultKeyPath     = "/tmp/dockflow_key"
)

// SSHConnection mirrors the ssh_connection object of the context file.
// Field names are an interop contract with the inventory script.
type SSHConnection struct {
	Host       string `json:"host"`
	Port       int    `json:"port"`
	User       string `json:"user"`
	PrivateKey string `json:"private_key"`
	Password   string `json:"password,omitempty"`
}

// Context is the deployment context handed to the playbook runner
type Context struct {
	Env           string        `json:"env"`
	ServerName    string        `json:"server_name"`
	RunID         string        `json:"run_id,omitempty"`
	SSHConnection SSHConnection `json:"ssh_connection"`
}

// NewContext builds the context for one selected deployment target
func NewContext(environment string, server *types.ResolvedServer, cred *types.ConnectionCredential, runID string) *Context {
	return &Context{
		Env:        environment,
		ServerName: server.Name,
		RunID:      runID,
		SSHConnection: SSHConnection{
			Host:       cred.Host,
			Port:       cred.Port,
			User:       cred.User,
			PrivateKey: cred.PrivateKey,
			Password:   cred.Password,
		},
	}
}

// Write serializes the context to path with owner-only permissions: the
// file carries key material
func (c *Context) Write(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal deployment context: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write deployment context: %w", err)
	}
	return nil
}

// WriteKeyFile writes the normalized private key with mode 0600, the
// form SSH clients require
func WriteKeyFile(path, privateKey string) error {
	normalized := bundle.NormalizePrivateKey(privateKey)
	if err := os.WriteFile(path, []byte(normalized), 0o600); err != nil {
		return fmt.Errorf("failed to write SSH key file: %w", err)
	}
	return nil
}
