package executor

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dockflow/dockflow/pkg/types"
	"golang.org/x/crypto/ssh"
)

// DefaultDialTimeout bounds the TCP/handshake phase of each connection
const DefaultDialTimeout = 10 * time.Second

// SSH executes commands over a fresh SSH connection per call. Host keys
// are not verified: deployment targets are addressed by IP from a trusted
// inventory, matching the original StrictHostKeyChecking=no behavior.
type SSH struct {
	DialTimeout time.Duration
}

// NewSSH creates an SSH executor with the default dial timeout
func NewSSH() *SSH {
	return &SSH{DialTimeout: DefaultDialTimeout}
}

// Run opens a connection, runs the command in one session, and closes
// everything before returning. A non-zero remote exit is a normal Result;
// transport and auth failures are returned as error values.
func (e *SSH) Run(ctx context.Context, cred *types.ConnectionCredential, command string) (*Result, error) {
	config, err := e.clientConfig(cred)
	if err != nil {
		return nil, err
	}

	client, err := ssh.Dial("tcp", cred.Address(), config)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", cred.Address(), err)
	}
	defer client.Close()

	session, err := client.NewSession()
	if err != nil {
		return nil, fmt.Errorf("failed to open session: %w", err)
	}
	defer session.Close()

	var stdout, stderr bytes.Buffer
	session.Stdout = &stdout
	session.Stderr = &stderr

	if err := session.Start(command); err != nil {
		return nil, fmt.Errorf("failed to start command: %w", err)
	}

	done := make(chan error, 1)
	go func() {
		done <- session.Wait()
	}()

	select {
	case err := <-done:
		result := &Result{Stdout: stdout.String(), Stderr: stderr.String()}
		if err != nil {
			var exitErr *ssh.ExitError
			if errors.As(err, &exitErr) {
				result.ExitCode = exitErr.ExitStatus()
				return result, nil
			}
			return nil, fmt.Errorf("remote command failed: %w", err)
		}
		return result, nil
	case <-ctx.Done():
		// Best effort: the session is torn down by the deferred Close
		// even if the remote side ignores the signal
		_ = session.Signal(ssh.SIGKILL)
		return nil, ctx.Err()
	}
}

func (e *SSH) clientConfig(cred *types.ConnectionCredential) (*ssh.ClientConfig, error) {
	signer, err := ssh.ParsePrivateKey([]byte(cred.PrivateKey))
	if err != nil {
		return nil, fmt.Errorf("failed to parse private key: %w", err)
	}

	auth := []ssh.AuthMethod{ssh.PublicKeys(signer)}
	if cred.Password != "" {
		auth = append(auth, ssh.Password(cred.Password))
	}

	timeout := e.DialTimeout
	if timeout == 0 {
		timeout = DefaultDialTimeout
	}

	return &ssh.ClientConfig{
		User:            cred.User,
		Auth:            auth,
		HostKeyCallback: ssh.InsecureIgnoreHostKey(),
		Timeout:         timeout,
	}, nil
}
