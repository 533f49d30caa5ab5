package bundle

import (
	"encoding/base64"
	"encoding/json"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/dockflow/dockflow/pkg/types"
)

// DefaultPort is used when a bundle carries no port field
const DefaultPort = 22

// wireBundle is the JSON shape inside an encoded bundle. Field names are
// an interop contract with external bundle generators and must not change.
type wireBundle struct {
	Host       string `json:"host"`
	Port       any    `json:"port,omitempty"`
	User       string `json:"user"`
	PrivateKey string `json:"privateKey"`
	Password   string `json:"password,omitempty"`
}

// encodedBundle mirrors wireBundle with a concrete port for marshalling
type encodedBundle struct {
	Host       string `json:"host"`
	Port       int    `json:"port"`
	User       string `json:"user"`
	PrivateKey string `json:"privateKey"`
	Password   string `json:"password,omitempty"`
}

// Decode parses an opaque connection bundle into a credential. Every
// failure mode returns a *DecodeError with a distinct kind; Decode never
// panics on malformed input.
func Decode(encoded string) (*types.ConnectionCredential, error) {
	raw, err := base64.StdEncoding.DecodeString(strings.TrimSpace(encoded))
	if err != nil {
		return nil, &DecodeError{Kind: InvalidEncoding, cause: err}
	}

	var wire wireBundle
	if err := json.Unmarshal(raw, &wire); err != nil {
		return nil, &DecodeError{Kind: InvalidStructure, cause: err}
	}

	if wire.Host == "" {
		return nil, &DecodeError{Kind: MissingField, Field: "host"}
	}
	if wire.User == "" {
		return nil, &DecodeError{Kind: MissingField, Field: "user"}
	}
	if wire.PrivateKey == "" {
		return nil, &DecodeError{Kind: MissingField, Field: "privateKey"}
	}

	port, err := coercePort(wire.Port)
	if err != nil {
		return nil, err
	}

	key := NormalizePrivateKey(wire.PrivateKey)
	if !hasPEMMarkers(key) {
		return nil, &DecodeError{Kind: InvalidPrivateKey}
	}

	return &types.ConnectionCredential{
		Host:       wire.Host,
		Port:       port,
		User:       wire.User,
		PrivateKey: key,
		Password:   wire.Password,
	}, nil
}

// Encode serializes a credential into the transportable bundle form:
// base64 of a JSON object with keys host, port, user, privateKey and,
// only when set, password. Decode(Encode(c)) == c for well-formed c.
func Encode(cred *types.ConnectionCredential) (string, error) {
	port := cred.Port
	if port == 0 {
		port = DefaultPort
	}

	raw, err := json.Marshal(encodedBundle{
		Host:       cred.Host,
		Port:       port,
		User:       cred.User,
		PrivateKey: NormalizePrivateKey(cred.PrivateKey),
		Password:   cred.Password,
	})
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(raw), nil
}

// NormalizePrivateKey converts escaped newline sequences to real line
// breaks, collapses all line-ending variants to LF, and enforces a single
// trailing newline. Idempotent.
func NormalizePrivateKey(key string) string {
	key = strings.ReplaceAll(key, `\n`, "\n")
	key = strings.ReplaceAll(key, "\r\n", "\n")
	key = strings.ReplaceAll(key, "\r", "\n")
	return strings.TrimSpace(key) + "\n"
}

// PEM marker pattern: the label between BEGIN and PRIVATE KEY varies by
// algorithm (RSA, EC, OPENSSH, none)
var beginMarkerPattern = regexp.MustCompile(`-----BEGIN ((?:[A-Z0-9]+ )*)PRIVATE KEY-----`)

func hasPEMMarkers(key string) bool {
	m := beginMarkerPattern.FindStringSubmatch(key)
	if m == nil {
		return false
	}
	end := "-----END " + m[1] + "PRIVATE KEY-----"
	return strings.Contains(key, end)
}

func coercePort(raw any) (int, error) {
	switch v := raw.(type) {
	case nil:
		return DefaultPort, nil
	case float64:
		if v != math.Trunc(v) {
			return 0, &DecodeError{Kind: InvalidPort}
		}
		return checkPortRange(int(v))
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0, &DecodeError{Kind: InvalidPort, cause: err}
		}
		return checkPortRange(n)
	default:
		return 0, &DecodeError{Kind: InvalidPort}
	}
}

func checkPortRange(port int) (int, error) {
	if port < 1 || port > 65535 {
		return 0, &DecodeError{Kind: InvalidPort}
	}
	return port, nil
}
