package secrets

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestGetPrecedence tests the server-scoped-then-environment-scoped lookup order
func TestGetPrecedence(t *testing.T) {
	tests := []struct {
		name        string
		store       map[string]string
		environment string
		server      string
		variable    string
		want        string
		wantFound   bool
	}{
		{
			name: "server key wins over environment key",
			store: map[string]string{
				"PRODUCTION_MAIN_HOST": "10.0.0.1",
				"PRODUCTION_HOST":      "10.0.0.2",
			},
			environment: "production",
			server:      "main",
			variable:    "HOST",
			want:        "10.0.0.1",
			wantFound:   true,
		},
		{
			name: "falls back to environment key",
			store: map[string]string{
				"PRODUCTION_HOST": "10.0.0.2",
			},
			environment: "production",
			server:      "main",
			variable:    "HOST",
			want:        "10.0.0.2",
			wantFound:   true,
		},
		{
			name: "empty server value falls through",
			store: map[string]string{
				"PRODUCTION_MAIN_HOST": "",
				"PRODUCTION_HOST":      "10.0.0.2",
			},
			environment: "production",
			server:      "main",
			variable:    "HOST",
			want:        "10.0.0.2",
			wantFound:   true,
		},
		{
			name: "no server name skips server key",
			store: map[string]string{
				"PRODUCTION_MAIN_HOST": "10.0.0.1",
			},
			environment: "production",
			server:      "",
			variable:    "HOST",
			wantFound:   false,
		},
		{
			name: "environment tag is upper-cased",
			store: map[string]string{
				"STAGING_USER": "deploy",
			},
			environment: "staging",
			server:      "",
			variable:    "USER",
			want:        "deploy",
			wantFound:   true,
		},
		{
			name:        "absent at both levels",
			store:       map[string]string{},
			environment: "production",
			server:      "main",
			variable:    "PASSWORD",
			wantFound:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewResolver(NewStore(tt.store))
			got, found := r.Get(tt.environment, tt.server, tt.variable)
			assert.Equal(t, tt.wantFound, found)
			assert.Equal(t, tt.want, got)
		})
	}
}

// TestKeyDerivation tests override key construction
func TestKeyDerivation(t *testing.T) {
	assert.Equal(t, "PRODUCTION_HOST", EnvironmentKey("production", "HOST"))
	assert.Equal(t, "PRODUCTION_MAIN_HOST", ServerKey("production", "main", "HOST"))
	assert.Equal(t, "STAGING_DB-1_PORT", ServerKey("staging", "db-1", "PORT"))
}

// TestFromEnviron tests building a store from KEY=value pairs
func TestFromEnviron(t *testing.T) {
	s := FromEnviron([]string{
		"PRODUCTION_HOST=10.0.0.1",
		"EMPTY=",
		"WITH_EQUALS=a=b",
		"malformed",
	})

	v, ok := s.Get("PRODUCTION_HOST")
	assert.True(t, ok)
	assert.Equal(t, "10.0.0.1", v)

	v, ok = s.Get("WITH_EQUALS")
	assert.True(t, ok)
	assert.Equal(t, "a=b", v)

	_, ok = s.Get("malformed")
	assert.False(t, ok)

	v, ok = s.Get("EMPTY")
	assert.True(t, ok)
	assert.Equal(t, "", v)
}

// TestIsReserved tests the reserved-name check
func TestIsReserved(t *testing.T) {
	for _, name := range []string{"CONNECTION", "HOST", "USER", "PORT", "SSH_PRIVATE_KEY", "PASSWORD"} {
		assert.True(t, IsReserved(name), name)
	}
	assert.False(t, IsReserved("DATABASE_URL"))
	assert.False(t, IsReserved("host"))
}
