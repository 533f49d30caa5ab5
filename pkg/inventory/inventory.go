package inventory

import (
	"fmt"
	"os"

	"github.com/dockflow/dockflow/pkg/types"
	"gopkg.in/yaml.v3"
)

// allTierKey is the environments entry applied to every tag
const allTierKey = "all"

// file is the on-disk YAML shape of a server inventory
type file struct {
	Defaults     types.InventoryDefaults      `yaml:"defaults"`
	Environments map[string]map[string]string `yaml:"environments"`
	Servers      []*types.ServerDeclaration   `yaml:"servers"`
}

// Inventory is a loaded, validated server inventory
type Inventory struct {
	Defaults types.InventoryDefaults
	Tiers    *types.EnvironmentTierMap
	Servers  []*types.ServerDeclaration
}

// Load reads and parses an inventory file
func Load(path string) (*Inventory, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read inventory: %w", err)
	}
	return Parse(data)
}

// Parse parses inventory YAML and validates the declarations
func Parse(data []byte) (*Inventory, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse inventory YAML: %w", err)
	}

	tiers := &types.EnvironmentTierMap{
		Tiers: make(map[string]map[string]string),
	}
	for tag, vars := range f.Environments {
		if tag == allTierKey {
			tiers.All = vars
			continue
		}
		tiers.Tiers[tag] = vars
	}

	inv := &Inventory{
		Defaults: f.Defaults,
		Tiers:    tiers,
		Servers:  f.Servers,
	}
	if err := inv.validate(); err != nil {
		return nil, err
	}
	return inv, nil
}

func (inv *Inventory) validate() error {
	seen := make(map[string]bool, len(inv.Servers))
	for i, decl := range inv.Servers {
		if decl == nil {
			return fmt.Errorf("server entry %d is empty", i)
		}
		if decl.Name == "" {
			return fmt.Errorf("server entry %d has no name", i)
		}
		if seen[decl.Name] {
			return fmt.Errorf("duplicate server name %q", decl.Name)
		}
		seen[decl.Name] = true

		if len(decl.Tags) == 0 {
			return fmt.Errorf("server %q has no environment tags", decl.Name)
		}
		for _, tag := range decl.Tags {
			if tag == "" {
				return fmt.Errorf("server %q has an empty environment tag", decl.Name)
			}
		}

		// Role defaults to manager when omitted
		if decl.Role == "" {
			decl.Role = types.ServerRoleManager
		}
		if !decl.Role.Valid() {
			return fmt.Errorf("server %q has unknown role %q", decl.Name, decl.Role)
		}

		if decl.Port < 0 || decl.Port > 65535 {
			return fmt.Errorf("server %q has invalid port %d", decl.Name, decl.Port)
		}
	}
	return nil
}
