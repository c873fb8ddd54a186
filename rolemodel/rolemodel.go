// Package rolemodel resolves the model assigned to a workflow role.
//
// Configuration has two sections:
//
//	[models]
//	fast = "provider/model-small"
//
//	[role_models]
//	reviewer = "fast"             # alias from [models]
//	planner = "provider/model-xl" # literal model
package rolemodel

import (
	"path/filepath"
	"strings"

	"github.com/go-faster/errors"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

var (
	// ErrEmptyRole is returned when role name is blank.
	ErrEmptyRole = errors.New("role must be non-empty")
	// ErrRoleNotConfigured is returned when role has no assignment.
	ErrRoleNotConfigured = errors.New("no model configured for role")
	// ErrEmptyAssignment is returned when role assignment is blank.
	ErrEmptyAssignment = errors.New("model assignment is empty")
	// ErrInvalidMapping is returned when alias resolves to blank or non-string value.
	ErrInvalidMapping = errors.New("invalid model mapping")
)

// Config is a role-model configuration.
type Config struct {
	// Models maps alias to model name.
	Models map[string]interface{}
	// RoleModels maps role to alias or literal model name.
	RoleModels map[string]interface{}
}

// Model names often contain dots, so keys are never split on them.
const delim = "::"

func parserFor(path string) koanf.Parser {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Parser()
	default:
		return toml.Parser()
	}
}

// Load loads configuration from TOML or YAML (by extension) file.
func Load(path string) (*Config, error) {
	k := koanf.New(delim)
	if err := k.Load(file.Provider(path), parserFor(path)); err != nil {
		return nil, errors.Wrapf(err, "load %q", path)
	}
	return FromMap(k.Raw()), nil
}

// FromMap creates Config from decoded configuration map.
func FromMap(m map[string]interface{}) *Config {
	section := func(name string) map[string]interface{} {
		s, _ := m[name].(map[string]interface{})
		if s == nil {
			s = map[string]interface{}{}
		}
		return s
	}
	return &Config{
		Models:     section("models"),
		RoleModels: section("role_models"),
	}
}

// Resolve returns model name for given role.
//
// Assigned value is looked up in Models first, and used verbatim if it is not an alias.
func (c *Config) Resolve(role string) (string, error) {
	role = strings.TrimSpace(role)
	if role == "" {
		return "", ErrEmptyRole
	}

	raw, ok := c.RoleModels[role]
	if !ok {
		return "", errors.Wrapf(ErrRoleNotConfigured, "%q", role)
	}
	assigned, ok := raw.(string)
	if !ok {
		return "", errors.Wrapf(ErrRoleNotConfigured, "%q: value is not a string", role)
	}
	assigned = strings.TrimSpace(assigned)
	if assigned == "" {
		return "", errors.Wrapf(ErrEmptyAssignment, "%q", role)
	}

	alias, ok := c.Models[assigned]
	if !ok {
		return assigned, nil
	}
	model, ok := alias.(string)
	if !ok || strings.TrimSpace(model) == "" {
		return "", errors.Wrapf(ErrInvalidMapping, "%q: alias %q", role, assigned)
	}
	return strings.TrimSpace(model), nil
}
