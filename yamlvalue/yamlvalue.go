// Package yamlvalue builds jsoncontract values from YAML documents using github.com/go-faster/yaml package.
package yamlvalue

import (
	"math/big"

	"github.com/go-faster/errors"
	"github.com/go-faster/yaml"

	"github.com/tdakkota/jsoncontract"
)

// Decode decodes single YAML document.
func Decode(data []byte) (jsoncontract.Value, error) {
	var n yaml.Node
	if err := yaml.Unmarshal(data, &n); err != nil {
		return jsoncontract.Value{}, err
	}
	return FromNode(&n)
}

func resolveNode(n *yaml.Node) (_ *yaml.Node, reason string) {
	if n == nil {
		return nil, "node is nil"
	}
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil, "document node content is empty"
		}
		return resolveNode(n.Content[0])
	case yaml.AliasNode:
		return resolveNode(n.Alias)
	case yaml.MappingNode:
		if len(n.Content)%2 != 0 {
			return nil, "mapping node content length is not even"
		}
		return n, ""
	case 0:
		return nil, "document is empty"
	default:
		return n, ""
	}
}

// FromNode converts YAML node to jsoncontract.Value.
func FromNode(n *yaml.Node) (jsoncontract.Value, error) {
	n, reason := resolveNode(n)
	if n == nil {
		return jsoncontract.Value{}, errors.Errorf("node is invalid: %s", reason)
	}

	switch n.Kind {
	case yaml.ScalarNode:
		return fromScalar(n)
	case yaml.SequenceNode:
		elems := make([]jsoncontract.Value, 0, len(n.Content))
		for i, c := range n.Content {
			v, err := FromNode(c)
			if err != nil {
				return jsoncontract.Value{}, errors.Wrapf(err, "[%d]", i)
			}
			elems = append(elems, v)
		}
		return jsoncontract.ArrayValue(elems...), nil
	case yaml.MappingNode:
		return fromMapping(n)
	default:
		return jsoncontract.Value{}, errors.Errorf("unexpected node kind: %v", n.Kind)
	}
}

// fromMapping converts mapping node, applying "<<" merge keys.
//
// Explicit keys override merged ones, earlier merge sources override later ones.
func fromMapping(n *yaml.Node) (jsoncontract.Value, error) {
	content := n.Content
	var (
		members  = make([]jsoncontract.Member, 0, len(content)/2)
		merged   []jsoncontract.Member
		explicit = make(map[string]struct{}, len(content)/2)
	)
	for i := 0; i < len(content); i += 2 {
		key := resolveNodeOr(content[i], content[i])
		if key.Kind != yaml.ScalarNode {
			return jsoncontract.Value{}, errors.Errorf("line %d: key is not scalar", key.Line)
		}
		if isMerge(key) {
			m, err := mergeSources(content[i+1])
			if err != nil {
				return jsoncontract.Value{}, errors.Wrapf(err, "line %d: merge", key.Line)
			}
			merged = append(merged, m...)
			continue
		}
		v, err := FromNode(content[i+1])
		if err != nil {
			return jsoncontract.Value{}, errors.Wrapf(err, "%q", key.Value)
		}
		explicit[key.Value] = struct{}{}
		members = append(members, jsoncontract.Member{Key: key.Value, Value: v})
	}

	seen := make(map[string]struct{}, len(merged))
	for _, m := range merged {
		if _, ok := explicit[m.Key]; ok {
			continue
		}
		if _, ok := seen[m.Key]; ok {
			continue
		}
		seen[m.Key] = struct{}{}
		members = append(members, m)
	}
	return jsoncontract.ObjectValue(members...), nil
}

func isMerge(key *yaml.Node) bool {
	return key.Value == "<<" && key.ShortTag() == "!!merge"
}

// mergeSources returns members of merge value: a mapping or a sequence of mappings.
func mergeSources(n *yaml.Node) ([]jsoncontract.Member, error) {
	n, reason := resolveNode(n)
	if n == nil {
		return nil, errors.Errorf("node is invalid: %s", reason)
	}

	var sources []*yaml.Node
	switch n.Kind {
	case yaml.MappingNode:
		sources = []*yaml.Node{n}
	case yaml.SequenceNode:
		sources = n.Content
	default:
		return nil, errors.Errorf("line %d: expected mapping or sequence of mappings", n.Line)
	}

	var members []jsoncontract.Member
	for _, src := range sources {
		src := resolveNodeOr(src, src)
		if src.Kind != yaml.MappingNode {
			return nil, errors.Errorf("line %d: expected mapping", src.Line)
		}
		v, err := fromMapping(src)
		if err != nil {
			return nil, err
		}
		members = append(members, v.Members()...)
	}
	return members, nil
}

func resolveNodeOr(n, fallback *yaml.Node) *yaml.Node {
	n, _ = resolveNode(n)
	if n == nil {
		return fallback
	}
	return n
}

func fromScalar(n *yaml.Node) (jsoncontract.Value, error) {
	switch n.ShortTag() {
	case "!!null":
		return jsoncontract.NullValue(), nil
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err != nil {
			return jsoncontract.Value{}, errors.Wrapf(err, "line %d", n.Line)
		}
		return jsoncontract.BoolValue(b), nil
	case "!!int":
		// Base prefixes and digit separators are handled by big.Int.
		if i, ok := new(big.Int).SetString(n.Value, 0); ok {
			return jsoncontract.IntValue(i), nil
		}
		var i int64
		if err := n.Decode(&i); err != nil {
			return jsoncontract.Value{}, errors.Wrapf(err, "line %d", n.Line)
		}
		return jsoncontract.Int64Value(i), nil
	case "!!float":
		// Plain integers out of int64 and uint64 range are resolved as floats.
		if n.Style&yaml.TaggedStyle == 0 {
			if i, ok := new(big.Int).SetString(n.Value, 0); ok {
				return jsoncontract.IntValue(i), nil
			}
		}
		var f float64
		if err := n.Decode(&f); err != nil {
			return jsoncontract.Value{}, errors.Wrapf(err, "line %d", n.Line)
		}
		return jsoncontract.FloatValue(f), nil
	default:
		// Timestamps, binary and custom tags are kept as text.
		return jsoncontract.StringValue(n.Value), nil
	}
}
