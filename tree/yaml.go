package tree

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// FromYAML decodes a single YAML document into a Node. Mapping key order is
// preserved. Only string-keyed mappings are accepted; anchors and aliases are
// resolved while converting.
func FromYAML(data []byte) (Node, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if doc.Kind == 0 {
		return nil, fmt.Errorf("tree: empty YAML document")
	}
	root := &doc
	if doc.Kind == yaml.DocumentNode {
		if len(doc.Content) == 0 {
			return nil, fmt.Errorf("tree: empty YAML document")
		}
		root = doc.Content[0]
	}
	return yamlToNode(root)
}

func yamlToNode(yn *yaml.Node) (Node, error) {
	switch yn.Kind {
	case yaml.AliasNode:
		return yamlToNode(yn.Alias)
	case yaml.MappingNode:
		o := NewObject()
		for i := 0; i+1 < len(yn.Content); i += 2 {
			k := yn.Content[i]
			if k.Kind == yaml.AliasNode {
				k = k.Alias
			}
			if k.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("tree: non-scalar mapping key at line %d", k.Line)
			}
			v, err := yamlToNode(yn.Content[i+1])
			if err != nil {
				return nil, err
			}
			o.setInPlace(k.Value, v)
		}
		return o, nil
	case yaml.SequenceNode:
		a := &Array{}
		for _, c := range yn.Content {
			v, err := yamlToNode(c)
			if err != nil {
				return nil, err
			}
			a.elems = append(a.elems, v)
		}
		return a, nil
	case yaml.ScalarNode:
		return yamlScalar(yn)
	default:
		return nil, fmt.Errorf("tree: unsupported YAML node kind %d at line %d", yn.Kind, yn.Line)
	}
}

func yamlScalar(yn *yaml.Node) (Node, error) {
	switch yn.Tag {
	case "!!null", "":
		if yn.Tag == "" && yn.Value != "" {
			return NewString(yn.Value), nil
		}
		return Null(), nil
	case "!!bool":
		var b bool
		if err := yn.Decode(&b); err != nil {
			return nil, err
		}
		return NewBool(b), nil
	case "!!int", "!!float":
		return NewNumber(json.Number(yn.Value)), nil
	default:
		return NewString(yn.Value), nil
	}
}
