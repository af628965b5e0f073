package document

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

const tagMerge = "!!merge"

// ErrMultipleDocuments is returned when a stream holds more than one document.
var ErrMultipleDocuments = errors.New("expected a single YAML document")

// Parse decodes the single YAML document in data. Empty input yields Absent.
func Parse(data []byte) (Value, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))

	var root yaml.Node
	if err := dec.Decode(&root); err != nil {
		if errors.Is(err, io.EOF) {
			return Value{}, nil
		}
		return Value{}, err
	}

	var extra yaml.Node
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		if err != nil {
			return Value{}, err
		}
		return Value{}, ErrMultipleDocuments
	}
	return FromNode(&root)
}

// Marshal encodes v as block-style YAML with two-space indentation.
// Mapping keys keep their insertion order and literal-hinted scalars are
// written as | blocks.
func Marshal(v Value) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(ToNode(v)); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// FromNode converts a yaml.v3 node tree into a Value.
// Aliases are resolved and merge keys (<<) are flattened.
func FromNode(n *yaml.Node) (Value, error) {
	return fromNode(n, make(map[*yaml.Node]bool))
}

func fromNode(n *yaml.Node, resolving map[*yaml.Node]bool) (Value, error) {
	if n == nil {
		return Value{}, nil
	}

	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return Value{}, nil
		}
		return fromNode(n.Content[0], resolving)

	case yaml.AliasNode:
		if resolving[n.Alias] {
			return Value{}, fmt.Errorf("line %d: alias *%s refers to itself", n.Line, n.Value)
		}
		resolving[n.Alias] = true
		defer delete(resolving, n.Alias)
		return fromNode(n.Alias, resolving)

	case yaml.ScalarNode:
		tag := n.ShortTag()
		if tag == TagNull {
			return Value{}, nil
		}
		return ScalarOf(tag, n.Value), nil

	case yaml.SequenceNode:
		items := make([]Value, 0, len(n.Content))
		for _, child := range n.Content {
			item, err := fromNode(child, resolving)
			if err != nil {
				return Value{}, err
			}
			items = append(items, item)
		}
		return Seq(items...), nil

	case yaml.MappingNode:
		return mappingFromNode(n, resolving)

	default:
		// Zero node, e.g. from empty input.
		return Value{}, nil
	}
}

func mappingFromNode(n *yaml.Node, resolving map[*yaml.Node]bool) (Value, error) {
	result := NewMap()
	explicit := NewMap()

	for i := 0; i+1 < len(n.Content); i += 2 {
		keyNode, valueNode := n.Content[i], n.Content[i+1]
		if keyNode.Kind == yaml.AliasNode && keyNode.Alias != nil {
			keyNode = keyNode.Alias
		}
		if keyNode.Kind != yaml.ScalarNode {
			return Value{}, fmt.Errorf("line %d: mapping key must be a scalar", keyNode.Line)
		}

		if keyNode.ShortTag() == tagMerge {
			if err := mergeInto(result, valueNode, resolving); err != nil {
				return Value{}, err
			}
			continue
		}

		value, err := fromNode(valueNode, resolving)
		if err != nil {
			return Value{}, err
		}
		explicit.Set(keyNode.Value, value)
	}

	// Explicit keys win over merged ones.
	for _, key := range explicit.Keys() {
		value, _ := explicit.Get(key)
		result.Set(key, value)
	}
	return Mapping(result), nil
}

func mergeInto(dst *Map, n *yaml.Node, resolving map[*yaml.Node]bool) error {
	source, err := fromNode(n, resolving)
	if err != nil {
		return err
	}

	var sources []Value
	switch source.Kind() {
	case KindMapping:
		sources = []Value{source}
	case KindSequence:
		sources = source.Items()
	default:
		return fmt.Errorf("line %d: merge key requires a mapping or a sequence of mappings", n.Line)
	}

	for _, src := range sources {
		m := src.Map()
		if m == nil {
			return fmt.Errorf("line %d: merge key requires a mapping or a sequence of mappings", n.Line)
		}
		for _, key := range m.Keys() {
			if dst.Has(key) {
				continue
			}
			value, _ := m.Get(key)
			dst.Set(key, value)
		}
	}
	return nil
}

// ToNode converts v into a yaml.v3 node tree, applying render hints.
func ToNode(v Value) *yaml.Node {
	switch v.kind {
	case KindScalar:
		n := &yaml.Node{Kind: yaml.ScalarNode, Tag: v.tag, Value: v.text}
		if v.style == StyleLiteral {
			n.Style = yaml.LiteralStyle
		}
		return n

	case KindSequence:
		n := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, item := range v.items {
			n.Content = append(n.Content, ToNode(item))
		}
		return n

	case KindMapping:
		n := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for _, key := range v.m.Keys() {
			value, _ := v.m.Get(key)
			n.Content = append(n.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Tag: TagString, Value: key},
				ToNode(value),
			)
		}
		return n

	default:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: TagNull, Value: "null"}
	}
}
