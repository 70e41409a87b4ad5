// If you are AI: This file implements the YAML export codec as an ordered yaml.v3 node tree.

package export

import (
	"math"
	"strconv"

	"gopkg.in/yaml.v3"

	"soledit/internal/core/protocol/amf0"
)

// YAML writes documents as YAML mappings in key order.
type YAML struct{}

func (YAML) Name() string { return "yaml" }

func (YAML) Marshal(doc *amf0.Document) ([]byte, error) {
	return yaml.Marshal(documentNode(doc))
}

func documentNode(doc *amf0.Document) *yaml.Node {
	n := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	doc.Range(func(k string, v amf0.Value) bool {
		// Keys are always strings; numeric-looking keys stay quoted
		key := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k}
		n.Content = append(n.Content, key, valueNode(v))
		return true
	})
	return n
}

func valueNode(v amf0.Value) *yaml.Node {
	switch v.Kind() {
	case amf0.KindNumber:
		if i, ok := v.AsInt(); ok {
			return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.FormatInt(i, 10)}
		}
		f, _ := v.AsNumber()
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!float", Value: formatFloat(f)}
	case amf0.KindString:
		s, _ := v.AsString()
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
	case amf0.KindBoolean:
		b, _ := v.AsBool()
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: strconv.FormatBool(b)}
	case amf0.KindObject:
		sub, _ := v.AsObject()
		return documentNode(sub)
	default:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
	}
}

func formatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return ".nan"
	case math.IsInf(f, 1):
		return ".inf"
	case math.IsInf(f, -1):
		return "-.inf"
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}
