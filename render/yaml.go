package render

import (
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/reoring/itksn"
)

// node builds a yaml.Node tree so that mappings keep the field order.
func node(v any) *yaml.Node {
	switch x := v.(type) {
	case nil:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
	case object:
		n := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for _, m := range x {
			n.Content = append(n.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: m.key},
				node(m.value),
			)
		}
		return n
	case int64:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.FormatInt(x, 10)}
	case string:
		// digits such as "0002" must stay strings
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: x}
	}
	n := &yaml.Node{}
	_ = n.Encode(v)
	return n
}

func marshalYAML(v itksn.Value, o Options) ([]byte, error) {
	return yaml.Marshal(node(plain(v, o)))
}
