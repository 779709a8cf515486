package config

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Document represents a full token table file.
type Document struct {
	Name       string        `yaml:"name,omitempty" validate:"omitempty,max=100"`
	Output     string        `yaml:"output,omitempty" validate:"omitempty,css_path"`
	Conversion string        `yaml:"conversion,omitempty" validate:"omitempty,conversion_method"`
	Selectors  Selectors     `yaml:"selectors,omitempty"`
	Imports    []string      `yaml:"imports,omitempty" validate:"omitempty,dive,required"`
	Light      OrderedMap    `yaml:"light" validate:"required,min=1,dive"`
	Dark       OrderedMap    `yaml:"dark" validate:"required,min=1,dive"`
	Design     Design        `yaml:"design"`
	Gradients  OrderedMap    `yaml:"gradients,omitempty" validate:"omitempty,dive"`
	Semantic   OrderedMap    `yaml:"semantic,omitempty" validate:"omitempty,dive"`
	Components ComponentTree `yaml:"components,omitempty" validate:"omitempty,dive"`
}

// Selectors names the scopes the two modes are emitted under.
type Selectors struct {
	Root string `yaml:"root,omitempty" validate:"omitempty,css_selector"`
	Dark string `yaml:"dark,omitempty" validate:"omitempty,css_selector"`
}

// Design holds the mode-independent design tokens.
type Design struct {
	Radius        Radius        `yaml:"radius"`
	Shadow        Shadow        `yaml:"shadow"`
	Fonts         Fonts         `yaml:"fonts"`
	LetterSpacing LetterSpacing `yaml:"letterSpacing"`
	Spacing       Spacing       `yaml:"spacing"`
}

// Radius is the corner radius scale.
type Radius struct {
	Base string `yaml:"base" validate:"required,css_length"`
	SM   string `yaml:"sm,omitempty"`
	MD   string `yaml:"md,omitempty"`
	LG   string `yaml:"lg,omitempty"`
	XL   string `yaml:"xl,omitempty"`
	Full string `yaml:"full,omitempty"`
}

// Shadow is the base shadow recipe the shadow scale is derived from.
type Shadow struct {
	Color   string  `yaml:"color" validate:"required"`
	Opacity float64 `yaml:"opacity" validate:"gte=0,lte=1"`
	Blur    string  `yaml:"blur" validate:"required,css_length"`
	Spread  string  `yaml:"spread" validate:"required,css_length"`
	OffsetX string  `yaml:"offsetX" validate:"required,css_length"`
	OffsetY string  `yaml:"offsetY" validate:"required,css_length"`
}

// Fonts are the font family stacks.
type Fonts struct {
	Sans  string `yaml:"sans" validate:"required"`
	Serif string `yaml:"serif,omitempty"`
	Mono  string `yaml:"mono,omitempty"`
}

// LetterSpacing is the tracking scale.
type LetterSpacing struct {
	Normal  string `yaml:"normal" validate:"required,css_length"`
	Tight   string `yaml:"tight,omitempty" validate:"omitempty,css_length"`
	Tighter string `yaml:"tighter,omitempty" validate:"omitempty,css_length"`
	Wide    string `yaml:"wide,omitempty" validate:"omitempty,css_length"`
	Wider   string `yaml:"wider,omitempty" validate:"omitempty,css_length"`
	Widest  string `yaml:"widest,omitempty" validate:"omitempty,css_length"`
}

// Spacing is the base spacing unit.
type Spacing struct {
	Base string `yaml:"base" validate:"required,css_length"`
}

// Pair is one key/value entry of an ordered mapping. Line is the source line
// of the key, zero when the pair was built in memory. An empty Value is
// allowed in the light and dark groups, where it renders as the neutral color.
type Pair struct {
	Key   string `validate:"required"`
	Value string
	Line  int `validate:"-"`
}

// OrderedMap is a flat string mapping that keeps document order and
// duplicate keys so they can be reported.
type OrderedMap []Pair

// UnmarshalYAML decodes a mapping of scalars without losing key order.
func (m *OrderedMap) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: expected a mapping of token names to values", value.Line)
	}

	pairs := make(OrderedMap, 0, len(value.Content)/2)
	for i := 0; i+1 < len(value.Content); i += 2 {
		key, val := value.Content[i], value.Content[i+1]
		if val.Kind != yaml.ScalarNode {
			return fmt.Errorf("line %d: token %q must be a scalar value", val.Line, key.Value)
		}
		pairs = append(pairs, Pair{Key: key.Value, Value: val.Value, Line: key.Line})
	}
	*m = pairs
	return nil
}

// MarshalYAML encodes the mapping in its stored order.
func (m OrderedMap) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, p := range m {
		node.Content = append(node.Content, scalar(p.Key), scalar(p.Value))
	}
	return node, nil
}

// Get returns the value of the first pair called key.
func (m OrderedMap) Get(key string) (string, bool) {
	for _, p := range m {
		if p.Key == key {
			return p.Value, true
		}
	}
	return "", false
}

// ComponentTree is an arbitrarily nested mapping flattened to dotted paths
// ("kpiCards.blue.bg") in document order.
type ComponentTree []Pair

// UnmarshalYAML flattens nested mappings into dotted paths.
func (c *ComponentTree) UnmarshalYAML(value *yaml.Node) error {
	var pairs ComponentTree
	if err := flatten(value, "", &pairs); err != nil {
		return err
	}
	*c = pairs
	return nil
}

func flatten(node *yaml.Node, prefix string, out *ComponentTree) error {
	switch node.Kind {
	case yaml.MappingNode:
		for i := 0; i+1 < len(node.Content); i += 2 {
			key, val := node.Content[i], node.Content[i+1]
			if strings.Contains(key.Value, ".") {
				return fmt.Errorf("line %d: component key %q must not contain '.'", key.Line, key.Value)
			}
			path := key.Value
			if prefix != "" {
				path = prefix + "." + key.Value
			}
			if val.Kind == yaml.ScalarNode {
				*out = append(*out, Pair{Key: path, Value: val.Value, Line: key.Line})
				continue
			}
			if err := flatten(val, path, out); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("line %d: components must be nested mappings of scalar values", node.Line)
	}
}

// MarshalYAML rebuilds the nested mapping from the dotted paths.
func (c ComponentTree) MarshalYAML() (interface{}, error) {
	root := &yaml.Node{Kind: yaml.MappingNode}
	for _, p := range c {
		segments := strings.Split(p.Key, ".")
		parent := root
		for _, seg := range segments[:len(segments)-1] {
			parent = child(parent, seg)
		}
		parent.Content = append(parent.Content, scalar(segments[len(segments)-1]), scalar(p.Value))
	}
	return root, nil
}

// child returns the mapping stored under key in parent, creating it if needed.
func child(parent *yaml.Node, key string) *yaml.Node {
	for i := 0; i+1 < len(parent.Content); i += 2 {
		if parent.Content[i].Value == key && parent.Content[i+1].Kind == yaml.MappingNode {
			return parent.Content[i+1]
		}
	}
	node := &yaml.Node{Kind: yaml.MappingNode}
	parent.Content = append(parent.Content, scalar(key), node)
	return node
}

func scalar(value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value}
}
