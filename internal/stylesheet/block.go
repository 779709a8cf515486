package stylesheet

import "strings"

// Declaration is one custom property. Name excludes the leading "--".
type Declaration struct {
	Name  string
	Value string
}

// Property returns the custom property name including the "--" prefix.
func (d Declaration) Property() string {
	return "--" + d.Name
}

// String renders the declaration as "--name: value;".
func (d Declaration) String() string {
	return d.Property() + ": " + d.Value + ";"
}

// Block is the serialized variable set of one selector scope. Declaration
// order only affects readability.
type Block struct {
	Selector     string
	Declarations []Declaration
}

// Add appends a declaration.
func (b *Block) Add(name, value string) {
	b.Declarations = append(b.Declarations, Declaration{Name: name, Value: value})
}

// Append appends several declarations.
func (b *Block) Append(decls ...Declaration) {
	b.Declarations = append(b.Declarations, decls...)
}

// Lookup returns the value of the first declaration called name ("--" optional).
func (b Block) Lookup(name string) (string, bool) {
	name = strings.TrimPrefix(name, "--")
	for _, d := range b.Declarations {
		if d.Name == name {
			return d.Value, true
		}
	}
	return "", false
}

// Render writes the block with each declaration on its own indented line.
func (b Block) Render() string {
	var sb strings.Builder
	sb.WriteString(b.Selector)
	sb.WriteString(" {\n")
	for _, d := range b.Declarations {
		sb.WriteString(indent)
		sb.WriteString(d.String())
		sb.WriteByte('\n')
	}
	sb.WriteString("}\n")
	return sb.String()
}

const indent = "  "
