package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"github.com/mattjoyce/pipeliner/internal/ipc"
)

func renderProperties(w io.Writer, path string, p *ipc.Properties) {
	r := lipgloss.NewRenderer(w)

	width := 0
	for name := range p.All() {
		width = max(width, lipgloss.Width(name))
	}

	title := r.NewStyle().Bold(true)
	key := r.NewStyle().Foreground(lipgloss.Color("12")).Width(width)
	muted := r.NewStyle().Foreground(lipgloss.Color("8"))

	fmt.Fprintln(w, title.Render(path)+" "+muted.Render(fmt.Sprintf("(%d properties)", p.Len())))
	for name, value := range p.All() {
		// Escaped so multi-line values stay on one row.
		fmt.Fprintf(w, "%s %s %s\n", key.Render(name), muted.Render("="), ipc.Escape(value))
	}
}

// encodeYAML writes p as a YAML mapping in property order. Values are tagged as
// strings so "true" or "10" survive a round trip through other YAML readers.
func encodeYAML(w io.Writer, p *ipc.Properties) error {
	doc := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for name, value := range p.All() {
		doc.Content = append(doc.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: name},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value},
		)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return enc.Close()
}

// decodeYAML reads a flat mapping of scalars, keeping document order. Null
// values become empty strings.
func decodeYAML(data []byte) (*ipc.Properties, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	p := ipc.NewProperties()
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return p, nil
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, errors.New("document is not a mapping")
	}

	for i := 0; i+1 < len(root.Content); i += 2 {
		k, v := root.Content[i], root.Content[i+1]
		if k.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("line %d: key is not a scalar", k.Line)
		}
		if v.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("line %d: value of %q is not a scalar", v.Line, k.Value)
		}
		value := v.Value
		if v.Tag == "!!null" {
			value = ""
		}
		p.Set(k.Value, value)
	}
	return p, nil
}
