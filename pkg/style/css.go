package style

import (
	"strconv"
	"strings"
)

// Declaration is a single CSS property/value pair.
type Declaration struct {
	Property string `json:"property"`
	Value    string `json:"value"`
}

// Declarations returns the surface declarations in a stable order.
// Reading guide declarations are only present when the guide is on.
func (d Derived) Declarations() []Declaration {
	decls := []Declaration{
		{"background-color", d.Background},
		{"color", d.Text},
		{"font-family", d.FontFamily},
		{"font-size", d.FontSize},
		{"line-height", strconv.FormatFloat(d.LineHeight, 'f', -1, 64)},
		{"letter-spacing", d.LetterSpacing},
		{"max-width", d.MaxWidth},
		{"padding", d.Padding},
		{"border-radius", d.Edges.Radius},
		{"box-shadow", d.Edges.Shadow},
	}
	if d.Guide != nil {
		decls = append(decls,
			Declaration{"background-image", d.Guide.Image},
			Declaration{"background-size", d.Guide.Size},
		)
	}
	return decls
}

// SectionDeclarations styles each article section.
func (d Derived) SectionDeclarations() []Declaration {
	return []Declaration{
		{"margin-bottom", d.SectionMargin},
	}
}

// DividerDeclarations styles the trailing tip block.
func (d Derived) DividerDeclarations() []Declaration {
	return []Declaration{
		{"margin-top", d.DividerMargin},
		{"border-top", d.DividerBorder},
		{"color", d.Muted},
	}
}

// CSS renders the surface, section and divider rules. The section and
// divider selectors are nested under selector.
func (d Derived) CSS(selector string) string {
	var b strings.Builder
	writeRule(&b, selector, d.Declarations())
	b.WriteString("\n")
	writeRule(&b, selector+" section", append(d.SectionDeclarations(), Declaration{"color", d.Text}))
	b.WriteString("\n")
	writeRule(&b, selector+" section h3", []Declaration{{"color", d.Accent}})
	b.WriteString("\n")
	writeRule(&b, selector+" .tips", d.DividerDeclarations())
	return b.String()
}

func writeRule(b *strings.Builder, selector string, decls []Declaration) {
	b.WriteString(selector)
	b.WriteString(" {\n")
	for _, decl := range decls {
		b.WriteString("  ")
		b.WriteString(decl.Property)
		b.WriteString(": ")
		b.WriteString(decl.Value)
		b.WriteString(";\n")
	}
	b.WriteString("}\n")
}
