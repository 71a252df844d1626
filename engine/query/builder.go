package query

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/compozy/monday-mcp/engine/core"
)

// Document is a rendered GraphQL operation
type Document struct {
	Kind core.OperationKind `json:"kind"`
	Text string             `json:"text"`
}

// String returns the document text
func (d *Document) String() string {
	return d.Text
}

// Arg is a rendered GraphQL argument. Empty optional arguments are skipped.
type Arg struct {
	name     string
	value    string
	skip     bool
	required bool
}

// ID renders an identifier argument unquoted (board_id: 123)
func ID(name, value string) Arg {
	return Arg{name: name, value: strings.TrimSpace(value), required: true}
}

// OptID renders an identifier argument, or nothing when value is empty
func OptID(name, value string) Arg {
	value = strings.TrimSpace(value)
	return Arg{name: name, value: value, skip: value == ""}
}

// Int renders an integer argument
func Int(name string, value int) Arg {
	return Arg{name: name, value: strconv.Itoa(value)}
}

// String renders a quoted string argument with escaping
func String(name, value string) Arg {
	return Arg{name: name, value: Quote(value)}
}

// OptString renders a quoted string argument, or nothing when value is empty
func OptString(name, value string) Arg {
	return Arg{name: name, value: Quote(value), skip: value == ""}
}

// Enum renders a bare enum value (type: heading)
func Enum(name, value string) Arg {
	return Arg{name: name, value: strings.TrimSpace(value), required: true}
}

// IDs renders a list of identifiers ([1, 2, 3])
func IDs(name string, values []string) Arg {
	trimmed := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			trimmed = append(trimmed, v)
		}
	}
	return Arg{name: name, value: "[" + strings.Join(trimmed, ", ") + "]", required: true}
}

// Strings renders a list of quoted strings (["a", "b"])
func Strings(name string, values []string) Arg {
	quoted := make([]string, 0, len(values))
	for _, v := range values {
		quoted = append(quoted, Quote(v))
	}
	return Arg{name: name, value: "[" + strings.Join(quoted, ", ") + "]"}
}

// Raw renders a pre-built value verbatim, typically an input object
func Raw(name, value string) Arg {
	return Arg{name: name, value: value, skip: value == ""}
}

// Object renders an input object value ({column_id: "group", operator: any_of})
func Object(args ...Arg) string {
	return "{" + strings.Join(renderArgs(args), ", ") + "}"
}

// List renders a list of pre-rendered values
func List(values ...string) string {
	return "[" + strings.Join(values, ", ") + "]"
}

func renderArgs(args []Arg) []string {
	rendered := make([]string, 0, len(args))
	for _, arg := range args {
		if arg.skip {
			continue
		}
		rendered = append(rendered, arg.name+": "+arg.value)
	}
	return rendered
}

// Quote renders s as a GraphQL string literal. It is the single escaping
// point for every user-supplied string that ends up in a document.
func Quote(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case '\b':
			b.WriteString(`\b`)
		case '\f':
			b.WriteString(`\f`)
		default:
			if r < 0x20 {
				fmt.Fprintf(&b, `\u%04x`, r)
				continue
			}
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}

// Field is a selection with optional arguments and sub-selections
type Field struct {
	Name      string
	Args      []Arg
	Selection []Field
}

// F creates a field with arguments
func F(name string, args ...Arg) Field {
	return Field{Name: name, Args: args}
}

// Select appends sub-selections. Strings become leaf fields.
func (f Field) Select(fields ...any) Field {
	for _, field := range fields {
		switch v := field.(type) {
		case string:
			f.Selection = append(f.Selection, Field{Name: v})
		case Field:
			f.Selection = append(f.Selection, v)
		default:
			panic(fmt.Sprintf("query: unsupported selection type %T", field))
		}
	}
	return f
}

// Builder renders a GraphQL operation document
type Builder struct {
	kind   core.OperationKind
	fields []Field
	errors []error
}

// NewBuilder creates a new document builder
func NewBuilder(kind core.OperationKind) *Builder {
	return &Builder{
		kind:   kind,
		errors: make([]error, 0),
	}
}

// Query creates a builder for a query operation
func Query() *Builder {
	return NewBuilder(core.OperationQuery)
}

// Mutation creates a builder for a mutation operation
func Mutation() *Builder {
	return NewBuilder(core.OperationMutation)
}

// Field adds a top-level field to the operation
func (b *Builder) Field(field Field) *Builder {
	b.check(field)
	b.fields = append(b.fields, field)
	return b
}

func (b *Builder) check(field Field) {
	for _, arg := range field.Args {
		if arg.required && !arg.skip && (arg.value == "" || arg.value == "[]") {
			b.errors = append(b.errors, fmt.Errorf("argument %s of %s is empty", arg.name, field.Name))
		}
	}
	for _, sub := range field.Selection {
		b.check(sub)
	}
}

// Build returns the rendered document
func (b *Builder) Build() (*Document, error) {
	if len(b.errors) > 0 {
		return nil, core.NewError(errors.Join(b.errors...), core.ErrorCodeInvalidArguments, nil)
	}
	if len(b.fields) == 0 {
		return nil, core.Errorf(core.ErrorCodeInvalidDocument, "document has no fields")
	}
	return &Document{Kind: b.kind, Text: b.String()}, nil
}

// String returns the document text
func (b *Builder) String() string {
	var sb strings.Builder
	sb.WriteString(string(b.kind))
	sb.WriteString(" {\n")
	for _, field := range b.fields {
		writeField(&sb, field, 1)
	}
	sb.WriteString("}")
	return sb.String()
}

func writeField(sb *strings.Builder, field Field, depth int) {
	indent := strings.Repeat("  ", depth)
	sb.WriteString(indent)
	sb.WriteString(field.Name)

	if rendered := renderArgs(field.Args); len(rendered) > 0 {
		sb.WriteString("(")
		sb.WriteString(strings.Join(rendered, ", "))
		sb.WriteString(")")
	}

	if len(field.Selection) > 0 {
		sb.WriteString(" {\n")
		for _, sub := range field.Selection {
			writeField(sb, sub, depth+1)
		}
		sb.WriteString(indent)
		sb.WriteString("}")
	}
	sb.WriteString("\n")
}
