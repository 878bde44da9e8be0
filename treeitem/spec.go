package treeitem

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/go-logr/logr"
	"github.com/pkg/errors"
)

// SpecKind tags the variant held by a RenderSpec.
type SpecKind int

const (
	// SpecNone renders nothing. It is the zero value.
	SpecNone SpecKind = iota
	// SpecDefault selects the feature's built-in rendering.
	SpecDefault
	// SpecTemplate renders a text/template against the node's Model.
	SpecTemplate
	// SpecFunc calls a caller supplied renderer with the node.
	SpecFunc
	// SpecMalformed holds configuration that could not be interpreted.
	SpecMalformed
)

func (k SpecKind) String() string {
	switch k {
	case SpecNone:
		return "none"
	case SpecDefault:
		return "default"
	case SpecTemplate:
		return "template"
	case SpecFunc:
		return "func"
	default:
		return "malformed"
	}
}

// RenderFunc renders a feature for a node.
type RenderFunc func(Node) *Element

// RenderSpec is a tagged variant: Default, Template or Func. Its zero value
// renders nothing.
type RenderSpec struct {
	kind SpecKind
	src  string
	tmpl *template.Template
	fn   RenderFunc
	err  error
}

// Bool returns Default for true and None for false.
func Bool(b bool) RenderSpec {
	if b {
		return RenderSpec{kind: SpecDefault}
	}
	return RenderSpec{}
}

// Default selects the built-in rendering.
func Default() RenderSpec { return RenderSpec{kind: SpecDefault} }

// Func wraps a custom renderer. A nil fn renders nothing.
func Func(fn RenderFunc) RenderSpec {
	if fn == nil {
		return RenderSpec{}
	}
	return RenderSpec{kind: SpecFunc, fn: fn}
}

// Template parses src as a text/template executed against the node's Model.
// An empty source renders nothing; a parse failure yields a malformed spec.
func Template(src string) RenderSpec {
	if src == "" {
		return RenderSpec{}
	}
	t, err := template.New("render").Option("missingkey=zero").Parse(src)
	if err != nil {
		return RenderSpec{kind: SpecMalformed, src: src, err: errors.Wrap(err, "parsing render template")}
	}
	return RenderSpec{kind: SpecTemplate, src: src, tmpl: t}
}

// FromValue converts loosely typed configuration into a RenderSpec.
// Values other than nil, bool, string or a render function are malformed.
func FromValue(v any) RenderSpec {
	switch t := v.(type) {
	case nil:
		return RenderSpec{}
	case RenderSpec:
		return t
	case bool:
		return Bool(t)
	case string:
		return Template(t)
	case RenderFunc:
		return Func(t)
	case func(Node) *Element:
		return Func(t)
	default:
		return RenderSpec{kind: SpecMalformed, err: errors.Errorf("unsupported render spec type %T", v)}
	}
}

func (s RenderSpec) Kind() SpecKind { return s.kind }

// IsDefault reports whether the spec asks for built-in rendering.
func (s RenderSpec) IsDefault() bool { return s.kind == SpecDefault }

// Enabled reports whether the spec is truthy, i.e. may render something.
func (s RenderSpec) Enabled() bool {
	switch s.kind {
	case SpecDefault, SpecTemplate, SpecFunc:
		return true
	}
	return false
}

// Err returns why a malformed spec was rejected.
func (s RenderSpec) Err() error { return s.err }

func (s RenderSpec) String() string {
	if s.src != "" {
		return fmt.Sprintf("%s(%q)", s.kind, s.src)
	}
	return s.kind.String()
}

// Resolve renders a non-default spec against node. Default and None resolve
// to nothing here; callers handle Default before falling through.
func Resolve(s RenderSpec, node Node, log logr.Logger) *Element {
	switch s.kind {
	case SpecFunc:
		return s.fn(node)
	case SpecTemplate:
		var buf bytes.Buffer
		if err := s.tmpl.Execute(&buf, node.Model()); err != nil {
			log.V(4).Info("render template failed", "node", node.Value(), "template", s.src, "err", err)
			return nil
		}
		if buf.Len() == 0 {
			return nil
		}
		return Text(buf.String())
	case SpecMalformed:
		log.V(4).Info("ignoring malformed render spec", "node", node.Value(), "err", s.err)
	}
	return nil
}
