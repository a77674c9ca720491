// Package codec reads and writes declaration trees as YAML or JSON
// documents. Every node carries a "kind" discriminator naming its ir.Kind.
//
//	kind: module
//	name: lib
//	uid: module:lib
//	declarations:
//	  - kind: class
//	    name: Album
//	    uid: class:Album
//	    members:
//	      - kind: method
//	        name: play
//	        type: {kind: this_type}
package codec

import (
	"bytes"
	"encoding/json"
	"io"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/teranos/declower/errors"
	"github.com/teranos/declower/ir"
)

// Format is a document encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// ParseFormat accepts "yaml", "yml" and "json", case-insensitively.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(s, ".")) {
	case "yaml", "yml", "":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	}
	return "", errors.Newf("unknown format %q (want yaml or json)", s)
}

// FormatForPath picks the format from a file extension, defaulting to YAML.
func FormatForPath(path string) Format {
	if f, err := ParseFormat(filepath.Ext(path)); err == nil {
		return f
	}
	return FormatYAML
}

// EncodeModule writes root to w.
func EncodeModule(w io.Writer, root *ir.Module, format Format) error {
	if root == nil {
		return errors.Wrap(errors.ErrInvalidTree, "nil root module")
	}
	doc, err := encodeNode(root)
	if err != nil {
		return err
	}
	return write(w, doc, format)
}

// EncodeModules writes a module list, e.g. a flattened tree.
func EncodeModules(w io.Writer, modules []*ir.Module, format Format) error {
	docs := make([]*node, 0, len(modules))
	for _, m := range modules {
		doc, err := encodeNode(m)
		if err != nil {
			return err
		}
		docs = append(docs, doc)
	}
	return write(w, docs, format)
}

// DecodeOption adjusts decoding.
type DecodeOption func(*decodeOptions)

type decodeOptions struct {
	mintUIDs bool
}

// GenerateMissingUIDs assigns a fresh ir.UID to declarations that need an
// identity but have none, instead of rejecting the document. References
// cannot point at such declarations, so this suits hand-written trees.
func GenerateMissingUIDs() DecodeOption {
	return func(o *decodeOptions) {
		o.mintUIDs = true
	}
}

func buildDecodeOptions(opts []DecodeOption) decodeOptions {
	var o decodeOptions
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// DecodeModule reads a single module tree from r.
func DecodeModule(r io.Reader, format Format, opts ...DecodeOption) (*ir.Module, error) {
	var doc node
	if err := read(r, &doc, format); err != nil {
		return nil, err
	}
	m, err := decodeModule(&doc, "$", buildDecodeOptions(opts))
	if err != nil {
		return nil, err
	}
	return m, nil
}

// DecodeModules reads a module list written by EncodeModules.
func DecodeModules(r io.Reader, format Format, opts ...DecodeOption) ([]*ir.Module, error) {
	var docs []*node
	if err := read(r, &docs, format); err != nil {
		return nil, err
	}
	o := buildDecodeOptions(opts)
	out := make([]*ir.Module, len(docs))
	for i, doc := range docs {
		m, err := decodeModule(doc, indexPath("$", i), o)
		if err != nil {
			return nil, err
		}
		out[i] = m
	}
	return out, nil
}

// Marshal encodes root into a byte slice.
func Marshal(root *ir.Module, format Format) ([]byte, error) {
	var buf bytes.Buffer
	if err := EncodeModule(&buf, root, format); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal decodes a module tree from data.
func Unmarshal(data []byte, format Format, opts ...DecodeOption) (*ir.Module, error) {
	return DecodeModule(bytes.NewReader(data), format, opts...)
}

func write(w io.Writer, v interface{}, format Format) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return errors.Wrap(err, "encode json")
		}
		return nil
	case FormatYAML, "":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return errors.Wrap(err, "encode yaml")
		}
		return errors.Wrap(enc.Close(), "encode yaml")
	}
	return errors.Newf("unknown format %q", format)
}

func read(r io.Reader, v interface{}, format Format) error {
	switch format {
	case FormatJSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(v); err != nil {
			if errors.Is(err, io.EOF) {
				return errors.Wrap(errors.ErrInvalidTree, "empty document")
			}
			return errors.Wrap(err, "decode json")
		}
		return nil
	case FormatYAML, "":
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(v); err != nil {
			if errors.Is(err, io.EOF) {
				return errors.Wrap(errors.ErrInvalidTree, "empty document")
			}
			return errors.Wrap(err, "decode yaml")
		}
		return nil
	}
	return errors.Newf("unknown format %q", format)
}
