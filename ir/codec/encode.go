package codec

import (
	"github.com/teranos/declower/errors"
	"github.com/teranos/declower/ir"
	"github.com/teranos/declower/name"
)

func encodeNode(n ir.Node) (*node, error) {
	if n == nil {
		return nil, nil
	}
	doc := &node{Kind: n.Kind().String()}

	var err error
	switch v := n.(type) {
	case *ir.Module:
		doc.Name = nameString(v.Name)
		doc.ShortName = nameString(v.ShortName)
		doc.UID = string(v.UID)
		doc.Imports = nameStrings(v.Imports)
		for _, a := range v.Annotations {
			doc.Annotations = append(doc.Annotations, &annotation{Name: a.Name, Params: identStrings(a.Params)})
		}
		if doc.Declarations, err = encodeAll(v.Declarations); err != nil {
			return nil, err
		}
		if doc.Submodules, err = encodeAll(v.Submodules); err != nil {
			return nil, err
		}
	case *ir.Class:
		doc.Name, doc.UID, doc.Meta = nameString(v.Name), string(v.UID), tags(v.Meta)
		doc.Abstract, doc.Exported = v.Abstract, v.Exported
		err = classLike(doc, v.TypeParameters, v.Parents, v.Members)
	case *ir.Interface:
		doc.Name, doc.UID, doc.Meta = nameString(v.Name), string(v.UID), tags(v.Meta)
		doc.Generated, doc.Exported = v.Generated, v.Exported
		err = classLike(doc, v.TypeParameters, v.Parents, v.Members)
	case *ir.Object:
		doc.Name, doc.UID, doc.Meta = nameString(v.Name), string(v.UID), tags(v.Meta)
		doc.Exported = v.Exported
		err = classLike(doc, nil, v.Parents, v.Members)
	case *ir.Function:
		doc.Name, doc.UID, doc.Meta = nameString(v.Name), string(v.UID), tags(v.Meta)
		doc.Inline, doc.Operator, doc.Exported = v.Inline, v.Operator, v.Exported
		doc.Extend = encodeReceiver(v.Extend)
		err = signature(doc, v.TypeParameters, v.Parameters, v.Type)
	case *ir.Variable:
		doc.Name, doc.Meta = nameString(v.Name), tags(v.Meta)
		doc.Immutable, doc.Inline, doc.Exported = v.Immutable, v.Inline, v.Exported
		doc.Extend = encodeReceiver(v.Extend)
		doc.Type, err = encodeNode(v.Type)
	case *ir.TypeAlias:
		doc.Name, doc.UID, doc.Meta = nameString(v.Name), string(v.UID), tags(v.Meta)
		err = signature(doc, v.TypeParameters, nil, v.TypeReference)
	case *ir.Enum:
		doc.Name, doc.UID = nameString(v.Name), string(v.UID)
		for _, t := range v.Values {
			doc.Values = append(doc.Values, &token{Value: t.Value, Meta: t.Meta})
		}
	case *ir.Method:
		doc.Name = v.Name
		doc.Static, doc.Override, doc.Operator = v.Static, v.Override, v.Operator
		err = signature(doc, v.TypeParameters, v.Parameters, v.Type)
	case *ir.Property:
		doc.Name = v.Name
		doc.Static, doc.Override, doc.Getter, doc.Setter, doc.Open = v.Static, v.Override, v.Getter, v.Setter, v.Open
		err = signature(doc, v.TypeParameters, nil, v.Type)
	case *ir.Constructor:
		err = signature(doc, v.TypeParameters, v.Parameters, nil)
	case *ir.Parameter:
		doc.Name = v.Name
		doc.Optional, doc.Vararg = v.Optional, v.Vararg
		doc.Type, err = encodeNode(v.Type)
	case *ir.TypeParameter:
		doc.Name = nameString(v.Name)
		if doc.Constraints, err = encodeAll(v.Constraints); err != nil {
			return nil, err
		}
		doc.Default, err = encodeNode(v.Default)
	case *ir.Heritage:
		doc.Name = nameString(v.Name)
		doc.Reference = refString(v.TypeReference)
		doc.Params, err = encodeAll(v.TypeArguments)
	case *ir.TypeValue:
		doc.Name, doc.Nullable, doc.Meta = nameString(v.Value), v.Nullable, tags(v.Meta)
		doc.Reference = refString(v.TypeReference)
		doc.Params, err = encodeAll(v.Params)
	case *ir.FunctionType:
		doc.Nullable, doc.Meta = v.Nullable, tags(v.Meta)
		err = signature(doc, nil, v.Parameters, v.Type)
	case *ir.UnionType:
		doc.Nullable, doc.Meta = v.Nullable, tags(v.Meta)
		doc.Params, err = encodeAll(v.Params)
	case *ir.ThisType:
		doc.Nullable, doc.Meta = v.Nullable, tags(v.Meta)
	case *ir.GeneratedInterfaceReference:
		doc.Name, doc.Nullable, doc.Meta = nameString(v.Name), v.Nullable, tags(v.Meta)
		doc.Reference = refString(v.Reference)
		doc.TypeParameters, err = encodeAll(v.TypeParameters)
	default:
		return nil, errors.NewUnsupportedNodeError("cannot encode %T", n)
	}
	if err != nil {
		return nil, err
	}
	return doc, nil
}

func encodeAll[T ir.Node](nodes []T) ([]*node, error) {
	if len(nodes) == 0 {
		return nil, nil
	}
	out := make([]*node, len(nodes))
	for i, n := range nodes {
		doc, err := encodeNode(n)
		if err != nil {
			return nil, err
		}
		out[i] = doc
	}
	return out, nil
}

func classLike(doc *node, tps []*ir.TypeParameter, parents []*ir.Heritage, members []ir.Member) error {
	var err error
	if doc.TypeParameters, err = encodeAll(tps); err != nil {
		return err
	}
	if doc.Parents, err = encodeAll(parents); err != nil {
		return err
	}
	doc.Members, err = encodeAll(members)
	return err
}

func signature(doc *node, tps []*ir.TypeParameter, params []*ir.Parameter, ret ir.Type) error {
	var err error
	if doc.TypeParameters, err = encodeAll(tps); err != nil {
		return err
	}
	if doc.Parameters, err = encodeAll(params); err != nil {
		return err
	}
	if ret != nil {
		doc.Type, err = encodeNode(ret)
	}
	return err
}

func encodeReceiver(ref *ir.ClassReference) *receiver {
	if ref == nil {
		return nil
	}
	return &receiver{Name: nameString(ref.Name), TypeParameters: nameStrings(ref.TypeParameters)}
}

func nameString(e name.Entity) string {
	if e == nil {
		return ""
	}
	return e.String()
}

func nameStrings(es []name.Entity) []string {
	if len(es) == 0 {
		return nil
	}
	out := make([]string, len(es))
	for i, e := range es {
		out[i] = nameString(e)
	}
	return out
}

func identStrings(ids []name.Identifier) []string {
	if len(ids) == 0 {
		return nil
	}
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.Value
	}
	return out
}

func refString(ref *ir.Reference) string {
	if ref == nil {
		return ""
	}
	return string(ref.UID)
}

func tags(p ir.Provenance) []string {
	ts := p.Tags()
	if len(ts) == 0 {
		return nil
	}
	out := make([]string, len(ts))
	for i, t := range ts {
		out[i] = string(t)
	}
	return out
}
