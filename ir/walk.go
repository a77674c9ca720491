package ir

// Children returns the direct child nodes of n in source order. Type slots
// that are nil are skipped. Unknown node implementations have no children.
func Children(n Node) []Node {
	var out []Node
	addType := func(t Type) {
		if t != nil {
			out = append(out, t)
		}
	}
	addTypeParams := func(tps []*TypeParameter) {
		for _, tp := range tps {
			out = append(out, tp)
		}
	}
	addParams := func(ps []*Parameter) {
		for _, p := range ps {
			out = append(out, p)
		}
	}
	addParents := func(hs []*Heritage) {
		for _, h := range hs {
			out = append(out, h)
		}
	}
	addMembers := func(ms []Member) {
		for _, m := range ms {
			out = append(out, m)
		}
	}

	switch v := n.(type) {
	case *Module:
		for _, d := range v.Declarations {
			out = append(out, d)
		}
		for _, sub := range v.Submodules {
			out = append(out, sub)
		}
	case *Class:
		addTypeParams(v.TypeParameters)
		addParents(v.Parents)
		addMembers(v.Members)
	case *Interface:
		addTypeParams(v.TypeParameters)
		addParents(v.Parents)
		addMembers(v.Members)
	case *Object:
		addParents(v.Parents)
		addMembers(v.Members)
	case *Function:
		addTypeParams(v.TypeParameters)
		addParams(v.Parameters)
		addType(v.Type)
	case *Variable:
		addType(v.Type)
	case *TypeAlias:
		addTypeParams(v.TypeParameters)
		addType(v.TypeReference)
	case *Enum:
	case *Method:
		addTypeParams(v.TypeParameters)
		addParams(v.Parameters)
		addType(v.Type)
	case *Property:
		addTypeParams(v.TypeParameters)
		addType(v.Type)
	case *Constructor:
		addTypeParams(v.TypeParameters)
		addParams(v.Parameters)
	case *Parameter:
		addType(v.Type)
	case *TypeParameter:
		for _, c := range v.Constraints {
			addType(c)
		}
		addType(v.Default)
	case *Heritage:
		for _, a := range v.TypeArguments {
			addType(a)
		}
	case *TypeValue:
		for _, p := range v.Params {
			addType(p)
		}
	case *FunctionType:
		addParams(v.Parameters)
		addType(v.Type)
	case *UnionType:
		for _, p := range v.Params {
			addType(p)
		}
	case *ThisType:
	case *GeneratedInterfaceReference:
		addTypeParams(v.TypeParameters)
	}
	return out
}

// Walk visits n and its descendants in pre-order. Returning false from fn
// skips the node's children.
func Walk(n Node, fn func(Node) bool) {
	if n == nil || !fn(n) {
		return
	}
	for _, child := range Children(n) {
		Walk(child, fn)
	}
}

// Count returns how many nodes under n (inclusive) satisfy pred.
func Count(n Node, pred func(Node) bool) int {
	count := 0
	Walk(n, func(node Node) bool {
		if pred(node) {
			count++
		}
		return true
	})
	return count
}
