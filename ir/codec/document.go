package codec

import (
	"fmt"
)

// node is the wire form of every ir node. Only the fields meaningful for
// Kind are set.
type node struct {
	Kind      string `yaml:"kind" json:"kind"`
	Name      string `yaml:"name,omitempty" json:"name,omitempty"`
	ShortName string `yaml:"short_name,omitempty" json:"short_name,omitempty"`
	UID       string `yaml:"uid,omitempty" json:"uid,omitempty"`
	Reference string `yaml:"reference,omitempty" json:"reference,omitempty"`

	Nullable  bool `yaml:"nullable,omitempty" json:"nullable,omitempty"`
	Abstract  bool `yaml:"abstract,omitempty" json:"abstract,omitempty"`
	Exported  bool `yaml:"exported,omitempty" json:"exported,omitempty"`
	Generated bool `yaml:"generated,omitempty" json:"generated,omitempty"`
	Inline    bool `yaml:"inline,omitempty" json:"inline,omitempty"`
	Operator  bool `yaml:"operator,omitempty" json:"operator,omitempty"`
	Immutable bool `yaml:"immutable,omitempty" json:"immutable,omitempty"`
	Static    bool `yaml:"static,omitempty" json:"static,omitempty"`
	Override  bool `yaml:"override,omitempty" json:"override,omitempty"`
	Getter    bool `yaml:"getter,omitempty" json:"getter,omitempty"`
	Setter    bool `yaml:"setter,omitempty" json:"setter,omitempty"`
	Open      bool `yaml:"open,omitempty" json:"open,omitempty"`
	Optional  bool `yaml:"optional,omitempty" json:"optional,omitempty"`
	Vararg    bool `yaml:"vararg,omitempty" json:"vararg,omitempty"`

	Meta []string `yaml:"meta,omitempty" json:"meta,omitempty"`

	TypeParameters []*node   `yaml:"type_parameters,omitempty" json:"type_parameters,omitempty"`
	Parents        []*node   `yaml:"parents,omitempty" json:"parents,omitempty"`
	Members        []*node   `yaml:"members,omitempty" json:"members,omitempty"`
	Parameters     []*node   `yaml:"parameters,omitempty" json:"parameters,omitempty"`
	Type           *node     `yaml:"type,omitempty" json:"type,omitempty"`
	Params         []*node   `yaml:"params,omitempty" json:"params,omitempty"`
	Constraints    []*node   `yaml:"constraints,omitempty" json:"constraints,omitempty"`
	Default        *node     `yaml:"default,omitempty" json:"default,omitempty"`
	Extend         *receiver `yaml:"extend,omitempty" json:"extend,omitempty"`
	Values         []*token  `yaml:"values,omitempty" json:"values,omitempty"`

	Declarations []*node       `yaml:"declarations,omitempty" json:"declarations,omitempty"`
	Submodules   []*node       `yaml:"submodules,omitempty" json:"submodules,omitempty"`
	Imports      []string      `yaml:"imports,omitempty" json:"imports,omitempty"`
	Annotations  []*annotation `yaml:"annotations,omitempty" json:"annotations,omitempty"`
}

// receiver is the wire form of ir.ClassReference.
type receiver struct {
	Name           string   `yaml:"name" json:"name"`
	TypeParameters []string `yaml:"type_parameters,omitempty" json:"type_parameters,omitempty"`
}

type token struct {
	Value string `yaml:"value" json:"value"`
	Meta  string `yaml:"meta,omitempty" json:"meta,omitempty"`
}

type annotation struct {
	Name   string   `yaml:"name" json:"name"`
	Params []string `yaml:"params,omitempty" json:"params,omitempty"`
}

// path helpers for decode diagnostics, e.g. $.declarations[1].members[0]

func fieldPath(parent, field string) string {
	return parent + "." + field
}

func indexPath(parent string, i int) string {
	return fmt.Sprintf("%s[%d]", parent, i)
}
