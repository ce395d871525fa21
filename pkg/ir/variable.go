package ir

// ArraySection is a clause-item sub-range of an array. The IR
// always stores the length form; a Fortran "lower:upper[:stride]" section is
// converted to length form at parse time.
type ArraySection struct {
	LowerBound *Expression
	Length     *Expression
	Stride     *Expression
}

// Identifier is a bare name reference inside a clause payload: a plain
// variable name, a "::"-qualified name, or a "%"/"->" component access that
// carries no array-section or further structure.
type Identifier struct {
	Text string
}

// Variable is a clause item naming a variable, optionally sliced by one or
// more array sections.
type Variable struct {
	Name          string
	ArraySections []ArraySection
}

// ClauseItemKind tags the variant of a ClauseItem.
type ClauseItemKind int32

const (
	ItemIdentifier ClauseItemKind = iota
	ItemVariable
	ItemExpression
)

// ClauseItem is one element of a comma-separated clause payload list
//: an identifier, a variable with optional array sections, or an
// uninterpreted expression.
type ClauseItem struct {
	Kind       ClauseItemKind
	Identifier Identifier
	Variable   Variable
	Expression Expression
}

// NewIdentifierItem builds an Identifier-kind ClauseItem.
func NewIdentifierItem(text string) ClauseItem {
	return ClauseItem{Kind: ItemIdentifier, Identifier: Identifier{Text: text}}
}

// NewVariableItem builds a Variable-kind ClauseItem.
func NewVariableItem(name string, sections []ArraySection) ClauseItem {
	return ClauseItem{Kind: ItemVariable, Variable: Variable{Name: name, ArraySections: sections}}
}

// NewExpressionItem builds an Expression-kind ClauseItem.
func NewExpressionItem(text string) ClauseItem {
	return ClauseItem{Kind: ItemExpression, Expression: NewExpression(text)}
}

// String renders the item back to its canonical textual form, using C
// bracket array-section syntax. pkg/render is responsible for the
// language-aware form used in actual directive rendering; this is a
// convenience for diagnostics.
func (it ClauseItem) String() string {
	switch it.Kind {
	case ItemIdentifier:
		return it.Identifier.Text
	case ItemVariable:
		return it.Variable.String()
	case ItemExpression:
		return it.Expression.Text
	default:
		return ""
	}
}

// String renders a variable with its array sections in C bracket form
// (length-based, matching the IR's stored representation).
func (v Variable) String() string {
	s := v.Name
	for _, sec := range v.ArraySections {
		s += sec.string()
	}
	return s
}

func (sec ArraySection) string() string {
	var lower, length, stride string
	if sec.LowerBound != nil {
		lower = sec.LowerBound.Text
	}
	if sec.Length != nil {
		length = sec.Length.Text
	}
	if sec.Stride != nil {
		stride = sec.Stride.Text
	}
	switch {
	case lower == "" && length == "" && stride == "":
		return "[:]"
	case lower == "" && stride == "":
		return "[:" + length + "]"
	case stride == "":
		return "[" + lower + ":" + length + "]"
	case lower == "":
		return "[:" + length + ":" + stride + "]"
	default:
		return "[" + lower + ":" + length + ":" + stride + "]"
	}
}
