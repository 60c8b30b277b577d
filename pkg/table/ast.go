package table

// Document is a fully parsed table file: an ordered list of top-level
// blocks, each scoped to a set of flavors (spec.md §4.2).
type Document struct {
	Blocks []*Block
}

// Block groups a Payload under one or more flavor names. Grouped style
// ("Group: / Flavor = X / Common: / End:") and flat style
// ("Flavor = X" followed directly by statements) both lower to this shape.
type Block struct {
	Flavors []string // "ANY" and "NULL" both match every flavor
	Payload Payload
}

// Matches reports whether this block applies to flavor. The pseudo-
// flavors ANY and NULL both match any flavor (spec.md §3/§4.2).
func (b *Block) Matches(flavor string) bool {
	for _, f := range b.Flavors {
		if f == "ANY" || f == "NULL" || f == flavor {
			return true
		}
	}
	return false
}

// Payload is an ordered sequence of statements: actions and conditionals.
type Payload []Statement

// Statement is either an *ActionStmt or an *IfStmt.
type Statement interface{ statementNode() }

// ActionStmt is one action call such as envPrepend(PATH, "${PRODUCT_DIR}/bin").
type ActionStmt struct {
	Name string
	Args []string
	Line int
}

func (*ActionStmt) statementNode() {}

// IfStmt is a table-file conditional block: if (cond) { ... }.
type IfStmt struct {
	Cond Cond
	Body Payload
	Line int
}

func (*IfStmt) statementNode() {}

// Cond is a boolean condition expression node.
type Cond interface{ condNode() }

// AndCond is a conjunction of two conditions.
type AndCond struct{ Left, Right Cond }

func (AndCond) condNode() {}

// OrCond is a disjunction of two conditions.
type OrCond struct{ Left, Right Cond }

func (OrCond) condNode() {}

// NotCond negates a condition.
type NotCond struct{ Inner Cond }

func (NotCond) condNode() {}

// CompareCond is a leaf relational comparison, e.g. FLAVOR == "Linux64".
type CompareCond struct {
	Left, Op, Right string
}

func (CompareCond) condNode() {}
