package engine

// Operation selects the reduction applied to a run of operands.
type Operation int

const (
	None Operation = iota
	Add
	Subtract
	Multiply
	Divide
	Dot
)

// OperationCount is the number of defined operations.
const OperationCount = 6

var operationNames = [...]string{
	None:     "nop",
	Add:      "add",
	Subtract: "subtract",
	Multiply: "multiply",
	Divide:   "divide",
	Dot:      "dot",
}

var _ = [1]struct{}{}[len(operationNames)-OperationCount]

var operationKeywords = map[string]Operation{
	"nop":        None,
	"add":        Add,
	"sub":        Subtract,
	"subtract":   Subtract,
	"mul":        Multiply,
	"multiply":   Multiply,
	"div":        Divide,
	"divide":     Divide,
	"dot":        Dot,
	"dotproduct": Dot,
}

// String returns the operation keyword. Unknown operations print as "nop".
func (o Operation) String() string {
	if o < 0 || o >= OperationCount {
		return operationNames[None]
	}
	return operationNames[o]
}

// LookupOperation resolves an operation keyword or alias.
func LookupOperation(name string) (Operation, bool) {
	op, ok := operationKeywords[name]
	return op, ok
}
