package ast

type NodeType string

const (
	NodeIdentifier           NodeType = "Identifier"
	NodeStringLiteral        NodeType = "StringLiteral"
	NodeIntegerLiteral       NodeType = "IntegerLiteral"
	NodeBooleanLiteral       NodeType = "BooleanLiteral"
	NodeBinaryExpression     NodeType = "BinaryExpression"
	NodeLetExpression        NodeType = "LetExpression"
	NodeAssignmentExpression NodeType = "AssignmentExpression"
	NodeIfExpression         NodeType = "IfExpression"
	NodeWhileExpression      NodeType = "WhileExpression"
	NodePrintlnExpression    NodeType = "PrintlnExpression"
	NodePrintExpression      NodeType = "PrintExpression"
	NodeBlockExpression      NodeType = "BlockExpression"
	NodeFunctionParameter    NodeType = "FunctionParameter"
	NodeDefFunction          NodeType = "DefFunction"
	NodeFunctionCall         NodeType = "FunctionCall"
)

type Node interface {
	NodeType() NodeType
	isNode()
}

type nodeImpl struct {
	Type NodeType `json:"type"`
}

func newNodeImpl(kind NodeType) nodeImpl {
	return nodeImpl{Type: kind}
}

func (n nodeImpl) NodeType() NodeType { return n.Type }
func (nodeImpl) isNode()              {}

// Expression is the closed set of Nub expression nodes. The marker method is
// unexported, so only this package can add variants.
type Expression interface {
	Node
	expressionNode()
}

type expressionMarker struct{}

func (expressionMarker) expressionNode() {}

// Identifier

type Identifier struct {
	nodeImpl
	expressionMarker

	Name string `json:"name"`
}

func NewIdentifier(name string) *Identifier {
	return &Identifier{nodeImpl: newNodeImpl(NodeIdentifier), Name: name}
}

// Literals

type StringLiteral struct {
	nodeImpl
	expressionMarker

	Value string `json:"value"`
}

func NewStringLiteral(value string) *StringLiteral {
	return &StringLiteral{nodeImpl: newNodeImpl(NodeStringLiteral), Value: value}
}

type IntegerLiteral struct {
	nodeImpl
	expressionMarker

	Value int64 `json:"value"`
}

func NewIntegerLiteral(value int64) *IntegerLiteral {
	return &IntegerLiteral{nodeImpl: newNodeImpl(NodeIntegerLiteral), Value: value}
}

type BooleanLiteral struct {
	nodeImpl
	expressionMarker

	Value bool `json:"value"`
}

func NewBooleanLiteral(value bool) *BooleanLiteral {
	return &BooleanLiteral{nodeImpl: newNodeImpl(NodeBooleanLiteral), Value: value}
}

// Operators

type BinaryOperator string

const (
	OperatorAdd          BinaryOperator = "+"
	OperatorSubtract     BinaryOperator = "-"
	OperatorMultiply     BinaryOperator = "*"
	OperatorDivide       BinaryOperator = "/"
	OperatorLessThan     BinaryOperator = "<"
	OperatorLessEqual    BinaryOperator = "<="
	OperatorGreaterThan  BinaryOperator = ">"
	OperatorGreaterEqual BinaryOperator = ">="
	OperatorEqual        BinaryOperator = "=="
	OperatorNotEqual     BinaryOperator = "!="
	OperatorLogicalAnd   BinaryOperator = "&&"
	OperatorLogicalOr    BinaryOperator = "||"
)

// BinaryOperators lists every operator in declaration order.
var BinaryOperators = []BinaryOperator{
	OperatorAdd, OperatorSubtract, OperatorMultiply, OperatorDivide,
	OperatorLessThan, OperatorLessEqual, OperatorGreaterThan, OperatorGreaterEqual,
	OperatorEqual, OperatorNotEqual,
	OperatorLogicalAnd, OperatorLogicalOr,
}

// Valid reports whether op is one of the supported operators.
func (op BinaryOperator) Valid() bool {
	for _, known := range BinaryOperators {
		if op == known {
			return true
		}
	}
	return false
}

type BinaryExpression struct {
	nodeImpl
	expressionMarker

	Operator BinaryOperator `json:"operator"`
	Left     Expression     `json:"left"`
	Right    Expression     `json:"right"`
}

func NewBinaryExpression(operator BinaryOperator, left, right Expression) *BinaryExpression {
	return &BinaryExpression{nodeImpl: newNodeImpl(NodeBinaryExpression), Operator: operator, Left: left, Right: right}
}

// Bindings

// LetExpression introduces a binding visible to the rest of the enclosing block.
type LetExpression struct {
	nodeImpl
	expressionMarker

	Name string     `json:"name"`
	Init Expression `json:"init"`
}

func NewLetExpression(name string, init Expression) *LetExpression {
	return &LetExpression{nodeImpl: newNodeImpl(NodeLetExpression), Name: name, Init: init}
}

// AssignmentExpression mutates an existing binding in whichever scope owns it.
type AssignmentExpression struct {
	nodeImpl
	expressionMarker

	Name  string     `json:"name"`
	Value Expression `json:"value"`
}

func NewAssignmentExpression(name string, value Expression) *AssignmentExpression {
	return &AssignmentExpression{nodeImpl: newNodeImpl(NodeAssignmentExpression), Name: name, Value: value}
}

// Control flow

type IfExpression struct {
	nodeImpl
	expressionMarker

	Condition Expression       `json:"condition"`
	Then      *BlockExpression `json:"then"`
	Else      *BlockExpression `json:"else"`
}

func NewIfExpression(condition Expression, then, els *BlockExpression) *IfExpression {
	return &IfExpression{nodeImpl: newNodeImpl(NodeIfExpression), Condition: condition, Then: then, Else: els}
}

type WhileExpression struct {
	nodeImpl
	expressionMarker

	Condition Expression   `json:"condition"`
	Body      []Expression `json:"body"`
}

func NewWhileExpression(condition Expression, body []Expression) *WhileExpression {
	return &WhileExpression{nodeImpl: newNodeImpl(NodeWhileExpression), Condition: condition, Body: body}
}

// Output

type PrintlnExpression struct {
	nodeImpl
	expressionMarker

	Target Expression `json:"target"`
}

func NewPrintlnExpression(target Expression) *PrintlnExpression {
	return &PrintlnExpression{nodeImpl: newNodeImpl(NodePrintlnExpression), Target: target}
}

// PrintExpression writes its target without a trailing newline.
type PrintExpression struct {
	nodeImpl
	expressionMarker

	Target Expression `json:"target"`
}

func NewPrintExpression(target Expression) *PrintExpression {
	return &PrintExpression{nodeImpl: newNodeImpl(NodePrintExpression), Target: target}
}

// BlockExpression evaluates its expressions in order in the enclosing scope.
type BlockExpression struct {
	nodeImpl
	expressionMarker

	Expressions []Expression `json:"expressions"`
}

func NewBlockExpression(expressions []Expression) *BlockExpression {
	return &BlockExpression{nodeImpl: newNodeImpl(NodeBlockExpression), Expressions: expressions}
}

// Functions

type FunctionParameter struct {
	nodeImpl

	Name      string `json:"name"`
	ParamType Type   `json:"paramType"`
}

func NewFunctionParameter(name string, paramType Type) *FunctionParameter {
	return &FunctionParameter{nodeImpl: newNodeImpl(NodeFunctionParameter), Name: name, ParamType: paramType}
}

type DefFunction struct {
	nodeImpl
	expressionMarker

	Name       string               `json:"name"`
	Params     []*FunctionParameter `json:"params"`
	ReturnType Type                 `json:"returnType"`
	Body       *BlockExpression     `json:"body"`
}

func NewDefFunction(name string, params []*FunctionParameter, returnType Type, body *BlockExpression) *DefFunction {
	return &DefFunction{nodeImpl: newNodeImpl(NodeDefFunction), Name: name, Params: params, ReturnType: returnType, Body: body}
}

// ParamTypes returns the declared parameter types in order.
func (d *DefFunction) ParamTypes() []Type {
	out := make([]Type, len(d.Params))
	for i, p := range d.Params {
		if p != nil {
			out[i] = p.ParamType
		}
	}
	return out
}

type FunctionCall struct {
	nodeImpl
	expressionMarker

	Name      string       `json:"name"`
	Arguments []Expression `json:"arguments"`
}

func NewFunctionCall(name string, args []Expression) *FunctionCall {
	return &FunctionCall{nodeImpl: newNodeImpl(NodeFunctionCall), Name: name, Arguments: args}
}
