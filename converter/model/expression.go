package model

// Expression is a value-producing node inside a statement.
type Expression interface {
	isExpression()
}

// StringLit is a quoted string literal.
type StringLit struct {
	Value string
}

// BoolLit is a boolean literal.
type BoolLit struct {
	Value bool
}

// Ident references a declared variable or a static member path
// (e.g. "handler", "Encoding.UTF8").
type Ident struct {
	Name string
}

// New constructs an object:
//
//	new <Type>(<Args>...)
type New struct {
	Type string
	Args []Expression
}

// Invoke calls a method by dotted path:
//
//	<Func>(<Args>...)
//
// Used for both static calls (Convert.ToBase64String) and calls on
// declared variables (httpClient.SendAsync).
type Invoke struct {
	Func string
	Args []Expression
}

// Interp is an interpolated string assembled from chunks:
//
//	$"<chunks>..."
type Interp struct {
	Chunks []InterpChunk
}

// InterpChunk is either literal text or an embedded expression.
// A non-nil Expr takes precedence over Text.
type InterpChunk struct {
	Text string
	Expr Expression
}

// Await awaits an asynchronous expression.
type Await struct {
	Expr Expression
}

func (StringLit) isExpression() {}
func (BoolLit) isExpression()   {}
func (Ident) isExpression()     {}
func (New) isExpression()       {}
func (Invoke) isExpression()    {}
func (Interp) isExpression()    {}
func (Await) isExpression()     {}
