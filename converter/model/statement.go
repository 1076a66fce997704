package model

// Statement is one abstract unit of generated code. The converter builds an
// ordered tree of statements per conversion call and hands it to a renderer;
// the tree is never shared between conversions.
type Statement interface {
	isStatement()
}

// Declaration introduces a local variable:
//
//	var <Name> = <Init>;
type Declaration struct {
	Name string
	Init Expression
}

// Assignment sets a member on a target:
//
//	<Target>.<Member> = <Value>;
type Assignment struct {
	Target Expression
	Member string
	Value  Expression
}

// Call invokes a member method for its side effect:
//
//	<Receiver>.<Member>(<Args>...);
//
// Member may be a dotted path, e.g. "Headers.TryAddWithoutValidation".
type Call struct {
	Receiver Expression
	Member   string
	Args     []Expression
}

// ScopedBlock binds a constructed disposable to a name for the lifetime of
// its body:
//
//	using (var <Name> = new <Type>(<Args>...)) { <Body>... }
type ScopedBlock struct {
	Name string
	Type string
	Args []Expression
	Body []Statement
}

func (Declaration) isStatement() {}
func (Assignment) isStatement()  {}
func (Call) isStatement()        {}
func (ScopedBlock) isStatement() {}
