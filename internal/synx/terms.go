package synx

import "fmt"

// Unset is the placeholder that occupies a type slot before elaboration
// fills it in. It is never returned by a successful InferExpression.
type Unset struct{}

func (Unset) isType()          {}
func (Unset) String() string   { return "<unset>" }
func (Unset) Equals(o Type) bool {
	_, ok := o.(Unset)
	return ok
}

// Term is the tagged variant of spec.md §3: Unit, Var, Abs, App, Ann, Let.
// Every node carries (or is decorated with) a type slot; check/infer never
// mutate an input Term, they construct a fresh one with the slot filled in.
type Term interface {
	isTerm()
	String() string
}

// EUnit is the unit value.
type EUnit struct{}

func (EUnit) isTerm()        {}
func (EUnit) String() string { return "()" }

// EVar is a variable occurrence.
type EVar struct {
	Name Name
	Type Type
}

func (EVar) isTerm()        {}
func (e EVar) String() string { return string(e.Name) }

// EAbs is a lambda abstraction.
type EAbs struct {
	ArgName Name
	ArgType Type // Unset on input; filled on output
	Body    Term
}

func (EAbs) isTerm() {}
func (e EAbs) String() string {
	return fmt.Sprintf("\\%s. %s", e.ArgName, e.Body.String())
}

// EApp is function application.
type EApp struct {
	Fn     Term
	Arg    Term
	Result Type // Unset on input; filled on output
}

func (EApp) isTerm() {}
func (e EApp) String() string {
	return fmt.Sprintf("(%s %s)", e.Fn.String(), e.Arg.String())
}

// EAnn is an explicit type annotation.
type EAnn struct {
	Body    Term
	Declared Type
}

func (EAnn) isTerm() {}
func (e EAnn) String() string {
	return fmt.Sprintf("(%s : %s)", e.Body.String(), e.Declared.String())
}

// ELet is a let-binding.
type ELet struct {
	Name  Name
	Bound Term
	Body  Term
}

func (ELet) isTerm() {}
func (e ELet) String() string {
	return fmt.Sprintf("let %s = %s in %s", e.Name, e.Bound.String(), e.Body.String())
}

// TypeOf returns the type carried by a fully-elaborated term. For Abs it
// constructs Fun(arg_type, type_of(body)); for Let it returns type_of(body).
func TypeOf(e Term) Type {
	switch e := e.(type) {
	case EUnit:
		return TUnit{}
	case EVar:
		return e.Type
	case EAbs:
		return TFun{Domain: e.ArgType, Codomain: TypeOf(e.Body)}
	case EApp:
		return e.Result
	case EAnn:
		return e.Declared
	case ELet:
		return TypeOf(e.Body)
	default:
		return nil
	}
}
