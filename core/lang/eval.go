package lang

import "fmt"

// Env is the mutable session state an evaluation runs against: the variable
// store plus the closed dispatch table of command handlers.
type Env interface {
	// Lookup returns the expression bound to name.
	Lookup(name string) (Expr, bool)
	// Bind stores an expression under name. Rebinding replaces the old
	// expression but keeps the name's original listing position.
	Bind(name string, rhs Expr)
	// Names lists bound names in definition order.
	Names() []string
	// Invoke dispatches a command call to its handler with evaluated
	// arguments.
	Invoke(name string, args []Value) (Value, error)
}

// EvalText parses canonical text and evaluates it in one step.
func EvalText(text string, env Env) (Value, error) {
	expr, err := Parse(text)
	if err != nil {
		return Value{}, err
	}
	return Eval(expr, env)
}

// Eval evaluates an expression against the environment. Variable references
// re-evaluate their bound expression on every lookup, so chained bindings
// track the current value rather than a snapshot.
func Eval(expr Expr, env Env) (Value, error) {
	return eval(expr, env, nil)
}

// eval carries the set of variable names active in the current evaluation.
// A name re-entering while its own expression is still being evaluated is a
// cycle (set x = x, or set a = b / set b = a) and reports an error instead
// of recursing forever.
func eval(expr Expr, env Env, active []string) (Value, error) {
	switch expr.Kind {
	case ExprString:
		return StrValue(expr.Str), nil

	case ExprNumber:
		return NumValue(expr.Num), nil

	case ExprVar:
		for _, name := range active {
			if name == expr.Name {
				return Value{}, Errorf(EvalError, "cyclic binding: %s", expr.Name)
			}
		}
		bound, ok := env.Lookup(expr.Name)
		if !ok {
			return Value{}, Errorf(EvalError, "unbound variable: %s", expr.Name)
		}
		return eval(bound, env, append(active, expr.Name))

	case ExprCall:
		return evalCall(expr, env, active)

	default:
		return Value{}, Errorf(EvalError, "unknown expression kind %d", expr.Kind)
	}
}

func evalCall(call Expr, env Env, active []string) (Value, error) {
	// The macro ops work on unevaluated expressions and the variable store
	// itself, so they are handled here rather than in the dispatch table.
	switch call.Name {
	case OpBind:
		return evalBind(call, env)
	case OpVars:
		return evalVars(call, env, active)
	case OpMismatch:
		return evalMismatch(call)
	}

	args := make([]Value, 0, len(call.Args))
	for _, argExpr := range call.Args {
		arg, err := eval(argExpr, env, active)
		if err != nil {
			return Value{}, err
		}
		args = append(args, arg)
	}

	return env.Invoke(call.Name, args)
}

// evalBind defines a variable. The right-hand side stays unevaluated so
// future lookups see the current value of anything it references.
func evalBind(call Expr, env Env) (Value, error) {
	if len(call.Args) != 2 {
		return Value{}, Errorf(EvalError, "%s expects a name and an expression", OpBind)
	}
	target := call.Args[0]
	if target.Kind != ExprVar {
		return Value{}, Errorf(EvalError, "%s target must be a name, got %s", OpBind, target)
	}

	env.Bind(target.Name, call.Args[1])
	return VoidValue(), nil
}

// evalVars lists every stored variable as "name = value", evaluating each
// name in the current environment. Names that fail to evaluate (unbound or
// cyclic references) degrade to a bracketed message on their own row.
func evalVars(call Expr, env Env, active []string) (Value, error) {
	if len(call.Args) != 0 {
		return Value{}, Errorf(EvalError, "%s takes no arguments", OpVars)
	}

	var lines []string
	for _, name := range env.Names() {
		value, err := eval(VarExpr(name), env, active)
		if err != nil {
			lines = append(lines, fmt.Sprintf("%s = <%s>", name, UserMessage(err)))
			continue
		}
		lines = append(lines, fmt.Sprintf("%s = %s", name, value.Display()))
	}
	return ListValue(lines), nil
}

func evalMismatch(call Expr) (Value, error) {
	if len(call.Args) != 6 {
		return Value{}, Errorf(EvalError, "%s expects six literals", OpMismatch)
	}
	lits := make([]string, 6)
	for i, arg := range call.Args {
		if arg.Kind != ExprString {
			return Value{}, Errorf(EvalError, "%s expects string literals", OpMismatch)
		}
		lits[i] = arg.Str
	}

	var slots [4]string
	copy(slots[:], lits[1:5])
	return StrValue(FormatMismatch(lits[0], slots, lits[5])), nil
}
