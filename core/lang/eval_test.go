package lang

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// testEnv is a minimal Env with an ordered variable store and a pluggable
// dispatch table.
type testEnv struct {
	order    []string
	vars     map[string]Expr
	handlers map[string]func(args []Value) (Value, error)
}

func newTestEnv() *testEnv {
	return &testEnv{
		vars:     make(map[string]Expr),
		handlers: make(map[string]func(args []Value) (Value, error)),
	}
}

func (e *testEnv) Lookup(name string) (Expr, bool) {
	expr, ok := e.vars[name]
	return expr, ok
}

func (e *testEnv) Bind(name string, rhs Expr) {
	if _, ok := e.vars[name]; !ok {
		e.order = append(e.order, name)
	}
	e.vars[name] = rhs
}

func (e *testEnv) Names() []string { return e.order }

func (e *testEnv) Invoke(name string, args []Value) (Value, error) {
	if fn, ok := e.handlers[name]; ok {
		return fn(args)
	}
	return Value{}, Errorf(EvalError, "unknown command: %s", name)
}

func evalString(t *testing.T, env Env, text string) Value {
	t.Helper()
	value, err := EvalText(text, env)
	if err != nil {
		t.Fatalf("eval %q: %v", text, err)
	}
	return value
}

func TestEval_literals(t *testing.T) {
	env := newTestEnv()

	assert.Equal(t, "hi", evalString(t, env, `"hi"`).Display())
	assert.Equal(t, "5", evalString(t, env, "5").Display())
}

func TestEval_bindAndVars(t *testing.T) {
	env := newTestEnv()

	evalString(t, env, "(bind x 5)")
	listing := evalString(t, env, "(vars)")
	assert.Equal(t, "x = 5", listing.Display())
}

func TestEval_chainedReferencesTrack(t *testing.T) {
	env := newTestEnv()

	// y is bound to the expression x, not x's current value.
	evalString(t, env, "(bind x 5)")
	evalString(t, env, "(bind y x)")
	assert.Equal(t, "x = 5\ny = 5", evalString(t, env, "(vars)").Display())

	// Rebinding x shows through y on the next lookup.
	evalString(t, env, "(bind x 7)")
	assert.Equal(t, "7", evalString(t, env, "y").Display())
	assert.Equal(t, "x = 7\ny = 7", evalString(t, env, "(vars)").Display())
}

func TestEval_cyclicBinding(t *testing.T) {
	env := newTestEnv()

	// Self-cycle: evaluating x re-enters x.
	evalString(t, env, "(bind x x)")
	_, err := EvalText("x", env)
	assert.True(t, Recoverable(err))
	assert.Equal(t, "cyclic binding: x", UserMessage(err))

	// Mutual cycle through a second name.
	evalString(t, env, "(bind a b)")
	evalString(t, env, "(bind b a)")
	_, err = EvalText("a", env)
	assert.Equal(t, "cyclic binding: a", UserMessage(err))

	// The listing degrades per name instead of failing as a whole.
	listing := evalString(t, env, "(vars)")
	assert.Contains(t, listing.Display(), "x = <cyclic binding: x>")
}

func TestEval_unboundVariable(t *testing.T) {
	_, err := EvalText("nope", newTestEnv())
	if assert.NotNil(t, err) {
		var le *Error
		assert.ErrorAs(t, err, &le)
		assert.Equal(t, EvalError, le.Kind)
		assert.Equal(t, "unbound variable: nope", UserMessage(err))
	}
}

func TestEval_dispatch(t *testing.T) {
	env := newTestEnv()
	var got []Value
	env.handlers["probe"] = func(args []Value) (Value, error) {
		got = args
		return StrValue("ok"), nil
	}

	value := evalString(t, env, `(probe "a" 2)`)
	assert.Equal(t, "ok", value.Display())
	assert.Equal(t, []Value{StrValue("a"), NumValue(2)}, got)
}

func TestEval_unknownCommand(t *testing.T) {
	_, err := EvalText("(frobnicate)", newTestEnv())
	assert.Equal(t, "unknown command: frobnicate", UserMessage(err))
}

func TestEval_mismatchDiagnostic(t *testing.T) {
	text := ExpandMacro(Tokenize("set a b"))
	value := evalString(t, newTestEnv(), text)

	display := value.Display()
	assert.Contains(t, display, "set")
	assert.Contains(t, display, `"a"`)
	assert.Contains(t, display, `"b"`)
	assert.Contains(t, display, "expected")
}
