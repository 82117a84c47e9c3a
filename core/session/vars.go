package session

import "github.com/loom-sh/loom/core/lang"

type binding struct {
	name string
	expr lang.Expr
}

// varStore is the ordered name to bound-expression mapping behind the
// set/get macro. Rebinding a name is last-write-wins: the expression is
// replaced in place so the name keeps its original listing position.
// Bindings live until the process exits; there is no unset.
type varStore struct {
	bindings []binding
}

func (v *varStore) bind(name string, expr lang.Expr) {
	for i := range v.bindings {
		if v.bindings[i].name == name {
			v.bindings[i].expr = expr
			return
		}
	}
	v.bindings = append(v.bindings, binding{name: name, expr: expr})
}

func (v *varStore) lookup(name string) (lang.Expr, bool) {
	for _, b := range v.bindings {
		if b.name == name {
			return b.expr, true
		}
	}
	return lang.Expr{}, false
}

func (v *varStore) names() []string {
	out := make([]string, 0, len(v.bindings))
	for _, b := range v.bindings {
		out = append(out, b.name)
	}
	return out
}
