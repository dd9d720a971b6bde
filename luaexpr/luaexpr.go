// Package luaexpr compiles small Lua expressions into Go callbacks suitable
// for use as lazyseq transformation functions. Expressions are evaluated in
// a sandboxed Lua state with only the base, string, table, and math
// libraries available.
package luaexpr

import (
	"fmt"
	"strings"

	"github.com/Shopify/go-lua"
)

// Evaluator compiles and evaluates numeric Lua expressions. An Evaluator
// owns a single Lua state, so compiled callbacks share it and are not safe
// for concurrent use; create one Evaluator per goroutine.
type Evaluator struct {
	state *lua.State
	seq   int
}

// New creates an Evaluator with a sandboxed Lua state.
func New() *Evaluator {
	l := lua.NewState()
	setupSandbox(l)
	return &Evaluator{state: l}
}

// compile wraps expr in a Lua function of (n, i, acc), defines it under a
// unique global name, and returns that name.
func (e *Evaluator) compile(expr string) (string, error) {
	if strings.TrimSpace(expr) == "" {
		return "", fmt.Errorf("luaexpr: empty expression")
	}
	e.seq++
	name := fmt.Sprintf("__expr_%d", e.seq)
	chunk := fmt.Sprintf("function %s(n, i, acc) return (%s) end", name, expr)
	if err := lua.DoString(e.state, chunk); err != nil {
		return "", fmt.Errorf("luaexpr: compile %q: %w", expr, err)
	}
	return name, nil
}

func (e *Evaluator) call(name string, n, i, acc float64) error {
	l := e.state
	l.Global(name)
	l.PushNumber(n)
	l.PushNumber(i)
	l.PushNumber(acc)
	return l.ProtectedCall(3, 1, 0)
}

// Number compiles expr into a numeric callback. The expression sees the
// variables n (element value), i (0-based index), and acc (accumulator,
// zero outside of reductions), for example "n * n" or "acc + n".
func (e *Evaluator) Number(expr string) (func(n, i, acc float64) (float64, error), error) {
	name, err := e.compile(expr)
	if err != nil {
		return nil, err
	}
	return func(n, i, acc float64) (float64, error) {
		if err := e.call(name, n, i, acc); err != nil {
			return 0, fmt.Errorf("luaexpr: eval %q: %w", expr, err)
		}
		v, ok := e.state.ToNumber(-1)
		e.state.Pop(1)
		if !ok {
			return 0, fmt.Errorf("luaexpr: expression %q did not produce a number", expr)
		}
		return v, nil
	}, nil
}

// Predicate compiles expr into a boolean callback. The expression sees the
// variables n (element value) and i (0-based index), for example
// "n % 2 == 0" or "n < 4000000". Lua truthiness applies: any result other
// than false or nil counts as true.
func (e *Evaluator) Predicate(expr string) (func(n, i float64) (bool, error), error) {
	name, err := e.compile(expr)
	if err != nil {
		return nil, err
	}
	return func(n, i float64) (bool, error) {
		if err := e.call(name, n, i, 0); err != nil {
			return false, fmt.Errorf("luaexpr: eval %q: %w", expr, err)
		}
		v := e.state.ToBoolean(-1)
		e.state.Pop(1)
		return v, nil
	}, nil
}

// setupSandbox loads only safe libraries and strips the globals that reach
// outside the expression environment.
func setupSandbox(l *lua.State) {
	lua.Require(l, "_G", lua.BaseOpen, true)
	l.Pop(1)
	lua.Require(l, "string", lua.StringOpen, true)
	l.Pop(1)
	lua.Require(l, "table", lua.TableOpen, true)
	l.Pop(1)
	lua.Require(l, "math", lua.MathOpen, true)
	l.Pop(1)

	// Expressions have no business loading code or files.
	l.PushNil()
	l.SetGlobal("dofile")
	l.PushNil()
	l.SetGlobal("loadfile")
	l.PushNil()
	l.SetGlobal("load")
	l.PushNil()
	l.SetGlobal("loadstring")
	l.PushNil()
	l.SetGlobal("require")
	l.PushNil()
	l.SetGlobal("print")
}
