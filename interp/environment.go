package interp

import (
	"sync/atomic"

	"github.com/RobinBoers/signo/token"
)

var envCount uint64

func nextEnvID() uint64 {
	return atomic.AddUint64(&envCount, 1)
}

// Environment is a chain of lexical scopes.
type Environment struct {
	ID     uint64
	Scope  map[string]*Expression
	Parent *Environment

	// runtime carries the process-wide configuration (stdout, include
	// root, call-depth limit, Reader) shared by every scope descended
	// from the same root. It is not copied per scope, only referenced.
	runtime *runtime
}

// NewRoot returns a fresh root Environment with the kernel bindings
// (special forms and builtins) installed, configured by opts.
func NewRoot(opts ...Config) *Environment {
	rt := newRuntime()
	env := &Environment{
		ID:      nextEnvID(),
		Scope:   make(map[string]*Expression),
		runtime: rt,
	}
	for _, opt := range opts {
		opt(rt)
	}
	installSpecialForms(env)
	installBuiltins(env)
	return env
}

// Child returns a new scope whose parent is env, with bindings installed
// directly into the new scope.
func (env *Environment) Child(bindings map[string]*Expression) *Environment {
	if bindings == nil {
		bindings = make(map[string]*Expression)
	}
	return &Environment{
		ID:      nextEnvID(),
		Scope:   bindings,
		Parent:  env,
		runtime: env.runtime,
	}
}

// Assign returns an environment where the current scope has name bound
// to v. Assign never writes to a parent scope: it overwrites env's own
// Scope map and returns env unchanged in identity.
func (env *Environment) Assign(name string, v *Expression) *Environment {
	env.Scope[name] = v
	return env
}

// Lookup searches env's scope and then its parent chain for name,
// failing with a ReferenceError carrying pos if no scope binds it.
func (env *Environment) Lookup(name string, pos token.Position) (*Expression, error) {
	for e := env; e != nil; e = e.Parent {
		if v, ok := e.Scope[name]; ok {
			return v, nil
		}
	}
	return nil, ReferenceErrorf(pos, "unbound symbol: %s", name)
}

func (env *Environment) root() *Environment {
	for env.Parent != nil {
		env = env.Parent
	}
	return env
}
