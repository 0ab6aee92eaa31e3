// Package flight collapses concurrent identical builds into a single
// execution. It is a typed wrapper around x/sync/singleflight which makes
// sure that, no matter how many clients ask for the same artist at the same
// time, the upstream fetch sequence runs once.
package flight

import (
	"golang.org/x/sync/singleflight"
)

// Result is the outcome of one build, delivered to every caller which
// joined it.
type Result[T any] struct {
	// Val is the built value when Err is nil.
	Val T

	// Err is the build error shared by all joined callers.
	Err error

	// Shared tells whether the value was also given to other callers.
	Shared bool
}

// Registry keeps the in-flight builds keyed by artist identifier. The zero
// value is not usable, use NewRegistry.
type Registry[T any] struct {
	group *singleflight.Group
}

// NewRegistry returns an empty registry.
func NewRegistry[T any]() *Registry[T] {
	return &Registry[T]{
		group: &singleflight.Group{},
	}
}

// Obtain joins the in-flight build for this key or starts a new one when
// there is none. The returned channel delivers exactly one Result. The
// registry entry for the key is removed once the build settles, no matter
// how it settles, so a later Obtain always starts fresh.
func (r *Registry[T]) Obtain(key string, build func() (T, error)) <-chan Result[T] {
	inner := r.group.DoChan(key, func() (interface{}, error) {
		return build()
	})

	out := make(chan Result[T], 1)
	go func() {
		res := <-inner
		val, _ := res.Val.(T)
		out <- Result[T]{
			Val:    val,
			Err:    res.Err,
			Shared: res.Shared,
		}
	}()
	return out
}

// Forget drops the in-flight build for this key so that the next Obtain
// starts a new one instead of joining it.
func (r *Registry[T]) Forget(key string) {
	r.group.Forget(key)
}
