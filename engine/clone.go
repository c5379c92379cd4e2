package engine

import (
	"reflect"
	"unsafe"

	"github.com/katalvlaran/chronon/align"
	"github.com/katalvlaran/chronon/block"
)

// Cloner is an optional escape hatch for per-node state that deepCopy's
// generic reflection walk cannot handle correctly on its own (maps,
// channels, anything holding a mutex). Built-in state shapes never need
// it: they are plain structs of values and slices.
type Cloner interface {
	CloneState() any
}

// Duplicate returns a new Session over the same (immutable) ancestor
// set and graph, with every piece of mutable state — per-node op state,
// alignment bookkeeping, collected outputs, current_time — deep-copied
// so the two Sessions may evolve independently from this point forward.
func (Scheduler) Duplicate(sess *Session) *Session {
	clone := &Session{
		nodes:       sess.nodes,
		nodeIndex:   sess.nodeIndex,
		parentIdx:   sess.parentIdx,
		requested:   sess.requested,
		requestedAt: sess.requestedAt,
		currentTime: sess.currentTime,
		poisoned:    sess.poisoned,
	}

	clone.opState = make([]any, len(sess.opState))
	for i, st := range sess.opState {
		clone.opState[i] = cloneState(st)
	}

	clone.alignSt = make([]*align.State, len(sess.alignSt))
	for i, st := range sess.alignSt {
		if st == nil {
			continue
		}
		clone.alignSt[i] = cloneState(st).(*align.State)
	}

	clone.outputs = make([]block.Block[any], len(sess.outputs))
	for i, b := range sess.outputs {
		clone.outputs[i] = block.NewUnchecked(
			append([]block.Timestamp(nil), b.Times()...),
			append([]any(nil), b.Values()...),
		)
	}

	return clone
}

// cloneState deep-copies one piece of per-node state. Values
// implementing Cloner delegate to it; everything else is copied via a
// small reflection walk (falling back to unsafe for unexported fields,
// since virtually every built-in Op keeps its state fields private)
// sufficient for pointer-to-struct state built from value fields and
// slices, which is every built-in Op's state shape. nil and
// non-pointer values (used by stateless ops) are returned unchanged,
// since there is nothing for them to alias.
func cloneState(v any) any {
	if v == nil {
		return nil
	}
	if c, ok := v.(Cloner); ok {
		return c.CloneState()
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return v
	}

	dst := reflect.New(rv.Elem().Type())
	deepCopyValue(rv.Elem(), dst.Elem())

	return dst.Interface()
}

func deepCopyValue(src, dst reflect.Value) {
	dst = settable(dst)
	src = settable(src)

	switch src.Kind() {
	case reflect.Slice:
		if src.IsNil() {
			return
		}
		dst.Set(reflect.MakeSlice(src.Type(), src.Len(), src.Cap()))
		reflect.Copy(dst, src)
	case reflect.Struct:
		for i := 0; i < src.NumField(); i++ {
			deepCopyValue(src.Field(i), dst.Field(i))
		}
	case reflect.Pointer:
		if src.IsNil() {
			return
		}
		dst.Set(reflect.New(src.Elem().Type()))
		deepCopyValue(src.Elem(), dst.Elem())
	default:
		dst.Set(src)
	}
}

// settable returns v itself if it is already addressable and
// assignable, or an aliased, writable view of it otherwise. Every
// built-in Op's per-node state keeps its fields unexported, so without
// this every struct field copy below would silently no-op via a failed
// CanSet check.
func settable(v reflect.Value) reflect.Value {
	if v.CanSet() {
		return v
	}

	return reflect.NewAt(v.Type(), unsafe.Pointer(v.UnsafeAddr())).Elem()
}
