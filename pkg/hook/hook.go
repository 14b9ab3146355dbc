package hook

// Handle identifies exactly one subscription. Unhook removes it; calling
// Unhook more than once, or on a zero Handle, is a no-op.
type Handle struct {
	unhook func()
}

// Unhook removes the subscription this handle identifies. Idempotent.
func (h Handle) Unhook() {
	if h.unhook != nil {
		h.unhook()
	}
}

// entry is one live registration. id is unique within its owning registry
// so removal never disturbs another registration of the same callback.
type entry[F any] struct {
	id uint64
	cb F
}

// registry is the shared bookkeeping behind Hook and ChangeHook: an
// ordered, counter-keyed list of callbacks. Triggering snapshots the list
// first, so subscriptions added mid-trigger are not visited, and
// unhooking mid-trigger does not skip not-yet-visited entries.
type registry[F any] struct {
	entries []entry[F]
	nextID  uint64
}

func (r *registry[F]) subscribe(cb F) (uint64, Handle) {
	r.nextID++
	id := r.nextID
	r.entries = append(r.entries, entry[F]{id: id, cb: cb})
	h := Handle{unhook: func() { r.remove(id) }}
	return id, h
}

func (r *registry[F]) remove(id uint64) {
	for i, e := range r.entries {
		if e.id == id {
			r.entries = append(r.entries[:i], r.entries[i+1:]...)
			return
		}
	}
}

func (r *registry[F]) snapshot() []entry[F] {
	if len(r.entries) == 0 {
		return nil
	}
	cp := make([]entry[F], len(r.entries))
	copy(cp, r.entries)
	return cp
}

// Combine returns a Handle that unhooks every given handle, in order, when
// unhooked itself. Used by helpers like attr.BindMany that make several
// subscriptions on a caller's behalf and want to hand back one handle.
func Combine(handles ...Handle) Handle {
	return Handle{unhook: func() {
		for _, h := range handles {
			h.Unhook()
		}
	}}
}

// Hook is a single-value multicast event: onAddChild, onAddPin,
// onAddProjectedPin, onAddProjectedConnector.
type Hook[T any] struct {
	reg registry[func(T)]
}

// Subscribe registers cb. Multiple registrations of the same callback
// count independently and must each be unhooked separately.
func (h *Hook[T]) Subscribe(cb func(T)) Handle {
	_, handle := h.reg.subscribe(cb)
	return handle
}

// Trigger synchronously invokes every callback registered at the time of
// the call, in registration order.
func (h *Hook[T]) Trigger(v T) {
	for _, e := range h.reg.snapshot() {
		e.cb(v)
	}
}

// ChangeHook is a new/old-pair multicast event: onParentChanged,
// onTargetChanged, onProjectedTargetChanged, onProjectedParentChanged.
type ChangeHook[T any] struct {
	reg registry[func(newV, oldV T)]
}

// Subscribe registers cb. Multiple registrations of the same callback
// count independently and must each be unhooked separately.
func (h *ChangeHook[T]) Subscribe(cb func(newV, oldV T)) Handle {
	_, handle := h.reg.subscribe(cb)
	return handle
}

// Trigger synchronously invokes every callback registered at the time of
// the call, in registration order.
func (h *ChangeHook[T]) Trigger(newV, oldV T) {
	for _, e := range h.reg.snapshot() {
		e.cb(newV, oldV)
	}
}
