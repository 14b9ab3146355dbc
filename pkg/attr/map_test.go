package attr

import "testing"

func TestEntryLazyAbsent(t *testing.T) {
	var m Map
	v := m.Get("color")
	if v.Present() {
		t.Fatalf("never-touched entry should be absent, got %v", v)
	}
}

func TestEntrySetFiresOnChange(t *testing.T) {
	var m Map
	var gotNew, gotOld Value
	fired := 0
	m.Entry("color").OnChange.Subscribe(func(newV, oldV Value) {
		fired++
		gotNew, gotOld = newV, oldV
	})

	m.Set("color", Of("red"))
	if fired != 1 || gotNew != Of("red") || gotOld != Absent {
		t.Fatalf("fired=%d new=%v old=%v", fired, gotNew, gotOld)
	}

	m.Set("color", Of("red")) // same value: no-op
	if fired != 1 {
		t.Fatalf("fired=%d after no-op write, want 1", fired)
	}

	m.Set("color", Of("blue"))
	if fired != 2 || gotNew != Of("blue") || gotOld != Of("red") {
		t.Fatalf("fired=%d new=%v old=%v", fired, gotNew, gotOld)
	}
}

func TestEntryAbsentToAbsentIsNoop(t *testing.T) {
	var m Map
	fired := 0
	m.Entry("x").OnChange.Subscribe(func(Value, Value) { fired++ })
	m.Set("x", Absent)
	if fired != 0 {
		t.Fatalf("writing absence to an absent entry must not fire, fired=%d", fired)
	}
}

func TestBindManyPropagatesInitialValue(t *testing.T) {
	var m Map
	m.Set("label", Of("hi"))

	var labelSeen, colorSeen Value
	handle := BindMany(&m, map[string]func(Value, Value){
		"label": func(newV, oldV Value) { labelSeen = newV },
		"color": func(newV, oldV Value) { colorSeen = newV },
	})

	if labelSeen != Of("hi") {
		t.Fatalf("label should propagate its present initial value, got %v", labelSeen)
	}
	if colorSeen.Present() {
		t.Fatalf("color has no value yet, should not have fired, got %v", colorSeen)
	}

	fired := false
	m.Entry("label").OnChange.Subscribe(func(Value, Value) { fired = true })
	handle.Unhook()
	m.Set("label", Of("bye"))
	if !fired {
		// sanity: our own fresh subscription (not part of the handle) should still fire
		t.Fatal("subscription made outside BindMany was removed by its handle")
	}
}

func TestBindManyHandleUnhooksAll(t *testing.T) {
	var m Map
	var labelCalls, colorCalls int
	handle := BindMany(&m, map[string]func(Value, Value){
		"label": func(Value, Value) { labelCalls++ },
		"color": func(Value, Value) { colorCalls++ },
	})

	handle.Unhook()
	m.Set("label", Of("x"))
	m.Set("color", Of("y"))
	if labelCalls != 0 || colorCalls != 0 {
		t.Fatalf("labelCalls=%d colorCalls=%d, want 0,0 after unhook", labelCalls, colorCalls)
	}
}
