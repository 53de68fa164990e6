package maybe_test

import (
	"testing"

	. "github.com/npillmayer/cow/maybe"
)

func TestMaybeMatch(t *testing.T) {
	x := Just(7)
	var v int
	switch m := x.Match(); m {
	case m.Just(&v):
		t.Logf("Just(%d)", v)
	case m.Nothing():
		t.Error("expected Just(7) not to match Nothing")
	}
	if v != 7 {
		t.Errorf("expected v to be 7, is %#v", v)
	}

	y := Nothing[int]()
	matched := false
	switch m := y.Match(); m {
	case m.Just(&v):
		t.Error("expected Nothing not to match Just")
	case m.Nothing():
		matched = true
	}
	if !matched {
		t.Error("expected Nothing to match Nothing, didn't")
	}
}

func TestMaybeGet(t *testing.T) {
	if v, ok := Just("a").Get(); !ok || v != "a" {
		t.Errorf("expected Just(a).Get() to be (a, true), is (%q, %v)", v, ok)
	}
	if v, ok := Nothing[string]().Get(); ok || v != "" {
		t.Errorf("expected Nothing.Get() to be (\"\", false), is (%q, %v)", v, ok)
	}
	if !Nothing[int]().IsNothing() || Just(0).IsNothing() {
		t.Error("IsNothing: Just(0) is something, Nothing is nothing")
	}
	if Of(3, false).IsNothing() != true || Of(3, true).WithDefault(0) != 3 {
		t.Error("expected Of to respect the ok flag")
	}
}

func TestMaybeWithDefault(t *testing.T) {
	if xx := Just(7).WithDefault(100); xx != 7 {
		t.Errorf("expected Just(7) to have value 7, is %d", xx)
	}
	if yy := Nothing[int]().WithDefault(100); yy != 100 {
		t.Errorf("expected Nothing to default to 100, is %d", yy)
	}
}

func TestMaybeMap(t *testing.T) {
	double := func(n int) int { return n * 2 }
	if v := Just(7).Map(double).WithDefault(0); v != 14 {
		t.Errorf("expected Just(7).Map(…) to return 14, is %d", v)
	}
	if !Nothing[int]().Map(double).IsNothing() {
		t.Error("expected Nothing.Map(…) to stay Nothing")
	}
}

func TestMaybeAndThen(t *testing.T) {
	gt0 := func(n int) Maybe[bool] {
		if n > 0 {
			return Just(true)
		}
		return Nothing[bool]()
	}
	if !AndThen(gt0, Just(7)).WithDefault(false) {
		t.Error("expected Just(7) |> andThen(gt0) to be true, isn't")
	}
	if !AndThen(gt0, Just(-1)).IsNothing() {
		t.Error("expected Just(-1) |> andThen(gt0) to be Nothing, isn't")
	}
	if !AndThen(gt0, Nothing[int]()).IsNothing() {
		t.Error("expected Nothing |> andThen(gt0) to be Nothing, isn't")
	}
}

func TestMaybeString(t *testing.T) {
	if s := Just(1).(interface{ String() string }).String(); s != "Just(1)" {
		t.Errorf("expected Just(1) to print as Just(1), is %q", s)
	}
}
