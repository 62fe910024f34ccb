package value

import "testing"

func TestTruthy(t *testing.T) {
	cases := []struct {
		v    Value
		want bool
	}{
		{NewBool(true), true},
		{NewBool(false), false},
		{NewInteger(0), false},
		{NewInteger(1), true},
		{NullValue, false},
		{NewString(""), true},
		{NewFloat(0), true},
		{NewList(nil), true},
	}
	for _, c := range cases {
		if got := Truthy(c.v); got != c.want {
			t.Errorf("Truthy(%v) = %v, want %v", c.v, got, c.want)
		}
	}
}

func TestToIntRoundTrip(t *testing.T) {
	vals := []Value{NewInteger(5), NewFloat(3.7), NewBool(true), NewString("12"), NullValue}
	for _, v := range vals {
		first := NewInteger(ToInt(v))
		if ToInt(first) != first.Value {
			t.Errorf("int(int(%v)) != int(%v)", v, v)
		}
	}
}

func TestToFloatBadStringYieldsZero(t *testing.T) {
	if got := ToFloat(NewString("not a number")); got != 0.0 {
		t.Errorf("ToFloat(bad string) = %v, want 0", got)
	}
}

func TestStringRoundTrip(t *testing.T) {
	vals := []Value{NewInteger(5), NewFloat(2.5), NewString("hi"), NewBool(true), NullValue}
	for _, v := range vals {
		s1 := v.String()
		s2 := NewString(s1).String()
		if s1 != s2 {
			t.Errorf("string(string(%v)) = %q, want %q", v, s2, s1)
		}
	}
}

func TestListLenEmpty(t *testing.T) {
	l := NewList(nil)
	if len(l.Elements) != 0 {
		t.Errorf("len(empty list) = %d, want 0", len(l.Elements))
	}
}

func TestDeepCopyIndependence(t *testing.T) {
	inner := NewList([]Value{NewInteger(1)})
	outer := NewList([]Value{inner})

	copied := DeepCopy(outer).(*List)
	copiedInner := copied.Elements[0].(*List)
	copiedInner.Elements[0] = NewInteger(99)

	if ToInt(inner.Elements[0]) == 99 {
		t.Errorf("DeepCopy did not isolate nested list mutation")
	}
}

func TestFloatCanonicalFormAlwaysHasADecimalPoint(t *testing.T) {
	// A Float's canonical form must never collapse to an Integer's
	// (spec §4.4, §9): 1 and 1.0 are required to compare and switch
	// unequal, so an integral Float always renders with ".0".
	f := NewFloat(2.0)
	if f.String() != "2.0" {
		t.Errorf("Float(2.0).String() = %q, want %q", f.String(), "2.0")
	}
	if NewInteger(2).String() == f.String() {
		t.Errorf("Integer(2) and Float(2.0) must not share a canonical form")
	}
}
