package runtime

import (
	"math"
	"testing"
)

func TestRender(t *testing.T) {
	cases := []struct {
		val  Value
		want string
	}{
		{IntegerValue{Val: -42}, "-42"},
		{IntegerValue{Val: math.MinInt64}, "-9223372036854775808"},
		{StringValue{Val: "plain"}, "plain"},
		{BoolValue{Val: true}, "true"},
		{BoolValue{Val: false}, "false"},
	}
	for _, tc := range cases {
		if got := Render(tc.val); got != tc.want {
			t.Fatalf("Render(%#v) = %q, want %q", tc.val, got, tc.want)
		}
	}
}

func TestEqualComparesKindAndPayload(t *testing.T) {
	if !Equal(IntegerValue{Val: 1}, IntegerValue{Val: 1}) {
		t.Fatalf("expected equal integers")
	}
	if Equal(IntegerValue{Val: 1}, StringValue{Val: "1"}) {
		t.Fatalf("expected values of different kinds to differ")
	}
	if Equal(BoolValue{Val: true}, BoolValue{Val: false}) {
		t.Fatalf("expected different booleans to differ")
	}
}

func TestKindNamesRoundTrip(t *testing.T) {
	for _, kind := range []Kind{KindInteger, KindString, KindBool} {
		parsed, err := ParseKind(kind.String())
		if err != nil || parsed != kind {
			t.Fatalf("ParseKind(%q) = %v, %v", kind.String(), parsed, err)
		}
	}
	if _, err := ParseKind("Float"); err == nil {
		t.Fatalf("expected unknown kind to fail")
	}
}

func TestDefaultValue(t *testing.T) {
	if !Equal(DefaultValue, IntegerValue{Val: 0}) {
		t.Fatalf("expected default value to be Int 0")
	}
}
