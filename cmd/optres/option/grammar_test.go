package option

import (
	"errors"
	"reflect"
	"testing"
)

const diskSpec = "H[1]-2;T[35]/40/80;S[18]"

func TestListRanges(t *testing.T) {
	cases := []struct {
		spec string
		char byte
		want []Range
	}{
		{diskSpec, 'H', []Range{{1, 2}}},
		{diskSpec, 'T', []Range{{35, 35}, {40, 40}, {80, 80}}},
		{diskSpec, 'S', []Range{{18, 18}}},
		{"A1-3/5/7-9", 'A', []Range{{1, 3}, {5, 5}, {7, 9}}},
		{"B1;2", 'B', []Range{{1, 1}, {2, 2}}},
		{"C-5", 'C', []Range{{0, 5}}},
		{"D1-[3]", 'D', []Range{{1, 3}}},
	}
	for _, tc := range cases {
		got, err := ListRanges(tc.spec, tc.char)
		if err != nil {
			t.Fatalf("ListRanges(%q, %c): unexpected error: %v", tc.spec, tc.char, err)
		}
		if !reflect.DeepEqual(got, tc.want) {
			t.Errorf("ListRanges(%q, %c) = %v, want %v", tc.spec, tc.char, got, tc.want)
		}
	}
}

func TestGetDefault(t *testing.T) {
	cases := []struct {
		spec string
		char byte
		want int
	}{
		{diskSpec, 'H', 1},
		{diskSpec, 'T', 35},
		{diskSpec, 'S', 18},
		{"S18", 'S', -1},
		{"D1-[3]", 'D', 3},
		{"N'Heads'H[2]", 'H', 2},
	}
	for _, tc := range cases {
		got, err := GetDefault(tc.spec, tc.char)
		if err != nil {
			t.Fatalf("GetDefault(%q, %c): unexpected error: %v", tc.spec, tc.char, err)
		}
		if got != tc.want {
			t.Errorf("GetDefault(%q, %c) = %d, want %d", tc.spec, tc.char, got, tc.want)
		}
	}
}

func TestGrammar_SyntaxErrors(t *testing.T) {
	for _, spec := range []string{
		"H",
		"HT[1]",
		"H[1",
		"H1]",
		"H[]",
		"H[1][2]",
		"H1--2",
		"H[1-2]",
		"H1-",
		"H1 2",
		"H1/[2/3]",
		"H99999999999",
	} {
		if _, err := ListRanges(spec, 'H'); !errors.Is(err, ErrSyntax) {
			t.Errorf("ListRanges(%q): want ErrSyntax, got %v", spec, err)
		}
	}
}

func TestGrammar_MissingSectionIsSyntax(t *testing.T) {
	if _, err := ListRanges(diskSpec, 'X'); !errors.Is(err, ErrSyntax) {
		t.Fatalf("want ErrSyntax, got %v", err)
	}
	if _, err := GetDefault(diskSpec, 'X'); !errors.Is(err, ErrSyntax) {
		t.Fatalf("want ErrSyntax, got %v", err)
	}
}

func TestCheckValue(t *testing.T) {
	t.Run("range", func(t *testing.T) {
		for _, v := range []int{1, 2} {
			if got, err := CheckValue("[1]-2", v); err != nil || got != v {
				t.Errorf("CheckValue(%d) = %d, %v", v, got, err)
			}
		}
		for _, v := range []int{0, 3} {
			if _, err := CheckValue("[1]-2", v); !errors.Is(err, ErrParamOutOfRange) {
				t.Errorf("CheckValue(%d): want ErrParamOutOfRange, got %v", v, err)
			}
		}
	})

	t.Run("discrete", func(t *testing.T) {
		if _, err := CheckValue("[35]/40/80", 36); !errors.Is(err, ErrParamOutOfRange) {
			t.Fatalf("want ErrParamOutOfRange, got %v", err)
		}
		if got, err := CheckValue("[35]/40/80", 80); err != nil || got != 80 {
			t.Fatalf("got %d, %v", got, err)
		}
	})

	t.Run("unset takes default", func(t *testing.T) {
		if got, err := CheckValue("[35]/40/80", -1); err != nil || got != 35 {
			t.Fatalf("got %d, %v", got, err)
		}
	})

	t.Run("unset without default stays unset", func(t *testing.T) {
		if got, err := CheckValue("35/40/80", -1); err != nil || got != -1 {
			t.Fatalf("got %d, %v", got, err)
		}
	})

	t.Run("open lower bound", func(t *testing.T) {
		if _, err := CheckValue("-5", 0); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := CheckValue("-5", 6); !errors.Is(err, ErrParamOutOfRange) {
			t.Fatalf("want ErrParamOutOfRange, got %v", err)
		}
	})
}

func TestIsValidValue(t *testing.T) {
	if !IsValidValue(diskSpec, 'T', 40) {
		t.Error("40 tracks should be valid")
	}
	if IsValidValue(diskSpec, 'T', 41) {
		t.Error("41 tracks should be invalid")
	}
	if IsValidValue(diskSpec, 'X', 1) {
		t.Error("missing parameter should be invalid")
	}
}

func TestSection_SkipsLiterals(t *testing.T) {
	spec := "N'Simon''s Hat'H[2]"
	text, ok := section(spec, 'H')
	if !ok || text != "[2]" {
		t.Fatalf("section H = %q, %v", text, ok)
	}
	text, ok = section(spec, 'N')
	if !ok || text != "'Simon''s Hat'" {
		t.Fatalf("section N = %q, %v", text, ok)
	}
	if _, ok := section(spec, 'S'); ok {
		t.Fatal("S inside a literal must not be a key")
	}
}

func TestContainsAndCount(t *testing.T) {
	if !Contains(diskSpec, "HTS") {
		t.Error("expected HTS to be contained")
	}
	if Contains(diskSpec, "HTX") {
		t.Error("X is not part of the specification")
	}
	if Contains("N'Hello'", "H") {
		t.Error("H inside a literal is not a key")
	}
	if got := CountOptions(diskSpec); got != 3 {
		t.Errorf("CountOptions = %d, want 3", got)
	}
	if got := CountOptions("N'Hello There'H1"); got != 2 {
		t.Errorf("CountOptions = %d, want 2", got)
	}
}

// Every value inside a listed range must be accepted.
func TestRanges_RoundTrip(t *testing.T) {
	for _, spec := range []string{diskSpec, "A1-3/5/7-9", "B[0]-15"} {
		for _, c := range keys(spec) {
			ranges, err := ListRanges(spec, c)
			if err != nil {
				t.Fatalf("ListRanges(%q, %c): %v", spec, c, err)
			}
			for _, rg := range ranges {
				for v := rg.Min; v <= rg.Max; v++ {
					if !IsValidValue(spec, c, v) {
						t.Errorf("%q %c: %d listed in %v but rejected", spec, c, v, rg)
					}
				}
			}
		}
	}
}
