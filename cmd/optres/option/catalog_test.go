package option

import (
	"errors"
	"reflect"
	"testing"
)

func TestCatalog(t *testing.T) {
	c := NewCatalog()
	for _, name := range []string{"coco-jvc", "apple2-do"} {
		if err := c.Register(Preset{Name: name, Guide: diskGuide, Spec: diskSpec}); err != nil {
			t.Fatalf("Register(%s): %v", name, err)
		}
	}
	if err := c.Register(Preset{Name: "coco-jvc"}); !errors.Is(err, ErrPresetExists) {
		t.Fatalf("want ErrPresetExists, got %v", err)
	}
	if got, want := c.Names(), []string{"apple2-do", "coco-jvc"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("Names() = %v, want %v", got, want)
	}
	p, ok := c.Get("coco-jvc")
	if !ok || p.Spec != diskSpec {
		t.Fatalf("Get: %+v, %v", p, ok)
	}
	if _, ok := c.Get("missing"); ok {
		t.Fatal("Get(missing) should fail")
	}
	if c.Len() != 2 {
		t.Fatalf("Len() = %d", c.Len())
	}
}

func TestGuide_Helpers(t *testing.T) {
	params := diskGuide.Params()
	if len(params) != 6 {
		t.Fatalf("Params() = %d entries, want 6", len(params))
	}
	vals := diskGuide.EnumValues('F')
	if len(vals) != 4 || vals[3].Name != "source" {
		t.Fatalf("EnumValues(F) = %+v", vals)
	}
	if diskGuide.EnumValues('H') != nil {
		t.Fatal("H is not an enum")
	}
	e, ok := FindOption(diskGuide, 'N')
	if !ok || e.Kind != KindString || e.Name != "name" {
		t.Fatalf("FindOption(N) = %+v, %v", e, ok)
	}
	if _, ok := FindOption(diskGuide, 'Q'); ok {
		t.Fatal("FindOption(Q) should fail")
	}
	// entries after End are ignored
	g := Guide{IntParam('A', "a", "A"), End, IntParam('B', "b", "B")}
	if len(g.Params()) != 1 {
		t.Fatal("End must terminate the guide")
	}
}
