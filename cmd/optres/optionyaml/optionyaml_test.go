package optionyaml

import (
	"errors"
	"strings"
	"testing"

	"optres/cmd/optres/option"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func requireBuildOK(t *testing.T, ymls ...string) *option.Catalog {
	t.Helper()
	inputs := make([][]byte, len(ymls))
	for i, y := range ymls {
		inputs[i] = []byte(y)
	}
	cat, err := BuildMany(inputs...)
	if err != nil {
		t.Fatalf("expected success, got error: %v", err)
	}
	return cat
}

func requireBuildErr(t *testing.T, yml string, wantSubstrs ...string) error {
	t.Helper()
	_, err := BuildMany([]byte(yml))
	if err == nil {
		t.Fatalf("expected error but got none")
	}
	for _, sub := range wantSubstrs {
		if !strings.Contains(err.Error(), sub) {
			t.Errorf("error %q does not contain %q", err.Error(), sub)
		}
	}
	return err
}

const floppyYAML = `
guides:
  floppy:
    - {kind: int, char: "H", name: heads, display: Heads}
    - {kind: int, char: "T", name: tracks, display: Tracks}
    - {kind: int, char: "S", name: sectors, display: Sectors}
    - {kind: string, char: "N", name: label, display: Disk Label}
    - kind: enum
      char: "F"
      name: ftype
      display: File Type
      values:
        - {value: 0, name: basic, display: BASIC}
        - {value: 2, name: binary, display: Binary}
presets:
  basic-disk:
    description: single or double sided floppy
    spec: "H[1]-2;T[35]/40/80;S[18]"
    guide: floppy
`

// ---------------------------------------------------------------------------
// Tests
// ---------------------------------------------------------------------------

func TestParse_Guide(t *testing.T) {
	doc, err := Parse([]byte(floppyYAML))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	g, ok := doc.Guides["floppy"]
	if !ok {
		t.Fatal("guide floppy missing")
	}
	want := option.Guide{
		option.IntParam('H', "heads", "Heads"),
		option.IntParam('T', "tracks", "Tracks"),
		option.IntParam('S', "sectors", "Sectors"),
		option.StringParam('N', "label", "Disk Label"),
		option.EnumParam('F', "ftype", "File Type"),
		option.EnumValue(0, "basic", "BASIC"),
		option.EnumValue(2, "binary", "Binary"),
		option.End,
	}
	if len(g) != len(want) {
		t.Fatalf("guide has %d entries, want %d", len(g), len(want))
	}
	for i := range want {
		if g[i] != want[i] {
			t.Errorf("entry %d: got %+v, want %+v", i, g[i], want[i])
		}
	}
	if len(doc.Presets) != 1 || doc.Presets[0].GuideRef != "floppy" {
		t.Fatalf("presets: %+v", doc.Presets)
	}
}

func TestBuild_ResolvesPreset(t *testing.T) {
	cat := requireBuildOK(t, floppyYAML)
	p, ok := cat.Get("basic-disk")
	if !ok {
		t.Fatal("preset basic-disk missing")
	}
	r, err := option.New(p.Guide, p.Spec)
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()
	if err := r.AddParam("tracks", "80"); err != nil {
		t.Fatal(err)
	}
	if err := r.Finish(); err != nil {
		t.Fatal(err)
	}
	if got := r.LookupInt('T'); got != 80 {
		t.Fatalf("LookupInt(T) = %d", got)
	}
	if got := r.LookupInt('H'); got != 1 {
		t.Fatalf("LookupInt(H) = %d", got)
	}
}

func TestBuild_InlineGuide(t *testing.T) {
	cat := requireBuildOK(t, `
presets:
  label:
    spec: "N'Simon''s desk'"
    guide:
      - {kind: string, char: "N", name: label}
`)
	p, _ := cat.Get("label")
	s, err := option.GetStringDefault(p.Spec, 'N')
	if err != nil || s != "Simon's desk" {
		t.Fatalf("got %q, %v", s, err)
	}
}

func TestBuild_GuideAcrossFiles(t *testing.T) {
	guides := `
guides:
  geom:
    - {kind: int, char: "H", name: heads}
`
	presets := `
presets:
  one-head:
    spec: "H[1]"
    guide: geom
`
	cat := requireBuildOK(t, guides, presets)
	if cat.Len() != 1 {
		t.Fatalf("Len() = %d", cat.Len())
	}
}

func TestBuild_Errors(t *testing.T) {
	t.Run("unknown kind", func(t *testing.T) {
		err := requireBuildErr(t, `
guides:
  g:
    - {kind: float, char: "X", name: x}
`, "phase=parse", "path=guides.g.x")
		if !errors.Is(err, ErrUnknownKind) {
			t.Fatalf("want ErrUnknownKind, got %v", err)
		}
	})

	t.Run("bad char", func(t *testing.T) {
		err := requireBuildErr(t, `
guides:
  g:
    - {kind: int, char: "1", name: x}
`)
		if !errors.Is(err, ErrBadChar) {
			t.Fatalf("want ErrBadChar, got %v", err)
		}
	})

	t.Run("duplicate char", func(t *testing.T) {
		err := requireBuildErr(t, `
guides:
  g:
    - {kind: int, char: "X", name: x}
    - {kind: int, char: "X", name: y}
`)
		if !errors.Is(err, ErrDuplicateChar) {
			t.Fatalf("want ErrDuplicateChar, got %v", err)
		}
	})

	t.Run("duplicate name", func(t *testing.T) {
		err := requireBuildErr(t, `
guides:
  g:
    - {kind: int, char: "X", name: x}
    - {kind: int, char: "Y", name: x}
`)
		if !errors.Is(err, ErrDuplicateName) {
			t.Fatalf("want ErrDuplicateName, got %v", err)
		}
	})

	t.Run("enum without values", func(t *testing.T) {
		err := requireBuildErr(t, `
guides:
  g:
    - {kind: enum, char: "X", name: x}
`)
		if !errors.Is(err, ErrMissingField) {
			t.Fatalf("want ErrMissingField, got %v", err)
		}
	})

	t.Run("values on int", func(t *testing.T) {
		err := requireBuildErr(t, `
guides:
  g:
    - kind: int
      char: "X"
      name: x
      values: [{value: 1, name: one}]
`)
		if !errors.Is(err, ErrMisplacedValues) {
			t.Fatalf("want ErrMisplacedValues, got %v", err)
		}
	})

	t.Run("unknown guide", func(t *testing.T) {
		err := requireBuildErr(t, `
presets:
  p:
    spec: "H1"
    guide: nowhere
`, "phase=build", "path=presets.p")
		if !errors.Is(err, ErrUnknownGuide) {
			t.Fatalf("want ErrUnknownGuide, got %v", err)
		}
	})

	t.Run("missing guide", func(t *testing.T) {
		err := requireBuildErr(t, `
presets:
  p:
    spec: "H1"
`)
		if !errors.Is(err, ErrMissingField) {
			t.Fatalf("want ErrMissingField, got %v", err)
		}
	})

	t.Run("invalid spec", func(t *testing.T) {
		err := requireBuildErr(t, floppyYAML+`
  broken:
    spec: "H[1-2"
    guide: floppy
`, "presets.broken", "Syntax error")
		if !errors.Is(err, option.ErrSyntax) {
			t.Fatalf("want option.ErrSyntax, got %v", err)
		}
	})

	t.Run("duplicate guide across files", func(t *testing.T) {
		g := "guides:\n  g:\n    - {kind: int, char: \"X\", name: x}\n"
		_, err := BuildMany([]byte(g), []byte(g))
		if !errors.Is(err, ErrDuplicateGuide) {
			t.Fatalf("want ErrDuplicateGuide, got %v", err)
		}
	})

	t.Run("duplicate preset across files", func(t *testing.T) {
		p := "presets:\n  p:\n    spec: \"X1\"\n    guide: [{kind: int, char: \"X\", name: x}]\n"
		_, err := BuildMany([]byte(p), []byte(p))
		if !errors.Is(err, option.ErrPresetExists) {
			t.Fatalf("want ErrPresetExists, got %v", err)
		}
	})

	t.Run("empty document", func(t *testing.T) {
		requireBuildErr(t, "", "empty YAML")
	})

	t.Run("sequence root", func(t *testing.T) {
		requireBuildErr(t, "- a\n- b\n", "expected a mapping")
	})
}
