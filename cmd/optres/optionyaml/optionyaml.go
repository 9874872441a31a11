package optionyaml

import (
	"fmt"

	"optres/cmd/optres/option"

	"gopkg.in/yaml.v3"
)

// Document is the Go-level representation of a parsed guide file.
//
// A file declares named guides and presets. A preset either references a
// guide by name (possibly declared in another file) or carries its guide
// inline.
type Document struct {
	Guides  map[string]option.Guide
	Presets []PresetDef
}

// PresetDef is a preset before its guide reference has been resolved.
// Exactly one of GuideRef and Guide is set.
type PresetDef struct {
	Name        string
	Description string
	Spec        string
	GuideRef    string
	Guide       option.Guide
}

// ---- Internal YAML parsing structs ----------------------------------------

type yamlDocument struct {
	Guides  map[string][]yamlParam `yaml:"guides,omitempty"`
	Presets map[string]yamlPreset  `yaml:"presets,omitempty"`
}

type yamlPreset struct {
	Description string `yaml:"description,omitempty"`
	Spec        string `yaml:"spec"`
	// Guide is either a scalar (reference by name) or a sequence (inline).
	// A non-pointer yaml.Node is used because yaml.v3 leaves Kind at 0 for
	// *yaml.Node struct fields; Kind == 0 means the key was absent.
	Guide yaml.Node `yaml:"guide"`
}

type yamlParam struct {
	Kind    string      `yaml:"kind"`
	Char    string      `yaml:"char"`
	Name    string      `yaml:"name"`
	Display string      `yaml:"display,omitempty"`
	Values  []yamlValue `yaml:"values,omitempty"`
}

type yamlValue struct {
	Value   int    `yaml:"value"`
	Name    string `yaml:"name"`
	Display string `yaml:"display,omitempty"`
}

// ---- Parse -----------------------------------------------------------------

// Parse parses one guide file.
func Parse(in []byte) (Document, error) {
	var docNode yaml.Node
	if err := yaml.Unmarshal(in, &docNode); err != nil {
		return Document{}, err
	}
	if len(docNode.Content) == 0 {
		return Document{}, fmt.Errorf("phase=parse path=<doc>: empty YAML")
	}
	root := docNode.Content[0]
	if root.Kind != yaml.MappingNode {
		return Document{}, fmt.Errorf("phase=parse path=<doc>: expected a mapping with 'guides' and/or 'presets', got YAML kind %d", root.Kind)
	}

	var yd yamlDocument
	if err := root.Decode(&yd); err != nil {
		return Document{}, err
	}
	return convertDocument(yd)
}

// ---- Convert: yaml types → option types ----------------------------------

func convertDocument(yd yamlDocument) (Document, error) {
	doc := Document{Guides: make(map[string]option.Guide, len(yd.Guides))}
	for name, params := range yd.Guides {
		g, err := convertGuide(params, "guides."+name)
		if err != nil {
			return Document{}, err
		}
		doc.Guides[name] = g
	}
	for name, yp := range yd.Presets {
		p, err := convertPreset(name, yp)
		if err != nil {
			return Document{}, err
		}
		doc.Presets = append(doc.Presets, p)
	}
	return doc, nil
}

func convertPreset(name string, yp yamlPreset) (PresetDef, error) {
	path := "presets." + name
	p := PresetDef{Name: name, Description: yp.Description, Spec: yp.Spec}

	switch yp.Guide.Kind {
	case 0:
		return PresetDef{}, fmt.Errorf("phase=parse path=%s: %w: guide", path, ErrMissingField)
	case yaml.ScalarNode:
		if yp.Guide.Value == "" {
			return PresetDef{}, fmt.Errorf("phase=parse path=%s: %w: guide", path, ErrMissingField)
		}
		p.GuideRef = yp.Guide.Value
	case yaml.SequenceNode:
		var params []yamlParam
		if err := yp.Guide.Decode(&params); err != nil {
			return PresetDef{}, fmt.Errorf("phase=parse path=%s.guide: %w", path, err)
		}
		g, err := convertGuide(params, path+".guide")
		if err != nil {
			return PresetDef{}, err
		}
		p.Guide = g
	default:
		return PresetDef{}, fmt.Errorf("phase=parse path=%s.guide: expected a guide name or a parameter list, got YAML kind %d", path, yp.Guide.Kind)
	}
	return p, nil
}

// convertGuide turns a parameter list into an option.Guide terminated by
// option.End. Chars and names must be unique within the guide.
func convertGuide(params []yamlParam, path string) (option.Guide, error) {
	chars := map[byte]struct{}{}
	names := map[string]struct{}{}
	var g option.Guide

	for i, yp := range params {
		ppath := fmt.Sprintf("%s[%d]", path, i)
		if yp.Name != "" {
			ppath = path + "." + yp.Name
		}
		if yp.Name == "" {
			return nil, fmt.Errorf("phase=parse path=%s: %w: name", ppath, ErrMissingField)
		}
		if len(yp.Char) != 1 || !isLetter(yp.Char[0]) {
			return nil, fmt.Errorf("phase=parse path=%s: %w: %q", ppath, ErrBadChar, yp.Char)
		}
		c := yp.Char[0]
		if _, dup := chars[c]; dup {
			return nil, fmt.Errorf("phase=parse path=%s: %w: %s", ppath, ErrDuplicateChar, yp.Char)
		}
		if _, dup := names[yp.Name]; dup {
			return nil, fmt.Errorf("phase=parse path=%s: %w: %s", ppath, ErrDuplicateName, yp.Name)
		}
		chars[c] = struct{}{}
		names[yp.Name] = struct{}{}

		if yp.Kind != "enum" && len(yp.Values) > 0 {
			return nil, fmt.Errorf("phase=parse path=%s: %w", ppath, ErrMisplacedValues)
		}

		switch yp.Kind {
		case "int":
			g = append(g, option.IntParam(c, yp.Name, yp.Display))
		case "string":
			g = append(g, option.StringParam(c, yp.Name, yp.Display))
		case "enum":
			if len(yp.Values) == 0 {
				return nil, fmt.Errorf("phase=parse path=%s: %w: values", ppath, ErrMissingField)
			}
			g = append(g, option.EnumParam(c, yp.Name, yp.Display))
			for j, v := range yp.Values {
				if v.Name == "" {
					return nil, fmt.Errorf("phase=parse path=%s.values[%d]: %w: name", ppath, j, ErrMissingField)
				}
				g = append(g, option.EnumValue(v.Value, v.Name, v.Display))
			}
		case "":
			return nil, fmt.Errorf("phase=parse path=%s: %w: kind", ppath, ErrMissingField)
		default:
			return nil, fmt.Errorf("phase=parse path=%s: %w: %q (want int, string or enum)", ppath, ErrUnknownKind, yp.Kind)
		}
	}
	return append(g, option.End), nil
}

func isLetter(ch byte) bool {
	return ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z')
}

// ---- Public build functions ------------------------------------------------

// BuildMany parses multiple guide files and builds a catalog from them.
func BuildMany(inputs ...[]byte) (*option.Catalog, error) {
	docs := make([]Document, 0, len(inputs))
	for _, in := range inputs {
		doc, err := Parse(in)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return BuildFromDocuments(docs...)
}

// BuildFromDocuments merges the guides of all documents, resolves every
// preset's guide reference, validates each preset's specification against
// its guide and registers it. Guide and preset names must be unique across
// documents.
func BuildFromDocuments(docs ...Document) (*option.Catalog, error) {
	guides := map[string]option.Guide{}
	for _, doc := range docs {
		for name, g := range doc.Guides {
			if _, exists := guides[name]; exists {
				return nil, fmt.Errorf("phase=parse path=guides.%s: %w", name, ErrDuplicateGuide)
			}
			guides[name] = g
		}
	}

	cat := option.NewCatalog()
	for _, doc := range docs {
		for _, p := range doc.Presets {
			path := "presets." + p.Name
			g := p.Guide
			if p.GuideRef != "" {
				var ok bool
				g, ok = guides[p.GuideRef]
				if !ok {
					return nil, fmt.Errorf("phase=build path=%s: %w: %s", path, ErrUnknownGuide, p.GuideRef)
				}
			}
			if err := option.ValidateSpec(g, p.Spec); err != nil {
				return nil, fmt.Errorf("phase=build path=%s: spec %q: %w", path, p.Spec, err)
			}
			err := cat.Register(option.Preset{
				Name:        p.Name,
				Description: p.Description,
				Guide:       g,
				Spec:        p.Spec,
			})
			if err != nil {
				return nil, fmt.Errorf("phase=build path=%s: %w", path, err)
			}
		}
	}
	return cat, nil
}
