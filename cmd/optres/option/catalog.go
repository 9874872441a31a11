package option

import "sort"

// Preset pairs a guide with the specification it is normally resolved
// against.
type Preset struct {
	Name        string
	Description string
	Guide       Guide
	Spec        string
}

// Catalog holds named presets. Presets are registered once while loading,
// then looked up by name.
type Catalog struct {
	presets map[string]Preset
}

// NewCatalog returns an empty Catalog.
func NewCatalog() *Catalog {
	return &Catalog{
		presets: make(map[string]Preset),
	}
}

// Register adds a preset to the catalog.
// Returns ErrPresetExists if a preset with that name is already registered.
func (c *Catalog) Register(p Preset) error {
	if _, exists := c.presets[p.Name]; exists {
		return ErrPresetExists
	}
	c.presets[p.Name] = p
	return nil
}

// Get returns the preset registered under name.
func (c *Catalog) Get(name string) (Preset, bool) {
	p, ok := c.presets[name]
	return p, ok
}

// Names returns every registered preset name, sorted.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.presets))
	for name := range c.presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of registered presets.
func (c *Catalog) Len() int { return len(c.presets) }
