package catalog

import (
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"
)

// Document is the serializable form of a catalog. It is the unit read from files and
// from the database, and the input to New.
type Document struct {
	About        AboutSection         `json:"about"`
	Education    EducationSection     `json:"education"`
	Experience   ExperienceSection    `json:"experience"`
	Projects     ProjectsSection      `json:"projects"`
	Skills       SkillsSection        `json:"skills"`
	Hidden       map[Category]Overlay `json:"hidden"`
	Extra        Overlay              `json:"extra"`
	Aliases      AliasTable           `json:"aliases"`
	Descriptions *Descriptions        `json:"descriptions,omitempty"`
}

// Sections returns the document's public sections in RealCategories order.
func (d Document) Sections() []Section {
	return []Section{d.About, d.Education, d.Experience, d.Projects, d.Skills}
}

// Catalog is an immutable, indexed view of a Document. All lookups are total functions:
// a field that cannot be found is reported as Invalid, never as an error.
type Catalog struct {
	sections     map[Category][]Field
	public       map[Category]map[string]any
	hidden       map[Category]Overlay
	extra        Overlay
	aliases      AliasTable
	canonical    map[string]string
	descriptions *Descriptions
	logger       *zap.Logger
}

// Option configures a Catalog.
type Option func(*Catalog)

// WithLogger sets the logger used for debug output of resolutions and lookups.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Catalog) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// New indexes doc. It fails only when the hidden overlay names a category that is not real.
func New(doc Document, opts ...Option) (*Catalog, error) {
	c := &Catalog{
		sections:  make(map[Category][]Field, len(RealCategories)),
		public:    make(map[Category]map[string]any, len(RealCategories)),
		hidden:    make(map[Category]Overlay, len(doc.Hidden)),
		extra:     doc.Extra,
		aliases:   doc.Aliases,
		canonical: make(map[string]string),
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}

	c.descriptions = doc.Descriptions
	if c.descriptions == nil {
		c.descriptions = builtinDescriptions()
	}
	if c.extra == nil {
		c.extra = Overlay{}
	}

	for _, section := range doc.Sections() {
		fields := section.Fields()
		index := make(map[string]any, len(fields))
		for _, f := range fields {
			index[f.Name] = f.Value
		}
		c.sections[section.Category()] = fields
		c.public[section.Category()] = index
	}

	for category, overlay := range doc.Hidden {
		if !category.IsReal() {
			return nil, fmt.Errorf("hidden overlay names unknown category %q", category)
		}
		c.hidden[category] = overlay
	}

	c.indexCanonicalNames()
	return c, nil
}

// Builtin returns a catalog over the compiled-in document.
func Builtin(opts ...Option) *Catalog {
	c, err := New(BuiltinDocument(), opts...)
	if err != nil {
		panic(fmt.Sprintf("builtin catalog: %v", err))
	}
	return c
}

// indexCanonicalNames records every known field name by its lowercase form. Earlier
// sources win: public data in category order, then hidden overlays, then extra.
func (c *Catalog) indexCanonicalNames() {
	add := func(name string) {
		key := strings.ToLower(name)
		if _, exists := c.canonical[key]; !exists {
			c.canonical[key] = name
		}
	}
	for _, category := range RealCategories {
		for _, f := range c.sections[category] {
			add(f.Name)
		}
	}
	for _, category := range RealCategories {
		for _, name := range sortedKeys(c.hidden[category]) {
			add(name)
		}
	}
	for _, name := range sortedKeys(c.extra) {
		add(name)
	}
}

// Locate finds field under scope. For a real category only that category's hidden overlay
// and public data are consulted, in that order. For Freestyle the extra overlay is checked
// first, then every hidden overlay, then every category's public data, walking categories
// in RealCategories order. The literal field "help" always resolves to the scope's
// description record.
func (c *Catalog) Locate(field string, scope Category) Location {
	if field == "help" {
		return c.locateHelp(scope)
	}

	switch {
	case scope == Freestyle:
		return c.locateAnywhere(field)
	case scope.IsReal():
		return c.locateIn(field, scope)
	default:
		return invalidLocation()
	}
}

func (c *Catalog) locateHelp(scope Category) Location {
	if scope == Freestyle {
		return Location{Value: c.descriptions.Freestyle, Classification: Normal, Source: string(Help)}
	}
	desc, ok := c.descriptions.Categories[scope]
	if !ok {
		return invalidLocation()
	}
	return Location{Value: desc, Classification: Normal, Source: string(Help)}
}

func (c *Catalog) locateIn(field string, category Category) Location {
	if value, ok := c.hidden[category][field]; ok {
		c.logger.Debug("found hidden field", zap.String("field", field), zap.String("category", string(category)))
		return Location{Value: value, Classification: HiddenField, Source: string(category)}
	}
	if value, ok := c.public[category][field]; ok {
		c.logger.Debug("found field", zap.String("field", field), zap.String("category", string(category)))
		return Location{Value: value, Classification: Normal, Source: string(category)}
	}
	c.logger.Debug("field not found", zap.String("field", field), zap.String("category", string(category)))
	return invalidLocation()
}

func (c *Catalog) locateAnywhere(field string) Location {
	if value, ok := c.extra[field]; ok {
		c.logger.Debug("found extra field", zap.String("field", field))
		return Location{Value: value, Classification: HiddenField, Source: string(Extra)}
	}
	for _, category := range RealCategories {
		if value, ok := c.hidden[category][field]; ok {
			c.logger.Debug("found hidden field", zap.String("field", field), zap.String("category", string(category)))
			return Location{Value: value, Classification: HiddenField, Source: string(category)}
		}
	}
	for _, category := range RealCategories {
		if value, ok := c.public[category][field]; ok {
			c.logger.Debug("found field", zap.String("field", field), zap.String("category", string(category)))
			return Location{Value: value, Classification: Normal, Source: string(category)}
		}
	}
	c.logger.Debug("field not found in any category", zap.String("field", field))
	return invalidLocation()
}

// SectionFields returns the public fields of category in authoring order. Hidden fields
// are never included. It returns nil for categories that are not real.
func (c *Catalog) SectionFields(category Category) []Field {
	fields := c.sections[category]
	if fields == nil {
		return nil
	}
	out := make([]Field, len(fields))
	copy(out, fields)
	return out
}

// FieldNames returns the sorted public field names of category.
func (c *Catalog) FieldNames(category Category) []string {
	names := make([]string, 0, len(c.sections[category]))
	for _, f := range c.sections[category] {
		names = append(names, f.Name)
	}
	sort.Strings(names)
	return names
}

// HiddenFieldNames returns the sorted hidden field names of category.
func (c *Catalog) HiddenFieldNames(category Category) []string {
	return sortedKeys(c.hidden[category])
}

// ExtraFieldNames returns the sorted names of the extra overlay.
func (c *Catalog) ExtraFieldNames() []string {
	return sortedKeys(c.extra)
}

// Aliases returns the catalog's alias table.
func (c *Catalog) Aliases() AliasTable {
	return c.aliases
}

// Descriptions returns the help and documentation records.
func (c *Catalog) Descriptions() *Descriptions {
	return c.descriptions
}

func sortedKeys(m Overlay) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// HelpRecords returns every description record keyed by category or mode name: the real
// categories in order, then hidden, help and freestyle.
func (c *Catalog) HelpRecords() []Field {
	records := make([]Field, 0, len(c.descriptions.Categories)+1)
	for _, category := range append(append([]Category{}, RealCategories...), Hidden, Help) {
		if desc, ok := c.descriptions.Categories[category]; ok {
			records = append(records, Field{Name: string(category), Value: desc})
		}
	}
	return append(records, Field{Name: string(Freestyle), Value: c.descriptions.Freestyle})
}
