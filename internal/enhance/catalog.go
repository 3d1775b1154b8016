// Package enhance regenerates the pivot opportunities of every career from a
// per-archetype template catalog.
package enhance

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalog []byte

// Role is one stage of a pivot template
type Role struct {
	Title       string  `yaml:"title" validate:"required"`
	Short       string  `yaml:"short" validate:"required"`
	Level       string  `yaml:"level" validate:"required,oneof=senior lead exec"`
	YearsOffset float64 `yaml:"years_offset" validate:"gte=0"`
	Salary      string  `yaml:"salary" validate:"required"`
}

// Template describes one pivot to generate for an archetype
type Template struct {
	Index   int    `yaml:"index" validate:"gte=0"`
	Name    string `yaml:"name" validate:"required"`
	Color   string `yaml:"color" validate:"required,hexcolor"`
	Success string `yaml:"success" validate:"required"`
	Roles   []Role `yaml:"roles" validate:"required,min=1,dive"`
}

// Catalog holds the templates of each archetype, in generation order
type Catalog struct {
	Tech     []Template `yaml:"tech" validate:"required,min=1,dive"`
	Science  []Template `yaml:"science" validate:"required,min=1,dive"`
	Business []Template `yaml:"business" validate:"required,min=1,dive"`
}

// Templates returns the templates for archetype a.
func (c *Catalog) Templates(a Archetype) []Template {
	switch a {
	case Tech:
		return c.Tech
	case Science:
		return c.Science
	default:
		return c.Business
	}
}

// DefaultCatalog returns the built-in template catalog.
func DefaultCatalog() (*Catalog, error) {
	return ParseCatalog(defaultCatalog)
}

// LoadCatalogFile reads a catalog in the built-in YAML shape from path.
func LoadCatalogFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &CatalogError{Message: fmt.Sprintf("failed to read catalog file %s", path), Cause: err}
	}
	return ParseCatalog(data)
}

// ParseCatalog decodes and validates a YAML catalog.
func ParseCatalog(data []byte) (*Catalog, error) {
	var catalog Catalog
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return nil, &CatalogError{Message: "failed to parse catalog YAML", Cause: err}
	}

	if err := validator.New().Struct(&catalog); err != nil {
		return nil, &CatalogError{Message: "invalid catalog", Cause: err}
	}

	return &catalog, nil
}
