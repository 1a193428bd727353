package catalog

import (
	_ "embed"
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/beetlebot/weekend-cli/internal/core"
)

//go:embed destinations.yaml
var defaultCatalog []byte

// Catalog is the static list of destinations and the origin stations they
// are queried from.
type Catalog struct {
	Origins      []core.Station     `yaml:"origins" json:"origins" validate:"dive"`
	Destinations []core.Destination `yaml:"destinations" json:"destinations" validate:"required,min=1,dive"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Load reads a catalog from path, or the built-in one when path is empty.
func Load(path string) (*Catalog, error) {
	data := defaultCatalog
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read catalog: %w", err)
		}
		data = raw
	}
	return Parse(data)
}

func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	if err := validate.Struct(&c); err != nil {
		return nil, fmt.Errorf("invalid catalog: %w", err)
	}

	for i := range c.Origins {
		fillEncoded(&c.Origins[i])
	}
	for i := range c.Destinations {
		fillEncoded(&c.Destinations[i].Station)
	}
	return &c, nil
}

func fillEncoded(s *core.Station) {
	if s.Encoded == "" {
		s.Encoded = url.QueryEscape(s.Name)
	}
}

// Find looks a destination up by exact name, then by prefix, so that "厦门"
// resolves to "厦门北".
func (c *Catalog) Find(name string) (core.Destination, bool) {
	if name == "" {
		return core.Destination{}, false
	}
	for _, d := range c.Destinations {
		if d.Name == name {
			return d, true
		}
	}
	for _, d := range c.Destinations {
		if strings.HasPrefix(d.Name, name) {
			return d, true
		}
	}
	return core.Destination{}, false
}

// Origin returns the named origin station. Destinations double as origins
// for the return leg.
func (c *Catalog) Origin(name string) (core.Station, bool) {
	for _, s := range c.Origins {
		if s.Name == name {
			return s, true
		}
	}
	if d, ok := c.Find(name); ok && d.Name == name {
		return d.Station, true
	}
	return core.Station{}, false
}
