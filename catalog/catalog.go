package catalog

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/grovetools/storefront/errors"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Catalog is a snapshot of content API records.
type Catalog struct {
	Menus  []Menu      `json:"menus,omitempty"`
	Dishes []Dish      `json:"dishes,omitempty"`
	Events []EventPage `json:"events,omitempty"`
}

// Menu looks up a menu by id.
func (c *Catalog) Menu(id int) (Menu, error) {
	for _, m := range c.Menus {
		if m.ID == id {
			return m, nil
		}
	}
	return Menu{}, errors.RecordNotFound("menu", id)
}

// Dish looks up a dish by id, including dishes listed inside menus.
func (c *Catalog) Dish(id int) (Dish, error) {
	for _, d := range c.Dishes {
		if d.ID == id {
			return d, nil
		}
	}
	for _, m := range c.Menus {
		for _, d := range m.Dishes {
			if d.ID == id {
				return d, nil
			}
		}
	}
	return Dish{}, errors.RecordNotFound("dish", id)
}

// Event looks up an event page by id.
func (c *Catalog) Event(id int) (EventPage, error) {
	for _, e := range c.Events {
		if e.ID == id {
			return e, nil
		}
	}
	return EventPage{}, errors.RecordNotFound("event", id)
}

// LoadFile reads a catalog snapshot. JSON, YAML and TOML are accepted and
// chosen by file extension.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New(errors.ErrCodeInvalidInput, "catalog file not found").WithDetail("path", path)
		}
		return nil, errors.Wrap(err, errors.ErrCodeInvalidInput, "failed to read catalog file").WithDetail("path", path)
	}

	cat, err := Parse(data, strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), "."))
	if err != nil {
		return nil, err
	}
	return cat, nil
}

// Parse decodes a catalog snapshot in the given format ("json", "yaml", "yml", "toml").
// YAML and TOML are normalised through JSON so that decimal prices decode the
// same way in every format.
func Parse(data []byte, format string) (*Catalog, error) {
	jsonData := data

	switch format {
	case "json", "":
	case "yaml", "yml":
		var raw interface{}
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, errors.Wrap(err, errors.ErrCodeInvalidInput, "failed to parse YAML catalog")
		}
		converted, err := json.Marshal(raw)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrCodeInvalidInput, "failed to convert YAML catalog")
		}
		jsonData = converted
	case "toml":
		var raw map[string]interface{}
		if err := toml.Unmarshal(data, &raw); err != nil {
			return nil, errors.Wrap(err, errors.ErrCodeInvalidInput, "failed to parse TOML catalog")
		}
		converted, err := json.Marshal(raw)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrCodeInvalidInput, "failed to convert TOML catalog")
		}
		jsonData = converted
	default:
		return nil, errors.New(errors.ErrCodeInvalidInput, "unsupported catalog format").WithDetail("format", format)
	}

	var cat Catalog
	if err := json.Unmarshal(jsonData, &cat); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInvalidInput, "failed to decode catalog")
	}
	return &cat, nil
}
