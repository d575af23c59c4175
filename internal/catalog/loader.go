package catalog

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/chrisdamba/nutriplan/internal/models"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

// Load reads a customized catalog from a JSON or YAML file with a top-level
// "groups" list.
func Load(path string) (*Catalog, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading catalog file: %w", err)
	}

	var groups []models.FoodGroup
	hook := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		models.CapHookFunc(),
	))
	if err := v.UnmarshalKey("groups", &groups, hook); err != nil {
		return nil, fmt.Errorf("unable to decode catalog groups: %w", err)
	}

	return New(groups)
}

// Decode reads a catalog serialized as a JSON array of groups, the format
// used by the plan repositories.
func Decode(r io.Reader) (*Catalog, error) {
	var groups []models.FoodGroup
	if err := json.NewDecoder(r).Decode(&groups); err != nil {
		return nil, fmt.Errorf("unable to decode catalog: %w", err)
	}
	return New(groups)
}

// WriteJSON writes the catalog groups in the format Decode reads.
func (c *Catalog) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(c.Groups())
}
