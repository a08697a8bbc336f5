// Package fixture reads the record sets the services and the CLI operate on.
package fixture

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/example/orderdesk/go/pkg/models"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// ErrDuplicateOrder is returned when two orders share an id.
var ErrDuplicateOrder = errors.New("duplicate order id")

// Dataset is a caller-supplied set of records. JSON documents decode too,
// since JSON is valid YAML.
type Dataset struct {
	Orders  []models.Order       `yaml:"orders"`
	Users   []models.User        `yaml:"users"`
	Prices  []decimal.Decimal    `yaml:"prices"`
	Profile models.ProfileConfig `yaml:"profile"`
}

// Load reads and validates the dataset stored at path.
func Load(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	ds, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return ds, nil
}

// Decode reads a dataset from r. Unknown keys are rejected. An empty
// document yields an empty dataset.
func Decode(r io.Reader) (*Dataset, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var ds Dataset
	if err := dec.Decode(&ds); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode dataset: %w", err)
	}
	if err := ds.Validate(); err != nil {
		return nil, err
	}
	return &ds, nil
}

// Validate checks every order and that order ids are unique.
func (ds *Dataset) Validate() error {
	seen := make(map[int64]struct{}, len(ds.Orders))
	for _, o := range ds.Orders {
		if err := o.Validate(); err != nil {
			return err
		}
		if _, dup := seen[o.ID]; dup {
			return fmt.Errorf("%w: %d", ErrDuplicateOrder, o.ID)
		}
		seen[o.ID] = struct{}{}
	}
	return nil
}
