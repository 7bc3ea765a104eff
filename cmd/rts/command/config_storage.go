package command

import (
	"fmt"
	"os"

	"github.com/pixil98/go-errors"
	"github.com/pixil98/go-rts/internal/game"
	"github.com/pixil98/go-rts/internal/storage"
)

type StorageConfig struct {
	Units     AssetConfig[*game.UnitSpec]     `json:"units"`
	Buildings AssetConfig[*game.BuildingSpec] `json:"buildings"`
	Nodes     AssetConfig[*game.NodeSpec]     `json:"nodes"`
	Scenarios AssetConfig[*game.Scenario]     `json:"scenarios"`
}

func (c *StorageConfig) BuildDictionary() (*game.Dictionary, error) {
	units, err := c.Units.BuildFileStore()
	if err != nil {
		return nil, fmt.Errorf("creating unit store: %w", err)
	}
	buildings, err := c.Buildings.BuildFileStore()
	if err != nil {
		return nil, fmt.Errorf("creating building store: %w", err)
	}
	nodes, err := c.Nodes.BuildFileStore()
	if err != nil {
		return nil, fmt.Errorf("creating node store: %w", err)
	}
	scenarios, err := c.Scenarios.BuildFileStore()
	if err != nil {
		return nil, fmt.Errorf("creating scenario store: %w", err)
	}

	dict := &game.Dictionary{
		Units:     units,
		Buildings: buildings,
		Nodes:     nodes,
		Scenarios: scenarios,
	}

	if err := dict.Resolve(); err != nil {
		return nil, fmt.Errorf("resolving references: %w", err)
	}

	return dict, nil
}

func (c *StorageConfig) Validate() error {
	el := errors.NewErrorList()
	el.Add(c.Units.Validate("units"))
	el.Add(c.Buildings.Validate("buildings"))
	el.Add(c.Nodes.Validate("nodes"))
	el.Add(c.Scenarios.Validate("scenarios"))
	return el.Err()
}

type AssetConfig[T storage.ValidatingSpec] struct {
	Path string `json:"path"`
}

func (c *AssetConfig[T]) Validate(name string) error {
	if c.Path == "" {
		return fmt.Errorf("%s: path is required", name)
	}
	_, err := os.Stat(c.Path)
	if err != nil {
		return fmt.Errorf("%s: invalid path %q: %w", name, c.Path, err)
	}

	return nil
}

func (c *AssetConfig[T]) BuildFileStore() (*storage.FileStore[T], error) {
	return storage.NewFileStore[T](c.Path)
}
