// potion.go

package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Potion is a catalog record: what a potion is and what vendors charge
// per litre for it. Stock carries the litres held when the potion is part
// of an inventory file; catalog entries created through NewEmptyPotion
// hold no stock.
type Potion struct {
	Category string  `yaml:"category"`
	Name     string  `yaml:"name"`
	BuyPrice float64 `yaml:"buy_price"`
	Stock    float64 `yaml:"stock"`
}

// NewEmptyPotion returns a catalog record with zero stock.
func NewEmptyPotion(category, name string, buyPrice float64) *Potion {
	return &Potion{Category: category, Name: name, BuyPrice: buyPrice}
}

// Lot is a quantity of a named potion held in, or moving through, the
// market inventory.
type Lot struct {
	Name   string  `yaml:"name"`
	Litres float64 `yaml:"litres"`
}

// Valuation is the price per litre adventurers are willing to pay for a
// named potion.
type Valuation struct {
	Name  string  `yaml:"name"`
	Price float64 `yaml:"price"`
}

type potionFile struct {
	Potions []Potion `yaml:"potions"`
}

// LoadPotionFile reads a YAML potion catalog. Entries with positive stock
// double as the opening inventory.
func LoadPotionFile(path string) ([]Potion, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read potion file: %w", err)
	}

	var file potionFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse potion file %s: %w", path, err)
	}
	if len(file.Potions) == 0 {
		return nil, fmt.Errorf("potion file %s lists no potions", path)
	}
	return file.Potions, nil
}

// SolveInput is the input to the solve command: what adventurers pay and
// the bankrolls to play.
type SolveInput struct {
	Valuations []Valuation `yaml:"valuations"`
	Funds      []float64   `yaml:"funds"`
}

// LoadSolveInput reads a YAML valuations file.
func LoadSolveInput(path string) (*SolveInput, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read valuations file: %w", err)
	}

	var input SolveInput
	if err := yaml.Unmarshal(data, &input); err != nil {
		return nil, fmt.Errorf("failed to parse valuations file %s: %w", path, err)
	}
	if len(input.Valuations) == 0 {
		return nil, fmt.Errorf("valuations file %s lists no valuations", path)
	}
	return &input, nil
}
