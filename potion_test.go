package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadPotionFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "potions.yaml")
	data := `potions:
  - category: Health
    name: Potion of Instant Health
    buy_price: 5
    stock: 3
  - category: Damage
    name: Potion of Deadly Poison
    buy_price: 45
`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	potions, err := LoadPotionFile(path)
	if err != nil {
		t.Fatalf("LoadPotionFile failed: %v", err)
	}
	if len(potions) != 2 {
		t.Fatalf("got %d potions, want 2", len(potions))
	}
	if potions[0].Name != "Potion of Instant Health" || potions[0].Stock != 3 {
		t.Errorf("first potion = %+v", potions[0])
	}
	if potions[1].BuyPrice != 45 || potions[1].Stock != 0 {
		t.Errorf("second potion = %+v", potions[1])
	}
}

func TestLoadPotionFileErrors(t *testing.T) {
	if _, err := LoadPotionFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected an error for a missing file")
	}

	empty := filepath.Join(t.TempDir(), "empty.yaml")
	if err := os.WriteFile(empty, []byte("potions: []\n"), 0644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	if _, err := LoadPotionFile(empty); err == nil {
		t.Error("expected an error for an empty potion list")
	}
}

func TestLoadSolveInput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "valuations.yaml")
	data := `valuations:
  - name: Potion of Instant Health
    price: 15
funds: [12.5, 45]
`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	input, err := LoadSolveInput(path)
	if err != nil {
		t.Fatalf("LoadSolveInput failed: %v", err)
	}
	if len(input.Valuations) != 1 || input.Valuations[0].Price != 15 {
		t.Errorf("valuations = %+v", input.Valuations)
	}
	if len(input.Funds) != 2 || input.Funds[0] != 12.5 {
		t.Errorf("funds = %v", input.Funds)
	}
}
