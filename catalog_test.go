package main

import (
	"testing"
)

func TestCatalogPutGet(t *testing.T) {
	catalog := NewCatalog(4)
	catalog.Put(NewEmptyPotion("Health", "Potion of Instant Health", 5))
	catalog.Put(NewEmptyPotion("Damage", "Potion of Deadly Poison", 45))

	p, ok := catalog.Get("Potion of Instant Health")
	if !ok {
		t.Fatal("Get returned not found for a stored potion")
	}
	if p.BuyPrice != 5 || p.Category != "Health" {
		t.Errorf("Get returned %+v", p)
	}

	if catalog.Len() != 2 {
		t.Errorf("Len() = %d, want 2", catalog.Len())
	}
}

func TestCatalogMiss(t *testing.T) {
	catalog := NewCatalog(2)
	catalog.Put(NewEmptyPotion("Buff", "Potion of Extreme Speed", 10))

	if _, ok := catalog.Get("Potion of Invisibility"); ok {
		t.Error("Get returned a potion that was never stored")
	}
	if catalog.Has("Potion of Invisibility") {
		t.Error("Has reported a potion that was never stored")
	}
}

func TestCatalogOverwrite(t *testing.T) {
	catalog := NewCatalog(2)
	catalog.Put(NewEmptyPotion("Buff", "Potion of Extreme Speed", 10))
	catalog.Put(NewEmptyPotion("Buff", "Potion of Extreme Speed", 12))

	p, ok := catalog.Get("Potion of Extreme Speed")
	if !ok || p.BuyPrice != 12 {
		t.Errorf("Get after overwrite = %+v, %v, want price 12", p, ok)
	}
	if catalog.Len() != 1 {
		t.Errorf("Len() = %d after overwrite, want 1", catalog.Len())
	}
}
