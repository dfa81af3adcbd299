// catalog.go

package main

import (
	"github.com/patrickmn/go-cache"
	"github.com/willf/bloom"
)

// Bloom filter sizing: ~10 bits per expected name with 3 hash functions
// keeps the false-positive rate near 1%. Catalog entries never expire; the
// catalog is rebuilt wholesale when the potion data changes.
const (
	catalogBloomBitsPerName = 10
	catalogBloomHashes      = 3
	catalogMinBloomBits     = 1024
)

// Catalog is the name-keyed potion store: amortized O(1) get/set/contains
// from potion name to its record. A bloom filter in front of the store
// short-circuits lookups for names that were never added.
type Catalog struct {
	store  *cache.Cache
	filter *bloom.BloomFilter
}

// NewCatalog creates a catalog sized for the expected number of potions.
func NewCatalog(expected int) *Catalog {
	bits := uint(expected) * catalogBloomBitsPerName
	if bits < catalogMinBloomBits {
		bits = catalogMinBloomBits
	}
	return &Catalog{
		store:  cache.New(cache.NoExpiration, 0),
		filter: bloom.New(bits, catalogBloomHashes),
	}
}

// Put stores a potion record under its name, overwriting any previous
// record for the same name.
func (c *Catalog) Put(p *Potion) {
	c.filter.AddString(p.Name)
	c.store.Set(p.Name, p, cache.NoExpiration)
}

// Get returns the record for a potion name.
func (c *Catalog) Get(name string) (*Potion, bool) {
	if !c.filter.TestString(name) {
		return nil, false
	}
	val, ok := c.store.Get(name)
	if !ok {
		return nil, false
	}
	return val.(*Potion), true
}

// Has reports whether a potion name is in the catalog.
func (c *Catalog) Has(name string) bool {
	_, ok := c.Get(name)
	return ok
}

// Len returns the number of cataloged potions.
func (c *Catalog) Len() int {
	return c.store.ItemCount()
}
