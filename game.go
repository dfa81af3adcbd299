// game.go

package main

import (
	"fmt"

	"github.com/schollz/progressbar/v3"

	"github.com/potionworks/brewtrade/ordertree"
)

// trade is one entry in the profit tree built by SolveGame: the return per
// dollar spent and the most money the available stock can absorb.
type trade struct {
	rate     float64
	capacity float64
}

// Game runs the potion market: a catalog of every known potion, an
// inventory of purchasable lots ordered by vendor price, and one random
// generator threaded through the game's whole lifetime.
type Game struct {
	rand      *RandomGen
	catalog   *Catalog
	inventory *ordertree.Tree[float64, Lot]
}

// NewGame creates an empty game seeded for deterministic vendor choice.
func NewGame(seed uint64) *Game {
	return &Game{
		rand:      NewRandomGen(seed),
		catalog:   NewCatalog(0),
		inventory: ordertree.New[float64, Lot](),
	}
}

// SetTotalPotionData rebuilds the catalog from the full potion list. Stock
// quantities are not carried over; the catalog only answers what a potion
// is and what vendors charge for it.
func (g *Game) SetTotalPotionData(potions []Potion) {
	g.catalog = NewCatalog(len(potions))
	for _, p := range potions {
		g.catalog.Put(NewEmptyPotion(p.Category, p.Name, p.BuyPrice))
	}
}

// AddPotionsToInventory prices each lot through the catalog and files it
// in the inventory tree under its vendor buy price. A lot whose name is
// not in the catalog is an error; lots priced identically replace each
// other, keys in the tree stay unique.
func (g *Game) AddPotionsToInventory(lots []Lot) error {
	for _, lot := range lots {
		p, ok := g.catalog.Get(lot.Name)
		if !ok {
			return fmt.Errorf("potion %q is not in the catalog", lot.Name)
		}
		g.inventory.Set(p.BuyPrice, lot)
	}
	return nil
}

// Catalog returns the name-keyed potion store.
func (g *Game) Catalog() *Catalog {
	return g.catalog
}

// InventorySize returns the number of distinct price points in stock.
func (g *Game) InventorySize() int {
	return g.inventory.Len()
}

// InventoryLots returns the current inventory in ascending price order.
func (g *Game) InventoryLots() []Lot {
	lots := make([]Lot, 0, g.inventory.Len())
	for _, lot := range g.inventory.InOrder() {
		lots = append(lots, lot)
	}
	return lots
}

// ChoosePotionsForVendors picks n lots for the day's vendors. Each pick
// draws a rank uniformly over what is still unpicked, takes that k-th most
// expensive lot out of the inventory, and moves on, so no vendor offers
// the same potion twice. The chosen lots are restocked afterwards and
// returned in choice order.
func (g *Game) ChoosePotionsForVendors(n int) ([]Lot, error) {
	picks := make([]Lot, 0, n)
	for i := 0; i < n; i++ {
		remaining := g.inventory.Len()
		if remaining == 0 {
			return nil, fmt.Errorf("inventory exhausted after %d of %d vendors", i, n)
		}

		p := g.rand.Randint(remaining)
		price, lot, err := g.inventory.KthLargest(p)
		if err != nil {
			return nil, fmt.Errorf("picking vendor %d: %w", i+1, err)
		}
		if err := g.inventory.Delete(price); err != nil {
			return nil, fmt.Errorf("removing pick %q: %w", lot.Name, err)
		}
		picks = append(picks, lot)
	}

	if err := g.AddPotionsToInventory(picks); err != nil {
		return nil, err
	}
	return picks, nil
}

// SolveGame finds, for each starting bankroll, the earnings from trading
// optimally against the given adventurer valuations. See
// SolveGameWithProgress.
func (g *Game) SolveGame(valuations []Valuation, startingFunds []float64) ([]float64, error) {
	return g.SolveGameWithProgress(valuations, startingFunds, false)
}

// SolveGameWithProgress ranks every possible trade by profit per dollar
// spent in an order-statistics tree, then spends each bankroll greedily
// from the best trade down: either the whole bankroll fits in the current
// trade's capacity and the day ends, or the trade is taken in full and the
// remainder moves to the next-best trade. Returned values include the
// starting bankroll.
func (g *Game) SolveGameWithProgress(valuations []Valuation, startingFunds []float64, showProgress bool) ([]float64, error) {
	profits := ordertree.New[float64, trade]()

	for _, v := range valuations {
		p, ok := g.catalog.Get(v.Name)
		if !ok {
			return nil, fmt.Errorf("potion %q is not in the catalog", v.Name)
		}
		lot, err := g.inventory.Get(p.BuyPrice)
		if err != nil {
			return nil, fmt.Errorf("potion %q is not in the inventory: %w", v.Name, err)
		}

		// Rank trades by money earned per dollar spent, and cap each by
		// the money the stock on hand can absorb.
		rate := (v.Price - p.BuyPrice) / p.BuyPrice
		capacity := lot.Litres * p.BuyPrice

		// Two potions with the same rate are interchangeable: merge their
		// capacity so the tree's keys stay unique.
		if existing, err := profits.Get(rate); err == nil {
			capacity += existing.capacity
		}
		profits.Set(rate, trade{rate: rate, capacity: capacity})
	}

	var bar *progressbar.ProgressBar
	if showProgress {
		bar = progressbar.NewOptions(len(startingFunds),
			progressbar.OptionSetDescription("Trading..."),
			progressbar.OptionSetWidth(50),
			progressbar.OptionShowCount(),
		)
	}

	results := make([]float64, 0, len(startingFunds))
	for _, funds := range startingFunds {
		money := funds
		earnings := funds

		for k := 1; k <= profits.Len(); k++ {
			_, tr, err := profits.KthLargest(k)
			if err != nil {
				return nil, err
			}

			if money <= tr.capacity {
				// Not enough for the whole trade: spend what is left and
				// finish the day.
				earnings += money * tr.rate
				break
			}
			earnings += tr.rate * tr.capacity
			money -= tr.capacity
		}

		results = append(results, earnings)
		if bar != nil {
			bar.Add(1)
		}
	}

	return results, nil
}
