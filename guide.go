package main

import (
	"fmt"
	"runtime"

	markdown "github.com/MichaelMure/go-term-markdown"
)

func getGuideMessage() string {
	message := fmt.Sprintf(`

 **Brewtrade %s**

A potion-market trading simulator. PotionCorp keeps its purchasable stock in
a price-ordered inventory; each market day a handful of vendors is picked at
random from that stock, adventurers quote what they will pay, and the solver
works out the best trades for your bankroll.

Built with Go %s

# 1. How a day works
* The catalog lists every potion with its vendor price per litre
* The inventory holds the lots currently purchasable, ordered by price
* Vendors are chosen by rank: a random k picks the k-th most expensive lot,
  which is set aside so no two vendors sell the same potion
* Chosen lots are restocked at the end of the day

# 2. Solving
* Every (valuation, stock) pair becomes a trade ranked by profit per dollar
* Trades with the same rate merge, their capacity adds up
* Each bankroll is spent greedily from the best trade down

# 3. Files
* ~/.brewtrade.yaml — seed, vendor count, catalog path
* potions.yaml — catalog with opening stock
* valuations file — adventurer prices plus the bankrolls to play

# 4. Determinism
Runs with the same seed and the same catalog always pick the same vendors.

`, version, runtime.Version())
	result := markdown.Render(string(message), 80, 3)
	return string(result)
}
