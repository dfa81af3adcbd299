package main

import (
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

func main() {
	asciiLogo := `
██████╗ ██████╗ ███████╗██╗    ██╗████████╗██████╗  █████╗ ██████╗ ███████╗
██╔══██╗██╔══██╗██╔════╝██║    ██║╚══██╔══╝██╔══██╗██╔══██╗██╔══██╗██╔════╝
██████╔╝██████╔╝█████╗  ██║ █╗ ██║   ██║   ██████╔╝███████║██║  ██║█████╗
██╔══██╗██╔══██╗██╔══╝  ██║███╗██║   ██║   ██╔══██╗██╔══██║██║  ██║██╔══╝
██████╔╝██║  ██║███████╗╚███╔███╔╝   ██║   ██║  ██║██║  ██║██████╔╝███████╗
╚═════╝ ╚═╝  ╚═╝╚══════╝ ╚══╝╚══╝    ╚═╝   ╚═╝  ╚═╝╚═╝  ╚═╝╚═════╝ ╚══════╝
Potion-market trading simulator with rank-ordered inventory and optimal-trade solving [Version: %s%s%s]

`

	asciiLogo = fmt.Sprintf(asciiLogo, Green, version, Reset)

	var cmdBrowse = &cobra.Command{
		Use:   "browse",
		Short: "Launches the interactive market browser",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Browse opens the inventory browser: inspect lots, run market days`),
		Args:  cobra.MinimumNArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			config, game := mustLoadGame()
			if err := runMarketApp(game, config); err != nil {
				log.Fatalf("Error running market browser: %v", err)
			}
		},
	}

	var cmdMarket = &cobra.Command{
		Use:   "market",
		Short: "Run one market day and print the vendor picks",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Market picks today's vendors from the inventory by random rank`),
		Args:  cobra.MinimumNArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			config, game := mustLoadGame()

			vendors := config.Market.Vendors
			if flagValue := cmd.Flag("vendors").Value.String(); flagValue != "0" {
				if n, err := strconv.Atoi(flagValue); err == nil && n > 0 {
					vendors = n
				}
			}

			picks, err := game.ChoosePotionsForVendors(vendors)
			if err != nil {
				log.Fatalf("Error choosing vendors: %v", err)
			}
			fmt.Printf("Today's vendors (%sseed %d%s):\n", Info, config.Market.Seed, Reset)
			for i, lot := range picks {
				fmt.Printf("  %d. %s%s%s — %.1f L\n", i+1, Green, lot.Name, Reset, lot.Litres)
			}
		},
	}
	cmdMarket.Flags().Int("vendors", 0, "number of vendors to stock (overrides config)")

	var cmdSolve = &cobra.Command{
		Use:   "solve",
		Short: "Find optimal earnings for each starting bankroll",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Solve ranks trades by profit per dollar and spends each bankroll greedily`),
		Args:  cobra.MinimumNArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			config, game := mustLoadGame()

			inputPath := cmd.Flag("input").Value.String()
			if inputPath == "" {
				log.Fatalf("solve requires --input with a valuations file")
			}
			input, err := LoadSolveInput(inputPath)
			if err != nil {
				log.Fatalf("Error loading valuations: %v", err)
			}
			funds := input.Funds
			if len(funds) == 0 {
				log.Fatalf("valuations file %s lists no starting funds", inputPath)
			}

			results, err := game.SolveGameWithProgress(input.Valuations, funds, true)
			if err != nil {
				log.Fatalf("Error solving game: %v", err)
			}

			fmt.Printf("\nOptimal earnings (catalog: %s):\n", config.Market.CatalogPath)
			for i, result := range results {
				fmt.Printf("  start %s%.2f%s -> end %s%.2f%s\n", Info, funds[i], Reset, Green, result, Reset)
			}
		},
	}
	cmdSolve.Flags().String("input", "", "YAML file with adventurer valuations and starting funds")

	var cmdGuide = &cobra.Command{
		Use:   "guide",
		Short: "Print the Brewtrade game guide",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Guide explains how market days and solving work`),
		Args:  cobra.MinimumNArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(getGuideMessage())
		},
	}

	var cmdSettings = &cobra.Command{
		Use:   "settings",
		Short: "Show Brewtrade configuration",
		Args:  cobra.MinimumNArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			displaySettings()
		},
	}

	var cmdVersion = &cobra.Command{
		Use:   "version",
		Short: "Print Brewtrade version",
		Args:  cobra.MinimumNArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	}

	var rootCmd = &cobra.Command{
		Use:     "brewtrade",
		Version: version,
		Long:    asciiLogo,
		Run: func(cmd *cobra.Command, args []string) {
			// Default to the browser when no subcommand is provided
			config, game := mustLoadGame()
			if err := runMarketApp(game, config); err != nil {
				log.Fatalf("Error running market browser: %v", err)
			}
		},
	}
	rootCmd.AddCommand(cmdBrowse, cmdMarket, cmdSolve, cmdGuide, cmdSettings, cmdVersion)
	rootCmd.Execute()
}

// mustLoadGame builds a game from the configured catalog file: the full
// potion list becomes the catalog, entries with positive stock the opening
// inventory.
func mustLoadGame() (*Config, *Game) {
	config, err := LoadConfig()
	if err != nil {
		log.Printf("Failed to load configuration: %v. Using default settings.", err)
		config = &defaultConfig
	}

	potions, err := LoadPotionFile(config.Market.CatalogPath)
	if err != nil {
		log.Fatalf("Error loading potion catalog: %v", err)
	}

	game := NewGame(config.Market.Seed)
	game.SetTotalPotionData(potions)

	lots := []Lot{}
	for _, p := range potions {
		if p.Stock > 0 {
			lots = append(lots, Lot{Name: p.Name, Litres: p.Stock})
		}
	}
	if err := game.AddPotionsToInventory(lots); err != nil {
		log.Fatalf("Error stocking inventory: %v", err)
	}

	if names := missingNames(potions); len(names) > 0 {
		log.Printf("Catalog entries without prices: %s", strings.Join(names, ", "))
	}

	return config, game
}

// missingNames flags catalog entries that can never trade.
func missingNames(potions []Potion) []string {
	names := []string{}
	for _, p := range potions {
		if p.BuyPrice <= 0 {
			names = append(names, p.Name)
		}
	}
	return names
}
