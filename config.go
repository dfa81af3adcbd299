package main

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type MarketConfig struct {
	Seed        uint64 `yaml:"seed"`
	Vendors     int    `yaml:"vendors"`
	CatalogPath string `yaml:"catalog_path"`
}

type Config struct {
	Market MarketConfig `yaml:"market"`
}

var defaultConfig = Config{
	Market: MarketConfig{
		Seed:        0,
		Vendors:     4,
		CatalogPath: "potions.yaml",
	},
}

func LoadConfig() (*Config, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return &defaultConfig, nil
	}

	configPath := filepath.Join(homeDir, ".brewtrade.yaml")

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return &defaultConfig, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return &defaultConfig, nil
	}

	var config Config
	err = yaml.Unmarshal(data, &config)
	if err != nil {
		return &defaultConfig, nil
	}

	if config.Market.Vendors <= 0 {
		config.Market.Vendors = defaultConfig.Market.Vendors
	}
	if config.Market.CatalogPath == "" {
		config.Market.CatalogPath = defaultConfig.Market.CatalogPath
	}

	return &config, nil
}

func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".brewtrade.yaml"), nil
}

func createDefaultConfigFile() error {
	configPath, err := getConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %v", err)
	}

	data, err := yaml.Marshal(&defaultConfig)
	if err != nil {
		return fmt.Errorf("failed to marshal default config: %v", err)
	}

	err = os.WriteFile(configPath, data, 0644)
	if err != nil {
		return fmt.Errorf("failed to write config file: %v", err)
	}

	return nil
}

func displaySettings() {
	configPath, err := getConfigPath()
	if err != nil {
		fmt.Printf("❌ Failed to get config path: %v\n", err)
		return
	}

	config, err := LoadConfig()
	if err != nil {
		fmt.Printf("❌ Failed to load configuration: %v\n", err)
		return
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		fmt.Printf("📝 Configuration file not found. Creating default configuration...\n\n")

		if err := createDefaultConfigFile(); err != nil {
			fmt.Printf("❌ Failed to create default config file: %v\n", err)
			return
		}
		fmt.Printf("✅ Created default configuration at: %s\n\n", configPath)
	}

	fmt.Printf("🔧 Brewtrade Configuration Settings\n")
	fmt.Printf("═══════════════════════════════════\n\n")
	fmt.Printf("📍 Config file: %s\n", configPath)
	fmt.Printf("📊 Current settings:\n\n")

	fmt.Printf("🏪 %sMarket:%s\n", Green, Reset)
	fmt.Printf("  • %sseed%s: %d\n", Green, Reset, config.Market.Seed)
	fmt.Printf("    Seed for the vendor-choice random generator. Runs with the same\n    seed and catalog pick the same vendors.\n")
	fmt.Printf("  • %svendors%s: %d\n", Green, Reset, config.Market.Vendors)
	fmt.Printf("    Number of vendors stocked per market day.\n")
	fmt.Printf("  • %scatalog_path%s: %s\n", Green, Reset, config.Market.CatalogPath)
	fmt.Printf("    YAML file listing every potion, its vendor price and opening stock.\n")
}
