package config

// Config holds all catsale configuration.
type Config struct {
	DefaultAccount string            `json:"default_account" mapstructure:"default_account"`
	Accounts       map[string]string `json:"accounts"        mapstructure:"accounts"` // alias -> address
	StateFile      string            `json:"state_file"      mapstructure:"state_file"`
	PayoutsFile    string            `json:"payouts_file"    mapstructure:"payouts_file"`
	Metrics        bool              `json:"metrics"         mapstructure:"metrics"` // dump collectors after each command
	Debug          bool              `json:"debug"           mapstructure:"debug"`

	Contract ContractConfig `json:"contract" mapstructure:"contract"`
	Sale     SaleConfig     `json:"sale"     mapstructure:"sale"`

	// internal: config dir path used for Save()
	configDir string
}

// ContractConfig holds the values a sale is deployed with.
type ContractConfig struct {
	Name      string `json:"name"       mapstructure:"name"`
	Symbol    string `json:"symbol"     mapstructure:"symbol"`
	HiddenURI string `json:"hidden_uri" mapstructure:"hidden_uri"` // served until reveal
}

// SaleConfig holds sale parameters. Prices are decimal ether amounts.
type SaleConfig struct {
	MaxSupply            uint64 `json:"max_supply"              mapstructure:"max_supply"`
	MaxMintPerTx         uint64 `json:"max_mint_per_tx"         mapstructure:"max_mint_per_tx"`
	MaxPresalePerAddress uint64 `json:"max_presale_per_address" mapstructure:"max_presale_per_address"`
	PriceRegular         string `json:"price_regular"           mapstructure:"price_regular"`
	PricePresale         string `json:"price_presale"           mapstructure:"price_presale"`
	BaseExtension        string `json:"base_extension"          mapstructure:"base_extension"`
}
