package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/Mohsinsiddi/catsale/internal/sale"
	"github.com/Mohsinsiddi/catsale/internal/units"
)

const (
	defaultName        = "AstarCats"
	defaultSymbol      = "CAT"
	defaultStateFile   = "sale.json"
	defaultPayoutsFile = "payouts.json"

	configFile = "config.json"
	envFile    = ".env"
	envPrefix  = "CATSALE"
)

// deployEnv maps the variables of the original deployment .env to config keys.
var deployEnv = map[string]string{
	"CONTRACT_NAME":   "contract.name",
	"CONTRACT_SYMBOL": "contract.symbol",
	"IPFS_JSON":       "contract.hidden_uri",
}

// keys lists every scalar key that can be overridden from the environment.
var keys = []string{
	"default_account",
	"state_file",
	"payouts_file",
	"metrics",
	"debug",
	"contract.name",
	"contract.symbol",
	"contract.hidden_uri",
	"sale.max_supply",
	"sale.max_mint_per_tx",
	"sale.max_presale_per_address",
	"sale.price_regular",
	"sale.price_presale",
	"sale.base_extension",
}

// Load reads config from dir (or creates defaults). dir defaults to ~/.catsale.
//
// Sources are layered lowest first: defaults, config.json, the .env file in
// dir, then CATSALE_* environment variables.
func Load(dir string) (*Config, error) {
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("could not determine home dir: %w", err)
		}
		dir = filepath.Join(home, ".catsale")
	}

	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("could not create config dir: %w", err)
	}

	v := viper.New()
	setDefaults(v)

	path := filepath.Join(dir, configFile)
	if _, err := os.Stat(path); err == nil {
		v.SetConfigFile(path)
		v.SetConfigType("json")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("parsing config: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := mergeDotEnv(v, filepath.Join(dir, envFile)); err != nil {
		return nil, err
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	for _, key := range keys {
		_ = v.BindEnv(key)
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	cfg.configDir = dir
	if cfg.Accounts == nil {
		cfg.Accounts = make(map[string]string)
	}

	return cfg, nil
}

// Save writes the config to disk.
func (c *Config) Save() error {
	if err := os.MkdirAll(c.configDir, 0o700); err != nil {
		return err
	}
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(c.configDir, configFile), data, 0o600)
}

// Dir returns the config directory.
func (c *Config) Dir() string {
	return c.configDir
}

// StatePath returns the absolute path of the sale state file.
func (c *Config) StatePath() string {
	return c.resolve(c.StateFile)
}

// PayoutsPath returns the absolute path of the payout journal.
func (c *Config) PayoutsPath() string {
	return c.resolve(c.PayoutsFile)
}

// Params converts the sale section to sale parameters.
func (c *Config) Params() (sale.Params, error) {
	p := sale.DefaultParams()
	if c.Sale.MaxSupply > 0 {
		p.MaxSupply = c.Sale.MaxSupply
	}
	if c.Sale.MaxMintPerTx > 0 {
		p.MaxMintPerTx = c.Sale.MaxMintPerTx
	}
	if c.Sale.MaxPresalePerAddress > 0 {
		p.MaxPresalePerAddress = c.Sale.MaxPresalePerAddress
	}
	if c.Sale.BaseExtension != "" {
		p.BaseExtension = c.Sale.BaseExtension
	}
	if c.Sale.PriceRegular != "" {
		wei, err := units.EtherToWei(c.Sale.PriceRegular)
		if err != nil {
			return sale.Params{}, fmt.Errorf("sale.price_regular: %w", err)
		}
		p.PriceRegular = wei
	}
	if c.Sale.PricePresale != "" {
		wei, err := units.EtherToWei(c.Sale.PricePresale)
		if err != nil {
			return sale.Params{}, fmt.Errorf("sale.price_presale: %w", err)
		}
		p.PricePresale = wei
	}
	return p, nil
}

// AddAccount stores an alias for an address. Aliases are case-insensitive.
func (c *Config) AddAccount(alias, address string) error {
	alias = strings.ToLower(alias)
	if c.Accounts == nil {
		c.Accounts = make(map[string]string)
	}
	if !common.IsHexAddress(address) {
		return fmt.Errorf("invalid address %q", address)
	}
	if _, ok := c.Accounts[alias]; ok {
		return fmt.Errorf("account %q already exists", alias)
	}
	c.Accounts[alias] = common.HexToAddress(address).Hex()
	return nil
}

// RemoveAccount deletes an alias.
func (c *Config) RemoveAccount(alias string) error {
	alias = strings.ToLower(alias)
	if _, ok := c.Accounts[alias]; !ok {
		return fmt.Errorf("account %q not found", alias)
	}
	delete(c.Accounts, alias)
	if strings.EqualFold(c.DefaultAccount, alias) {
		c.DefaultAccount = ""
	}
	return nil
}

// ResolveAccount turns an alias or hex address into an address. An empty
// input resolves the default account.
func (c *Config) ResolveAccount(s string) (common.Address, error) {
	if s == "" {
		s = c.DefaultAccount
	}
	if s == "" {
		return common.Address{}, fmt.Errorf("no account given and no default account configured")
	}
	if addr, ok := c.Accounts[strings.ToLower(s)]; ok {
		s = addr
	}
	if !common.IsHexAddress(s) {
		return common.Address{}, fmt.Errorf("unknown account %q", s)
	}
	return common.HexToAddress(s), nil
}

// --- helpers ---

func setDefaults(v *viper.Viper) {
	p := sale.DefaultParams()
	v.SetDefault("state_file", defaultStateFile)
	v.SetDefault("payouts_file", defaultPayoutsFile)
	v.SetDefault("contract.name", defaultName)
	v.SetDefault("contract.symbol", defaultSymbol)
	v.SetDefault("sale.max_supply", p.MaxSupply)
	v.SetDefault("sale.max_mint_per_tx", p.MaxMintPerTx)
	v.SetDefault("sale.max_presale_per_address", p.MaxPresalePerAddress)
	v.SetDefault("sale.price_regular", units.FormatEther(p.PriceRegular))
	v.SetDefault("sale.price_presale", units.FormatEther(p.PricePresale))
	v.SetDefault("sale.base_extension", p.BaseExtension)
}

// mergeDotEnv layers a .env file above config.json. It accepts the deployment
// variable names as well as CATSALE_* keys, and leaves the process
// environment untouched.
func mergeDotEnv(v *viper.Viper, path string) error {
	vars, err := godotenv.Read(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	byEnvName := make(map[string]string, len(keys))
	for _, key := range keys {
		byEnvName[envPrefix+"_"+strings.ToUpper(strings.ReplaceAll(key, ".", "_"))] = key
	}

	overrides := make(map[string]any)
	for name, value := range vars {
		key, ok := deployEnv[name]
		if !ok {
			key, ok = byEnvName[name]
		}
		if !ok {
			continue
		}
		setNested(overrides, key, value)
	}
	if len(overrides) == 0 {
		return nil
	}
	return v.MergeConfigMap(overrides)
}

func setNested(m map[string]any, key, value string) {
	parts := strings.Split(key, ".")
	for _, part := range parts[:len(parts)-1] {
		next, ok := m[part].(map[string]any)
		if !ok {
			next = make(map[string]any)
			m[part] = next
		}
		m = next
	}
	m[parts[len(parts)-1]] = value
}

func (c *Config) resolve(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(c.configDir, name)
}
