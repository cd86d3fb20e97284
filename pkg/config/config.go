package config

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config represents the configuration shared by the deployer, scenario and
// balances tools. Secrets and addresses come from the environment (or a .env
// file); tunables may also come from an optional YAML file.
type Config struct {
	Network      NetworkConfig            `mapstructure:"network"`
	Operator     AccountConfig            `mapstructure:"operator"`
	Tokens       TokensConfig             `mapstructure:"tokens"`
	Contract     ContractConfig           `mapstructure:"contract"`
	Participants map[string]AccountConfig `mapstructure:"participants"`
	Mirror       MirrorConfig             `mapstructure:"mirror"`
	Monitoring   MonitoringConfig         `mapstructure:"monitoring"`
	Logging      LoggingConfig            `mapstructure:"logging"`
}

// NetworkConfig selects the Hedera network
type NetworkConfig struct {
	// Name is one of testnet, mainnet, previewnet or local.
	Name string `mapstructure:"name"`
	// Nodes lists consensus nodes, used when Name is local.
	Nodes []NodeConfig `mapstructure:"nodes"`
}

// NodeConfig is a consensus node endpoint
type NodeConfig struct {
	Address   string `mapstructure:"address"`
	AccountID string `mapstructure:"account_id"`
}

// AccountConfig identifies a signing account
type AccountConfig struct {
	AccountID  string `mapstructure:"account_id"`
	PrivateKey string `mapstructure:"private_key"`
	EVMAddress string `mapstructure:"evm_address"`
}

// TokensConfig contains the HTS token ids handled by the contract
type TokensConfig struct {
	MST      string `mapstructure:"mst"`
	MPT      string `mapstructure:"mpt"`
	Treasury string `mapstructure:"treasury"`
}

// ContractConfig contains RewardDistribution deployment and call settings
type ContractConfig struct {
	ID                    string  `mapstructure:"id"`
	BytecodePath          string  `mapstructure:"bytecode_path"`
	Gas                   uint64  `mapstructure:"gas"`
	MaxTransactionFeeHbar float64 `mapstructure:"max_transaction_fee_hbar"`
	MaxChunks             uint64  `mapstructure:"max_chunks"`
	AllowanceAmount       int64   `mapstructure:"allowance_amount"`
}

// MirrorConfig contains mirror node REST settings
type MirrorConfig struct {
	URL               string        `mapstructure:"url"`
	Timeout           time.Duration `mapstructure:"timeout"`
	MaxRetries        uint64        `mapstructure:"max_retries"`
	RetryBackoff      time.Duration `mapstructure:"retry_backoff"`
	DisplayMultiplier int64         `mapstructure:"display_multiplier"`
}

// MonitoringConfig contains metrics push settings
type MonitoringConfig struct {
	PushgatewayURL string `mapstructure:"pushgateway_url"`
	Job            string `mapstructure:"job"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

// MaxParticipants is the number of participant accounts bound from the environment.
const MaxParticipants = 3

var envBindings = map[string]string{
	"network.name":         "HEDERA_NETWORK",
	"operator.account_id":  "ACCOUNT_ID",
	"operator.private_key": "ACCOUNT_PRIVATE_KEY",
	"tokens.mst":           "MST_TOKEN_ADDRESS",
	"tokens.mpt":           "MPT_TOKEN_ADDRESS",
	"tokens.treasury":      "TREASURY_ADDRESS",
	"contract.id":          "REWARD_DISTRIBUTION_CONTRACT_ID",
	"mirror.url":           "MIRROR_NODE_URL",
	"logging.level":        "LOG_LEVEL",
}

// ParticipantName returns the configuration key of the n-th participant (1-based).
func ParticipantName(n int) string {
	return fmt.Sprintf("account%d", n)
}

// ParticipantNames returns the configured participant names in order.
func (c *Config) ParticipantNames() []string {
	names := make([]string, 0, len(c.Participants))
	for name := range c.Participants {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LoadDeploy loads configuration for the deployer. Operator credentials,
// both token ids and the treasury are required.
func LoadDeploy(configPath string) (*Config, error) {
	cfg, err := load(configPath)
	if err != nil {
		return nil, err
	}
	if err := validateDeploy(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

// LoadScenario loads configuration for the scenario and balances tools.
// Operator credentials, the deployed contract id, both token ids and every
// participant are required.
func LoadScenario(configPath string) (*Config, error) {
	cfg, err := load(configPath)
	if err != nil {
		return nil, err
	}
	if err := validateScenario(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

func load(configPath string) (*Config, error) {
	// .env is optional; variables already present in the environment win.
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", env, err)
		}
	}
	for n := 1; n <= MaxParticipants; n++ {
		prefix := "participants." + ParticipantName(n)
		bindings := map[string]string{
			prefix + ".account_id":  fmt.Sprintf("ACCOUNT%d_ID", n),
			prefix + ".private_key": fmt.Sprintf("ACCOUNT%d_PRIVATE_KEY", n),
			prefix + ".evm_address": fmt.Sprintf("ACCOUNT%d_ADDRESS_ETHER", n),
		}
		for key, env := range bindings {
			if err := v.BindEnv(key, env); err != nil {
				return nil, fmt.Errorf("failed to bind %s: %w", env, err)
			}
		}
	}

	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	for name, p := range cfg.Participants {
		if p == (AccountConfig{}) {
			delete(cfg.Participants, name)
			continue
		}
		p.EVMAddress = normalizeEVMAddress(p.EVMAddress)
		cfg.Participants[name] = p
	}
	return &cfg, nil
}

// normalizeEVMAddress accepts participant addresses with or without the 0x prefix.
func normalizeEVMAddress(addr string) string {
	addr = strings.TrimSpace(addr)
	if addr == "" || strings.HasPrefix(addr, "0x") || strings.HasPrefix(addr, "0X") {
		return addr
	}
	return "0x" + addr
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("network.name", "testnet")

	// Contract defaults
	v.SetDefault("contract.bytecode_path", "./RewardDis_sol_RewardDistribution.bin")
	v.SetDefault("contract.gas", 3000000)
	v.SetDefault("contract.max_transaction_fee_hbar", 20)
	v.SetDefault("contract.max_chunks", 10)
	v.SetDefault("contract.allowance_amount", 1000000000)

	// Mirror node defaults
	v.SetDefault("mirror.url", "https://testnet.mirrornode.hedera.com/api/v1")
	v.SetDefault("mirror.timeout", "10s")
	v.SetDefault("mirror.max_retries", 3)
	v.SetDefault("mirror.retry_backoff", "500ms")
	v.SetDefault("mirror.display_multiplier", 10000)

	v.SetDefault("monitoring.job", "reward_distribution_ops")

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.output_path", "stdout")
}

// requirement pairs a configuration value with the environment variable that supplies it.
type requirement struct {
	Env   string
	Value string
	Rule  string
}

var validate = newValidator()

func newValidator() *validator.Validate {
	return validator.New(validator.WithRequiredStructEnabled())
}

func checkRequirements(reqs []requirement) error {
	var missing, invalid []string
	for _, r := range reqs {
		if err := validate.Var(r.Value, "required"); err != nil {
			missing = append(missing, r.Env)
			continue
		}
		if r.Rule == "" {
			continue
		}
		if err := validate.Var(r.Value, r.Rule); err != nil {
			invalid = append(invalid, r.Env)
		}
	}
	var errs []error
	if len(missing) > 0 {
		errs = append(errs, fmt.Errorf("required configuration missing: %s", strings.Join(missing, ", ")))
	}
	if len(invalid) > 0 {
		errs = append(errs, fmt.Errorf("invalid configuration: %s", strings.Join(invalid, ", ")))
	}
	return errors.Join(errs...)
}

func baseRequirements(cfg *Config) []requirement {
	return []requirement{
		{Env: "ACCOUNT_ID", Value: cfg.Operator.AccountID},
		{Env: "ACCOUNT_PRIVATE_KEY", Value: cfg.Operator.PrivateKey},
		{Env: "MST_TOKEN_ADDRESS", Value: cfg.Tokens.MST},
		{Env: "MPT_TOKEN_ADDRESS", Value: cfg.Tokens.MPT},
	}
}

func checkTunables(cfg *Config) error {
	switch cfg.Network.Name {
	case "testnet", "mainnet", "previewnet":
	case "local":
		if len(cfg.Network.Nodes) == 0 {
			return fmt.Errorf("network.nodes is required for the local network")
		}
	default:
		return fmt.Errorf("unknown network %q", cfg.Network.Name)
	}
	if cfg.Contract.Gas == 0 {
		return fmt.Errorf("contract.gas must be positive")
	}
	if err := validate.Var(cfg.Mirror.URL, "required,url"); err != nil {
		return fmt.Errorf("mirror.url is invalid: %q", cfg.Mirror.URL)
	}
	return nil
}

func validateDeploy(cfg *Config) error {
	reqs := append(baseRequirements(cfg), requirement{Env: "TREASURY_ADDRESS", Value: cfg.Tokens.Treasury})
	if err := checkRequirements(reqs); err != nil {
		return err
	}
	if cfg.Contract.MaxChunks == 0 {
		return fmt.Errorf("contract.max_chunks must be positive")
	}
	if cfg.Contract.AllowanceAmount <= 0 {
		return fmt.Errorf("contract.allowance_amount must be positive")
	}
	return checkTunables(cfg)
}

func validateScenario(cfg *Config) error {
	reqs := append(baseRequirements(cfg), requirement{Env: "REWARD_DISTRIBUTION_CONTRACT_ID", Value: cfg.Contract.ID})
	for n := 1; n <= MaxParticipants; n++ {
		p := cfg.Participants[ParticipantName(n)]
		reqs = append(reqs,
			requirement{Env: fmt.Sprintf("ACCOUNT%d_ID", n), Value: p.AccountID},
			requirement{Env: fmt.Sprintf("ACCOUNT%d_PRIVATE_KEY", n), Value: p.PrivateKey},
			requirement{Env: fmt.Sprintf("ACCOUNT%d_ADDRESS_ETHER", n), Value: p.EVMAddress, Rule: "eth_addr"},
		)
	}
	if err := checkRequirements(reqs); err != nil {
		return err
	}
	return checkTunables(cfg)
}
