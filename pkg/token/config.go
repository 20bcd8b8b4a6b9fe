package token

import "github.com/dmitrymomot/lostoken/pkg/secrets"

// Config holds signer settings loadable from the environment with
// pkg/config or github.com/caarlos0/env.
type Config struct {
	Key        string     `env:"LOS_KEY,required"`
	Salt       string     `env:"LOS_SALT"`
	DefaultTTL string     `env:"LOS_DEFAULT_TTL" envDefault:"1h"`
	Algorithm  Algorithm  `env:"LOS_ALGORITHM" envDefault:"blake2b"`
	UseBigInt  BigIntMode `env:"LOS_USE_BIGINT" envDefault:"never"`
}

// DefaultConfig returns a Config with every field but Key set to its default.
func DefaultConfig() Config {
	return Config{
		DefaultTTL: DefaultTTL.String(),
		Algorithm:  DefaultAlgorithm,
		UseBigInt:  BigIntNever,
	}
}

// NewFromConfig creates a Signer from cfg. Empty fields keep their defaults
// and opts are applied after the config.
func NewFromConfig(cfg Config, opts ...Option) (*Signer, error) {
	configOpts := make([]Option, 0, 3+len(opts))

	if cfg.DefaultTTL != "" {
		configOpts = append(configOpts, WithDefaultTTLString(cfg.DefaultTTL))
	}
	if cfg.Algorithm != "" {
		alg, err := ParseAlgorithm(string(cfg.Algorithm))
		if err != nil {
			return nil, configError(err, "algorithm")
		}
		configOpts = append(configOpts, WithAlgorithm(alg))
	}
	configOpts = append(configOpts, WithBigIntMode(cfg.UseBigInt))
	configOpts = append(configOpts, opts...)

	key := []byte(cfg.Key)
	defer secrets.Wipe(key)

	return New(key, cfg.Salt, configOpts...)
}
