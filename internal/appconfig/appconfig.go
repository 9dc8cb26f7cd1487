package appconfig

import "github.com/ilyakaznacheev/cleanenv"

// AutoplayConfig holds the self-play settings read from the environment.
type AutoplayConfig struct {
	Deals       int    `env:"SUECA_DEALS" env-default:"100" env-description:"Number of deals to play"`
	Seed        int64  `env:"SUECA_SEED" env-default:"1" env-description:"Seed for dealing and strategies"`
	Team0       string `env:"SUECA_TEAM0" env-default:"basic" env-description:"Strategy for seats 0 and 2"`
	Team1       string `env:"SUECA_TEAM1" env-default:"random" env-description:"Strategy for seats 1 and 3"`
	FreeDiscard bool   `env:"SUECA_FREE_DISCARD" env-default:"false" env-description:"Allow any discard when partner is winning"`
	Samples     int    `env:"SUECA_SAMPLES" env-default:"24" env-description:"Samples per decision for the search strategy"`
}

// Load environment variables to AutoplayConfig instance
func LoadAutoplayConfig() (*AutoplayConfig, error) {
	cfg := &AutoplayConfig{}
	err := cleanenv.ReadEnv(cfg)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// Usage describes the environment variables AutoplayConfig reads.
func Usage() string {
	text, err := cleanenv.GetDescription(&AutoplayConfig{}, nil)
	if err != nil {
		return ""
	}
	return text
}
