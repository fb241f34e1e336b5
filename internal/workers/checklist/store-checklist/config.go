package storechecklist

import "time"

type Config struct {
	Timeout     time.Duration
	SearchIndex string
}

func LoadConfig() *Config {
	return &Config{
		Timeout:     30 * time.Second,
		SearchIndex: "checklists",
	}
}

func (c *Config) Validate() error {
	if c.Timeout <= 0 {
		c.Timeout = 30 * time.Second
	}
	if c.SearchIndex == "" {
		c.SearchIndex = "checklists"
	}
	return nil
}
