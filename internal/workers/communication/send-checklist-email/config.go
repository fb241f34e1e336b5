package sendchecklistemail

import (
	"fmt"
	"time"
)

type Config struct {
	Timeout    time.Duration
	AWSRegion  string
	FromEmail  string
	SMSEnabled bool
}

func LoadConfig() *Config {
	return &Config{
		Timeout:   30 * time.Second,
		AWSRegion: "us-east-1",
	}
}

func (c *Config) Validate() error {
	if c.Timeout <= 0 {
		c.Timeout = 30 * time.Second
	}
	if c.FromEmail == "" {
		return fmt.Errorf("from_email is required")
	}
	return nil
}
