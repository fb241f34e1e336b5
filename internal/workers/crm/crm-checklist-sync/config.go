package crmchecklistsync

import (
	"fmt"
	"time"
)

type Config struct {
	Timeout   time.Duration
	Module    string
	SyncField string
}

func LoadConfig() *Config {
	return &Config{
		Timeout:   30 * time.Second,
		Module:    "Deals",
		SyncField: "Application_ID",
	}
}

func (c *Config) Validate() error {
	if c.Timeout <= 0 {
		c.Timeout = 30 * time.Second
	}
	if c.Module == "" {
		return fmt.Errorf("crm module is required")
	}
	if c.SyncField == "" {
		c.SyncField = "Application_ID"
	}
	return nil
}
