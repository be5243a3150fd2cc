package commands

import (
	"sync"
)

// ConfigPersister serializes read-modify-write cycles of the config file.
type ConfigPersister struct {
	mutex sync.Mutex
}

// NewConfigPersister creates a new config persister.
func NewConfigPersister() *ConfigPersister {
	return &ConfigPersister{}
}

// UpdateAPIKey stores a new private API key and makes it effective for the
// rest of the process.
func (p *ConfigPersister) UpdateAPIKey(apiKey string) error {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	// Load current config
	config := loadConfig()
	config.APIKey = apiKey

	// Save the updated config
	err := saveConfigStruct(config)
	if err != nil {
		return err
	}

	setViperConfig(config)

	return nil
}
