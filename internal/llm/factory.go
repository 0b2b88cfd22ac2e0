// Package llm holds the text completion provider registry and shared
// provider error types.
package llm

import (
	"fmt"

	"promptpilot/internal/config"
	"promptpilot/internal/port"
)

// ProviderFactory is a function that creates a TextCompleter for a specific
// model from the LLM config. An empty model selects the provider default.
type ProviderFactory func(cfg *config.LLMConfig, model string) (port.TextCompleter, error)

// registry of completion provider factories, populated explicitly via
// RegisterProvider during startup.
var providers = map[string]ProviderFactory{}

// RegisterProvider registers a completion provider factory by name.
func RegisterProvider(name string, factory ProviderFactory) {
	providers[name] = factory
}

// NewCompleter creates a TextCompleter from the LLM config using the
// registered factory for cfg.Provider.
func NewCompleter(cfg *config.LLMConfig, model string) (port.TextCompleter, error) {
	factory, ok := providers[cfg.Provider]
	if !ok {
		return nil, fmt.Errorf("unknown LLM provider: %s", cfg.Provider)
	}
	return factory(cfg, model)
}
