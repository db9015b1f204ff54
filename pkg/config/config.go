package config

// RegistryConfig controls how the action catalog is built
type RegistryConfig struct {
	// Strict rejects action types declared by more than one service
	Strict bool `koanf:"strict"`
}

// LoggingConfig controls log output
type LoggingConfig struct {
	// File enables the log file under the XDG state directory
	File bool `koanf:"file"`
}

// ActionService declares one tagged catalog promotion action
type ActionService struct {
	// ID is the service identifier. Services are folded in id order.
	ID string `koanf:"id"`
	// Handler names the action factory creating the service
	Handler string `koanf:"handler"`
	// Tag holds the tag attributes, `type` and `label` are required
	Tag map[string]string `koanf:"tag"`
	// Options are passed to the action factory
	Options map[string]interface{} `koanf:"options"`
}

// Config is the main configuration structure
type Config struct {
	Registry RegistryConfig `koanf:"registry"`
	Logging  LoggingConfig  `koanf:"logging"`
	Actions  []ActionService `koanf:"actions"`
	// Elements holds page element definitions keyed by page name, then
	// element name. A definition is a CSS locator string or a table with
	// a single selector type key, e.g. {xpath = "//del"}.
	Elements map[string]map[string]interface{} `koanf:"elements"`
}

// Page returns the element definitions of the named page
func (c *Config) Page(name string) map[string]interface{} {
	return c.Elements[name]
}
