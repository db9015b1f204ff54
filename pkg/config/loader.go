package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/catalogpromo/pkg/errors"
	"github.com/arthur-debert/catalogpromo/pkg/logging"
	"github.com/arthur-debert/catalogpromo/pkg/paths"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix of environment variables read into the config
const EnvPrefix = "CATALOGPROMO_"

// LoadOptions selects the files layered over the defaults
type LoadOptions struct {
	// ConfigFile is an explicit configuration file. When empty the
	// working directory is searched for catalogpromo.toml.
	ConfigFile string
	// WorkDir is the directory searched for the local config file
	WorkDir string
	// SkipUserConfig ignores the file under the XDG config directory
	SkipUserConfig bool
	// SkipLocalConfig ignores catalogpromo.toml in WorkDir
	SkipLocalConfig bool
}

// Load builds the configuration from every layer
func Load(opts LoadOptions) (*Config, error) {
	logger := logging.GetLogger("config")

	base, err := parseBytes(defaultConfig, toml.Parser())
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to parse embedded defaults")
	}

	var files []string
	if !opts.SkipUserConfig {
		if userFile := paths.ConfigFile(); fileExists(userFile) {
			files = append(files, userFile)
		}
	}
	if opts.ConfigFile != "" {
		if !fileExists(opts.ConfigFile) {
			return nil, errors.Newf(errors.ErrConfigLoad, "config file %s does not exist", opts.ConfigFile).
				WithDetail("path", opts.ConfigFile)
		}
		files = append(files, opts.ConfigFile)
	} else if !opts.SkipLocalConfig {
		workDir := opts.WorkDir
		if workDir == "" {
			workDir = "."
		}
		if local := filepath.Join(workDir, paths.LocalConfigFileName); fileExists(local) {
			files = append(files, local)
		}
	}

	for _, path := range files {
		layer, err := loadFile(path)
		if err != nil {
			return nil, err
		}
		mergeMaps(base, layer)
		logger.Debug().Str("path", path).Msg("Merged config file")
	}

	envK := koanf.New(".")
	err = envK.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.Replace(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".", 1)
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
	}
	mergeMaps(base, envK.Raw())

	k := koanf.New(".")
	if err := k.Load(confmap.Provider(base, ""), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load merged config")
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}

	logger.Debug().
		Int("files", len(files)).
		Int("actions", len(cfg.Actions)).
		Bool("strict", cfg.Registry.Strict).
		Msg("Configuration loaded")

	return &cfg, nil
}

// Default returns the embedded default configuration
func Default() (*Config, error) {
	return Load(LoadOptions{SkipUserConfig: true, SkipLocalConfig: true})
}

func loadFile(path string) (map[string]interface{}, error) {
	var parser koanf.Parser
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		parser = toml.Parser()
	case ".yaml", ".yml":
		parser = yaml.Parser()
	default:
		return nil, errors.Newf(errors.ErrConfigLoad, "unsupported config file type %s", path).
			WithDetail("path", path)
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", path).
			WithDetail("path", path)
	}
	return k.Raw(), nil
}

func parseBytes(data []byte, parser koanf.Parser) (map[string]interface{}, error) {
	k := koanf.New(".")
	if err := k.Load(&rawBytesProvider{bytes: data}, parser); err != nil {
		return nil, err
	}
	return k.Raw(), nil
}

// mergeMaps merges src into dest. Nested tables merge key by key, slices
// are appended and every other value is overwritten. A slice entry whose
// id matches an earlier entry replaces it in place.
func mergeMaps(dest, src map[string]interface{}) {
	for key, srcVal := range src {
		destVal, destOk := dest[key]
		if !destOk {
			dest[key] = srcVal
			continue
		}

		if srcMap, srcOk := srcVal.(map[string]interface{}); srcOk {
			if destMap, destOk := destVal.(map[string]interface{}); destOk {
				mergeMaps(destMap, srcMap)
				continue
			}
		}

		if isSlice(srcVal) && isSlice(destVal) {
			dest[key] = appendSlices(destVal, srcVal)
			continue
		}

		dest[key] = srcVal
	}
}

func isSlice(v interface{}) bool {
	switch v.(type) {
	case []interface{}, []map[string]interface{}, []string:
		return true
	default:
		return false
	}
}

func appendSlices(dest, src interface{}) interface{} {
	result := toInterfaceSlice(dest)
	result = append(make([]interface{}, 0, len(result)), result...)

	positions := make(map[string]int)
	for i, item := range result {
		if id, ok := entryID(item); ok {
			positions[id] = i
		}
	}
	for _, item := range toInterfaceSlice(src) {
		if id, ok := entryID(item); ok {
			if i, exists := positions[id]; exists {
				result[i] = item
				continue
			}
			positions[id] = len(result)
		}
		result = append(result, item)
	}
	return result
}

// entryID returns the id key of a table entry in an array of tables
func entryID(item interface{}) (string, bool) {
	m, ok := item.(map[string]interface{})
	if !ok {
		return "", false
	}
	id, ok := m["id"].(string)
	return id, ok && id != ""
}

func toInterfaceSlice(v interface{}) []interface{} {
	switch s := v.(type) {
	case []interface{}:
		return s
	case []map[string]interface{}:
		result := make([]interface{}, len(s))
		for i, m := range s {
			result[i] = m
		}
		return result
	case []string:
		result := make([]interface{}, len(s))
		for i, v := range s {
			result[i] = v
		}
		return result
	default:
		return []interface{}{}
	}
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
