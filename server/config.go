package server

import (
	"gopkg.in/ini.v1"

	"github.com/dallen2021/AeroStack/analysis"
	"github.com/dallen2021/AeroStack/vortexpanel"
)

// Config carries the serving-layer knobs. Engine semantics are not
// configurable; only thresholds and surface behavior are.
type Config struct {
	// Addr is the listen address for the HTTP server.
	Addr string
	// AllowOrigin is the CORS Access-Control-Allow-Origin value.
	AllowOrigin string

	// DefaultPanels is used when an analyze request omits the panel count.
	DefaultPanels int
	// MaxConditionNumber and WarnConditionNumber override the solver's
	// conditioning thresholds.
	MaxConditionNumber  float64
	WarnConditionNumber float64

	// EnableCache turns on fingerprint memoization of analysis results.
	EnableCache bool
}

// DefaultConfig returns the configuration used when no ini file is given.
func DefaultConfig() Config {
	return Config{
		Addr:                ":8080",
		AllowOrigin:         "*",
		DefaultPanels:       analysis.DefaultPanels,
		MaxConditionNumber:  vortexpanel.DefaultMaxConditionNumber,
		WarnConditionNumber: vortexpanel.DefaultWarnConditionNumber,
		EnableCache:         true,
	}
}

// LoadConfig reads an ini file, falling back to the default for every
// absent key. A missing or empty file is not an error and yields
// DefaultConfig.
func LoadConfig(path string) (Config, error) {
	file, err := ini.LooseLoad(path)
	if err != nil {
		return DefaultConfig(), err
	}
	def := DefaultConfig()

	return Config{
		Addr:                file.Section("server").Key("Addr").MustString(def.Addr),
		AllowOrigin:         file.Section("server").Key("AllowOrigin").MustString(def.AllowOrigin),
		DefaultPanels:       file.Section("solver").Key("DefaultPanels").MustInt(def.DefaultPanels),
		MaxConditionNumber:  file.Section("solver").Key("MaxConditionNumber").MustFloat64(def.MaxConditionNumber),
		WarnConditionNumber: file.Section("solver").Key("WarnConditionNumber").MustFloat64(def.WarnConditionNumber),
		EnableCache:         file.Section("cache").Key("Enable").MustBool(def.EnableCache),
	}, nil
}
