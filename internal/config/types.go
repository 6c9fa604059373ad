package config

// Config is the top-level paperpage configuration, corresponding to .paperpage.yml.
type Config struct {
	Paper       string       `yaml:"paper" koanf:"paper"`
	OutputDir   string       `yaml:"output_dir" koanf:"output_dir"`
	AssetsDir   string       `yaml:"assets_dir" koanf:"assets_dir"`
	AssetBase   string       `yaml:"asset_base" koanf:"asset_base"`
	Assets      []string     `yaml:"assets" koanf:"assets"`
	CopyResetMS int          `yaml:"copy_reset_ms" koanf:"copy_reset_ms"`
	Server      ServerConfig `yaml:"server" koanf:"server"`
}

// ServerConfig holds settings for the local preview server.
type ServerConfig struct {
	Port       int  `yaml:"port" koanf:"port"`
	AllowAll   bool `yaml:"allow_all" koanf:"allow_all"`
	LiveReload bool `yaml:"live_reload" koanf:"live_reload"`
}
