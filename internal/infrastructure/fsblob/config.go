package fsblob

type Config struct {
	Root                  string `yaml:"root"`
	UsageRefreshInSeconds int    `yaml:"usage_refresh_in_seconds"`
}
