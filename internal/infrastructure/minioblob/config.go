package minioblob

type Config struct {
	AccessKey             string
	SecretKey             string
	Endpoint              string `yaml:"endpoint"`
	Bucket                string `yaml:"bucket"`
	TimeoutInMs           int64  `yaml:"timeout_in_ms"`
	UsageRefreshInSeconds int    `yaml:"usage_refresh_in_seconds"`
}
