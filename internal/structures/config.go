package structures

type Server struct {
	Host string `yaml:"host" validate:"required"`
	Port int    `yaml:"port" validate:"required|uint|min:1"`
}

type GithubConfig struct {
	Owner    string `yaml:"owner" validate:"required"`
	Repo     string `yaml:"repo" validate:"required"`
	Branch   string `yaml:"branch" validate:"required"`
	FilePath string `yaml:"filePath" validate:"required"`
	APIBase  string `yaml:"apiBase"`
	// Token stays unvalidated: a missing or under-scoped credential
	// surfaces as 401 on the first write, not at startup.
	Token string `yaml:"token"`
}

type LoggerConfig struct {
	Level string `yaml:"level" validate:"required|in:trace,debug,info,warn,error,fatal,panic"`
	Mode  uint32 `yaml:"mode" validate:"required|uint"`
	Dir   string `yaml:"dir" validate:"required|unixPath"`
}

type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`
}

type Config struct {
	AppName   string
	Debug     bool
	Path      string
	WebServer Server        `yaml:"webServer"`
	Github    GithubConfig  `yaml:"github"`
	Logger    LoggerConfig  `yaml:"logger"`
	Metrics   MetricsConfig `yaml:"metrics"`
}
