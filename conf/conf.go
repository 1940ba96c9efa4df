package conf

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Conf holds everything the service reads from its environment. A TOML
// file referenced by APP_CONFIG may pre-fill the values; environment
// variables always win over the file.
type Conf struct {
	StudentEmail  string `toml:"student_email"`
	StudentSecret string `toml:"student_secret"`

	GithubToken  string `toml:"github_token"`
	GhUsername   string `toml:"gh_username"`
	GhRepoPrefix string `toml:"gh_repo_prefix"`

	OpenAiApiKey string `toml:"openai_api_key"`
	OpenAiModel  string `toml:"openai_model"`

	HttpTimeout time.Duration `toml:"-"`
	ListenAddr  string        `toml:"listen_addr"`
	DbPath      string        `toml:"db_path"`
}

const (
	defaultStudentEmail  = "student@example.com"
	defaultStudentSecret = "change-me"
	defaultRepoPrefix    = "tds-"
	defaultOpenAiModel   = "gpt-4o-mini"
	defaultHttpTimeout   = 20 * time.Second
	defaultListenAddr    = ":8080"
	defaultDbPath        = "data/deployments.db"
)

// Load reads the optional APP_CONFIG TOML file and then the environment.
// It fails when the GitHub credentials the publisher needs are missing.
func Load() (*Conf, error) {
	c := &Conf{
		StudentEmail:  defaultStudentEmail,
		StudentSecret: defaultStudentSecret,
		GhRepoPrefix:  defaultRepoPrefix,
		OpenAiModel:   defaultOpenAiModel,
		HttpTimeout:   defaultHttpTimeout,
		ListenAddr:    defaultListenAddr,
		DbPath:        defaultDbPath,
	}

	if path := os.Getenv("APP_CONFIG"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if err := toml.Unmarshal(data, c); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	overrideStr(&c.StudentEmail, "STUDENT_EMAIL")
	overrideStr(&c.StudentSecret, "STUDENT_SECRET")
	overrideStr(&c.GithubToken, "GITHUB_TOKEN")
	overrideStr(&c.GhUsername, "GH_USERNAME")
	overrideStr(&c.GhRepoPrefix, "GH_REPO_PREFIX")
	overrideStr(&c.OpenAiApiKey, "OPENAI_API_KEY")
	overrideStr(&c.OpenAiModel, "OPENAI_MODEL")
	overrideStr(&c.ListenAddr, "LISTEN_ADDR")
	overrideStr(&c.DbPath, "DB_PATH")

	if v := os.Getenv("HTTP_TIMEOUT"); v != "" {
		secs, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid HTTP_TIMEOUT %q: %w", v, err)
		}
		c.HttpTimeout = time.Duration(secs * float64(time.Second))
	}

	if c.GithubToken == "" || c.GhUsername == "" {
		return nil, fmt.Errorf("missing GITHUB_TOKEN or GH_USERNAME")
	}

	return c, nil
}

func overrideStr(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}
