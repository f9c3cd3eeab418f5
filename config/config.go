package config

import (
	"fmt"
	"os"
	"path"

	"github.com/rentalworks/partyrent/pkg/common"
	"gopkg.in/yaml.v2"
)

type SysConfig struct {
	Appid    string `yaml:"appid" json:"appid"`
	Location string `yaml:"location" json:"location"`
	Workdir  string `yaml:"workdir" json:"workdir"`
	Debug    bool   `yaml:"debug" json:"debug"`
}

type WebConfig struct {
	Host   string `yaml:"host" json:"host"`
	Port   int    `yaml:"port" json:"port"`
	Secret string `yaml:"secret" json:"secret"`
}

type DBConfig struct {
	Type     string `yaml:"type" json:"type"`
	Host     string `yaml:"host" json:"host"`
	Port     int    `yaml:"port" json:"port"`
	Name     string `yaml:"name" json:"name"`
	User     string `yaml:"user" json:"user"`
	Password string `yaml:"passwd" json:"passwd"`
	MaxConn  int    `yaml:"max_conn" json:"max_conn"`
	IdleConn int    `yaml:"idle_conn" json:"idle_conn"`
	Debug    bool   `yaml:"debug" json:"debug"`
}

type LoggerConfig struct {
	Mode       string `yaml:"mode" json:"mode"`
	FileEnable bool   `yaml:"file_enable" json:"file_enable"`
	Filename   string `yaml:"filename" json:"filename"`
}

type AppConfig struct {
	System   SysConfig    `yaml:"system" json:"system"`
	Web      WebConfig    `yaml:"web" json:"web"`
	Database DBConfig     `yaml:"database" json:"database"`
	Logger   LoggerConfig `yaml:"logger" json:"logger"`
}

func (c *AppConfig) GetLogDir() string {
	return path.Join(c.System.Workdir, "logs")
}

func (c *AppConfig) GetDataDir() string {
	return path.Join(c.System.Workdir, "data")
}

func (c *AppConfig) initDirs() {
	common.MakeDir(c.System.Workdir)
	common.MakeDir(path.Join(c.System.Workdir, "logs"))
	common.MakeDir(path.Join(c.System.Workdir, "data"))
	common.MakeDir(path.Join(c.System.Workdir, "metrics"))
}

var DefaultAppConfig = &AppConfig{
	System: SysConfig{
		Appid:    "PartyRent",
		Location: "America/New_York",
		Workdir:  "/var/partyrent",
		Debug:    true,
	},
	Web: WebConfig{
		Host:   "0.0.0.0",
		Port:   1816,
		Secret: "9b6de5cc-partyrent-0cc9e6994f",
	},
	Database: DBConfig{
		Type:     "postgres",
		Host:     "127.0.0.1",
		Port:     5432,
		Name:     "partyrent",
		User:     "postgres",
		Password: "postgres",
		MaxConn:  100,
		IdleConn: 10,
	},
	Logger: LoggerConfig{
		Mode:       "development",
		FileEnable: true,
		Filename:   "/var/partyrent/partyrent.log",
	},
}

func setEnvValue(name string, val *string) {
	if evalue := os.Getenv(name); evalue != "" {
		*val = evalue
	}
}

func setEnvBoolValue(name string, val *bool) {
	if evalue := os.Getenv(name); evalue != "" {
		*val = evalue == "true" || evalue == "1" || evalue == "on"
	}
}

func setEnvIntValue(name string, val *int) {
	if evalue := os.Getenv(name); evalue != "" {
		var ival int
		if _, err := fmt.Sscanf(evalue, "%d", &ival); err == nil {
			*val = ival
		}
	}
}

// LoadConfig reads the yaml config file and applies PARTYRENT_* environment
// overrides. A missing file falls back to defaults.
func LoadConfig(cfile string) *AppConfig {
	cfg := new(AppConfig)
	*cfg = *DefaultAppConfig
	if common.FileExists(cfile) {
		data, err := os.ReadFile(cfile)
		if err != nil {
			panic(err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			panic(err)
		}
	}

	setEnvValue("PARTYRENT_SYSTEM_WORKDIR", &cfg.System.Workdir)
	setEnvBoolValue("PARTYRENT_SYSTEM_DEBUG", &cfg.System.Debug)

	setEnvValue("PARTYRENT_WEB_HOST", &cfg.Web.Host)
	setEnvValue("PARTYRENT_WEB_SECRET", &cfg.Web.Secret)
	setEnvIntValue("PARTYRENT_WEB_PORT", &cfg.Web.Port)

	setEnvValue("PARTYRENT_DB_TYPE", &cfg.Database.Type)
	setEnvValue("PARTYRENT_DB_HOST", &cfg.Database.Host)
	setEnvValue("PARTYRENT_DB_NAME", &cfg.Database.Name)
	setEnvValue("PARTYRENT_DB_USER", &cfg.Database.User)
	setEnvValue("PARTYRENT_DB_PWD", &cfg.Database.Password)
	setEnvIntValue("PARTYRENT_DB_PORT", &cfg.Database.Port)
	setEnvBoolValue("PARTYRENT_DB_DEBUG", &cfg.Database.Debug)

	setEnvValue("PARTYRENT_LOGGER_MODE", &cfg.Logger.Mode)
	setEnvBoolValue("PARTYRENT_LOGGER_FILE_ENABLE", &cfg.Logger.FileEnable)

	cfg.initDirs()
	return cfg
}
