package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Port      string
	PGDSN     string
	CORSAllow []string
	LogLevel  string
}

func Load() Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("app_port", "8080")
	v.SetDefault("db_user", "partnersvc")
	v.SetDefault("db_pass", "secret")
	v.SetDefault("db_host", "localhost")
	v.SetDefault("db_port", "5432")
	v.SetDefault("db_name", "partnersvc")
	v.SetDefault("db_sslmode", "disable")
	v.SetDefault("log_level", "info")

	dsn := v.GetString("pg_dsn")
	if strings.TrimSpace(dsn) == "" {
		dsn = fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
			v.GetString("db_user"), v.GetString("db_pass"),
			v.GetString("db_host"), v.GetString("db_port"),
			v.GetString("db_name"), v.GetString("db_sslmode"))
	}
	var cors []string
	for _, p := range strings.Split(v.GetString("cors_allow_origins"), ",") {
		if o := strings.TrimSpace(p); o != "" {
			cors = append(cors, o)
		}
	}
	return Config{
		Port:      v.GetString("app_port"),
		PGDSN:     dsn,
		CORSAllow: cors,
		LogLevel:  v.GetString("log_level"),
	}
}
