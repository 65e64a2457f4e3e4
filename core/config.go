package core

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var Conf *viper.Viper

func init() {
	Conf = viper.New()

	// defaults
	Conf.SetTypeByDefaultValue(true)
	Conf.SetDefault("debug", true)
	Conf.SetDefault("appName", "Sistema Admin Institucional")
	Conf.SetDefault("apiBaseURL", "http://localhost:8000/api")
	Conf.SetDefault("storageBaseURL", "")
	Conf.SetDefault("httpTimeout", 30*time.Second)
	Conf.SetDefault("searchDebounce", 500*time.Millisecond)
	Conf.SetDefault("rollbarToken", "")

	env := os.Getenv("ENV") // DEV (local; default), TEST, QA, PROD
	switch env {
	case "":
		env = "DEV"
	case strings.ToUpper("TEST"):
		Conf.SetDefault("testMode", true)
	}
	Conf.SetEnvPrefix(env)

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join(Getwd(), "config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			log.Fatalf("config.godotenv(%s): %v", dotEnvPath, err)
		}
	} else if !os.IsNotExist(err) {
		log.Fatalf("config.os.Stat(%s): %v", dotEnvPath, err)
	}
	Conf.AutomaticEnv()
}

// APIBaseURL returns the configured backend base URL without a trailing slash.
func APIBaseURL() string {
	return strings.TrimRight(Conf.GetString("apiBaseURL"), "/")
}

// StorageBaseURL returns the base URL used to resolve document paths.
// When unset it is derived from apiBaseURL by trimming a trailing "/api"
// path element only; "/api" appearing anywhere else in the URL is left alone.
func StorageBaseURL() string {
	if s := Conf.GetString("storageBaseURL"); s != "" {
		return strings.TrimRight(s, "/")
	}
	return strings.TrimSuffix(APIBaseURL(), "/api")
}
