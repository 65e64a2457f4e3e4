package main

import (
	"log"
	"os"

	"github.com/Yasir-hub1/sistema-admin-institucional-sub003/client"
	"github.com/Yasir-hub1/sistema-admin-institucional-sub003/core"
	"github.com/Yasir-hub1/sistema-admin-institucional-sub003/services/logger"
	"github.com/Yasir-hub1/sistema-admin-institucional-sub003/session"
)

func main() {
	defer os.Exit(0)

	std := log.New(os.Stdout, "CONSOLE : ", log.LstdFlags|log.Lmicroseconds)

	var logger core.Logger
	if token := core.Conf.GetString("rollbarToken"); token != "" {
		logger = logsvc.NewRollbarLogger(std, map[string]string{
			"token": token,
			"env":   os.Getenv("ENV"),
		})
	} else {
		logger = logsvc.NewStdLogger(std)
	}

	// a returning-user token can be provided via SAI_TOKEN to skip login
	var sess *session.Session
	if token := os.Getenv("SAI_TOKEN"); token != "" {
		var err error
		if sess, err = session.Parse(token); err != nil {
			logger.Fatal("invalid SAI_TOKEN", err)
		}
	}

	api, err := client.New(core.APIBaseURL(), core.Conf.GetDuration("httpTimeout"), sess)
	if err != nil {
		logger.Fatal("setting up API client", err)
	}

	cli := commandLine{
		out:    os.Stdout,
		api:    api,
		sess:   sess,
		logger: logger,
	}
	if err := cli.run(os.Args); err != nil {
		if err != errHelp {
			std.Printf("\nerror: %s\n", err)
		}
		os.Exit(1)
	}
}
