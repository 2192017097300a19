package main

import (
	"dishseed/config"
	"dishseed/logger"
	"dishseed/stub"
	log "github.com/sirupsen/logrus"
)

func main() {
	conf, err := config.ParseConfig(config.DefaultPath)
	if err != nil {
		log.Fatalf("bad config: %v", err)
	}
	stubLogger := log.New()
	if err = logger.SetupLogging(conf, stubLogger); err != nil {
		log.Fatal(err)
	}

	router := stub.NewRouter(stub.NewStore(), conf.Stub.FailureRate, stubLogger)
	stubLogger.Infof("stub search service started on %s", conf.Stub.Addr)
	stubLogger.Fatal(router.Run(conf.Stub.Addr))
}
