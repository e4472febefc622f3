// Command aerostackd serves the airfoil analysis API.
//
// Usage:
//
//	aerostackd [-config path/to/aerostack.ini] [-debug]
package main

import (
	"flag"

	"github.com/sirupsen/logrus"

	"github.com/dallen2021/AeroStack/server"
)

func main() {
	configPath := flag.String("config", "aerostack.ini", "path to the ini configuration file")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if *debug {
		log.SetLevel(logrus.DebugLevel)
	}

	cfg, err := server.LoadConfig(*configPath)
	if err != nil {
		log.WithError(err).WithField("path", *configPath).
			Warn("configuration unreadable, continuing with defaults")
	}
	log.WithFields(logrus.Fields{
		"addr":   cfg.Addr,
		"panels": cfg.DefaultPanels,
		"cache":  cfg.EnableCache,
	}).Info("starting aerostackd")

	if err := server.New(cfg, log).Serve(); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}
