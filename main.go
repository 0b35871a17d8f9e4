package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"microblog/config"
	"microblog/database"
	"microblog/logger"
	"microblog/web"

	"github.com/joho/godotenv"
	"github.com/op/go-logging"
)

func main() {
	// .env is optional, environment variables win either way.
	_ = godotenv.Load()

	switch config.GetLogLevel() {
	case config.Debug:
		logger.InitLogger(logging.DEBUG)
	case config.Info:
		logger.InitLogger(logging.INFO)
	case config.Notice:
		logger.InitLogger(logging.NOTICE)
	case config.Warn:
		logger.InitLogger(logging.WARNING)
	case config.Error:
		logger.InitLogger(logging.ERROR)
	default:
		log.Fatal("unknown log level:", config.GetLogLevel())
	}
	defer logger.CloseLogger()

	db, err := database.InitDB(config.GetDBPath())
	if err != nil {
		log.Fatal(err)
	}
	defer func() {
		if err := database.CloseDB(db); err != nil {
			logger.Warning("close db err:", err)
		}
	}()

	server := web.NewServer(db)
	if err := server.Start(); err != nil {
		log.Fatal(err)
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM)
	for {
		sig := <-sigCh

		switch sig {
		case syscall.SIGHUP:
			logger.Info("reloading server")
			if err := server.Stop(); err != nil {
				logger.Warning("stop server err:", err)
			}
			server = web.NewServer(db)
			if err := server.Start(); err != nil {
				log.Fatal(err)
			}
		default:
			if err := server.Stop(); err != nil {
				logger.Warning("stop server err:", err)
			}
			return
		}
	}
}
