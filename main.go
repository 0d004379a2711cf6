package main

import (
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/allape/openmouse/api"
	"github.com/allape/openmouse/config"
	"github.com/allape/openmouse/factory"
	"github.com/allape/openmouse/logger"
	"github.com/gin-gonic/gin"
)

var log = logger.New("[main]")

func main() {
	conf, err := config.GetConfig()
	if err != nil {
		log.Fatalln("get config:", err)
	}

	m, err := factory.MouseFromConfig(conf)
	if err != nil {
		log.Fatalln("mouse from config:", err)
	}
	defer func() {
		if m != nil {
			_ = m.Close()
		}
	}()

	if !logger.Verbose() {
		gin.SetMode(gin.ReleaseMode)
	}

	server := &http.Server{
		Addr:    conf.HTTP.Addr,
		Handler: api.New(m, conf).Handler(),
	}

	go func() {
		log.Println("listening on", conf.HTTP.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalln("listen:", err)
		}
	}()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	log.Println("started")
	sig := <-sigs
	log.Println("exiting with", sig)

	_ = server.Close()
}
