package main

import (
	"fmt"
	"log"
	"net/http"

	"go.uber.org/zap"

	"github.com/QuaresmaHarygens/Talkam/config"
	"github.com/QuaresmaHarygens/Talkam/web"
)

func main() {
	a := web.App{}
	a.Config = *config.New()

	if err := a.Initialize(); err != nil {
		log.Fatal(err)
	}

	port := a.Config.Port
	if port == "" {
		port = "8080"
	}
	zap.S().Infow("talkam web gateway is up and running",
		"port", port,
		"api", a.Config.APIBaseURL,
	)
	log.Fatal(http.ListenAndServe(fmt.Sprintf(":%v", port), a.Router))
}
