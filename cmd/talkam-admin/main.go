package main

import (
	"fmt"
	"log"
	"net/http"

	"go.uber.org/zap"

	"github.com/QuaresmaHarygens/Talkam/admin"
	"github.com/QuaresmaHarygens/Talkam/config"
)

func main() {
	a := admin.App{}
	a.Config = *config.New()

	if err := a.Initialize(); err != nil {
		log.Fatal(err)
	}

	port := a.Config.Port
	if port == "" {
		port = "8081"
	}
	zap.S().Infow("talkam admin gateway is up and running",
		"port", port,
		"api", a.Config.APIBaseURL,
	)
	log.Fatal(http.ListenAndServe(fmt.Sprintf(":%v", port), a.Router))
}
