package main

import (
	"github.com/vinocafe/order-svc/internal/app"
	"github.com/vinocafe/order-svc/internal/config"
)

func main() {
	config.MustInit()
	app.MustNewApp().Run()
}
