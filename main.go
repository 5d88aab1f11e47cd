package main

import (
	"os"

	"github.com/jalexanderII/todos-railway/app"
)

func getPort() string {
	port := os.Getenv("PORT")
	if port == "" {
		port = ":8000"
	} else {
		port = ":" + port
	}

	return port
}

// @title Todos Backend API
// @version 0.1
// @description REST API for the multi-user todos app.
// @license.name MIT
// @host localhost:8000
// @BasePath /
func main() {
	err := app.SetupAndRunApp(getPort())
	if err != nil {
		panic(err)
	}
}
