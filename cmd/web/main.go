package main

import "campaignhub_backend/internal/app"

func main() {
	app.Run()
}
