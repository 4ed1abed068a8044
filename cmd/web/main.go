package main

import "linkup_backend/internal/app"

func main() {
	app.Run()
}
