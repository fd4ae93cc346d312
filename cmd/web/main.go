package main

import "messenger_backend/internal/app"

func main() {
	app.Run()
}
