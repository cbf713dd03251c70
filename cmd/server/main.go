package main

import "educator-site/internal/app"

func main() {
	app.Run()
}
