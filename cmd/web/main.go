package main

import "haatbazar_admin/internal/app"

func main() {
	app.Run()
}
