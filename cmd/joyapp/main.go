package main

import "github.com/joyapp/joy-backend/internal/app"

func main() {
	err := app.NewJoyApp().Run()
	if err != nil {
		panic(err)
	}
}
