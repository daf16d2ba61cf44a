/*
Copyright © 2025 booklyhq
*/
package main

import (
	"github.com/booklyhq/support-be/cmd"
	"github.com/joho/godotenv"
)

func main() {
	cmd.Execute()
}

func init() {
	// .env is optional, secrets may come from the real environment
	godotenv.Load()
}
