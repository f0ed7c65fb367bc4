package main

import "github.com/kayit-app/kayit-api/internal/interfaces/cli"

func main() {
	cli.Execute()
}
