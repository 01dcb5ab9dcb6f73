package main

import (
	_ "github.com/joho/godotenv/autoload"

	"github.com/skua-bio/fastascan/cmd"
)

func main() {
	cmd.Execute()
}
