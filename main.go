package main

import (
	_ "github.com/joho/godotenv/autoload"

	"github.com/ABDULAAQILKHAN/solutions-with-aaqil/cmd"
)

func main() {
	cmd.Execute()
}
