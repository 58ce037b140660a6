package main

import (
	"github.com/mbenadda/mbenadda.com/cmd"
)

func main() {
	cmd.Execute()
}
