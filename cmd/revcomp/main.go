// cmd/revcomp/main.go
package main

import (
	"github.com/susannmudra/bioinformatics/internal/app"
	"github.com/susannmudra/bioinformatics/internal/appshell"
)

func main() {
	appshell.Main(app.Main)
}
