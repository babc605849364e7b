package main

import (
	"github.com/campuskit/gatepass-management/cmd"
)

func main() {
	cmd.Execute()
}
