// Command strcalc evaluates arithmetic expressions given as strings.
//
// License
//
// Governed by a 3-Clause BSD license. License file may be found in the root
// folder of this module.
//
// Copyright © 2025 S. Grinevich
//
package main

import (
	"github.com/sgrinevich/strcalc"
	"github.com/sgrinevich/strcalc/strcalc/cli"
)

func main() {
	cli.Execute()
	strcalc.Exit(0)
}
