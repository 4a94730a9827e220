// Package strcalc evaluates textual arithmetic expressions.
//
// An expression is given as a string, together with an optional set of
// named numeric variables. Evaluation runs through a fixed pipeline:
// scanning the expression into tokens, substituting variables and
// constants, converting the infix token sequence to postfix order
// (Shunting-Yard), and finally reducing the postfix sequence with an
// operand stack.
//
// License
//
// Governed by a 3-Clause BSD license. License file may be found in the root
// folder of this module.
//
// Copyright © 2025 S. Grinevich
//
package strcalc

import (
	"io"
	"os"

	"github.com/knadh/koanf"
)

// Configuration holds global configuration values. We use koanf.
var Configuration *koanf.Koanf

// Tracefile is the file we write our log output to, if not nil.
var Tracefile io.WriteCloser

// Exit exits the application. It gracefully shuts down all resources.
func Exit(errcode int) {
	if Tracefile != nil {
		Tracefile.Close()
	}
	os.Exit(errcode)
}
