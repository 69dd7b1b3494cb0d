// By Navid M (c)
// Date: 2025
// License: GPL3
//
// Contains meta information and usage instructions for the template
// preprocessor.

package meta

import (
	"flag"
	"fmt"
)

const Version = "v0.0.1"

func ShowUsage() {
	fmt.Println("Usage: tmplforge [-keep] [-verbose] <root-file>")
	flag.PrintDefaults()
	fmt.Printf("\ntmplforge %v - By Navid M (c) 2025", Version)
}
