// Command intervals evaluates interval algebra from the command line.
//
//	intervals intersect '[0, 3)' '[1, 4)'
//	intervals union '[0, 3)' '[5, 8)'
//	intervals --float iou '[0, 1]' '[0, 2]'
package main

import (
	"os"

	"github.com/crystalix007/intervals/internal/cli"
)

func main() {
	os.Exit(cli.Run(os.Args[1:], os.Stdout, os.Stderr))
}
