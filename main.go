/*
File    : langcore/main.go
*/
package main

import (
	"os"

	"github.com/lenna-dev/langcore/repl"
)

const banner = `
 _
| | __ _ _ __   __ _  ___ ___  _ __ ___
| |/ _' | '_ \ / _' |/ __/ _ \| '__/ _ \
| | (_| | | | | (_| | (_| (_) | | |  __/
|_|\__,_|_| |_|\__, |\___\___/|_|  \___|
               |___/
`

func main() {
	r := repl.NewRepl(
		banner,
		"0.1.0",
		"lenna-dev",
		"----------------------------------------",
		"MIT",
		"lc >>> ",
	)
	r.Start(os.Stdin, os.Stdout)
}
