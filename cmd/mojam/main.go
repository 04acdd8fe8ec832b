// Command mojam is the operator CLI: text tools, snapshot import and
// export, migrations and password hashing.
package main

import (
	"os"

	"github.com/heartmarshall/mojam-curator/cmd/mojam/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
