// mixo composes objects by copying selected properties from YAML sources
// onto a target object.
package main

import (
	"os"

	"github.com/mixo-go/mixo/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
