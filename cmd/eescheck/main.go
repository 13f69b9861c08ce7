// Command eescheck validates TOML and YAML files and reports every failure with its
// complete cause chain.
//
//	eescheck check config.toml deploy.yaml
//	eescheck check --keep-going configs/*.yml
package main

import (
	"github.com/stkali/ees/errors"
)

func main() {
	errors.Main(Execute)
}
