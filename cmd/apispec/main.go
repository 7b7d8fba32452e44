// Command apispec generates an OpenAPI document from a YAML route manifest.
//
//	apispec generate -f routes.yaml -o openapi.json --strict --verify
//	apispec verify openapi.json
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
