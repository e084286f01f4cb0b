// Package main provides the CLI entrypoint for vk-helpers-generator.
//
// vk-helpers-generator keeps the generated parts of vk_helpers.{h,c} in
// sync with the Vulkan entry tables:
//   - Groups entries into #if blocks by their preprocessor conditions
//   - Emits struct members and instance/device loader calls
//   - Rewrites only the lines between each region's sentinel comments
//   - Checks in CI that the committed regions are up to date
package main

import (
	"fmt"
	"os"

	"github.com/cockroachdb/errors"

	"vk-helpers-generator/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if hint := errors.FlattenHints(err); hint != "" {
			fmt.Fprintf(os.Stderr, "Hint: %s\n", hint)
		}
		os.Exit(1)
	}
}
