// SPDX-License-Identifier: MPL-2.0

package main

import cmd "github.com/crateops/crateops/cmd/crateops"

func main() {
	cmd.Execute()
}
