// SPDX-License-Identifier: MPL-2.0

package main

import cmd "mkmod-cli/cmd/mkmod"

func main() {
	cmd.Execute()
}
