// Copyright © 2026 The svgls authors

package main

import "github.com/luthersystems/svgls/cmd"

func main() {
	cmd.Execute()
}
