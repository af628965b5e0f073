// Command lxd-profile generates LXD profiles from YAML templates.
package main

import "github.com/cameronsjo/lxd-profile/internal/cmd"

func main() {
	cmd.Execute()
}
