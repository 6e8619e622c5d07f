//	@title			Appo API
//	@version		1.0
//	@description	Appo manages application instance info records for edge tenants

//	@BasePath	/appo/v1

//	@tag.name			app_instance_infos
//	@tag.description	Application instance info management operations

package main

import (
	"os"

	"github.com/mecsphere/appo/cli"
)

func main() {
	cmd := cli.RootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
