// Command cli is the interactive todokeeper client.
package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/todokeeper/internal/buildinfo"
	"github.com/dmitrijs2005/todokeeper/internal/client/cli"
	"github.com/dmitrijs2005/todokeeper/internal/client/config"
)

func main() {
	log.SetFlags(0)
	buildinfo.PrintBuildData(os.Stdout)

	app, err := cli.NewApp(config.LoadConfig())
	if err != nil {
		log.Fatalf("todokeeper: %v", err)
	}
	app.Run(context.Background())
}
