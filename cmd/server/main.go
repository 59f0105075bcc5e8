// Command server runs the todokeeper HTTP and gRPC APIs.
package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/todokeeper/internal/buildinfo"
	"github.com/dmitrijs2005/todokeeper/internal/server"
	"github.com/dmitrijs2005/todokeeper/internal/server/config"
)

func main() {
	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	app, err := server.NewApp(ctx, config.LoadConfig())
	if err != nil {
		log.Fatalf("todokeeper server: %v", err)
	}
	app.Run(ctx)
}
