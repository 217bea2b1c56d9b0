package main

// The gateway application. Built without flags it serves the routes and
// the local Invoke API over HTTP:
//
//	go run ./cmd/app
//	curl localhost:8080/
//
// The container image builds it with the lambda build mode. See the
// Dockerfile.

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/asecurityteam/scaffold"
	"github.com/asecurityteam/settings/v2"
)

func main() {
	// Handle the -h flag and print settings.
	fs := flag.NewFlagSet("", flag.ContinueOnError)
	fs.Usage = func() {}
	err := fs.Parse(os.Args[1:])
	if err == flag.ErrHelp {
		fmt.Println(scaffold.Help())
		return
	}

	source, err := settings.NewEnvSource(os.Environ())
	if err != nil {
		panic(err.Error())
	}
	if err := scaffold.Start(context.Background(), source); err != nil {
		panic(err.Error())
	}
}
