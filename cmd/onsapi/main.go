package main

import (
	"context"
	"os"

	"github.com/ONSdigital/dp-onsapi/cli"
	"github.com/ONSdigital/log.go/v2/log"
)

func main() {
	log.Namespace = "onsapi"
	// keep stdout for command output
	log.SetDestination(os.Stderr, os.Stderr)

	root, err := cli.NewRootCommand(cli.NewClient)
	if err != nil {
		log.Fatal(context.Background(), "failed to create command", err)
		os.Exit(1)
	}
	if err := root.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
