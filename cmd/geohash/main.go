package main

import "geohash-api/internal/cli"

func main() {
	cli.Execute()
}
