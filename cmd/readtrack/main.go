package main

import "github.com/minseon9/readtrack/internal/app"

// version is set at release time via ldflags.
var version = "dev"

func main() {
	app.SetVersion(version)
	app.Execute()
}
