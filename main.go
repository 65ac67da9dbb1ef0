package main

import (
	"exusiai.dev/trialstats/cmd/app"
)

//	@title			Trial Statistics API
//	@version		1.0.0
//	@description	Personal reports and leaderboards for accuracy, reach and plyometric trials.
//	@BasePath		/api
func main() {
	app.Run()
}
