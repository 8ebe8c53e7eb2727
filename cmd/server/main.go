// @title Event Registration API
// @version 1.0
// @description Events with a capacity limit and attendee registration that stays consistent under concurrent requests.
// @BasePath /
package main

import "eventregistration/cmd/server/cmd"

func main() {
	cmd.Execute()
}
