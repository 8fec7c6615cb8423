// @title           SkillSwap API
// @version         1.0
// @description     Peer-to-peer skill exchange marketplace API.
// @host            localhost:4000
// @BasePath        /

package main

import "skillswap_backend/internal/app"

func main() {
	app.Run()
}
