package main

import "github.com/killallgit/searchpro-api/cmd"

// @title           SearchPro API
// @version         1.0.0
// @description     Multi-type search service backed by an instant answer provider
// @termsOfService  http://swagger.io/terms/
// @contact.name    API Support
// @contact.url     https://github.com/killallgit/searchpro-api
// @contact.email   support@example.com
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @host            localhost:8080
// @BasePath        /
// @schemes         http https
func main() {
	cmd.Execute()
}
