package docs

// @title           SpaceX Launch Records Dashboard API
// @version         1.0
// @description     Interactive dashboard over the SpaceX launch records. Serves the page, chart figures as JSON and SVG, and a websocket session that redraws the charts on every control change.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:8050
// @BasePath  /
