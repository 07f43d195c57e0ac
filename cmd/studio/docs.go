package main

// General API documentation for swaggo. Regenerate the docs package with
// `swag init -g cmd/studio/docs.go -d ./,./internal/demoapi,./pkg/types`.
//
// @title           studio demo API
// @version         1.0
// @description     REST surface consumed by the studio front-end, served by the built-in demo backend.
//
// @contact.name   studio maintainers
//
// @license.name   MIT
// @license.url    https://opensource.org/licenses/MIT
//
// @BasePath  /
//
// @schemes http
