package main

// General API documentation for swaggo. The generated document lives in
// package docs and is served under /docs in development.
//
// @title           FitScan API
// @version         1.0.0
// @description     Body, meal and workout analysis for the FitScan mobile app.
//
// @contact.name   FitScan maintainers
//
// @license.name   MIT
// @license.url    https://opensource.org/licenses/MIT
//
// @BasePath  /
//
// @schemes http https
