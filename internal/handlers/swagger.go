package handlers

// @title Math Solver API
// @version 1.0
// @description Step-by-step math problem solutions generated by a language model

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8081
// @BasePath /api/v1

// @tag.name solve
// @tag.description Math problem solving
