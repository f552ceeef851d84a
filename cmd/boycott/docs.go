package main

// @title Boycott Service API
// @version 1.0
// @description Boycott queries and alternative-product recommendations, with logging, tracing and metrics.

// @contact.name API Support
// @contact.url http://github.com/tair/boycott-service

// @license.name MIT

// @host localhost:5000
// @BasePath /

// @tag.name Queries
// @tag.description Boycott query endpoints

// @tag.name Recommendations
// @tag.description Recommendation endpoints

// @tag.name Health
// @tag.description Health check endpoints
