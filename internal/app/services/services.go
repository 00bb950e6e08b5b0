// Package services holds the application services that sit between the HTTP
// controllers and the analytics engine.
//
// Services defined in this package:
// - AnalyticsService: request mapping, validation and timeouts around analytics.Engine
package services
