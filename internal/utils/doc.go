// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for percent-encoding URL paths, HTTP response writing,
// HTTP client initialization and request trace identifier generation.
package utils
