// Package environment names the deployment environment a service runs in and
// carries it through request contexts and logs.
//
// Parse turns the APP_ENV value into one of Development, Staging or
// Production. Environment.IsProduction gates production-only configuration
// checks.
//
// Middleware stores the environment on each request context. Handlers call
// IsProduction(ctx) to decide whether cookies are marked Secure.
package environment
