// Package environment propagates the application environment (development,
// staging or production) through request contexts.
//
// Parse normalises APP_ENV values, Middleware stores the result on every
// request, and IsDevelopment, IsStaging and IsProduction query it:
//
//	env := environment.Parse(os.Getenv("APP_ENV"))
//	r.Use(environment.Middleware(env))
//
//	if environment.IsDevelopment(ctx) {
//		// expose error details
//	}
//
// A context without an environment reports none of the three.
package environment
