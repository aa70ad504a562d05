// Package httpapi serves a ruleset.Set over HTTP with a chi router.
//
//	GET  /health                  readiness of the loaded rule set
//	GET  /rules                   names and types of the configured rules
//	POST /rules/{name}/validate   {"value": <any JSON>}
//	POST /validate                {"fields": [{"field", "rule", "value"}]}
//
// Single value validation always answers 200 with the outcome in the data
// envelope; an unknown rule is 404 and a body that is not a JSON object is
// 400. The batch endpoint answers 422 with per field messages when any value
// fails.
//
// Every request carries an X-Request-ID. RequestIDExtractor plugs it into
// logger.WithContextExtractors so log records written with the request
// context are correlated.
package httpapi
