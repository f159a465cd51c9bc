// Package integrations provides clients for external generation APIs.
//
// Each provider has its own subpackage:
//
//   - [gemini]: Google Gemini, the default text-generation backend
//
// # Client Pattern
//
// All provider clients follow a consistent pattern:
//
//	client, err := gemini.NewClient(ctx, apiKey, model)
//	text, err := client.GeneratePlan(ctx, "a two bedroom apartment")
//
// Clients validate their inputs, wrap provider errors in typed errors from
// the errors package, and implement the pipeline's Generator interface so
// new providers can be added without touching the pipeline.
package integrations
