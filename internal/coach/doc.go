// Package coach implements the three FitScan operations: body analysis,
// meal analysis and workout generation. It is structured into small files by
// concern:
//
//   - service.go: Service type, constructor, mode getters and the operations.
//   - config.go: Config and package defaults; New applies defaults.
//   - errors.go: ValidationError and helpers (IsValidation).
//   - validate.go: request structs and their validation rules.
//   - ai.go: calls into the model API and decoding of its replies.
//   - prompts.go: prompt builders.
//   - fallback.go: rule-based results used without credentials or when the
//     model API fails.
//   - metrics.go: result counters by operation and source.
//
// Any model API failure is logged and replaced by the rule-based result; it
// never reaches the caller. Only validation errors and context cancellation
// are returned.
package coach
