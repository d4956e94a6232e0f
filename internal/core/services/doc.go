// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// The assistants are synchronous and keep no state across calls apart from
// their injected collaborators. The one exception is VoiceAssistant, which
// owns the active mode; it is not safe for concurrent use.
package services
