// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Capabilities
//
// The assistants consume these capabilities and treat them as black boxes:
//
//   - Camera: Produces an opaque frame on demand
//   - ObstacleDetector: Finds obstacles in a frame (navigation)
//   - ObjectDetector: Finds named objects in a frame (object detection)
//   - TextRecognizer: Extracts text from a frame (reading)
//   - AudioOutput: Speaks a message to the user
//   - Transcriber: Produces one utterance per call; "" signals end of input
//   - ConfigStore: Application configuration
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
