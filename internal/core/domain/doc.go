// Package domain defines the core business entities for Sightline.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Mode: One of the fixed assistant modes (navigation, object detection, reading)
//   - PhraseTable: Ordered trigger phrases per mode
//   - Obstacle / DetectedObject: A labelled bounding box with confidence
//   - Direction: A steering recommendation derived from obstacles
//   - AppSettings: User-configurable behaviour
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
