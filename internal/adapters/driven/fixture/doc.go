// Package fixture provides scripted implementations of the capability ports.
//
// There is no real camera, detector, OCR engine or speech recogniser here:
// every backend returns pre-configured data. The demo harness and tests use
// them to exercise the assistants end to end.
package fixture
