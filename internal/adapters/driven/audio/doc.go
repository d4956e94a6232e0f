// Package audio provides AudioOutput adapters.
//
// No speech synthesis happens here. Console prints each announcement as a
// line of text and Recorder keeps an ordered log for callers that need the
// announcements back, such as tests and the MCP server.
package audio
