// Package webapp hosts the interactive rhythm simulator: a JSON API, a
// WebSocket live-monitor feed and an embedded single-page UI on top of
// the ecg libraries. The ecglab command wires it to a cache store and a
// synthesis provider.
package webapp
