// Package watch re-runs a composition whenever its input files change.
// Events from fsnotify are debounced so editors that write in bursts
// trigger a single rebuild.
package watch
