// Package app contains the core application logic. It wires the catalog
// loaders, the compiler and the emitters into the operations the command
// line exposes, decoupled from any specific entrypoint.
package app
