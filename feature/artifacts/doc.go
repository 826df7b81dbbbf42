// Package artifacts publishes build artifacts to object storage: plain
// text listings produced during assembly (crafted and isolated weapons)
// and the JSON validation report of each run.
//
// Artifacts are diagnostic output for gauging game data between runs; the
// companion database itself is published by the export package.
package artifacts
