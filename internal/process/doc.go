// Package process cleans up the headless browser started for PDF rendering.
package process
