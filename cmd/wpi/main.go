// Command wpi serves and maintains the player performance index: the HTTP
// API, raw data ingest, model training and a few terminal views.
package main

func main() {
	Execute()
}
