// Package contactbook provides embedded runtime resources.
package contactbook

import _ "embed"

// ExampleConfig is a commented config file listing every setting with its default.
//
//go:embed config.example.yaml
var ExampleConfig []byte
