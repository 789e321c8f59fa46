// Package helpers provides JSON persistence helpers for numeric Go values.
//
// The root package holds the Serializable contract and whole-file Load and
// Save on top of it. The subpackages hold the pieces:
//
//   - enum: labeled enumerations that accept either a member or its label
//   - codec: base JSON codecs (encoding/json and goccy/go-json)
//   - jsoncoder: encoder and decoder extensions layered on a base codec
//   - ndarray: dense float64 arrays
//   - optimize: optimization bounds and results
//
// # Quick Start
//
//	type Config struct { ... }
//
//	func (c *Config) ToJSON() ([]byte, error)    { return jsoncoder.Default().Marshal(c) }
//	func (c *Config) FromJSON(data []byte) error { return json.Unmarshal(data, c) }
//
//	err := helpers.Save("config.json", cfg)
//	cfg, err := helpers.LoadNew[Config]("config.json")
//
// # Logging
//
// Load and Save are silent by default. Pass WithLogger to get a debug record
// per successful call and an error record per failure:
//
//	helpers.Save(path, cfg, helpers.WithLogger(helpers.NewJSONLogger(slog.LevelDebug)))
package helpers
