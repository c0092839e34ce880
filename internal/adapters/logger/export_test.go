// export_test.go exports private functions for white-box testing.
package logger

// Exported for testing.
var (
	CollectErrorEntries = collectErrorEntries
	FormatErrorEntries  = formatErrorEntries
)
