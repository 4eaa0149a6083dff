// Package cli provides the command-line interface for varexpand.
//
// Commands:
//   - expand: Expand a template against -v/-l variables and the variables file
//   - has-key: Report whether a template references a variable
//   - key-range: Print the index and size of a variable key in a directive
//   - algorithms: List the hash methods usable in %{name;options:data}
//   - version: Show varexpand version
//
// Global flags select the variables file (--config, or VAREXPAND_CONFIG) and
// the logger (--log-level, --log-format). Expansion is logged at debug level.
package cli
