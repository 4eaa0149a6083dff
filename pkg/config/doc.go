// Package config loads variable files for the varexpand CLI.
//
// A variables file lists the table entries a template is expanded against,
// plus engine and logging settings:
//
//	maxDepth: 16
//	log:
//	  level: debug
//	variables:
//	  - key: u
//	    longKey: user
//	    value: alice
//	  - longKey: domain
//	    value: example.com
//
// Files ending in .yaml or .yml are parsed as YAML, anything else as JSON.
// A file is checked against Schema before it is decoded, then validated.
// Environment variables (see ApplyEnv) override file values.
package config
