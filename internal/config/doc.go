// Package config manages user-level settings stored at ~/.sparkentic/config.yaml,
// overlaid with SPARKENTIC_* environment variables. Keys:
//
//	templates_dir  directory that replaces the embedded templates
//	color          auto, always or never
//	log_level      debug, info, warn or error
package config
