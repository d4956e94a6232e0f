// Package file stores Sightline settings in a TOML file on local disk,
// ~/.sightline/config.toml unless --config names another directory.
package file
