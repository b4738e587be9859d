// Package config loads the zocbuild.yaml project file.
//
// Values are layered, lowest priority first: zocbuild.yaml, the .env file
// next to it, the process environment (ZOCBUILD_* variables). Command-line
// flags are applied on top by the cli package.
package config
