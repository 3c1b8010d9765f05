// Package cliconfig provides configuration loading for cmd/cgc, following
// junjiewwang-perf-analysis/pkg/config's mapstructure-tagged struct plus
// viper-backed Load function.
package cliconfig
