// Package debug holds env-driven debug switches.
package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Parse  bool
	Encode bool
	Schema bool
	Eval   bool
	Patch  bool
	Match  bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("VS_DEBUG_PARSE")
	d.Encode = boolEnv("VS_DEBUG_ENCODE")
	d.Schema = boolEnv("VS_DEBUG_SCHEMA")
	d.Eval = boolEnv("VS_DEBUG_EVAL")
	d.Patch = boolEnv("VS_DEBUG_PATCH")
	d.Match = boolEnv("VS_DEBUG_MATCH")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Parse() bool {
	return d.Parse
}
func Encode() bool {
	return d.Encode
}
func Schema() bool {
	return d.Schema
}
func Eval() bool {
	return d.Eval
}
func Patch() bool {
	return d.Patch
}
func Match() bool {
	return d.Match
}
