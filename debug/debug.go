package debug

import (
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Token  bool
	Align  bool
	Tag    bool
	Filter bool
}

var d *debug

func init() {
	d = &debug{}
	d.Token = boolEnv("ILG_DEBUG_TOKEN")
	d.Align = boolEnv("ILG_DEBUG_ALIGN")
	d.Tag = boolEnv("ILG_DEBUG_TAG")
	d.Filter = boolEnv("ILG_DEBUG_FILTER")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Token() bool {
	return d.Token
}
func Align() bool {
	return d.Align
}
func Tag() bool {
	return d.Tag
}
func Filter() bool {
	return d.Filter
}

func Logf(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, msg, args...)
}
