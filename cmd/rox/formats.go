package main

import (
	"fmt"

	"github.com/Glubus/Rhythm-Open-Exchange/internal/codec/auto"
)

// inputFormatNames maps user-facing --input-format values to auto.InputFormat.
// Distinct from auto's extension table since "fnf" is a clearer flag value
// than "json" (the actual file extension FNF charts use).
var inputFormatNames = map[string]auto.InputFormat{
	"rox":  auto.InputRox,
	"jrox": auto.InputJrox,
	"yrox": auto.InputYrox,
	"osu":  auto.InputOsu,
	"sm":   auto.InputSM,
	"qua":  auto.InputQua,
	"fnf":  auto.InputFnf,
}

var outputFormatNames = map[string]auto.OutputFormat{
	"rox":  auto.OutputRox,
	"jrox": auto.OutputJrox,
	"yrox": auto.OutputYrox,
	"osu":  auto.OutputOsu,
	"sm":   auto.OutputSM,
	"qua":  auto.OutputQua,
	"fnf":  auto.OutputFnf,
}

func parseInputFormat(name string) (auto.InputFormat, error) {
	f, ok := inputFormatNames[name]
	if !ok {
		return 0, fmt.Errorf("unknown input format %q (want one of rox, jrox, yrox, osu, sm, qua, fnf)", name)
	}

	return f, nil
}

func parseOutputFormat(name string) (auto.OutputFormat, error) {
	f, ok := outputFormatNames[name]
	if !ok {
		return 0, fmt.Errorf("unknown output format %q (want one of rox, jrox, yrox, osu, sm, qua, fnf)", name)
	}

	return f, nil
}
