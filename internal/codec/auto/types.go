// Package auto dispatches chart decoding and encoding across every
// translator by file extension, or by sequential probing when no extension
// is available.
package auto

import (
	"path/filepath"
	"strings"

	"github.com/Glubus/Rhythm-Open-Exchange/internal/fault"
)

// InputFormat is a format AutoDecodeFile and DecodeWithFormat know how to read.
type InputFormat int

const (
	InputRox InputFormat = iota
	InputJrox
	InputYrox
	InputOsu
	InputTaiko
	InputSM
	InputQua
	InputFnf
)

// OutputFormat is a format AutoEncodeFile and EncodeWithFormat know how to write.
type OutputFormat int

const (
	OutputRox OutputFormat = iota
	OutputJrox
	OutputYrox
	OutputOsu
	OutputSM
	OutputQua
	OutputFnf
)

// inputExtensions maps a lowercased extension (without the leading dot) to
// an InputFormat. "osu" always resolves to InputOsu; mode-based taiko
// selection happens at decode time via detectOsuMode, not from the
// extension.
var inputExtensions = map[string]InputFormat{
	"rox":  InputRox,
	"jrox": InputJrox,
	"yrox": InputYrox,
	"osu":  InputOsu,
	"sm":   InputSM,
	"qua":  InputQua,
	"json": InputFnf,
}

var outputExtensions = map[string]OutputFormat{
	"rox":  OutputRox,
	"jrox": OutputJrox,
	"yrox": OutputYrox,
	"osu":  OutputOsu,
	"sm":   OutputSM,
	"qua":  OutputQua,
	"json": OutputFnf,
}

// InputFormatFromExtension resolves a bare extension (case-insensitive, no
// leading dot) to an InputFormat.
func InputFormatFromExtension(ext string) (InputFormat, error) {
	f, ok := inputExtensions[strings.ToLower(ext)]
	if !ok {
		return 0, fault.UnsupportedFormatf("unknown input extension: .%s", ext)
	}

	return f, nil
}

// InputFormatFromPath resolves a file path's extension to an InputFormat.
func InputFormatFromPath(path string) (InputFormat, error) {
	ext := filepath.Ext(path)
	if ext == "" {
		return 0, fault.InvalidFormat("no file extension")
	}

	return InputFormatFromExtension(strings.TrimPrefix(ext, "."))
}

// OutputFormatFromExtension resolves a bare extension (case-insensitive, no
// leading dot) to an OutputFormat.
func OutputFormatFromExtension(ext string) (OutputFormat, error) {
	f, ok := outputExtensions[strings.ToLower(ext)]
	if !ok {
		return 0, fault.UnsupportedFormatf("unknown output extension: .%s", ext)
	}

	return f, nil
}

// OutputFormatFromPath resolves a file path's extension to an OutputFormat.
func OutputFormatFromPath(path string) (OutputFormat, error) {
	ext := filepath.Ext(path)
	if ext == "" {
		return 0, fault.InvalidFormat("no file extension")
	}

	return OutputFormatFromExtension(strings.TrimPrefix(ext, "."))
}
