// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/doxymark

package doxymark

import "errors"

var (
	// ErrParseXML is returned when input XML parsing fails.
	ErrParseXML = errors.New("parse xml")
	// ErrUnknownFormat is returned when the requested output format is not registered.
	ErrUnknownFormat = errors.New("unknown output format")
	// ErrReadInputFile is returned when an input document cannot be read.
	ErrReadInputFile = errors.New("read input file")
	// ErrReadConfigFile is returned when configuration file loading fails.
	ErrReadConfigFile = errors.New("read config file")
	// ErrDecodeConfigFile is returned when configuration YAML decoding fails.
	ErrDecodeConfigFile = errors.New("decode config file")
	// ErrReadInputDir is returned when the input directory cannot be read.
	ErrReadInputDir = errors.New("read input directory")
	// ErrCreateOutputDir is returned when the output directory cannot be created.
	ErrCreateOutputDir = errors.New("create output directory")
	// ErrWriteOutput is returned when a converted document cannot be written.
	ErrWriteOutput = errors.New("write output file")
	// ErrWriteStylesheet is returned when stylesheet asset writing fails.
	ErrWriteStylesheet = errors.New("write stylesheet")
)
