// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package trace

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"
)

// Decoder turns trace lines into records.
type Decoder struct {
	opts   Options
	logger *zap.Logger
}

// NewDecoder creates a decoder. A nil logger discards all log output.
func NewDecoder(opts Options, logger *zap.Logger) *Decoder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Decoder{opts: opts, logger: logger}
}

// Result is the outcome of decoding a whole stream.
type Result struct {
	// Records holds kept lines in input order.
	Records []Record
	// Failures holds every line that failed to decode, in input order.
	Failures []*LineError
	// Filtered counts lines rejected by the root-id filter.
	Filtered int
	// Lines counts all lines read.
	Lines int
}

// Decode reads r to the end, one line at a time. Malformed lines are
// recorded in Result.Failures and skipped. The returned error is non-nil
// only if r itself fails.
func (d *Decoder) Decode(r io.Reader) (*Result, error) {
	res := &Result{}
	br := bufio.NewReader(r)

	for {
		line, readErr := br.ReadString('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			return res, fmt.Errorf("failed to read trace input: %w", readErr)
		}
		if line == "" && readErr != nil {
			break
		}

		res.Lines++
		d.decodeInto(res, trimNewline(line))

		if readErr != nil {
			break
		}
	}

	d.logger.Info("DECODE_SUMMARY",
		zap.Int("lines", res.Lines),
		zap.Int("kept", len(res.Records)),
		zap.Int("filtered", res.Filtered),
		zap.Int("failed", len(res.Failures)))

	return res, nil
}

func (d *Decoder) decodeInto(res *Result, line string) {
	rec, kept, err := d.DecodeLine(line)
	switch {
	case err != nil:
		lineErr := &LineError{Line: res.Lines, Text: line, Err: err}
		res.Failures = append(res.Failures, lineErr)

		fields := []zap.Field{
			zap.Int("line", res.Lines),
			zap.String("kind", Kind(err)),
			zap.Error(err),
		}
		var fe *FieldError
		if errors.As(err, &fe) {
			fields = append(fields, zap.String("field", fe.Field), zap.Int("offset", fe.Offset))
		}
		d.logger.Warn("DECODE_ERROR", fields...)

	case !kept:
		res.Filtered++
		d.logger.Debug("LINE_FILTERED", zap.Int("line", res.Lines))

	default:
		res.Records = append(res.Records, rec)
		d.logger.Debug("LINE_DECODED",
			zap.Int("line", res.Lines),
			zap.Int32("id", rec.ID),
			zap.String("class", rec.ClassName))
	}
}

func trimNewline(line string) string {
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r")
}
