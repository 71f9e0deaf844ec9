package service

import (
	"fmt"
	"strings"

	"github.com/PratikS7412/Tower-Retrival-Time/internal/service/report/types"
)

type ErrUnsupportedFormat struct {
	error
}

func NewErrUnsupportedFormat(format string) *ErrUnsupportedFormat {
	names := make([]string, 0, len(types.Formats()))
	for _, f := range types.Formats() {
		names = append(names, string(f))
	}
	return &ErrUnsupportedFormat{fmt.Errorf("unsupported report format %q: must be one of %s", format, strings.Join(names, ", "))}
}

type ErrInvalidField struct {
	error
}

func NewErrInvalidField(field string) *ErrInvalidField {
	return &ErrInvalidField{fmt.Errorf("unknown parameter field %q", field)}
}

type ErrNoResult struct {
	error
}

func NewErrNoResult() *ErrNoResult {
	return &ErrNoResult{fmt.Errorf("nothing to export: no calculation has been run")}
}
