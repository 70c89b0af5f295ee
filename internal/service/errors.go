package service

import "errors"

var (
	ErrEmptyMerge     = errors.New("no remote document could be merged")
	ErrContentNotText = errors.New("merged content is not valid UTF-8 text")
	ErrUnknownRoute   = errors.New("unknown relay route")
)
