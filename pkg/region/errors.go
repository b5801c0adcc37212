package region

import "errors"

var (
	ErrEmptyName     = errors.New("region.empty_name")
	ErrEmptyURL      = errors.New("region.empty_url")
	ErrInvalidURL    = errors.New("region.invalid_url")
	ErrDuplicateName = errors.New("region.duplicate_name")
	ErrNoRegions     = errors.New("region.no_regions")
	ErrParseYAML     = errors.New("region.parse_yaml")
	ErrReadFile      = errors.New("region.read_file")
)
