package request

import (
	"errors"
	"strconv"
	"strings"
	"time"
)

var (
	ErrInvalidMoneyValue = errors.New("invalid money value")
	ErrInvalidDateValue  = errors.New("invalid date value")
)

// ParseMoney accepts the decimal formats the planilha-era clients still
// send: plain "1234.56" and Brazilian "1.234,56". Empty input is zero.
func ParseMoney(raw string) (float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}

	if strings.Contains(raw, ",") {
		raw = strings.ReplaceAll(raw, ".", "")
		raw = strings.ReplaceAll(raw, ",", ".")
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, ErrInvalidMoneyValue
	}
	return v, nil
}

// ParseDate accepts "2006-01-02" and RFC3339 timestamps. Empty input
// is the zero time.
func ParseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Time{}, ErrInvalidDateValue
}
