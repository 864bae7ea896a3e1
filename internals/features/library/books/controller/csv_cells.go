package controller

import (
	"strconv"
	"time"
)

func boolToCell(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func strPtrCell(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func datePtrCell(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}

func itoa(n int) string { return strconv.Itoa(n) }
