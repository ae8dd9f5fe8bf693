package timeutil

import (
	"database/sql/driver"
	"fmt"
	"time"
)

type UTCTime time.Time

func NowUTC() UTCTime {
	return UTCTime(time.Now().UTC())
}

func (t UTCTime) Value() (driver.Value, error) {
	return time.Time(t).UTC(), nil
}

func (t *UTCTime) Scan(value any) error {
	if value == nil {
		*t = UTCTime{}
		return nil
	}
	cvt, err := driver.DefaultParameterConverter.ConvertValue(value)
	if err != nil {
		return fmt.Errorf("convert: %w", err)
	}
	switch v := cvt.(type) {
	case time.Time:
		*t = UTCTime(v.UTC())
		return nil
	case string:
		return t.scanString(v)
	case []byte:
		return t.scanString(string(v))
	default:
		return fmt.Errorf("expected type time.Time, got type %T", cvt)
	}
}

func (t *UTCTime) scanString(s string) error {
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02 15:04:05.999999999-07:00", "2006-01-02 15:04:05"} {
		if p, err := time.Parse(layout, s); err == nil {
			*t = UTCTime(p.UTC())
			return nil
		}
	}
	return fmt.Errorf("bad time %q", s)
}

func (t UTCTime) UTC() time.Time {
	return time.Time(t).UTC()
}
