package ics

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/emersion/go-ical"

	"github.com/gongahkia/calcombo/internal/civil"
)

// ReadFile is Read on the named file.
func ReadFile(filePath string) ([]Event, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open ICS file: %w", err)
	}
	defer f.Close()
	return Read(f)
}

// Read returns the start date of every VEVENT in r. Timed events are
// reduced to the civil date of their start in the zone they name.
func Read(r io.Reader) ([]Event, error) {
	dec := ical.NewDecoder(r)

	var events []Event
	for {
		cal, err := dec.Decode()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to decode ICS: %w", err)
		}

		for _, comp := range cal.Children {
			if comp.Name != ical.CompEvent {
				continue
			}
			dtstart := comp.Props.Get(ical.PropDateTimeStart)
			if dtstart == nil {
				continue
			}
			d, err := parseDate(dtstart)
			if err != nil {
				return nil, err
			}
			e := Event{Date: d}
			if uid, err := comp.Props.Text(ical.PropUID); err == nil {
				e.UID = uid
			}
			if summary, err := comp.Props.Text(ical.PropSummary); err == nil {
				e.Summary = summary
			}
			events = append(events, e)
		}
	}

	return events, nil
}

func parseDate(prop *ical.Prop) (civil.Date, error) {
	if v, ok := prop.Params[ical.ParamValue]; ok && len(v) > 0 && v[0] == "DATE" {
		t, err := time.Parse("20060102", prop.Value)
		if err != nil {
			return civil.Date{}, fmt.Errorf("invalid DATE %q: %w", prop.Value, err)
		}
		return civil.Of(t), nil
	}

	loc := time.UTC
	if tzid, ok := prop.Params[ical.ParamTimezoneID]; ok && len(tzid) > 0 {
		if l, err := time.LoadLocation(tzid[0]); err == nil {
			loc = l
		}
	}
	layout := "20060102T150405"
	if len(prop.Value) > 0 && prop.Value[len(prop.Value)-1] == 'Z' {
		layout = "20060102T150405Z"
	}
	t, err := time.ParseInLocation(layout, prop.Value, loc)
	if err != nil {
		return civil.Date{}, fmt.Errorf("invalid DATE-TIME %q: %w", prop.Value, err)
	}
	return civil.Of(t), nil
}
