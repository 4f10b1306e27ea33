package ics

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/emersion/go-ical"
	"github.com/google/uuid"

	"github.com/gongahkia/calcombo/internal/civil"
)

const productID = "-//gongahkia//calcombo//EN"

// Event is an all-day calendar entry.
type Event struct {
	UID     string
	Summary string
	Date    civil.Date
}

// NewEvent returns an event for d whose UID is derived from d and summary,
// so exporting the same date twice yields the same UID.
func NewEvent(d civil.Date, summary string) Event {
	name := d.String() + "/" + summary
	return Event{
		UID:     uuid.NewSHA1(uuid.NameSpaceURL, []byte("calcombo:"+name)).String(),
		Summary: summary,
		Date:    d,
	}
}

type Writer struct {
	now func() time.Time
}

func NewWriter() *Writer {
	return &Writer{now: time.Now}
}

func (w *Writer) WriteFile(ctx context.Context, events []Event, filePath string) error {
	f, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("failed to create ICS file: %w", err)
	}
	defer f.Close()

	return w.Write(ctx, events, f)
}

func (w *Writer) Write(ctx context.Context, events []Event, writer io.Writer) error {
	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, "2.0")
	cal.Props.SetText(ical.PropProductID, productID)

	for _, e := range events {
		if err := ctx.Err(); err != nil {
			return err
		}
		cal.Children = append(cal.Children, w.writeEvent(e))
	}

	return ical.NewEncoder(writer).Encode(cal)
}

func (w *Writer) writeEvent(e Event) *ical.Component {
	event := ical.NewComponent(ical.CompEvent)

	event.Props.SetText(ical.PropUID, e.UID)
	event.Props.SetDateTime(ical.PropDateTimeStamp, w.now().UTC())
	if e.Summary != "" {
		event.Props.SetText(ical.PropSummary, e.Summary)
	}

	setDate(event.Props, ical.PropDateTimeStart, e.Date)
	// DTEND is exclusive for all-day events.
	setDate(event.Props, ical.PropDateTimeEnd, e.Date.AddDays(1))

	return event
}

func setDate(props ical.Props, propName string, d civil.Date) {
	props.SetText(propName, d.In(time.UTC).Format("20060102"))
	props.Get(propName).Params[ical.ParamValue] = []string{"DATE"}
}
