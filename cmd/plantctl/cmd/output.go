package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	apiclient "github.com/donaldgifford/plant-telemetry/internal/api/client"
	domain "github.com/donaldgifford/plant-telemetry/pkg/types"
)

const timeLayout = "2006-01-02 15:04:05"

// tabWriter wraps tabwriter with error tracking.
type tabWriter struct {
	*tabwriter.Writer
	err error
}

func newTabWriter(w io.Writer) *tabWriter {
	return &tabWriter{Writer: tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)}
}

func (tw *tabWriter) writef(format string, args ...any) {
	if tw.err != nil {
		return
	}
	_, tw.err = fmt.Fprintf(tw.Writer, format, args...)
}

func (tw *tabWriter) finish() error {
	if tw.err != nil {
		return tw.err
	}
	return tw.Flush()
}

func printSensorTable(w io.Writer, sensors []domain.Sensor) error {
	tw := newTabWriter(w)
	tw.writef("CODE\tNAME\tKIND\tUNIT\tRANGE\tCRITICAL\tACTIVE\n")
	for i := range sensors {
		s := &sensors[i]
		tw.writef("%s\t%s\t%s\t%s\t%s\t%v\t%v\n",
			s.Code,
			truncate(s.Name, 30),
			s.Kind,
			s.Unit,
			formatRange(s.RangeMin, s.RangeMax),
			s.IsCritical,
			s.Active,
		)
	}
	return tw.finish()
}

func printSensorDetail(w io.Writer, d *apiclient.SensorDetail) error {
	tw := newTabWriter(w)
	tw.writef("Code:\t%s\n", d.Code)
	tw.writef("Name:\t%s\n", d.Name)
	tw.writef("Kind:\t%s\n", d.Kind)
	tw.writef("Unit:\t%s\n", d.Unit)
	if d.Model != "" {
		tw.writef("Model:\t%s\n", d.Model)
	}
	if d.Location != "" {
		tw.writef("Location:\t%s\n", d.Location)
	}
	tw.writef("Range:\t%s\n", formatRange(d.RangeMin, d.RangeMax))
	if d.TankCode != nil {
		tw.writef("Tank:\t%s\n", *d.TankCode)
	}
	tw.writef("Critical:\t%v\n", d.IsCritical)
	tw.writef("Active:\t%v\n", d.Active)
	if d.LatestReading != nil {
		tw.writef("Latest:\t%s %s at %s\n",
			formatFloat(d.LatestReading.Value),
			d.LatestReading.Unit,
			d.LatestReading.Timestamp.Format(timeLayout),
		)
		tw.writef("Out of range:\t%v\n", d.OutOfRange)
	} else {
		tw.writef("Latest:\t-\n")
	}
	return tw.finish()
}

func printActuatorTable(w io.Writer, actuators []domain.Actuator) error {
	tw := newTabWriter(w)
	tw.writef("CODE\tNAME\tKIND\tCHANNEL\tSTATE\n")
	for i := range actuators {
		a := &actuators[i]
		tw.writef("%s\t%s\t%s\t%s\t%s\n",
			a.Code,
			truncate(a.Name, 30),
			a.Kind,
			a.Channel,
			onOff(a.IsOn),
		)
	}
	return tw.finish()
}

func printActuatorDetail(w io.Writer, a *domain.Actuator) error {
	tw := newTabWriter(w)
	tw.writef("Code:\t%s\n", a.Code)
	tw.writef("Name:\t%s\n", a.Name)
	tw.writef("Kind:\t%s\n", a.Kind)
	tw.writef("Channel:\t%s\n", a.Channel)
	if a.PowerWatts != nil {
		tw.writef("Power:\t%s W\n", formatFloat(*a.PowerWatts))
	}
	if a.TankCode != nil {
		tw.writef("Tank:\t%s\n", *a.TankCode)
	}
	tw.writef("State:\t%s\n", onOff(a.IsOn))
	return tw.finish()
}

func printRuleTable(w io.Writer, rules []domain.Rule) error {
	tw := newTabWriter(w)
	tw.writef("ID\tSENSOR\tCONDITION\tACTUATOR\tSEVERITY\tACTIVE\tMESSAGE\n")
	for i := range rules {
		r := &rules[i]
		actuator := "-"
		if r.ActuatorID != nil {
			actuator = strconv.FormatInt(*r.ActuatorID, 10)
		}
		tw.writef("%d\t%d\t%s %s\t%s\t%s\t%v\t%s\n",
			r.ID,
			r.SensorID,
			r.Comparator,
			formatFloat(r.Threshold),
			actuator,
			r.Severity,
			r.Active,
			truncate(r.ActionMessage, 40),
		)
	}
	return tw.finish()
}

func printReadingTable(w io.Writer, readings []domain.Reading) error {
	tw := newTabWriter(w)
	tw.writef("ID\tTIMESTAMP\tVALUE\tUNIT\tSOURCE\n")
	for i := range readings {
		r := &readings[i]
		tw.writef("%d\t%s\t%s\t%s\t%s\n",
			r.ID,
			r.Timestamp.Format(timeLayout),
			formatFloat(r.Value),
			r.Unit,
			r.Source,
		)
	}
	return tw.finish()
}

func printReadingDetail(w io.Writer, r *apiclient.ReadingDetail) error {
	tw := newTabWriter(w)
	tw.writef("ID:\t%d\n", r.ID)
	tw.writef("Sensor:\t%s\n", r.SensorCode)
	tw.writef("Value:\t%s %s\n", formatFloat(r.Value), r.Unit)
	tw.writef("Timestamp:\t%s\n", r.Timestamp.Format(time.RFC3339))
	tw.writef("Source:\t%s\n", r.Source)
	tw.writef("Out of range:\t%v\n", r.OutOfRange)
	if len(r.RawPayload) > 0 {
		tw.writef("Raw:\t%s\n", r.RawPayload)
	}
	return tw.finish()
}

func printAlertTable(w io.Writer, alerts []domain.Alert) error {
	tw := newTabWriter(w)
	tw.writef("ID\tCREATED\tSENSOR\tSEVERITY\tSTATUS\tMESSAGE\n")
	for i := range alerts {
		a := &alerts[i]
		tw.writef("%d\t%s\t%d\t%s\t%s\t%s\n",
			a.ID,
			a.CreatedAt.Format(timeLayout),
			a.SensorID,
			a.Severity,
			a.Status,
			truncate(a.Message, 50),
		)
	}
	return tw.finish()
}

func outputJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func formatRange(lo, hi *float64) string {
	if lo == nil && hi == nil {
		return "-"
	}
	bound := func(v *float64) string {
		if v == nil {
			return "*"
		}
		return formatFloat(*v)
	}
	return bound(lo) + ".." + bound(hi)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func onOff(on bool) string {
	if on {
		return "on"
	}
	return "off"
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
