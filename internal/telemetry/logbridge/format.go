package logbridge

import (
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap/zapcore"
)

const timeLayout = "2006-01-02 15:04:05.000"

// formatLine renders `<time> <LEVEL> [<caller>] <logger> - <message> k=v ...`.
func formatLine(ent zapcore.Entry, fields []zapcore.Field) string {
	var b strings.Builder

	b.WriteString(ent.Time.Format(timeLayout))
	b.WriteByte(' ')
	fmt.Fprintf(&b, "%-5s", ent.Level.CapitalString())

	caller := "-"
	if ent.Caller.Defined {
		caller = ent.Caller.TrimmedPath()
	}
	b.WriteString(" [")
	b.WriteString(caller)
	b.WriteString("] ")

	b.WriteString(ent.LoggerName)
	b.WriteString(" - ")
	b.WriteString(ent.Message)

	if len(fields) > 0 {
		enc := zapcore.NewMapObjectEncoder()
		for _, f := range fields {
			f.AddTo(enc)
		}
		keys := make([]string, 0, len(enc.Fields))
		for k := range enc.Fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(&b, " %s=%v", k, enc.Fields[k])
		}
	}

	return b.String()
}
