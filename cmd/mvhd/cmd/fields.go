package cmd

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/robert-malhotra/go-mvhd/internal/atom"
	"github.com/robert-malhotra/go-mvhd/internal/config"
	"github.com/robert-malhotra/go-mvhd/internal/mvhd"
	"github.com/robert-malhotra/go-mvhd/movie"
)

type fieldDoc struct {
	Name   string `yaml:"name"`
	Offset int    `yaml:"offset"`
	Codec  string `yaml:"codec"`
	Value  string `yaml:"value"`
}

type headerDoc struct {
	File    string     `yaml:"file"`
	Offset  int64      `yaml:"offset"`
	Fields  []fieldDoc `yaml:"fields"`
	Seconds *float64   `yaml:"seconds,omitempty"`
}

func describe(f *movie.File) headerDoc {
	h := f.Header()
	doc := headerDoc{File: f.Path(), Offset: f.Offset()}
	for _, field := range mvhd.Fields() {
		slot := field.Slot()
		doc.Fields = append(doc.Fields, fieldDoc{
			Name:   slot.Name,
			Offset: slot.Offset,
			Codec:  slot.Codec.String(),
			Value:  atom.FormatValue(h.Get(field)),
		})
	}
	if secs, err := h.DurationSeconds(); err == nil {
		doc.Seconds = &secs
	}
	return doc
}

func writeHeader(w io.Writer, f *movie.File, format string) error {
	doc := describe(f)
	if format == config.OutputYAML {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return err
		}
		return enc.Close()
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "file\t%s\n", doc.File)
	fmt.Fprintf(tw, "offset\t%d\n\n", doc.Offset)
	fmt.Fprintln(tw, "FIELD\tOFFSET\tCODEC\tVALUE")
	for _, fd := range doc.Fields {
		fmt.Fprintf(tw, "%s\t%d\t%s\t%s\n", fd.Name, fd.Offset, fd.Codec, fd.Value)
	}
	if doc.Seconds != nil {
		fmt.Fprintf(tw, "\nseconds\t%s\n", formatSeconds(*doc.Seconds))
	} else {
		fmt.Fprintln(tw, "\nseconds\tunknown (time scale is zero)")
	}
	return tw.Flush()
}

func formatSeconds(s float64) string {
	return strconv.FormatFloat(s, 'f', -1, 64)
}

// setField parses s according to the named field's codec and stores it in h.
func setField(h *mvhd.Header, name, s string) error {
	field, err := mvhd.ParseField(name)
	if err != nil {
		return err
	}
	v, err := atom.ParseValue(field.Slot(), s)
	if err != nil {
		return err
	}
	return h.Set(field, v)
}

func getField(h *mvhd.Header, name string) (string, error) {
	field, err := mvhd.ParseField(name)
	if err != nil {
		return "", err
	}
	return atom.FormatValue(h.Get(field)), nil
}

// splitAssignment splits "name=value".
func splitAssignment(arg string) (string, string, error) {
	name, value, ok := strings.Cut(arg, "=")
	if !ok || name == "" {
		return "", "", fmt.Errorf("expected field=value, got %q", arg)
	}
	return name, value, nil
}

func setSeconds(h *mvhd.Header, s string) error {
	secs, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("invalid seconds %q: %w", s, err)
	}
	return h.SetDurationSeconds(secs)
}
