// Package report renders dampedfilter results to files.
package report

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"dampedfilter"
)

type Format string

const (
	FORMAT_TEXT Format = "txt"
	FORMAT_JSON Format = "json"
	FORMAT_YAML Format = "yaml"
	FORMAT_XLSX Format = "xlsx"
	FORMAT_PNG  Format = "png"
)

// Formats lists every supported format in save order.
var Formats = []Format{FORMAT_TEXT, FORMAT_JSON, FORMAT_YAML, FORMAT_XLSX, FORMAT_PNG}

// ParseFormat accepts a format name, case-insensitively; "yml" is an alias.
func ParseFormat(s string) (Format, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "yml" {
		name = string(FORMAT_YAML)
	}
	for _, f := range Formats {
		if string(f) == name {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown format %q", s)
}

// ParseFormats splits a comma separated list.
func ParseFormats(list string) ([]Format, error) {
	var out []Format
	for _, item := range strings.Split(list, ",") {
		if strings.TrimSpace(item) == "" {
			continue
		}
		f, err := ParseFormat(item)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no formats in %q", list)
	}
	return out, nil
}

func (f Format) FileName() string {
	if f == FORMAT_PNG {
		return "phasors.png"
	}
	return "results." + string(f)
}

func (f Format) ContentType() string {
	switch f {
	case FORMAT_TEXT:
		return "text/plain; charset=utf-8"
	case FORMAT_JSON:
		return "application/json"
	case FORMAT_YAML:
		return "application/yaml"
	case FORMAT_XLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	case FORMAT_PNG:
		return "image/png"
	}
	return "application/octet-stream"
}

// Write renders s in format f.
func Write(w io.Writer, f Format, s *dampedfilter.Solution) error {
	switch f {
	case FORMAT_TEXT:
		return WriteText(w, s.Results())
	case FORMAT_JSON:
		return WriteJSON(w, s.Results())
	case FORMAT_YAML:
		return WriteYAML(w, s.Results())
	case FORMAT_XLSX:
		return WriteXLSX(w, s.Results())
	case FORMAT_PNG:
		return WritePhasorDiagram(w, s)
	}
	return fmt.Errorf("unknown format %q", f)
}

// WriteText writes "==== Section ====" headers followed by "label: value" lines.
func WriteText(w io.Writer, r dampedfilter.Results) error {
	bw := bufio.NewWriter(w)
	for _, s := range r {
		fmt.Fprintf(bw, "==== %s ====\n", s.Name)
		for _, f := range s.Fields {
			fmt.Fprintf(bw, "%s: %s\n", f.Label, f.Value)
		}
		bw.WriteString("\n")
	}
	return bw.Flush()
}

// WriteJSON writes the nested sections with a four space indent.
func WriteJSON(w io.Writer, r dampedfilter.Results) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "    ")
	enc.SetEscapeHTML(false)
	return enc.Encode(r)
}

func scalar(v string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v}
}

// WriteYAML writes the sections as an ordered mapping.
func WriteYAML(w io.Writer, r dampedfilter.Results) error {
	root := &yaml.Node{Kind: yaml.MappingNode}
	for _, s := range r {
		fields := &yaml.Node{Kind: yaml.MappingNode}
		for _, f := range s.Fields {
			fields.Content = append(fields.Content, scalar(f.Label), scalar(f.Value))
		}
		root.Content = append(root.Content, scalar(s.Name), fields)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(root); err != nil {
		return err
	}
	return enc.Close()
}
