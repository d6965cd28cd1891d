package writer

import (
	"fmt"
	"strings"

	"github.com/retroenv/snesgodisasm/internal/program"
	"gopkg.in/yaml.v3"
)

type document struct {
	Mode         string        `yaml:"mode"`
	RomSize      int           `yaml:"rom_size"`
	Checksum     string        `yaml:"crc32"`
	Regions      []region      `yaml:"regions"`
	Labels       []label       `yaml:"labels"`
	Instructions []instruction `yaml:"instructions"`
	Xrefs        []xref        `yaml:"xrefs"`
	Report       report        `yaml:"report"`
}

type region struct {
	Start   int    `yaml:"start"`
	End     int    `yaml:"end"`
	Address string `yaml:"address"`
	Class   string `yaml:"class"`
	Kind    string `yaml:"kind,omitempty"`
}

type label struct {
	Name       string `yaml:"name"`
	Address    string `yaml:"address"`
	Kind       string `yaml:"kind"`
	DataKind   string `yaml:"data_kind,omitempty"`
	Provenance []xref `yaml:"provenance,omitempty"`
}

type instruction struct {
	Address string   `yaml:"address"`
	Offset  int      `yaml:"offset"`
	Bytes   string   `yaml:"bytes"`
	Text    string   `yaml:"text"`
	States  []string `yaml:"states,flow"`
}

type xref struct {
	From string `yaml:"from"`
	To   string `yaml:"to,omitempty"`
	Kind string `yaml:"kind"`
}

type conflict struct {
	Address    string   `yaml:"address"`
	Kind       string   `yaml:"kind"`
	Reason     string   `yaml:"reason"`
	Candidates []string `yaml:"candidates,omitempty"`
}

type report struct {
	Steps            int        `yaml:"steps"`
	Nodes            int        `yaml:"nodes"`
	Truncated        bool       `yaml:"truncated"`
	TruncationReason string     `yaml:"truncation_reason,omitempty"`
	Conflicts        []conflict `yaml:"conflicts"`
}

func (w *Writer) writeYAML(result *program.Result) error {
	encoder := yaml.NewEncoder(w.writer)
	encoder.SetIndent(2)

	if err := encoder.Encode(newDocument(result)); err != nil {
		return fmt.Errorf("encoding result: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return fmt.Errorf("closing encoder: %w", err)
	}
	return nil
}

func newDocument(result *program.Result) document {
	doc := document{
		Mode:     result.Mode,
		RomSize:  result.RomSize,
		Checksum: fmt.Sprintf("%08x", result.Checksum),
		Report: report{
			Steps:            result.Report.Steps,
			Nodes:            result.Report.Nodes,
			Truncated:        result.Report.Truncated,
			TruncationReason: result.Report.TruncationReason,
		},
	}

	for _, r := range result.Regions {
		doc.Regions = append(doc.Regions, region{
			Start:   r.Start,
			End:     r.End,
			Address: r.Address.String(),
			Class:   r.Class.String(),
			Kind:    r.Kind.String(),
		})
	}

	for _, l := range result.Labels {
		entry := label{
			Name:     l.Name,
			Address:  l.Address.String(),
			Kind:     l.Kind.String(),
			DataKind: l.DataKind.String(),
		}
		for _, x := range l.Provenance {
			entry.Provenance = append(entry.Provenance, newXref(x))
		}
		doc.Labels = append(doc.Labels, entry)
	}

	for _, ins := range result.Instructions {
		hexBytes := make([]string, 0, len(ins.Bytes))
		for _, b := range ins.Bytes {
			hexBytes = append(hexBytes, fmt.Sprintf("%02x", b))
		}
		doc.Instructions = append(doc.Instructions, instruction{
			Address: ins.Address.String(),
			Offset:  ins.Offset,
			Bytes:   strings.Join(hexBytes, " "),
			Text:    ins.Text,
			States:  ins.States,
		})
	}

	for _, x := range result.Xrefs {
		doc.Xrefs = append(doc.Xrefs, newXref(x))
	}

	for _, c := range result.Report.Conflicts {
		doc.Report.Conflicts = append(doc.Report.Conflicts, conflict{
			Address:    c.Address.String(),
			Kind:       c.Kind.String(),
			Reason:     c.Reason,
			Candidates: c.Candidates,
		})
	}
	return doc
}

func newXref(x program.Xref) xref {
	entry := xref{
		From: x.From.String(),
		Kind: x.Kind.String(),
	}
	if x.Resolved() {
		entry.To = x.To.String()
	}
	return entry
}
