package writer

import (
	"fmt"
	"io"
	"strings"

	"github.com/retroenv/snesgodisasm/internal/program"
)

const maxBytesPerInstruction = 4

func (w *Writer) writeText(result *program.Result) error {
	buf := &strings.Builder{}

	fmt.Fprintf(buf, "%s\n", w.heading("ROM"))
	fmt.Fprintf(buf, "  mode %s, size 0x%06x, crc32 %08x\n", result.Mode, result.RomSize, result.Checksum)

	w.writeRegions(buf, result.Regions)
	w.writeLabels(buf, result.Labels)
	w.writeInstructions(buf, result)
	w.writeXrefs(buf, result.Xrefs)
	w.writeReport(buf, result.Report)

	if _, err := io.WriteString(w.writer, buf.String()); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}

func (w *Writer) writeRegions(buf *strings.Builder, regions program.RegionMap) {
	fmt.Fprintf(buf, "\n%s\n", w.heading("Regions"))
	for _, region := range regions {
		fmt.Fprintf(buf, "  %06x-%06x  %s  %-9s %d bytes",
			region.Start, region.End-1, region.Address, region.Class, region.Len())
		if region.Kind != program.UnspecifiedData {
			fmt.Fprintf(buf, "  %s", region.Kind)
		}
		buf.WriteByte('\n')
	}
}

func (w *Writer) writeLabels(buf *strings.Builder, labels []program.Label) {
	fmt.Fprintf(buf, "\n%s\n", w.heading("Labels"))
	for _, label := range labels {
		fmt.Fprintf(buf, "  %s  %-13s %s", label.Address, label.Kind, label.Name)
		if label.DataKind != program.UnspecifiedData {
			fmt.Fprintf(buf, " [%s]", label.DataKind)
		}
		if len(label.Provenance) > 0 {
			fmt.Fprintf(buf, " (%d references)", len(label.Provenance))
		}
		buf.WriteByte('\n')
	}
}

func (w *Writer) writeInstructions(buf *strings.Builder, result *program.Result) {
	names := make(map[program.Address]string, len(result.Labels))
	for _, label := range result.Labels {
		names[label.Address] = label.Name
	}

	fmt.Fprintf(buf, "\n%s\n", w.heading("Code"))
	for i, ins := range result.Instructions {
		// separate code blocks that are not adjacent
		if i > 0 {
			previous := result.Instructions[i-1]
			if previous.Offset+previous.Length() != ins.Offset {
				buf.WriteByte('\n')
			}
		}

		if name, ok := names[ins.Address]; ok {
			fmt.Fprintf(buf, "%s:\n", name)
		}

		hexBytes := make([]string, 0, maxBytesPerInstruction)
		for _, b := range ins.Bytes {
			hexBytes = append(hexBytes, fmt.Sprintf("%02x", b))
		}
		fmt.Fprintf(buf, "  %s  %-11s  %-20s ; %s\n",
			ins.Address, strings.Join(hexBytes, " "), ins.Text, strings.Join(ins.States, ", "))
	}
}

func (w *Writer) writeXrefs(buf *strings.Builder, xrefs []program.Xref) {
	fmt.Fprintf(buf, "\n%s\n", w.heading("Cross references"))
	for _, xref := range xrefs {
		if !xref.Resolved() {
			fmt.Fprintf(buf, "  %s -> ?         %s\n", xref.From, xref.Kind)
			continue
		}
		fmt.Fprintf(buf, "  %s -> %s  %s\n", xref.From, xref.To, xref.Kind)
	}
}

func (w *Writer) writeReport(buf *strings.Builder, report program.Report) {
	fmt.Fprintf(buf, "\n%s\n", w.heading("Conflicts"))
	for _, conflict := range report.Conflicts {
		fmt.Fprintf(buf, "  %s  %s: %s\n", conflict.Address, conflict.Kind, conflict.Reason)
		if len(conflict.Candidates) > 0 {
			fmt.Fprintf(buf, "      candidates: %s\n", strings.Join(conflict.Candidates, "; "))
		}
	}

	fmt.Fprintf(buf, "\n%s\n", w.heading("Trace"))
	fmt.Fprintf(buf, "  steps %d, nodes %d\n", report.Steps, report.Nodes)
	if report.Truncated {
		fmt.Fprintf(buf, "  truncated: %s\n", report.TruncationReason)
	}
}
