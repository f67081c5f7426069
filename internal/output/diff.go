package output

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/gonvenience/ytbx"
	"github.com/homeport/dyff/pkg/dyff"
	"sigs.k8s.io/yaml"

	"github.com/ngplug/cli/internal/core"
)

// DiffConfigurations renders a YAML-aware diff between two configurations.
// Returns "" when they are equivalent.
func DiffConfigurations(before, after *core.Configuration, useColor bool) (string, error) {
	beforeYAML, err := yaml.Marshal(before)
	if err != nil {
		return "", fmt.Errorf("serializing base configuration: %w", err)
	}
	afterYAML, err := yaml.Marshal(after)
	if err != nil {
		return "", fmt.Errorf("serializing patched configuration: %w", err)
	}
	return diffYAML(beforeYAML, afterYAML, useColor)
}

func diffYAML(from, to []byte, useColor bool) (string, error) {
	if len(from) == 0 && len(to) == 0 {
		return "", nil
	}

	fromInput, err := parseYAMLInput("base", from)
	if err != nil {
		return "", fmt.Errorf("parsing base YAML: %w", err)
	}
	toInput, err := parseYAMLInput("patched", to)
	if err != nil {
		return "", fmt.Errorf("parsing patched YAML: %w", err)
	}

	report, err := dyff.CompareInputFiles(fromInput, toInput)
	if err != nil {
		return "", fmt.Errorf("comparing YAML: %w", err)
	}
	if len(report.Diffs) == 0 {
		return "", nil
	}
	return renderDyffReport(report, useColor)
}

func parseYAMLInput(name string, data []byte) (ytbx.InputFile, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return ytbx.InputFile{Location: name}, nil
	}

	docs, err := ytbx.LoadYAMLDocuments(data)
	if err != nil {
		return ytbx.InputFile{}, err
	}
	return ytbx.InputFile{Location: name, Documents: docs}, nil
}

func renderDyffReport(report dyff.Report, useColor bool) (string, error) {
	var buf bytes.Buffer

	reportWriter := &dyff.HumanReport{
		Report:            report,
		DoNotInspectCerts: true,
		NoTableStyle:      !useColor,
		OmitHeader:        true,
	}
	if err := reportWriter.WriteReport(io.Writer(&buf)); err != nil {
		return "", fmt.Errorf("writing report: %w", err)
	}

	lines := strings.Split(buf.String(), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	return strings.TrimSpace(strings.Join(lines, "\n")), nil
}
