package scenario

import (
	"bytes"
	"fmt"
	"os"

	"github.com/danwein8/mapfbench/mapgrid"
)

// FileName returns the scenario file name for an agent count and a map
// stem: "<agents>_<mapStem>_scenario.txt". Downstream reporting tools key
// their results on this convention; keep it stable.
func FileName(agents int, mapStem string) string {
	return fmt.Sprintf("%d_%s_scenario.txt", agents, mapStem)
}

// GenerateFile parses the binary grid at gridPath, generates a scenario
// for agents agents, and writes it to outPath. The scenario is encoded
// fully in memory before the output file is created, so a generation or
// parse failure leaves no file behind: outPath either holds exactly
// agents valid assignments or does not exist.
func GenerateFile(gridPath string, agents int, outPath string, opts ...Option) error {
	g, err := mapgrid.LoadBinary(gridPath)
	if err != nil {
		return err
	}
	s, err := Generate(g, agents, opts...)
	if err != nil {
		return fmt.Errorf("%s: %w", gridPath, err)
	}

	var buf bytes.Buffer
	if err = s.Encode(&buf); err != nil {
		return err
	}
	if err = os.WriteFile(outPath, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("scenario: %w", err)
	}

	return nil
}
