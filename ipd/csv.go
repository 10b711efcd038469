package ipd

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/oncurve/oncurve-api/schema"
)

// writeIPDFile writes one reconstructed arm as CSV, one row per patient.
// The header is exactly `time,event,arm` and the arm value is always
// double-quoted; downstream loaders depend on both. encoding/csv is not
// used because it only quotes when forced to.
func writeIPDFile(path string, records []schema.IPDPatientRecord) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if _, err := w.WriteString("time,event,arm\n"); err != nil {
		return err
	}
	for _, r := range records {
		line := fmt.Sprintf("%s,%d,%q\n", strconv.FormatFloat(r.Time, 'g', -1, 64), r.Event, r.Arm)
		if _, err := w.WriteString(line); err != nil {
			return err
		}
	}

	return w.Flush()
}
