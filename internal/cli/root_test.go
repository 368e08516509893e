package cli

import (
	"bytes"
	"database/sql"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const patientsCSV = `FIRST NAME,LAST NAME,ID,WARD
Anna,Smith,P01,3
Ben,Jones,P02,1
Cara,Miles,P03,3
Dan,Brown,P04,2
Eve,Stone,P05,1
Finn,Ward,P06,2
Gail,Reed,P07,3
Hugo,Bell,P08,1
Iris,Cole,P09,2
Jack,Dean,P10,3
Kate,Ford,P11,1
Liam,Gray,P12,2
`

const doctorsTxt = `Dr Alice
Dr Bob
Dr Carol
Dr Dave
Dr Erin
`

func writeInputs(t *testing.T) (string, string, string) {
	t.Helper()
	dir := t.TempDir()
	patients := filepath.Join(dir, "patients.csv")
	doctors := filepath.Join(dir, "doctors.txt")
	if err := os.WriteFile(patients, []byte(patientsCSV), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(doctors, []byte(doctorsTxt), 0644); err != nil {
		t.Fatal(err)
	}
	return patients, doctors, dir
}

func run(t *testing.T, args ...string) error {
	t.Helper()
	cmd := RootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	return cmd.Execute()
}

func TestRunSeededIsByteIdentical(t *testing.T) {
	patients, doctors, dir := writeInputs(t)
	out1 := filepath.Join(dir, "out1.csv")
	out2 := filepath.Join(dir, "out2.csv")

	if err := run(t, patients, doctors, out1, "--seed", "7", "-q"); err != nil {
		t.Fatalf("first run failed: %v", err)
	}
	if err := run(t, patients, doctors, out2, "--seed", "7", "-q"); err != nil {
		t.Fatalf("second run failed: %v", err)
	}

	a, err := os.ReadFile(out1)
	if err != nil {
		t.Fatal(err)
	}
	b, err := os.ReadFile(out2)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a, b) {
		t.Error("two runs with the same seed produced different output files")
	}
}

func TestRunOutputSchema(t *testing.T) {
	patients, doctors, dir := writeInputs(t)
	out := filepath.Join(dir, "out.csv")

	if err := run(t, patients, doctors, out, "--seed", "3", "-q"); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	f, err := os.Open(out)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatal(err)
	}

	if len(rows) != 13 {
		t.Fatalf("output has %d rows, want header + 12", len(rows))
	}
	header := rows[0]
	if header[len(header)-2] != "DOCTOR 1" || header[len(header)-1] != "DOCTOR 2" {
		t.Errorf("header = %v, want trailing DOCTOR 1, DOCTOR 2", header)
	}
	for _, row := range rows[1:] {
		d1, d2 := row[len(row)-2], row[len(row)-1]
		if d1 == "" || d2 == "" || d1 == d2 {
			t.Errorf("patient %s assigned %q and %q", row[2], d1, d2)
		}
	}
	// Input row order is preserved.
	if rows[1][2] != "P01" || rows[12][2] != "P12" {
		t.Errorf("output rows out of order: first %s last %s", rows[1][2], rows[12][2])
	}
}

func TestRunDuplicatePatientFails(t *testing.T) {
	dir := t.TempDir()
	patients := filepath.Join(dir, "patients.csv")
	doctors := filepath.Join(dir, "doctors.txt")
	out := filepath.Join(dir, "out.csv")
	// P1 on file rows 2 and 5.
	dup := "A,B,ID\na,b,P1\nc,d,P2\ne,f,P3\ng,h,P1\n"
	if err := os.WriteFile(patients, []byte(dup), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(doctors, []byte("Dr X\nDr Y\n"), 0644); err != nil {
		t.Fatal(err)
	}

	err := run(t, patients, doctors, out, "-q")
	if err == nil {
		t.Fatal("expected duplicate patient to fail the run")
	}
	if !strings.Contains(err.Error(), "rows: 2, 5") {
		t.Errorf("error should list rows 2 and 5, got %v", err)
	}
	if _, statErr := os.Stat(out); !os.IsNotExist(statErr) {
		t.Error("no output file may be written on validation failure")
	}
}

func TestRunSingleDoctorFails(t *testing.T) {
	dir := t.TempDir()
	patients := filepath.Join(dir, "patients.csv")
	doctors := filepath.Join(dir, "doctors.txt")
	if err := os.WriteFile(patients, []byte("A,B,ID\na,b,P1\nc,d,P2\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(doctors, []byte("Dr Solo\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := run(t, patients, doctors, filepath.Join(dir, "out.csv"), "-q"); err == nil {
		t.Fatal("expected single-doctor run to fail in round 2")
	}
}

func TestRunWrongArgCount(t *testing.T) {
	if err := run(t, "only.csv"); err == nil {
		t.Fatal("expected an argument error")
	}
}

func TestRunAuditExport(t *testing.T) {
	patients, doctors, dir := writeInputs(t)
	out := filepath.Join(dir, "out.csv")
	audit := filepath.Join(dir, "audit.db")

	if err := run(t, patients, doctors, out, "--seed", "7", "--audit-db", audit, "-q"); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	conn, err := sql.Open("sqlite3", audit)
	if err != nil {
		t.Fatal(err)
	}
	defer conn.Close()

	var runs, assignments int
	if err := conn.QueryRow("SELECT COUNT(*) FROM runs").Scan(&runs); err != nil {
		t.Fatal(err)
	}
	if err := conn.QueryRow("SELECT COUNT(*) FROM assignments").Scan(&assignments); err != nil {
		t.Fatal(err)
	}
	if runs != 1 {
		t.Errorf("runs = %d, want 1", runs)
	}
	if assignments != 24 {
		t.Errorf("assignments = %d, want 24 (12 patients x 2 rounds)", assignments)
	}
}
