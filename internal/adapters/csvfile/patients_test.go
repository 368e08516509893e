package csvfile

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/bluezephyr/patients/internal/models"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "patients.csv")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestPatientReaderLoad(t *testing.T) {
	path := writeFile(t, "FIRST NAME,LAST NAME,ID,WARD\nAnna,Smith,P1,3\nBen,Jones,P2,1\nCara,Miles,P3,3\n")

	cohort, err := NewPatientReader(path).Load(context.Background())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if got := cohort.Header; len(got) != 4 || got[2] != "ID" {
		t.Errorf("header = %v", got)
	}
	if cohort.Len() != 3 {
		t.Fatalf("loaded %d patients, want 3", cohort.Len())
	}
	wantIDs := []string{"P1", "P2", "P3"}
	for i, p := range cohort.Patients {
		if p.ID != wantIDs[i] {
			t.Errorf("patient %d ID = %q, want %q", i, p.ID, wantIDs[i])
		}
		if p.Line != i+2 {
			t.Errorf("patient %s line = %d, want %d", p.ID, p.Line, i+2)
		}
	}
}

func TestPatientReaderKeepsDuplicates(t *testing.T) {
	path := writeFile(t, "A,B,ID\na,b,P1\nc,d,P1\n")

	cohort, err := NewPatientReader(path).Load(context.Background())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cohort.Len() != 2 {
		t.Errorf("duplicates must be kept for validation, got %d rows", cohort.Len())
	}
	if cohort.Unique() != 1 {
		t.Errorf("unique = %d, want 1", cohort.Unique())
	}
}

func TestPatientReaderMissingIDColumn(t *testing.T) {
	path := writeFile(t, "A,B\na,b\n")

	if _, err := NewPatientReader(path).Load(context.Background()); err == nil {
		t.Fatal("expected error for rows without an ID column")
	}
}

func TestPatientReaderEmptyFile(t *testing.T) {
	path := writeFile(t, "")

	if _, err := NewPatientReader(path).Load(context.Background()); err == nil {
		t.Fatal("expected error for a file without a header row")
	}
}

func TestPatientWriterAppendsDoctorColumns(t *testing.T) {
	cohort := models.NewCohort(
		[]string{"A", "B", "ID"},
		[]*models.Patient{
			{ID: "P1", Row: []string{"a", "b", "P1", "Dr1", "Dr2"}, Line: 2},
			{ID: "P2", Row: []string{"c", "d", "P2", "Dr2", "Dr1"}, Line: 3},
		},
	)

	path := filepath.Join(t.TempDir(), "out.csv")
	if err := NewPatientWriter(path).Write(context.Background(), cohort); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	want := "A,B,ID,DOCTOR 1,DOCTOR 2\na,b,P1,Dr1,Dr2\nc,d,P2,Dr2,Dr1\n"
	if string(data) != want {
		t.Errorf("output = %q, want %q", data, want)
	}
}

func TestPatientWriterDoesNotMutateHeader(t *testing.T) {
	cohort := models.NewCohort([]string{"A", "B", "ID"}, nil)
	path := filepath.Join(t.TempDir(), "out.csv")
	if err := NewPatientWriter(path).Write(context.Background(), cohort); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if len(cohort.Header) != 3 {
		t.Errorf("header mutated to %v", cohort.Header)
	}
}
