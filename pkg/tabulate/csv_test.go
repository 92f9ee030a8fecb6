package tabulate

import (
	"bytes"
	"encoding/csv"
	"testing"

	"anket.link/models"

	"github.com/google/go-cmp/cmp"
)

func TestExportCSVScenario(t *testing.T) {
	form := testForm(qColor, qSize)
	responses := []models.Response{
		testResponse(1, models.Answer{QuestionID: "q-color", Value: "Blue"}, models.Answer{QuestionID: "q-size", Value: "M"}),
		testResponse(2, models.Answer{QuestionID: "q-size", Value: "L"}),
	}

	data, err := ExportCSV(form, responses)
	if err != nil {
		t.Fatalf("ExportCSV: %v", err)
	}

	want := "Color?,Size?\r\nBlue,M\r\nN/A,L\r\n"
	if string(data) != want {
		t.Errorf("csv output = %q, want %q", data, want)
	}
}

func TestExportCSVIsDeterministic(t *testing.T) {
	form := testForm(qColor, qSize)
	responses := []models.Response{
		testResponse(1, models.Answer{QuestionID: "q-size", Value: "S"}),
		testResponse(2, models.Answer{QuestionID: "q-color", Value: "Green"}, models.Answer{QuestionID: "q-size", Value: "M"}),
	}

	first, err := ExportCSV(form, responses)
	if err != nil {
		t.Fatalf("ExportCSV: %v", err)
	}
	second, err := ExportCSV(form, responses)
	if err != nil {
		t.Fatalf("ExportCSV: %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Error("same input produced different csv bytes")
	}
}

func TestExportCSVQuotesSpecialCharacters(t *testing.T) {
	form := testForm(qColor)
	responses := []models.Response{
		testResponse(1, models.Answer{QuestionID: "q-color", Value: `mavi, "koyu"` + "\nlacivert"}),
	}

	data, err := ExportCSV(form, responses)
	if err != nil {
		t.Fatalf("ExportCSV: %v", err)
	}

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	if err != nil {
		t.Fatalf("produced csv does not parse back: %v", err)
	}
	if got := records[1][0]; got != `mavi, "koyu"`+"\nlacivert" {
		t.Errorf("quoted cell round-trip = %q", got)
	}
}

func TestExportCSVRoundTripMatchesTable(t *testing.T) {
	form := testForm(qColor, qSize)
	responses := []models.Response{
		testResponse(1, models.Answer{QuestionID: "q-color", Value: "Blue"}, models.Answer{QuestionID: "q-size", Value: "M"}),
		testResponse(2, models.Answer{QuestionID: "q-size", Value: "L"}),
		testResponse(3, models.Answer{QuestionID: "q-color", Value: "Red"}),
	}

	data, err := ExportCSV(form, responses)
	if err != nil {
		t.Fatalf("ExportCSV: %v", err)
	}
	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	if err != nil {
		t.Fatalf("csv parse: %v", err)
	}

	table := BuildTable(form, responses)
	if len(records) != len(table.Rows)+1 {
		t.Fatalf("csv has %d records, want %d", len(records), len(table.Rows)+1)
	}

	// CSV hücreleri, sentinel -> "N/A" dönüşümü dışında tabloyla birebir aynıdır.
	for i, row := range table.Rows {
		want := make([]string, len(table.Columns))
		for j, col := range table.Columns {
			v := row.Cells[col.QuestionID]
			if v == NotAnswered {
				v = MissingAnswerCSV
			}
			want[j] = v
		}
		if diff := cmp.Diff(want, records[i+1]); diff != "" {
			t.Errorf("row %d mismatch (-want +got):\n%s", i, diff)
		}
	}
}

func TestCSVHeadersDisambiguateDuplicateText(t *testing.T) {
	questions := []models.Question{
		{ID: "q1", Text: "Color?", Type: models.QuestionTypeText},
		{ID: "q2", Text: "Color?", Type: models.QuestionTypeText},
		{ID: "q3", Text: "Size?", Type: models.QuestionTypeText},
		{ID: "q4", Text: "Color?", Type: models.QuestionTypeText},
	}

	got := csvHeaders(questions)
	want := []string{"Color?", "Color? (2)", "Size?", "Color? (3)"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("headers mismatch (-want +got):\n%s", diff)
	}
}

func TestExportFilename(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"Customer Feedback", "Customer_Feedback_responses.csv"},
		{"Çok   boşluklu\tbaşlık", "Çok_boşluklu_başlık_responses.csv"},
		{"tek", "tek_responses.csv"},
	}
	for _, tt := range tests {
		if got := ExportFilename(tt.title); got != tt.want {
			t.Errorf("ExportFilename(%q) = %q, want %q", tt.title, got, tt.want)
		}
	}
}
