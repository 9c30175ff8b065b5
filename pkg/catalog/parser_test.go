package catalog

import (
	"strings"
	"testing"
)

const sampleCatalog = `
<html><body>
<table>
  <thead>
    <tr><th>Tjänst</th><th>Beskrivning</th><th>Startdatum</th></tr>
  </thead>
  <tbody>
    <tr><td>E-tjänstportal</td><td>Digital portal för medborgare med webb och app</td><td>2019-03-01</td></tr>
    <tr><td>Parkeringstillstånd</td><td>Ansökan om boendeparkering och trafik</td><td>2015-06-15</td></tr>
    <tr><td>  Lokalbokning </td><td>Hyra av kontorslokal</td><td></td></tr>
    <tr><td></td><td>rad utan namn</td><td>x</td></tr>
  </tbody>
</table>
</body></html>`

func TestParse(t *testing.T) {
	services, err := Parse(strings.NewReader(sampleCatalog))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if len(services) != 3 {
		t.Fatalf("got %d services, want 3: %+v", len(services), services)
	}

	first := services[0]
	if first.Name != "E-tjänstportal" {
		t.Errorf("Name = %q", first.Name)
	}
	if first.StartDate != "2019-03-01" {
		t.Errorf("StartDate = %q", first.StartDate)
	}
	if first.Category != "IT och Digital" {
		t.Errorf("Category = %q, want IT och Digital", first.Category)
	}

	if services[1].Category != "Transport" {
		t.Errorf("Category = %q, want Transport", services[1].Category)
	}

	// whitespace in cells is collapsed
	if services[2].Name != "Lokalbokning" {
		t.Errorf("Name = %q, want Lokalbokning", services[2].Name)
	}
	if services[2].Category != "Fastighet och Lokaler" {
		t.Errorf("Category = %q", services[2].Category)
	}
}

func TestParseNoTable(t *testing.T) {
	_, err := Parse(strings.NewReader("<html><body><p>nothing here</p></body></html>"))
	if err != ErrNoTable {
		t.Errorf("err = %v, want ErrNoTable", err)
	}
}

func TestParseTwoColumnRows(t *testing.T) {
	services, err := Parse(strings.NewReader("<table><tr><td>Namn</td><td>Beskrivning</td></tr></table>"))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(services) != 1 || services[0].StartDate != "" {
		t.Errorf("services = %+v", services)
	}
}

func TestCategorizeFallsBack(t *testing.T) {
	if got := Categorize("Okategoriserbar", "helt unik verksamhet"); got != defaultCategory {
		t.Errorf("Categorize = %q, want %q", got, defaultCategory)
	}
}

func TestEmbeddingText(t *testing.T) {
	s := Service{Name: "Lokalbokning", Description: "Hyra av mötesrum", Category: "Fastighet och Lokaler"}
	want := "Lokalbokning. Hyra av mötesrum (Fastighet och Lokaler)"
	if got := s.EmbeddingText(); got != want {
		t.Errorf("EmbeddingText() = %q, want %q", got, want)
	}
}
