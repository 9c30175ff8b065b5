package catalog

import (
	"errors"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// Service is one row of the exported service catalog. The export is an HTML
// table (name, description, start date) despite its .xls extension.
type Service struct {
	Name        string
	Description string
	StartDate   string
	Category    string
}

var ErrNoTable = errors.New("no table found in catalog document")

// Parse reads the first table in the document and returns one Service per
// data row. Header rows (th cells) and rows with fewer than two cells are
// skipped. Each service gets a heuristic category from its text.
func Parse(r io.Reader) ([]Service, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, err
	}

	table := findFirst(doc, "table")
	if table == nil {
		return nil, ErrNoTable
	}

	var services []Service
	for _, row := range findAll(table, "tr") {
		cells := findAll(row, "td")
		if len(cells) < 2 {
			continue
		}

		name := textContent(cells[0])
		description := textContent(cells[1])
		if name == "" {
			continue
		}

		svc := Service{
			Name:        name,
			Description: description,
		}
		if len(cells) >= 3 {
			svc.StartDate = textContent(cells[2])
		}
		svc.Category = Categorize(name, description)

		services = append(services, svc)
	}

	return services, nil
}

// EmbeddingText renders a service the way it is indexed: the searchable
// body of its catalog document.
func (s Service) EmbeddingText() string {
	var sb strings.Builder
	sb.WriteString(s.Name)
	if s.Description != "" {
		sb.WriteString(". ")
		sb.WriteString(s.Description)
	}
	if s.Category != "" {
		sb.WriteString(" (")
		sb.WriteString(s.Category)
		sb.WriteString(")")
	}
	return sb.String()
}

var categoryPatterns = []struct {
	name     string
	keywords []string
}{
	{"IT och Digital", []string{"system", "digital", "webb", "app", "api", "databas", "server", "nätverk", "it", "dator", "teknologi", "mobil", "wifi", "fiber", "mjukvara", "epost"}},
	{"Kommunikation", []string{"kommunikation", "telefon", "samtal", "videokonferens", "möte", "meddelande", "information", "kontakt"}},
	{"Säkerhet", []string{"säkerhet", "brandskydd", "övervakning", "kamera", "larm", "skydd", "behörighet", "inloggning", "autentisering"}},
	{"Transport", []string{"transport", "fordon", "bil", "buss", "cykel", "parkering", "trafik", "resa", "mobilitet", "kollektivtrafik"}},
	{"Fastighet och Lokaler", []string{"fastighet", "lokal", "byggnad", "hyra", "uthyrning", "kontor", "mötesrum", "underhåll"}},
	{"Miljö och Hållbarhet", []string{"miljö", "hållbar", "energi", "avfall", "återvinning", "klimat", "grön", "förnybar", "utsläpp"}},
	{"Utbildning", []string{"utbildning", "kurs", "träning", "lärande", "skola", "undervisning", "kompetensutveckling", "workshop"}},
}

const defaultCategory = "Övrigt"

// Categorize assigns a service to the first category whose keyword list
// matches its name or description.
func Categorize(name, description string) string {
	text := strings.ToLower(name + " " + description)
	for _, cat := range categoryPatterns {
		for _, kw := range cat.keywords {
			if strings.Contains(text, kw) {
				return cat.name
			}
		}
	}
	return defaultCategory
}

func findFirst(n *html.Node, tag string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tag {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findFirst(c, tag); found != nil {
			return found
		}
	}
	return nil
}

func findAll(n *html.Node, tag string) []*html.Node {
	var nodes []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == tag {
			nodes = append(nodes, n)
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c)
	}
	return nodes
}

func textContent(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.Join(strings.Fields(sb.String()), " ")
}
