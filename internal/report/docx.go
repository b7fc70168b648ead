package report

import (
	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"
)

const (
	fontName = "Times New Roman"
	fontSize = 13
)

// ExportDocx renders the batch results as a styled docx document: a
// title, then one bolded chunk heading and transcript (or error) body
// per result, in the same order as the text report.
func ExportDocx(results []Result, title, outputPath string) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return err
	}

	addStyledRun(doc.AddParagraph(""), title, true, 16)
	doc.AddParagraph("")

	for _, r := range results {
		addStyledRun(doc.AddParagraph(""), r.ChunkFile, true, 14)

		body := r.Text()
		if r.Failed() {
			body = "ERROR: " + r.Err
		} else if body == "" {
			// Endpoint returned something other than {"text": ...};
			// fall back to the raw JSON so nothing is lost.
			if pretty, err := prettyJSON(r.Payload); err == nil {
				body = pretty
			}
		}

		addStyledRun(doc.AddParagraph(""), body, false, fontSize)
	}

	return doc.SaveTo(outputPath)
}

func addStyledRun(p *docx.Paragraph, text string, bold bool, size uint64) {
	run := p.AddText(text).Font(fontName).Size(size).Color("000000")
	if bold {
		run.Bold(true)
	}
}
