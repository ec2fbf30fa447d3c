package ingest

import (
	"errors"
	"regexp"
	"strings"

	"github.com/cardwise/card-assistant/internal/models"
	"github.com/google/uuid"
)

var (
	ErrEmptyDocument = errors.New("document contains no text")
	ErrNoUsableText  = errors.New("document yielded no usable chunks")
)

const (
	// Pages arrive separated by form feeds from the extraction step.
	pageDelimiter = "\f"

	maxChunkLen = 500

	// Chunks under this length are treated as extraction noise.
	minChunkLen = 50
)

var sentenceSplitter = regexp.MustCompile(`(?m)(?U)([^.!?]+[.!?])`)

// sectionPatterns tag a heading line with the document section that
// follows it. First match wins.
var sectionPatterns = []struct {
	name string
	re   *regexp.Regexp
}{
	{"fees_and_charges", regexp.MustCompile(`(?i)\b(fees?|charges|tariff)\b`)},
	{"rewards_and_benefits", regexp.MustCompile(`(?i)\b(rewards?|benefits?|cashback)\b`)},
	{"eligibility", regexp.MustCompile(`(?i)\beligib\w*\b`)},
	{"interest_and_finance", regexp.MustCompile(`(?i)\b(interest|finance|apr)\b`)},
	{"terms", regexp.MustCompile(`(?i)\bterms\s+(and|&)\s+conditions\b`)},
	{"travel", regexp.MustCompile(`(?i)\b(lounge|travel|airport)\b`)},
	{"spending_categories", regexp.MustCompile(`(?i)\b(dining|fuel|grocery|groceries)\b`)},
}

// Splitter turns page-tagged raw text into indexable chunks. Splitting is
// atomic per document: on error the caller receives zero chunks.
type Splitter struct {
	maxChunkLen int
}

func NewSplitter() *Splitter {
	return &Splitter{maxChunkLen: maxChunkLen}
}

// Chunks splits the extracted text of one document. Card and bank names
// are inferred from the file name when recognizable; sections are tagged
// from heading keywords.
func (s *Splitter) Chunks(fileName, text string) ([]models.TextChunk, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyDocument
	}

	meta := models.ChunkMetadata{
		CardName: InferCardName(fileName),
		BankName: InferBankName(fileName),
	}

	var chunks []models.TextChunk
	for _, page := range strings.Split(text, pageDelimiter) {
		for _, sec := range splitSections(page) {
			for _, content := range s.splitContent(sec.text) {
				if len(content) < minChunkLen {
					continue
				}
				m := meta
				m.Section = sec.name
				chunks = append(chunks, models.TextChunk{
					ID:       uuid.NewString(),
					Content:  content,
					Source:   models.SourceDocument,
					Metadata: m,
				})
			}
		}
	}

	if len(chunks) == 0 {
		return nil, ErrNoUsableText
	}
	return chunks, nil
}

type section struct {
	name string
	text string
}

// splitSections scans lines for section-heading keywords. Short lines
// matching a pattern start a new named section; everything else
// accumulates into the current one.
func splitSections(page string) []section {
	var sections []section
	current := section{}
	var buf strings.Builder

	flush := func() {
		if strings.TrimSpace(buf.String()) != "" {
			current.text = buf.String()
			sections = append(sections, current)
		}
		buf.Reset()
	}

	for _, line := range strings.Split(page, "\n") {
		trimmed := strings.TrimSpace(line)
		if name, ok := matchSection(trimmed); ok {
			flush()
			current = section{name: name}
		}
		buf.WriteString(line)
		buf.WriteString("\n")
	}
	flush()
	return sections
}

// matchSection treats only short lines as headings; running text matching
// a keyword must not restart the section.
func matchSection(line string) (string, bool) {
	if line == "" || len(line) > 80 {
		return "", false
	}
	for _, p := range sectionPatterns {
		if p.re.MatchString(line) {
			return p.name, true
		}
	}
	return "", false
}

// splitContent groups sentences up to the max chunk length, falling back
// to paragraph splitting when sentence segmentation finds nothing.
func (s *Splitter) splitContent(text string) []string {
	sentences := sentenceSplitter.FindAllString(text, -1)
	if len(sentences) == 0 {
		return splitParagraphs(text, s.maxChunkLen)
	}

	var chunks []string
	var buf strings.Builder
	for _, sent := range sentences {
		sent = strings.TrimSpace(sent)
		if sent == "" {
			continue
		}
		if buf.Len() > 0 && buf.Len()+len(sent)+1 > s.maxChunkLen {
			chunks = append(chunks, strings.TrimSpace(buf.String()))
			buf.Reset()
		}
		if buf.Len() > 0 {
			buf.WriteString(" ")
		}
		buf.WriteString(sent)
	}
	if strings.TrimSpace(buf.String()) != "" {
		chunks = append(chunks, strings.TrimSpace(buf.String()))
	}
	return chunks
}

func splitParagraphs(text string, maxLen int) []string {
	var chunks []string
	for _, para := range strings.Split(text, "\n\n") {
		para = strings.TrimSpace(para)
		if para == "" {
			continue
		}
		for len(para) > maxLen {
			chunks = append(chunks, strings.TrimSpace(para[:maxLen]))
			para = strings.TrimSpace(para[maxLen:])
		}
		if para != "" {
			chunks = append(chunks, para)
		}
	}
	return chunks
}
